package migrate

import (
	"context"

	"github.com/labworks/labman/pkg/middleware/db"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo/model"
)

func Table(ctx context.Context) error {
	d := db.DB().DBWithContext(ctx)
	models := []any{
		&model.User{},
		&model.Reagent{},
		&model.Protocol{},
		&model.Event{},
		&model.ExperimentLog{},
		&model.CalcRecord{},
	}
	for _, m := range models {
		if err := d.AutoMigrate(m); err != nil {
			logger.Errorf(ctx, "migrate table err: %+v", err)
			return err
		}
	}
	return nil
}
