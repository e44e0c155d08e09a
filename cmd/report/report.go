package report

import (
	"fmt"
	"time"

	"github.com/labworks/labman/internal/config"
	"github.com/labworks/labman/pkg/core/chem"
	"github.com/labworks/labman/pkg/middleware/db"
	"github.com/labworks/labman/pkg/repo/model"
	repoReagent "github.com/labworks/labman/pkg/repo/reagent"
	"github.com/labworks/labman/pkg/utils"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

// overrides are one-shot knobs for a single digest run; unset values
// fall back to the ALERT_* configuration.
type overrides struct {
	WindowDays int     `env:"REPORT_WINDOW_DAYS"`
	Threshold  float64 `env:"REPORT_LOW_STOCK_THRESHOLD"`
}

func New() *cobra.Command {
	return &cobra.Command{
		Use:          "report",
		Long:         "Print the inventory alert digest and exit",
		SilenceUsage: true,
		PreRunE:      initReport,
		RunE:         runReport,
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.CloseDB(cmd.Context())
			return nil
		},
	}
}

func initReport(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	db.InitDB(cmd.Context(), &db.Config{
		Driver: conf.Database.Driver, Path: conf.Database.Path,
		Host: conf.Database.Host, Port: conf.Database.Port,
		User: conf.Database.User, PW: conf.Database.Password,
		DBName: conf.Database.Name, LogConf: db.LogConf{Level: conf.Log.LogLevel},
	})
	return nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Root().Context()

	over := &overrides{}
	if err := envconfig.Process(ctx, over); err != nil {
		return fmt.Errorf("parse report overrides: %w", err)
	}
	conf := config.Global()
	window := over.WindowDays
	if window <= 0 {
		window = conf.Alert.ExpiryWindowDays
	}
	threshold := over.Threshold
	if threshold <= 0 {
		threshold = conf.Alert.LowStockThreshold
	}

	list, err := repoReagent.NewReagentRepo().ListAllReagents(ctx)
	if err != nil {
		return err
	}
	stock := utils.FilterSlice(list, func(r *model.Reagent) (chem.StockItem, bool) {
		return chem.StockItem{
			ID:       r.UUID.String(),
			Name:     r.Name,
			Quantity: r.Quantity,
			Unit:     r.Unit,
			Location: r.Location,
			Expiry:   r.ExpiryDate,
		}, true
	})

	now := time.Now()
	expiring, _ := chem.ExpiringReagents(stock, now, window)
	low := chem.LowStockReagents(stock, threshold)

	fmt.Printf("Inventory digest %s\n\n", now.Format(utils.DateLayout))
	fmt.Printf("Expiring within %d days: %d\n", window, len(expiring))
	for _, it := range expiring {
		fmt.Printf("  %-32s %s (%d days)\n", it.Name, utils.FormatDate(it.Expiry), it.DaysToExpiry)
	}
	fmt.Printf("\nLow stock (below %g): %d\n", threshold, len(low))
	for _, it := range low {
		fmt.Printf("  %-32s %g %s\n", it.Name, it.Quantity, it.Unit)
	}
	return nil
}
