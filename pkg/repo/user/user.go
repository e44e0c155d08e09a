package user

import (
	"context"
	"errors"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
	"gorm.io/gorm"
)

type userImpl struct {
	repo.BaseDB
}

func NewUserRepo() repo.UserRepo {
	return &userImpl{BaseDB: repo.NewBaseDB()}
}

func (u *userImpl) CreateUser(ctx context.Context, user *model.User) error {
	if err := u.DBWithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return code.UserExistErr
		}
		logger.Errorf(ctx, "CreateUser err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (u *userImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := u.DBWithContext(ctx).Where("username = ?", username).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.RecordNotFound
		}
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return user, nil
}

func (u *userImpl) GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user := &model.User{}
	err := u.DBWithContext(ctx).Where("uuid = ?", id).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.RecordNotFound
		}
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return user, nil
}
