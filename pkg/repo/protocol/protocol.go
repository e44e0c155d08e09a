package protocol

import (
	"context"
	"errors"
	"strings"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
	"gorm.io/gorm"
)

type protocolImpl struct {
	repo.BaseDB
}

func NewProtocolRepo() repo.ProtocolRepo {
	return &protocolImpl{BaseDB: repo.NewBaseDB()}
}

func (p *protocolImpl) CreateProtocol(ctx context.Context, protocol *model.Protocol) error {
	if err := p.DBWithContext(ctx).Create(protocol).Error; err != nil {
		logger.Errorf(ctx, "CreateProtocol err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (p *protocolImpl) ListProtocols(ctx context.Context, q repo.ProtocolQuery) ([]*model.Protocol, int64, error) {
	db := p.DBWithContext(ctx).Model(&model.Protocol{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if q.Type != "" {
		db = db.Where("protocol_type = ?", q.Type)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	if q.Limit == 0 {
		q.Limit = 20
	}
	list := make([]*model.Protocol, 0, q.Limit)
	if err := db.Order("created_at DESC").Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (p *protocolImpl) GetProtocolByUUID(ctx context.Context, id uuid.UUID) (*model.Protocol, error) {
	protocol := &model.Protocol{}
	err := p.DBWithContext(ctx).Where("uuid = ?", id).First(protocol).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.RecordNotFound
		}
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return protocol, nil
}

func (p *protocolImpl) GetProtocolByID(ctx context.Context, id int64) (*model.Protocol, error) {
	protocol := &model.Protocol{}
	err := p.DBWithContext(ctx).Where("id = ?", id).First(protocol).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.RecordNotFound
		}
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return protocol, nil
}

func (p *protocolImpl) RecentProtocols(ctx context.Context, limit int) ([]*model.Protocol, error) {
	list := make([]*model.Protocol, 0, limit)
	if err := p.DBWithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}
