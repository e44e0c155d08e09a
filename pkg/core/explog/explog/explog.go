package explog

import (
	"context"

	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	core "github.com/labworks/labman/pkg/core/explog"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	repoExplog "github.com/labworks/labman/pkg/repo/explog"
	"github.com/labworks/labman/pkg/repo/model"
	repoProtocol "github.com/labworks/labman/pkg/repo/protocol"
	"github.com/labworks/labman/pkg/utils"
)

type explogImpl struct {
	logStore      repo.ExperimentLogRepo
	protocolStore repo.ProtocolRepo
}

func New() core.Service {
	return &explogImpl{
		logStore:      repoExplog.NewExperimentLogRepo(),
		protocolStore: repoProtocol.NewProtocolRepo(),
	}
}

func (e *explogImpl) Create(ctx context.Context, req *core.CreateLogReq) (*core.CreateLogResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, code.ParamErr.WithMsgf("invalid date: %s", req.Date)
	}

	var protocolID *int64
	if req.ProtocolUUID != "" {
		id, err := uuid.FromString(req.ProtocolUUID)
		if err != nil {
			return nil, code.ParamErr.WithMsgf("invalid protocol_uuid: %s", req.ProtocolUUID)
		}
		protocol, err := e.protocolStore.GetProtocolByUUID(ctx, id)
		if err != nil {
			return nil, err
		}
		protocolID = &protocol.ID
	}

	log := &model.ExperimentLog{
		Title:          req.Title,
		ExperimentType: req.ExperimentType,
		Date:           date,
		ProtocolID:     protocolID,
		Results:        req.Results,
		Observations:   req.Observations,
		DataFile:       req.DataFile,
		CreatedBy:      user.Username,
	}
	if err := e.logStore.CreateLog(ctx, log); err != nil {
		return nil, err
	}
	return &core.CreateLogResp{UUID: log.UUID.String()}, nil
}

func (e *explogImpl) Query(ctx context.Context, req *core.QueryLogReq) (*common.PageResp[*core.LogItem], error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	list, total, err := e.logStore.ListLogs(ctx, repo.ExperimentLogQuery{
		Search: req.Search,
		Type:   req.Type,
		Offset: req.Offset(),
		Limit:  req.Limit(),
	})
	if err != nil {
		return nil, err
	}

	items := utils.FilterSlice(list, func(m *model.ExperimentLog) (*core.LogItem, bool) {
		return &core.LogItem{
			UUID:           m.UUID.String(),
			Title:          m.Title,
			ExperimentType: m.ExperimentType,
			Date:           utils.FormatDate(m.Date),
			CreatedBy:      m.CreatedBy,
		}, true
	})

	return &common.PageResp[*core.LogItem]{
		List:     items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.Limit(),
	}, nil
}

func (e *explogImpl) Get(ctx context.Context, req *core.GetLogReq) (*core.LogDetail, error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	id, err := uuid.FromString(req.UUID)
	if err != nil {
		return nil, code.ParamErr.WithMsgf("invalid uuid: %s", req.UUID)
	}

	log, err := e.logStore.GetLogByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &core.LogDetail{
		UUID:           log.UUID.String(),
		Title:          log.Title,
		ExperimentType: log.ExperimentType,
		Date:           utils.FormatDate(log.Date),
		Results:        log.Results,
		Observations:   log.Observations,
		DataFile:       log.DataFile,
		CreatedBy:      log.CreatedBy,
		CreatedAt:      log.CreatedAt,
	}

	// The protocol link is weak; a missing protocol just leaves the
	// reference empty.
	if log.ProtocolID != nil {
		protocol, err := e.protocolStore.GetProtocolByID(ctx, *log.ProtocolID)
		switch {
		case err == nil:
			detail.Protocol = &core.ProtocolRef{
				UUID:  protocol.UUID.String(),
				Title: protocol.Title,
			}
		case !code.RecordNotFound.Is(err):
			logger.Warnf(ctx, "resolve protocol %d err: %+v", *log.ProtocolID, err)
		}
	}

	return detail, nil
}
