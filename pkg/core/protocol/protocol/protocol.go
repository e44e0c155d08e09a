package protocol

import (
	"context"
	"strings"

	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	core "github.com/labworks/labman/pkg/core/protocol"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
	repoProtocol "github.com/labworks/labman/pkg/repo/protocol"
	"github.com/labworks/labman/pkg/utils"
)

type protocolImpl struct {
	protocolStore repo.ProtocolRepo
}

func New() core.Service {
	return &protocolImpl{protocolStore: repoProtocol.NewProtocolRepo()}
}

func (p *protocolImpl) Create(ctx context.Context, req *core.CreateProtocolReq) (*core.CreateProtocolResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	if len(splitSteps(req.Steps)) == 0 {
		return nil, code.ParamErr.WithMsg("steps must contain at least one non-empty line")
	}

	protocol := &model.Protocol{
		Title:        req.Title,
		ProtocolType: req.ProtocolType,
		Description:  req.Description,
		Steps:        req.Steps,
		CreatedBy:    user.Username,
	}
	if err := p.protocolStore.CreateProtocol(ctx, protocol); err != nil {
		return nil, err
	}
	return &core.CreateProtocolResp{UUID: protocol.UUID.String()}, nil
}

func (p *protocolImpl) Query(ctx context.Context, req *core.QueryProtocolReq) (*common.PageResp[*core.ProtocolItem], error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	list, total, err := p.protocolStore.ListProtocols(ctx, repo.ProtocolQuery{
		Search: req.Search,
		Type:   req.Type,
		Offset: req.Offset(),
		Limit:  req.Limit(),
	})
	if err != nil {
		return nil, err
	}

	items := utils.FilterSlice(list, func(m *model.Protocol) (*core.ProtocolItem, bool) {
		return &core.ProtocolItem{
			UUID:         m.UUID.String(),
			Title:        m.Title,
			ProtocolType: m.ProtocolType,
			Description:  m.Description,
			StepCount:    len(splitSteps(m.Steps)),
			CreatedBy:    m.CreatedBy,
			UpdatedAt:    m.UpdatedAt,
		}, true
	})

	return &common.PageResp[*core.ProtocolItem]{
		List:     items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.Limit(),
	}, nil
}

func (p *protocolImpl) Get(ctx context.Context, req *core.GetProtocolReq) (*core.ProtocolDetail, error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	id, err := uuid.FromString(req.UUID)
	if err != nil {
		return nil, code.ParamErr.WithMsgf("invalid uuid: %s", req.UUID)
	}

	protocol, err := p.protocolStore.GetProtocolByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &core.ProtocolDetail{
		UUID:         protocol.UUID.String(),
		Title:        protocol.Title,
		ProtocolType: protocol.ProtocolType,
		Description:  protocol.Description,
		Steps:        splitSteps(protocol.Steps),
		CreatedBy:    protocol.CreatedBy,
		CreatedAt:    protocol.CreatedAt,
		UpdatedAt:    protocol.UpdatedAt,
	}, nil
}

// splitSteps turns the stored blob into display lines, dropping blanks.
func splitSteps(steps string) []string {
	lines := strings.Split(steps, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
