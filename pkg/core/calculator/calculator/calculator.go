package calculator

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/calculator"
	"github.com/labworks/labman/pkg/core/chem"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	repoCalc "github.com/labworks/labman/pkg/repo/calcrecord"
	"github.com/labworks/labman/pkg/repo/model"
	"github.com/labworks/labman/pkg/utils"
)

type calcImpl struct {
	recordStore repo.CalcRecordRepo
}

func New() core.Service {
	return &calcImpl{recordStore: repoCalc.NewCalcRecordRepo()}
}

func (c *calcImpl) SimpleDilution(ctx context.Context, req *core.SimpleDilutionReq) (*core.SimpleDilutionResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	res, err := chem.SimpleDilution(req.StockConcentration, req.FinalVolume, req.FinalConcentration)
	if err != nil {
		return nil, mapChemErr(err)
	}

	resp := &core.SimpleDilutionResp{DilutionResult: *res}
	c.record(ctx, model.CalcSimpleDilution, user.Username, req, resp)
	return resp, nil
}

func (c *calcImpl) SerialDilution(ctx context.Context, req *core.SerialDilutionReq) (*core.SerialDilutionResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	steps, series, err := chem.SerialDilution(req.InitialConcentration, req.DilutionFactor, req.Steps, req.FinalVolume)
	if err != nil {
		return nil, mapChemErr(err)
	}

	resp := &core.SerialDilutionResp{Steps: steps, Series: series}
	c.record(ctx, model.CalcSerialDilution, user.Username, req, resp)
	return resp, nil
}

func (c *calcImpl) Solution(ctx context.Context, req *core.SolutionReq) (*core.SolutionResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	resp := &core.SolutionResp{Method: req.Method}
	var kind model.CalcKind

	switch req.Method {
	case core.MethodSolid, core.MethodMolarity:
		kind = model.CalcSolutionSolid
		if req.Method == core.MethodMolarity {
			kind = model.CalcSolutionMolarity
		}
		res, err := chem.SolutionFromSolid(req.Molarity, req.VolumeL, req.FormulaWeight, req.PurityPct)
		if err != nil {
			return nil, mapChemErr(err)
		}
		resp.Solid = res
	case core.MethodStock:
		kind = model.CalcSolutionStock
		res, err := chem.SolutionFromStock(req.StockMolarity, req.TargetMolarity, req.TargetVolumeL, req.StockDensity)
		if err != nil {
			return nil, mapChemErr(err)
		}
		resp.Stock = res
	default:
		return nil, code.ParamErr.WithMsgf("unknown preparation method: %s", req.Method)
	}

	c.record(ctx, kind, user.Username, req, resp)
	return resp, nil
}

func (c *calcImpl) Buffer(ctx context.Context, req *core.BufferReq) (*core.BufferResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	var (
		kind model.CalcKind
		spec chem.BufferSpec
	)
	switch req.BufferType {
	case core.BufferTris:
		kind = model.CalcBufferTris
		spec = chem.TrisSpec{
			PH:            req.PH,
			Concentration: req.Concentration,
			VolumeL:       req.VolumeL,
			AddNaCl:       req.AddNaCl,
			SaltConc:      req.SaltConc,
		}
	case core.BufferPhosphate:
		kind = model.CalcBufferPhosphate
		spec = chem.PhosphateSpec{
			PH:            req.PH,
			Concentration: req.Concentration,
			VolumeL:       req.VolumeL,
			AddNaCl:       req.AddNaCl,
			AddKCl:        req.AddKCl,
		}
	case core.BufferCustom:
		kind = model.CalcBufferCustom
		spec = chem.CustomSpec{
			Components:         req.Components,
			PH:                 req.PH,
			TotalConcentration: req.TotalConcentration,
			VolumeL:            req.VolumeL,
		}
	case core.BufferAcetate, core.BufferHEPES, core.BufferMOPS:
		return nil, code.BufferUnsupportedErr.WithMsgf("%s buffers are not supported yet", req.BufferType)
	default:
		return nil, code.ParamErr.WithMsgf("unknown buffer type: %s", req.BufferType)
	}

	recipe, err := chem.ComputeBuffer(spec)
	if err != nil {
		return nil, mapChemErr(err)
	}

	resp := &core.BufferResp{Recipe: *recipe}
	c.record(ctx, kind, user.Username, req, resp)
	return resp, nil
}

func (c *calcImpl) History(ctx context.Context, req *core.HistoryReq) (*common.PageResp[*core.HistoryItem], error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	list, total, err := c.recordStore.ListRecords(ctx, user.Username, req.Offset(), req.Limit())
	if err != nil {
		return nil, err
	}

	items := utils.FilterSlice(list, func(rec *model.CalcRecord) (*core.HistoryItem, bool) {
		return &core.HistoryItem{
			UUID:      rec.UUID,
			Kind:      rec.Kind,
			Inputs:    rec.Inputs,
			Outputs:   rec.Outputs,
			CreatedAt: rec.CreatedAt,
		}, true
	})

	return &common.PageResp[*core.HistoryItem]{
		List:     items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.Limit(),
	}, nil
}

// record keeps a successful run for the history view. A storage failure
// must not fail the calculation itself.
func (c *calcImpl) record(ctx context.Context, kind model.CalcKind, username string, in, out any) {
	inputs, err := json.Marshal(in)
	if err != nil {
		logger.Warnf(ctx, "marshal calc inputs err: %+v", err)
		return
	}
	outputs, err := json.Marshal(out)
	if err != nil {
		logger.Warnf(ctx, "marshal calc outputs err: %+v", err)
		return
	}

	rec := &model.CalcRecord{
		Kind:      kind,
		Inputs:    datatypes.JSON(inputs),
		Outputs:   datatypes.JSON(outputs),
		CreatedBy: username,
	}
	if err := c.recordStore.CreateRecord(ctx, rec); err != nil {
		logger.Warnf(ctx, "record calculation err: %+v", err)
	}
}

func mapChemErr(err error) error {
	var ve *chem.ValidationError
	if errors.As(err, &ve) {
		return code.CalcInvalidInputErr.WithMsg(ve.Error())
	}
	var pe *chem.ParseError
	if errors.As(err, &pe) {
		return code.BufferComponentParseErr.WithMsg(pe.Error())
	}
	var ue *chem.UnsupportedError
	if errors.As(err, &ue) {
		return code.BufferUnsupportedErr.WithMsg(ue.Error())
	}
	return code.UnDefineErr.WithErr(err)
}
