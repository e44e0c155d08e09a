package calculator

import (
	"context"

	"github.com/labworks/labman/pkg/common"
)

type Service interface {
	// SimpleDilution solves C1V1 = C2V2 for the stock draw.
	SimpleDilution(ctx context.Context, req *SimpleDilutionReq) (*SimpleDilutionResp, error)
	// SerialDilution builds a stepwise dilution series with a plot.
	SerialDilution(ctx context.Context, req *SerialDilutionReq) (*SerialDilutionResp, error)
	// Solution computes a preparation from solid, stock or target molarity.
	Solution(ctx context.Context, req *SolutionReq) (*SolutionResp, error)
	// Buffer computes a recipe for the requested buffer type.
	Buffer(ctx context.Context, req *BufferReq) (*BufferResp, error)
	// History pages through the current user's past runs, newest first.
	History(ctx context.Context, req *HistoryReq) (*common.PageResp[*HistoryItem], error)
}
