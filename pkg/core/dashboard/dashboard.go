package dashboard

import "context"

type Service interface {
	// Overview gathers today's tasks and the latest activity in one shot.
	Overview(ctx context.Context) (*OverviewResp, error)
}
