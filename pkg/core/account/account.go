package account

import (
	"context"
)

type Service interface {
	// Register creates a user, rejecting duplicate usernames.
	Register(ctx context.Context, req *RegisterReq) (*RegisterResp, error)
	// Login verifies credentials and issues an access/refresh pair.
	Login(ctx context.Context, req *LoginReq) (*LoginResp, error)
	// Refresh rotates a refresh token into a fresh pair, revoking the
	// old session.
	Refresh(ctx context.Context, req *RefreshReq) (*LoginResp, error)
	// Logout revokes the session presented with the request.
	Logout(ctx context.Context) error
	// Me returns the current user's profile.
	Me(ctx context.Context) (*UserProfile, error)
}
