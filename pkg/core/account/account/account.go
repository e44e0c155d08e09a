package account

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	core "github.com/labworks/labman/pkg/core/account"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
	repoUser "github.com/labworks/labman/pkg/repo/user"
	"github.com/labworks/labman/pkg/utils"
)

type accountImpl struct {
	userStore repo.UserRepo
}

func New() core.Service {
	return &accountImpl{userStore: repoUser.NewUserRepo()}
}

func (a *accountImpl) Register(ctx context.Context, req *core.RegisterReq) (*core.RegisterResp, error) {
	role := req.Role
	if role == "" {
		role = model.RoleResearcher
	}
	if !role.Valid() {
		return nil, code.ParamErr.WithMsgf("unknown role: %s", role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Errorf(ctx, "hash password err: %+v", err)
		return nil, code.UnDefineErr.WithErr(err)
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         role,
	}
	if err := a.userStore.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return &core.RegisterResp{UUID: user.UUID}, nil
}

func (a *accountImpl) Login(ctx context.Context, req *core.LoginReq) (*core.LoginResp, error) {
	user, err := a.userStore.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if code.RecordNotFound.Is(err) {
			return nil, code.UserOrPassErr
		}
		return nil, err
	}
	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, code.UserOrPassErr
	}

	pair, err := auth.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &core.LoginResp{TokenPair: *pair, User: profile(user)}, nil
}

// Refresh rotates the session: the presented refresh token is consumed,
// its paired access token denylisted, and a new pair issued. A second use
// of the same refresh token fails the consume step.
func (a *accountImpl) Refresh(ctx context.Context, req *core.RefreshReq) (*core.LoginResp, error) {
	claims, err := auth.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse != auth.TokenRefresh {
		return nil, code.InvalidToken
	}
	if err := auth.ConsumeRefreshToken(ctx, claims.ID); err != nil {
		return nil, err
	}
	if err := auth.RevokeSession(ctx, claims); err != nil {
		logger.Warnf(ctx, "revoke rotated session err: %+v", err)
	}

	userUUID, err := uuid.FromString(claims.UserUUID)
	if err != nil {
		return nil, code.InvalidToken
	}
	user, err := a.userStore.GetUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	pair, err := auth.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &core.LoginResp{TokenPair: *pair, User: profile(user)}, nil
}

func (a *accountImpl) Logout(ctx context.Context) error {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		return code.UnLogin
	}
	claims, err := auth.CurrentClaims(ginCtx)
	if err != nil {
		return err
	}
	return auth.RevokeSession(ctx, claims)
}

func (a *accountImpl) Me(ctx context.Context) (*core.UserProfile, error) {
	current := auth.GetCurrentUser(ctx)
	if current == nil {
		return nil, code.UnLogin
	}
	user, err := a.userStore.GetUserByUUID(ctx, current.UUID)
	if err != nil {
		return nil, err
	}
	return profile(user), nil
}

func profile(user *model.User) *core.UserProfile {
	return &core.UserProfile{
		UUID:      user.UUID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
