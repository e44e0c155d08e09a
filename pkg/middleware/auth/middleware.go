package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo/model"
	"github.com/labworks/labman/pkg/utils"
)

var USERKEY = "AUTH_USER_KEY"

// Auth guards a route group. The access token is read from the cookie,
// the query string, or the Authorization header, in that order.
func Auth() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		token := requestToken(ctx)
		if token == "" {
			abortUnauthorized(ctx, code.UnLogin)
			return
		}

		if fields := strings.Fields(token); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			token = fields[1]
		} else if len(fields) != 1 {
			abortUnauthorized(ctx, code.LoginFormatErr)
			return
		}

		claims, err := ParseToken(token)
		if err != nil {
			logger.Warnf(ctx, "token validation failed: %v", err)
			abortUnauthorized(ctx, code.InvalidToken)
			return
		}
		if claims.TokenUse != TokenAccess || isRevoked(ctx, claims.ID) {
			abortUnauthorized(ctx, code.InvalidToken)
			return
		}

		userUUID, err := uuid.FromString(claims.UserUUID)
		if err != nil {
			abortUnauthorized(ctx, code.InvalidToken)
			return
		}

		ctx.Set(USERKEY, &model.UserInfo{
			ID:       claims.UserID,
			UUID:     userUUID,
			Username: claims.Username,
			Role:     model.Role(claims.Role),
		})
		ctx.Next()
	}
}

func requestToken(ctx *gin.Context) string {
	cookie, _ := ctx.Cookie("access_token")
	authHeader := ctx.GetHeader("Authorization")
	queryToken := ctx.Query("access_token")
	return utils.Or(cookie, queryToken, authHeader)
}

func abortUnauthorized(ctx *gin.Context, c *code.Code) {
	ctx.JSON(http.StatusUnauthorized, &common.Resp{
		Code:  c,
		Error: &common.Error{Msg: c.String()},
	})
	ctx.Abort()
}

// CurrentClaims re-parses the request token; logout uses it to revoke
// the exact session presented.
func CurrentClaims(ctx *gin.Context) (*Claims, error) {
	token := requestToken(ctx)
	if fields := strings.Fields(token); len(fields) == 2 {
		token = fields[1]
	}
	if token == "" {
		return nil, code.UnLogin
	}
	return ParseToken(token)
}

func GetCurrentUser(ctx context.Context) *model.UserInfo {
	gCtx, ok := ctx.(*gin.Context)
	if !ok {
		return nil
	}
	user, exists := gCtx.Get(USERKEY)
	if !exists {
		return nil
	}
	info, ok := user.(*model.UserInfo)
	if !ok {
		return nil
	}
	return info
}
