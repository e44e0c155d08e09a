package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labworks/labman/internal/config"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/repo/model"
)

type TokenUse string

const (
	TokenAccess  TokenUse = "access"
	TokenRefresh TokenUse = "refresh"
)

// Claims carries the authenticated identity. Both tokens of a pair share
// one ID so a session can be revoked and rotated as a unit.
type Claims struct {
	UserID   int64    `json:"user_id"`
	UserUUID string   `json:"uid"`
	Username string   `json:"username"`
	Role     string   `json:"role"`
	TokenUse TokenUse `json:"use"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// IssueTokenPair signs an access/refresh pair and registers the refresh
// half in the session store.
func IssueTokenPair(ctx context.Context, user *model.User) (*TokenPair, error) {
	conf := config.Global().Auth
	now := time.Now()
	accessTTL := time.Duration(conf.AccessTTLMin) * time.Minute
	refreshTTL := time.Duration(conf.RefreshTTLHour) * time.Hour
	jti := uuid.NewV4().String()

	access, err := signToken(user, TokenAccess, jti, now, accessTTL)
	if err != nil {
		return nil, code.UnDefineErr.WithErr(err)
	}
	refresh, err := signToken(user, TokenRefresh, jti, now, refreshTTL)
	if err != nil {
		return nil, code.UnDefineErr.WithErr(err)
	}
	if err := saveRefreshToken(ctx, jti, user.UUID.String(), refreshTTL); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func signToken(user *model.User, use TokenUse, jti string, now time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		UserUUID: user.UUID.String(),
		Username: user.Username,
		Role:     string(user.Role),
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   user.UUID.String(),
			Issuer:    "labman",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Global().Auth.JWTSecret))
}

// ParseToken validates signature and expiry; callers still check the
// token use and revocation state.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Global().Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, code.InvalidToken
	}
	return claims, nil
}
