package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/middleware/redis"
)

// Session state lives in redis: one refresh entry per live session and a
// denylist entry per revoked access token. Without redis (local tooling,
// tests) tokens simply stay valid until they expire.
const (
	refreshKeyFmt = "labman:auth:refresh:%s"
	revokedKeyFmt = "labman:auth:revoked:%s"
)

func saveRefreshToken(ctx context.Context, jti, userUUID string, ttl time.Duration) error {
	rc := redis.GetClient()
	if rc == nil {
		return nil
	}
	if err := rc.Set(ctx, fmt.Sprintf(refreshKeyFmt, jti), userUUID, ttl).Err(); err != nil {
		logger.Errorf(ctx, "save refresh token err: %+v", err)
		return code.UnDefineErr.WithErr(err)
	}
	return nil
}

// ConsumeRefreshToken removes the session's refresh entry, failing when
// it was never issued, already rotated, or revoked.
func ConsumeRefreshToken(ctx context.Context, jti string) error {
	rc := redis.GetClient()
	if rc == nil {
		return nil
	}
	n, err := rc.Del(ctx, fmt.Sprintf(refreshKeyFmt, jti)).Result()
	if err != nil {
		logger.Errorf(ctx, "consume refresh token err: %+v", err)
		return code.UnDefineErr.WithErr(err)
	}
	if n == 0 {
		return code.InvalidToken
	}
	return nil
}

// RevokeSession denylists the session's access token for its remaining
// lifetime and drops the refresh entry.
func RevokeSession(ctx context.Context, claims *Claims) error {
	rc := redis.GetClient()
	if rc == nil {
		return nil
	}
	remaining := time.Minute
	if claims.ExpiresAt != nil {
		if d := time.Until(claims.ExpiresAt.Time); d > remaining {
			remaining = d
		}
	}
	if err := rc.Set(ctx, fmt.Sprintf(revokedKeyFmt, claims.ID), 1, remaining).Err(); err != nil {
		logger.Errorf(ctx, "revoke session err: %+v", err)
		return code.UnDefineErr.WithErr(err)
	}
	rc.Del(ctx, fmt.Sprintf(refreshKeyFmt, claims.ID))
	return nil
}

func isRevoked(ctx context.Context, jti string) bool {
	rc := redis.GetClient()
	if rc == nil {
		return false
	}
	n, err := rc.Exists(ctx, fmt.Sprintf(revokedKeyFmt, jti)).Result()
	if err != nil {
		logger.Warnf(ctx, "check revoked token err: %+v", err)
		return false
	}
	return n > 0
}
