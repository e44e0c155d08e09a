package auth_test

import (
	"context"
	"testing"

	"github.com/labworks/labman/internal/config"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/repo/model"
)

func testUser() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: 7, UUID: uuid.NewV4()},
		Username:  "marie",
		Role:      model.RoleResearcher,
	}
}

func TestIssueAndParseTokenPair(t *testing.T) {
	user := testUser()
	pair, err := auth.IssueTokenPair(context.Background(), user)
	if err != nil {
		t.Fatalf("IssueTokenPair err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be signed")
	}
	if pair.ExpiresIn <= 0 {
		t.Fatalf("ExpiresIn = %d, want positive", pair.ExpiresIn)
	}

	access, err := auth.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken(access) err: %v", err)
	}
	if access.TokenUse != auth.TokenAccess {
		t.Fatalf("access token use = %q", access.TokenUse)
	}
	if access.UserID != user.ID || access.Username != user.Username {
		t.Fatalf("claims identity = %d/%s, want %d/%s",
			access.UserID, access.Username, user.ID, user.Username)
	}
	if access.UserUUID != user.UUID.String() {
		t.Fatalf("claims uuid = %s, want %s", access.UserUUID, user.UUID)
	}

	refresh, err := auth.ParseToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseToken(refresh) err: %v", err)
	}
	if refresh.TokenUse != auth.TokenRefresh {
		t.Fatalf("refresh token use = %q", refresh.TokenUse)
	}
	if refresh.ID != access.ID {
		t.Fatal("access and refresh tokens must share one session id")
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	pair, err := auth.IssueTokenPair(context.Background(), testUser())
	if err != nil {
		t.Fatalf("IssueTokenPair err: %v", err)
	}

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	if _, err := auth.ParseToken(tampered); !code.InvalidToken.Is(err) {
		t.Fatalf("tampered token err = %v, want InvalidToken", err)
	}
	if _, err := auth.ParseToken("not.a.jwt"); !code.InvalidToken.Is(err) {
		t.Fatalf("garbage token err = %v, want InvalidToken", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	conf := config.Global()
	orig := conf.Auth.AccessTTLMin
	conf.Auth.AccessTTLMin = -1
	defer func() { conf.Auth.AccessTTLMin = orig }()

	pair, err := auth.IssueTokenPair(context.Background(), testUser())
	if err != nil {
		t.Fatalf("IssueTokenPair err: %v", err)
	}
	if _, err := auth.ParseToken(pair.AccessToken); !code.InvalidToken.Is(err) {
		t.Fatalf("expired token err = %v, want InvalidToken", err)
	}
}
