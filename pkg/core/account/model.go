package account

import (
	"time"

	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/repo/model"
)

type RegisterReq struct {
	Username string     `json:"username" binding:"required,min=3,max=64"`
	Password string     `json:"password" binding:"required,min=8,max=72"`
	FullName string     `json:"full_name" binding:"max=128"`
	Email    string     `json:"email" binding:"omitempty,email"`
	Role     model.Role `json:"role"`
}

type RegisterResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	auth.TokenPair
	User *UserProfile `json:"user"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UserProfile struct {
	UUID      uuid.UUID  `json:"uuid"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}
