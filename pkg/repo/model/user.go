package model

import "github.com/labworks/labman/pkg/common/uuid"

type Role string

const (
	RoleResearcher Role = "Researcher"
	RoleTechnician Role = "Technician"
	RoleStudent    Role = "Student"
	RolePI         Role = "PI"
)

func (r Role) Valid() bool {
	switch r {
	case RoleResearcher, RoleTechnician, RoleStudent, RolePI:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Username     string `gorm:"size:64;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
	FullName     string `gorm:"size:128" json:"full_name"`
	Email        string `gorm:"size:128" json:"email"`
	Role         Role   `gorm:"size:32;not null;default:Researcher" json:"role"`
}

// UserInfo is the authenticated identity carried on the request context.
type UserInfo struct {
	ID       int64     `json:"id"`
	UUID     uuid.UUID `json:"uuid"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}
