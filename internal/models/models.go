package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values assignable to a user account.
const (
	RoleAdmin       = "admin"
	RoleUser        = "user"
	RoleProjectUser = "project_user"
)

// User represents an account that can sign in to the dashboard
type User struct {
	gorm.Model
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         *string    `json:"name"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"not null;default:user"`
	Status       bool       `json:"status" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`
}

// RefreshToken is a persisted refresh token issued at login
type RefreshToken struct {
	gorm.Model
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}

// Project represents a survey project
type Project struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null;index"`
	ClientName  string  `json:"client_name" gorm:"not null"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	// Stored filename of the design drawing under the uploads root
	DesignImage *string `json:"design_image"`

	Users  []ProjectUser `json:"users,omitempty" gorm:"foreignKey:ProjectID"`
	Files  []ProjectFile `json:"files,omitempty" gorm:"foreignKey:ProjectID"`
	Blocks []Block       `json:"blocks,omitempty" gorm:"foreignKey:ProjectID"`
}

// ProjectUser is a membership of an external user in a project
type ProjectUser struct {
	gorm.Model
	ProjectID uint    `json:"project_id" gorm:"not null;uniqueIndex:idx_project_member"`
	UserID    uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_project_member"`
	Project   Project `json:"-" gorm:"foreignKey:ProjectID"`
	User      User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// ProjectFile is a document attached to a project, stored on local disk
type ProjectFile struct {
	gorm.Model
	ProjectID    uint    `json:"project_id" gorm:"not null;index"`
	Title        string  `json:"title" gorm:"not null"`
	OriginalName string  `json:"original_name" gorm:"not null"`
	Filename     string  `json:"filename" gorm:"not null"` // stored name on disk
	MimeType     string  `json:"mime_type"`
	Size         int64   `json:"size"`
	UploadedByID uint    `json:"uploaded_by_id"`
	Project      Project `json:"-" gorm:"foreignKey:ProjectID"`
}
