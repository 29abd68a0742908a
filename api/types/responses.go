package types

import (
	"time"

	"github.com/structech/survey-api/internal/models"
)

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// DeletedResponse reports how many rows a bulk delete removed
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// UserResponse is the public view of a user, without credential fields
type UserResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Name      *string    `json:"name"`
	Role      string     `json:"role"`
	Status    bool       `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewUserResponse maps a user model to its public view
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Status:    user.Status,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserResponses maps a slice of user models to their public views
func NewUserResponses(list []models.User) []UserResponse {
	out := make([]UserResponse, len(list))
	for i := range list {
		out[i] = NewUserResponse(&list[i])
	}
	return out
}

// UserPage is one page of users plus paging metadata
type UserPage struct {
	Items    []UserResponse `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// LoginResponse carries the authenticated user and their tokens
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
}
