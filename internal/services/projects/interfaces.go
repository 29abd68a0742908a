package projects

import (
	"context"

	"github.com/structech/survey-api/internal/models"
)

// ListFilter narrows and pages the project listing. MemberID, when set,
// restricts results to projects the user is a member of.
type ListFilter struct {
	Search    string
	MemberID  *uint
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Page is one page of projects plus paging metadata.
type Page struct {
	Items    []models.Project `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// UpdatePatch carries the mutable project fields. Nil fields are left
// untouched.
type UpdatePatch struct {
	Name        *string
	ClientName  *string
	Location    *string
	Description *string
	DesignImage *string
}

// Empty reports whether the patch changes nothing.
func (p UpdatePatch) Empty() bool {
	return p.Name == nil && p.ClientName == nil && p.Location == nil &&
		p.Description == nil && p.DesignImage == nil
}

// Repository defines the data access layer for projects and memberships
type Repository interface {
	ListProjects(ctx context.Context, filter ListFilter) ([]models.Project, int64, error)
	GetProjectByID(ctx context.Context, id uint) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id uint) error
	ListMembers(ctx context.Context, projectID uint) ([]models.User, error)
	AddMember(ctx context.Context, projectID, userID uint) error
	RemoveMember(ctx context.Context, projectID, userID uint) error
	IsMember(ctx context.Context, projectID, userID uint) (bool, error)
}

// Service defines the business logic layer for projects
type Service interface {
	ListProjects(ctx context.Context, filter ListFilter) (*Page, error)
	GetProjectByID(ctx context.Context, id uint) (*models.Project, error)
	CreateProject(ctx context.Context, name, clientName string, location, description, designImage *string) (*models.Project, error)
	UpdateProject(ctx context.Context, id uint, patch UpdatePatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id uint) error
	ListMembers(ctx context.Context, projectID uint) ([]models.User, error)
	AddMember(ctx context.Context, projectID, userID uint) error
	RemoveMember(ctx context.Context, projectID, userID uint) error
	IsMember(ctx context.Context, projectID, userID uint) (bool, error)
}
