package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/structech/survey-api/internal/models"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"name":       "name",
	"clientName": "client_name",
	"location":   "location",
}

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new project repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListProjects retrieves a filtered, paginated set of projects plus the total
// matching count.
func (r *RepositoryImpl) ListProjects(ctx context.Context, filter ListFilter) ([]models.Project, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Project{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR client_name LIKE ? OR location LIKE ?", pattern, pattern, pattern)
	}
	if filter.MemberID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM project_users WHERE project_users.project_id = projects.id AND project_users.user_id = ?)",
			*filter.MemberID,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting projects: %w", err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if filter.SortOrder == "desc" {
		direction = "DESC"
	}

	offset := (filter.Page - 1) * filter.PageSize
	var list []models.Project
	if err := query.
		Order(column + " " + direction).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("listing projects: %w", err)
	}

	return list, total, nil
}

// GetProjectByID retrieves a project by its ID
func (r *RepositoryImpl) GetProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return &project, nil
}

// CreateProject persists a new project
func (r *RepositoryImpl) CreateProject(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

// UpdateProject persists changes to an existing project
func (r *RepositoryImpl) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

// DeleteProject removes a project together with its blocks, crack records,
// design maps, file metadata and memberships in one transaction.
func (r *RepositoryImpl) DeleteProject(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children first, leaves up to the root, so the foreign keys on
		// crack_record_id and project_id are never left pointing at a
		// deleted row mid-transaction.
		if err := tx.Unscoped().
			Where("crack_record_id IN (SELECT id FROM crack_records WHERE project_id = ?)", id).
			Delete(&models.DesignMap{}).Error; err != nil {
			return fmt.Errorf("deleting project design maps: %w", err)
		}
		for _, model := range []any{
			&models.CrackRecord{},
			&models.Block{},
			&models.ProjectFile{},
			&models.ProjectUser{},
		} {
			if err := tx.Unscoped().Where("project_id = ?", id).Delete(model).Error; err != nil {
				return fmt.Errorf("deleting project children: %w", err)
			}
		}

		result := tx.Unscoped().Delete(&models.Project{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

// ListMembers returns the users attached to a project, oldest membership
// first.
func (r *RepositoryImpl) ListMembers(ctx context.Context, projectID uint) ([]models.User, error) {
	var members []models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN project_users ON project_users.user_id = users.id").
		Where("project_users.project_id = ?", projectID).
		Order("project_users.id ASC").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return members, nil
}

// AddMember attaches a user to a project, mapping unique violations to
// ErrDuplicateMember
func (r *RepositoryImpl) AddMember(ctx context.Context, projectID, userID uint) error {
	membership := &models.ProjectUser{ProjectID: projectID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateMember
		}
		return fmt.Errorf("adding member: %w", err)
	}
	return nil
}

// RemoveMember detaches a user from a project
func (r *RepositoryImpl) RemoveMember(ctx context.Context, projectID, userID uint) error {
	// Hard delete so the membership can be recreated later
	result := r.db.WithContext(ctx).Unscoped().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectUser{})
	if result.Error != nil {
		return fmt.Errorf("removing member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// IsMember reports whether the user belongs to the project
func (r *RepositoryImpl) IsMember(ctx context.Context, projectID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProjectUser{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}
	return count > 0, nil
}
