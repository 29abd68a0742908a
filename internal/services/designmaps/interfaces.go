package designmaps

import (
	"context"

	"github.com/structech/survey-api/internal/models"
)

// UpdatePatch carries the mutable fields of a design map. Nil fields are
// left untouched.
type UpdatePatch struct {
	X             *float64
	Y             *float64
	Width         *float64
	Height        *float64
	CrackRecordID *uint
}

// Empty reports whether the patch changes nothing
func (p UpdatePatch) Empty() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil && p.CrackRecordID == nil
}

// CrackStore is the slice of the crack repository the map service needs to
// validate associations.
type CrackStore interface {
	GetCrackByID(ctx context.Context, id uint) (*models.CrackRecord, error)
}

// Repository defines the interface for design map data access
type Repository interface {
	CreateDesignMap(ctx context.Context, designMap *models.DesignMap) error
	GetDesignMapByID(ctx context.Context, id uint) (*models.DesignMap, error)
	ListDesignMaps(ctx context.Context, projectID uint, crackRecordID *uint) ([]models.DesignMap, error)
	UpdateDesignMap(ctx context.Context, designMap *models.DesignMap) error
	DeleteDesignMap(ctx context.Context, id uint) error
}

// Service defines the interface for design map business logic
type Service interface {
	ListDesignMaps(ctx context.Context, projectID uint, crackRecordID *uint) ([]models.DesignMap, error)
	GetDesignMapByID(ctx context.Context, id uint) (*models.DesignMap, error)

	// CreateDesignMap links a rectangle to a crack. The crack must belong to
	// the given project and must not be mapped already.
	CreateDesignMap(ctx context.Context, projectID, crackRecordID uint, x, y, width, height float64) (*models.DesignMap, error)

	// UpdateDesignMap repositions the rectangle and/or re-associates it to
	// another crack of the same project.
	UpdateDesignMap(ctx context.Context, id uint, patch UpdatePatch) (*models.DesignMap, error)

	DeleteDesignMap(ctx context.Context, id uint) error
}
