package types

import (
	"github.com/structech/survey-api/internal/database"
	"github.com/structech/survey-api/internal/services/auth"
	"github.com/structech/survey-api/internal/services/blocks"
	"github.com/structech/survey-api/internal/services/cracks"
	"github.com/structech/survey-api/internal/services/designmaps"
	"github.com/structech/survey-api/internal/services/files"
	"github.com/structech/survey-api/internal/services/projects"
	"github.com/structech/survey-api/internal/services/users"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	AuthService      auth.Service
	UserService      users.Service
	ProjectService   projects.Service
	FileService      files.Service
	FileStore        files.Store
	BlockService     blocks.Service
	CrackService     cracks.Service
	DesignMapService designmaps.Service
}
