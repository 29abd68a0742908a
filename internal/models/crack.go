package models

import "gorm.io/gorm"

// Block is a named sub-area of a project used to group crack records,
// e.g. a structural section. Created lazily during import when a name is
// first seen; unique per (project, name).
type Block struct {
	gorm.Model
	ProjectID uint    `json:"project_id" gorm:"not null;uniqueIndex:idx_project_block_name"`
	Name      string  `json:"name" gorm:"not null;uniqueIndex:idx_project_block_name"`
	Project   Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for the Block model
func (Block) TableName() string {
	return "blocks"
}

// CrackRecord is one imported defect-survey row. Chainage markers are free
// text, not parsed distances; the literal cell value 0 is kept as "0".
// StartTime/EndTime are canonical HH:MM:SS strings and are either both set
// or both null, with start <= end.
type CrackRecord struct {
	gorm.Model
	ProjectID     uint     `json:"project_id" gorm:"not null;index"`
	BlockID       uint     `json:"block_id" gorm:"not null;index"`
	ChainageFrom  *string  `json:"chainage_from"`
	ChainageTo    *string  `json:"chainage_to"`
	RL            *float64 `json:"rl" gorm:"column:rl"` // reduced level
	DefectType    *string  `json:"defect_type" gorm:"index"`
	LengthMM      *float64 `json:"length_mm"`
	WidthMM       *float64 `json:"width_mm"`
	HeightMM      *float64 `json:"height_mm"`
	VideoFileName *string  `json:"video_file_name"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
	Block   Block   `json:"block,omitempty" gorm:"foreignKey:BlockID"`
}

// TableName returns the table name for the CrackRecord model
func (CrackRecord) TableName() string {
	return "crack_records"
}

// DesignMap links a rectangle on the project design drawing to one crack
// record. Coordinates are image pixels. A crack has at most one map.
type DesignMap struct {
	gorm.Model
	ProjectID     uint    `json:"project_id" gorm:"not null;index"`
	CrackRecordID uint    `json:"crack_record_id" gorm:"not null;uniqueIndex"`
	X             float64 `json:"x" gorm:"not null"`
	Y             float64 `json:"y" gorm:"not null"`
	Width         float64 `json:"width" gorm:"not null"`
	Height        float64 `json:"height" gorm:"not null"`

	Project     Project     `json:"-" gorm:"foreignKey:ProjectID"`
	CrackRecord CrackRecord `json:"crack_record,omitempty" gorm:"foreignKey:CrackRecordID"`
}

// TableName returns the table name for the DesignMap model
func (DesignMap) TableName() string {
	return "design_maps"
}
