package persistence

import "time"

// FolderModel represents a folder in the database.
type FolderModel struct {
	ID                   int64     `gorm:"column:id;primaryKey;autoIncrement"`
	GUID                 string    `gorm:"column:guid;size:36;not null;uniqueIndex"`
	QualifiedName        string    `gorm:"column:qualified_name;not null;index"`
	DisplayName          string    `gorm:"column:display_name;not null;index"`
	Description          string    `gorm:"column:description;type:text"`
	PathName             string    `gorm:"column:path_name;not null;uniqueIndex"`
	ParentGUID           string    `gorm:"column:parent_guid;size:36;index"`
	Status               string    `gorm:"column:status;size:32;not null;index"`
	AdditionalProperties string    `gorm:"column:additional_properties;type:text"`
	Version              int64     `gorm:"column:version;not null;default:1"`
	CreatedAt            time.Time `gorm:"column:created_at;not null"`
	UpdatedAt            time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (FolderModel) TableName() string {
	return "folders"
}
