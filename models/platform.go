package models

import (
	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Code        string `gorm:"uniqueIndex;size:32"`
	Title       string
	Description string
	CreatedByID uint
}

// Material is upload metadata only; file bytes live in external storage
// under StorageKey.
type Material struct {
	gorm.Model
	CourseID   uint
	UploaderID uint
	Title      string
	FileName   string
	StorageKey string
	SizeBytes  int64
}

type News struct {
	gorm.Model
	AuthorID uint
	Title    string
	Body     string
}
