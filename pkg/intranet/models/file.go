package models

import "time"

// File is a stored library document. FilePath, FileSize and MimeType are
// assigned by the upload path and never user-editable afterwards.
type File struct {
	Id          string    `json:"id" gorm:"column:id;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	FilePath    string    `json:"filePath" gorm:"not null"`
	FileSize    int64     `json:"fileSize"`
	MimeType    string    `json:"mimeType"`
	CategoryID  string    `json:"categoryId" gorm:"column:category_id;not null"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FileUpdate deliberately has no path/size/mime fields: only metadata moves.
type FileUpdate struct {
	Id          string  `path:"id" json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *string `json:"categoryId"`
}

type FileParams struct {
	Id string `path:"id"`
}
