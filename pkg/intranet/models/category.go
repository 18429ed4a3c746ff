package models

import "time"

// Category groups files in the library. Deleting a non-empty category is a
// deliberate cascade, never an accident; see CategoryDeleteParams.
type Category struct {
	Id        string    `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon,omitempty"`
	Files     []File    `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategorySummary is the list view: the category plus its dependent file
// count, so admins see what a delete would take with it.
type CategorySummary struct {
	Category
	FileCount int64 `json:"fileCount"`
}

type CategoryPost struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type CategoryUpdate struct {
	Id    string  `path:"id" json:"-"`
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

type CategoryParams struct {
	Id string `path:"id"`
}

// CategoryDeleteParams requires the caller to spell out cascade intent;
// the server refuses to delete a non-empty category without it.
type CategoryDeleteParams struct {
	Id      string `path:"id"`
	Cascade bool   `query:"cascade"`
}
