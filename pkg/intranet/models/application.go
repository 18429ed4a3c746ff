package models

import "time"

// DefaultColor is the accent colour assigned when a form leaves it empty.
const DefaultColor = "#0ea5e9"

// Application is a tile on the intranet landing page linking to an internal
// or external tool.
type Application struct {
	Id          string    `json:"id" gorm:"column:id;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Url         string    `json:"url" gorm:"not null"`
	SsoEnabled  bool      `json:"ssoEnabled"`
	Icon        string    `json:"icon,omitempty"`
	Category    string    `json:"category,omitempty"`
	Color       string    `json:"color"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ApplicationPost struct {
	Name        string `json:"name" binding:"required"`
	Url         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
	SsoEnabled  *bool  `json:"ssoEnabled"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	SortOrder   *int   `json:"sortOrder"`
}

// ApplicationUpdate carries a partial update; nil fields keep their value.
type ApplicationUpdate struct {
	Id          string  `path:"id" json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Url         *string `json:"url"`
	SsoEnabled  *bool   `json:"ssoEnabled"`
	Icon        *string `json:"icon"`
	Category    *string `json:"category"`
	Color       *string `json:"color"`
	SortOrder   *int    `json:"sortOrder"`
}

type ApplicationParams struct {
	Id string `path:"id"`
}
