package models

import "time"

// WikiArticle is a knowledge-base entry rendered as markdown.
type WikiArticle struct {
	Id          string    `json:"id" gorm:"column:id;primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content" gorm:"not null;type:text"`
	Icon        IconRef   `json:"icon" gorm:"type:text"`
	Color       string    `json:"color"`
	Category    string    `json:"category,omitempty"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type WikiArticlePost struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	SortOrder   *int   `json:"sortOrder"`
}

type WikiArticleUpdate struct {
	Id          string  `path:"id" json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Category    *string `json:"category"`
	SortOrder   *int    `json:"sortOrder"`
}

type WikiArticleParams struct {
	Id string `path:"id"`
}
