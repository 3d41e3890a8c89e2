package models

import "time"

// Post is a blog entry in the SQLite data file.
type Post struct {
	ID          int       `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Excerpt     string    `gorm:"column:excerpt;not null"`
	Category    string    `gorm:"column:category;not null"`
	Featured    bool      `gorm:"column:featured;not null;default:false"`
	PublishedAt time.Time `gorm:"column:published_at"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
