package models

// Category groups reviews under a unique slug.
type Category struct {
	Slug        string `gorm:"column:slug" json:"slug"`
	Description string `gorm:"column:description" json:"description"`
}
