package models

import "time"

// LiquorCategory is the fixed set of catalog categories
type LiquorCategory string

const (
	CategoryWhisky  LiquorCategory = "Whisky"
	CategoryVodka   LiquorCategory = "Vodka"
	CategoryRum     LiquorCategory = "Rum"
	CategoryBeer    LiquorCategory = "Beer"
	CategoryWine    LiquorCategory = "Wine"
	CategoryGin     LiquorCategory = "Gin"
	CategoryTequila LiquorCategory = "Tequila"
	CategoryOther   LiquorCategory = "Other"
)

// ValidCategory reports whether c is one of the enumerated categories
func ValidCategory(c LiquorCategory) bool {
	switch c {
	case CategoryWhisky, CategoryVodka, CategoryRum, CategoryBeer,
		CategoryWine, CategoryGin, CategoryTequila, CategoryOther:
		return true
	}
	return false
}

type Liquor struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"not null"`
	Brand             string         `json:"brand" gorm:"not null"`
	Category          LiquorCategory `json:"category" gorm:"not null"`
	AlcoholPercentage float64        `json:"alcoholPercentage" gorm:"default:0"`
	Price             float64        `json:"price" gorm:"not null"`
	ImageURL          string         `json:"imageUrl"`
	IsAvailable       bool           `json:"isAvailable" gorm:"default:true"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}
