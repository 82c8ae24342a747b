package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryFashion     ProductCategory = "fashion"
	CategoryAccessories ProductCategory = "accessories"
	CategoryPhones      ProductCategory = "phones"
	CategoryElectronics ProductCategory = "electronics"
	CategoryHomeLiving  ProductCategory = "home-living"
)

// Categories lists every category a product may carry.
func Categories() []ProductCategory {
	return []ProductCategory{
		CategoryFashion,
		CategoryAccessories,
		CategoryPhones,
		CategoryElectronics,
		CategoryHomeLiving,
	}
}

func IsValidCategory(c ProductCategory) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

func IsValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale || g == GenderUnisex
}

type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

func IsValidStockStatus(s StockStatus) bool {
	return s == StockInStock || s == StockOutOfStock
}

// Dimensions are physical measurements; all optional, non-negative.
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// ProductImage pairs a hosted image URL with the color it shows.
// The row with the lowest position is the default display image.
type ProductImage struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"-"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	Color     string `json:"color"`
	Position  int    `gorm:"not null;default:0" json:"-"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

type Product struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Brand         string          `json:"brand,omitempty"`
	Material      string          `json:"material,omitempty"`
	Category      ProductCategory `gorm:"type:varchar(50);not null" json:"category"`
	ProductType   string          `gorm:"not null" json:"product_type"`
	StyleType     string          `gorm:"not null" json:"style_type"`
	Gender        Gender          `gorm:"type:varchar(20);not null" json:"gender"`
	Tags          []string        `gorm:"serializer:json" json:"tags"`
	Price         float64         `gorm:"not null" json:"price"`
	DiscountPrice *float64        `json:"discount_price,omitempty"`
	Stock         StockStatus     `gorm:"type:varchar(20);not null" json:"stock"`
	Dimensions    Dimensions      `gorm:"embedded;embeddedPrefix:dim_" json:"dimensions"`
	Weight        float64         `json:"weight"`
	Size          Size            `gorm:"serializer:json" json:"size"`
	Rating        float64         `gorm:"not null" json:"rating"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Images    []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CartItems []CartItem     `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// DefaultImage returns the first image, the default display image.
func (p *Product) DefaultImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}

// HasColor reports whether any product image carries the given color.
func (p *Product) HasColor(color string) bool {
	for _, img := range p.Images {
		if img.Color == color {
			return true
		}
	}
	return false
}

// DiscountPercent computes the display discount percentage, or 0 when no
// meaningful discount is set. Display-only: discount < price is not
// enforced at persistence time.
func (p *Product) DiscountPercent() int {
	if p.DiscountPrice == nil || p.Price <= 0 || *p.DiscountPrice <= 0 || *p.DiscountPrice >= p.Price {
		return 0
	}
	return int((p.Price-*p.DiscountPrice)/p.Price*100 + 0.5)
}
