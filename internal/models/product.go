package models

import (
	"errors"
	"fmt"
)

// ErrConversion marks wire strings that do not map onto a closed enum set.
// Callers treat it as a bad request rather than a storage failure.
var ErrConversion = errors.New("conversion error")

type ProductType string

const (
	ProductTypeBusiness ProductType = "business"
	ProductTypeHome     ProductType = "home"
)

// ParseProductType maps a wire string onto the closed ProductType set.
// Matching is case-exact; anything else is a conversion error.
func ParseProductType(s string) (ProductType, error) {
	switch s {
	case string(ProductTypeBusiness):
		return ProductTypeBusiness, nil
	case string(ProductTypeHome):
		return ProductTypeHome, nil
	default:
		return "", fmt.Errorf("invalid product type %q: %w", s, ErrConversion)
	}
}

type Product struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	ImageURL           *string     `gorm:"column:image_url" json:"image_url"`
	PriceHourly        float64     `gorm:"column:price_hourly;not null" json:"price_hourly"`
	PriceSquareFoot    float64     `gorm:"column:price_square_foot;not null" json:"price_square_foot"`
	ProductDescription string      `gorm:"column:product_description;not null" json:"product_description"`
	Title              string      `gorm:"not null" json:"title"`
	Type               ProductType `gorm:"type:varchar(20);not null;index" json:"type"`
}

func (Product) TableName() string { return "products" }

// NewProduct validates the raw type string and builds an unsaved product.
func NewProduct(imageURL *string, priceHourly, priceSquareFoot float64, description, title, rawType string) (*Product, error) {
	pt, err := ParseProductType(rawType)
	if err != nil {
		return nil, err
	}
	return &Product{
		ImageURL:           imageURL,
		PriceHourly:        priceHourly,
		PriceSquareFoot:    priceSquareFoot,
		ProductDescription: description,
		Title:              title,
		Type:               pt,
	}, nil
}

// Replace copies every field of in onto p, keeping p's identity. PATCH is a
// full-record replace, not a merge.
func (p *Product) Replace(in *Product) {
	p.ImageURL = in.ImageURL
	p.PriceHourly = in.PriceHourly
	p.PriceSquareFoot = in.PriceSquareFoot
	p.ProductDescription = in.ProductDescription
	p.Title = in.Title
	p.Type = in.Type
}
