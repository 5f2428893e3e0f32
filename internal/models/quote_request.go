package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromiseWindow is how far out every quote is promised: exactly 3 days
// after creation.
const PromiseWindow = 72 * time.Hour

// ErrQuoteProductMissing means a quote's join row or product is gone. That
// breaks the one-quote-one-product invariant, so it surfaces as a server
// error rather than a 404.
var ErrQuoteProductMissing = errors.New("quote request has no associated product")

type QuoteRequest struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Created  time.Time `gorm:"column:created;not null" json:"created"`
	Promised time.Time `gorm:"column:promised;not null" json:"promised"`
	UserID   uuid.UUID `gorm:"column:rwuser_id;type:uuid;index;not null" json:"rwuser_id"`
}

func (QuoteRequest) TableName() string { return "quote_requests" }

// QuoteRequestProduct is the pivot row linking a quote to its product.
type QuoteRequestProduct struct {
	QuoteRequestID uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID      uint `gorm:"primaryKey;autoIncrement:false"`
}

func (QuoteRequestProduct) TableName() string { return "quote_request_products" }

// QuoteView is the public shape of a quote: the quote fields with the
// related product embedded.
type QuoteView struct {
	QuoteRequest
	Product Product `json:"product"`
}

// CreateQuoteRequest persists a quote for user and links it to product via
// the pivot table. Both user and product must already be persisted.
func CreateQuoteRequest(db *gorm.DB, user *User, product *Product) (*QuoteRequest, error) {
	if user.ID == uuid.Nil || product.ID == 0 {
		return nil, ErrUnsaved
	}
	now := time.Now()
	quote := &QuoteRequest{
		Created:  now,
		Promised: now.Add(PromiseWindow),
		UserID:   user.ID,
	}
	if err := db.Create(quote).Error; err != nil {
		return nil, err
	}
	pivot := &QuoteRequestProduct{QuoteRequestID: quote.ID, ProductID: product.ID}
	if err := db.Create(pivot).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

// Product resolves the quote's product through the pivot table.
func (q *QuoteRequest) Product(db *gorm.DB) (*Product, error) {
	if q.ID == 0 {
		return nil, ErrUnsaved
	}
	var pivot QuoteRequestProduct
	err := db.Where("quote_request_id = ?", q.ID).First(&pivot).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrQuoteProductMissing
	}
	if err != nil {
		return nil, err
	}
	var product Product
	err = db.First(&product, pivot.ProductID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrQuoteProductMissing
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// PublicView builds the quote-plus-product shape returned by the API.
func (q *QuoteRequest) PublicView(db *gorm.DB) (*QuoteView, error) {
	product, err := q.Product(db)
	if err != nil {
		return nil, err
	}
	return &QuoteView{QuoteRequest: *q, Product: *product}, nil
}
