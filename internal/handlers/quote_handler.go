package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/handyhome/handyhome-api/internal/apperr"
	"github.com/handyhome/handyhome-api/internal/auth"
	"github.com/handyhome/handyhome-api/internal/models"
)

type QuoteHandler struct {
	DB    *gorm.DB
	Guard *auth.Guard
}

func NewQuoteHandler(db *gorm.DB, guard *auth.Guard) *QuoteHandler {
	return &QuoteHandler{DB: db, Guard: guard}
}

// ListMine returns the caller's quotes with their products embedded. No
// quotes at all is a 404, matching the rest of the surface.
func (h *QuoteHandler) ListMine(c *fiber.Ctx) error {
	user, err := h.Guard.CurrentUser(c)
	if err != nil {
		return err
	}
	quotes, err := user.Quotes(h.DB)
	if err != nil {
		return apperr.Server(err)
	}
	if len(quotes) == 0 {
		return apperr.NotFound("no quote requests")
	}
	views := make([]*models.QuoteView, 0, len(quotes))
	for i := range quotes {
		view, err := quotes[i].PublicView(h.DB)
		if err != nil {
			return apperr.Server(err)
		}
		views = append(views, view)
	}
	return c.JSON(views)
}

// Create makes a quote request for the given product on behalf of the
// caller. The promised date is fixed at creation plus three days.
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	user, err := h.Guard.CurrentUser(c)
	if err != nil {
		return err
	}
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil || productID <= 0 {
		return apperr.NotFound("product not found")
	}
	var product models.Product
	if err := h.DB.First(&product, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.NotFound("product not found")
		}
		return apperr.Server(err)
	}
	quote, err := models.CreateQuoteRequest(h.DB, user, &product)
	if err != nil {
		return apperr.Server(err)
	}
	view, err := quote.PublicView(h.DB)
	if err != nil {
		return apperr.Server(err)
	}
	return c.JSON(view)
}
