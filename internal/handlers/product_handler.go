package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/handyhome/handyhome-api/internal/apperr"
	"github.com/handyhome/handyhome-api/internal/auth"
	"github.com/handyhome/handyhome-api/internal/models"
)

type ProductHandler struct {
	DB    *gorm.DB
	Guard *auth.Guard
}

func NewProductHandler(db *gorm.DB, guard *auth.Guard) *ProductHandler {
	return &ProductHandler{DB: db, Guard: guard}
}

type productReq struct {
	ImageURL           *string `json:"image_url"`
	PriceHourly        float64 `json:"price_hourly"`
	PriceSquareFoot    float64 `json:"price_square_foot"`
	ProductDescription string  `json:"product_description"`
	Title              string  `json:"title"`
	Type               string  `json:"type"`
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := make([]models.Product, 0)
	if err := h.DB.Order("id asc").Find(&products).Error; err != nil {
		return apperr.Server(err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.findProduct(c)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) ListBusiness(c *fiber.Ctx) error {
	return h.listByType(c, models.ProductTypeBusiness)
}

func (h *ProductHandler) ListHome(c *fiber.Ctx) error {
	return h.listByType(c, models.ProductTypeHome)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	if _, err := h.Guard.RequireAdmin(c); err != nil {
		return err
	}
	product, err := parseProduct(c)
	if err != nil {
		return err
	}
	if err := h.DB.Create(product).Error; err != nil {
		return apperr.Server(err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	if _, err := h.Guard.RequireAdmin(c); err != nil {
		return err
	}
	product, err := h.findProduct(c)
	if err != nil {
		return err
	}
	in, err := parseProduct(c)
	if err != nil {
		return err
	}
	product.Replace(in)
	if err := h.DB.Save(product).Error; err != nil {
		return apperr.Server(err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.Guard.RequireAdmin(c); err != nil {
		return err
	}
	product, err := h.findProduct(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(product).Error; err != nil {
		return apperr.Server(err)
	}
	return c.JSON(fiber.Map{})
}

func (h *ProductHandler) listByType(c *fiber.Ctx, pt models.ProductType) error {
	products := make([]models.Product, 0)
	if err := h.DB.Where("type = ?", pt).Order("id asc").Find(&products).Error; err != nil {
		return apperr.Server(err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) findProduct(c *fiber.Ctx) (*models.Product, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return nil, apperr.NotFound("product not found")
	}
	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Server(err)
	}
	return &product, nil
}

func parseProduct(c *fiber.Ctx) (*models.Product, error) {
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return nil, apperr.BadRequest("invalid body")
	}
	product, err := models.NewProduct(req.ImageURL, req.PriceHourly, req.PriceSquareFoot, req.ProductDescription, req.Title, req.Type)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	return product, nil
}
