package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/handyhome/handyhome-api/internal/apperr"
	"github.com/handyhome/handyhome-api/internal/auth"
	"github.com/handyhome/handyhome-api/internal/models"
)

type UserHandler struct {
	DB    *gorm.DB
	Guard *auth.Guard
}

func NewUserHandler(db *gorm.DB, guard *auth.Guard) *UserHandler {
	return &UserHandler{DB: db, Guard: guard}
}

type registerReq struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

// Register creates a user from the public surface. Admin flag is never
// settable here; duplicate emails conflict. Registration does not log the
// user in.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid body")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Password == "" {
		return apperr.BadRequest("password is required")
	}

	user, err := models.NewUser(email, req.FirstName, req.LastName, req.Password, req.PhoneNumber)
	if err != nil {
		return apperr.BadRequest(err.Error())
	}

	var existing models.User
	err = h.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return apperr.Conflict("email already registered")
	}
	if err != gorm.ErrRecordNotFound {
		return apperr.Server(err)
	}

	if err := h.DB.Create(user).Error; err != nil {
		return apperr.Server(err)
	}
	return c.JSON(user)
}

// Login resolves the caller (existing session or Basic credentials) and
// issues a fresh session cookie.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	user, err := h.Guard.CurrentUser(c)
	if err != nil {
		logrus.WithField("ip", c.IP()).Info("login failed")
		return err
	}
	if err := h.Guard.IssueSession(c, user); err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	h.Guard.ClearSession(c)
	return c.JSON([]string{})
}

// Me returns the public view of whoever is calling.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.Guard.CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	if _, err := h.Guard.RequireAdmin(c); err != nil {
		return err
	}
	users := make([]models.User, 0)
	if err := h.DB.Find(&users).Error; err != nil {
		return apperr.Server(err)
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.NotFound("user not found")
	}
	if _, err := h.Guard.RequireSelfOrAdmin(c, targetID); err != nil {
		return err
	}
	var user models.User
	if err := h.DB.First(&user, "id = ?", targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.NotFound("user not found")
		}
		return apperr.Server(err)
	}
	return c.JSON(&user)
}

type homeInfoReq struct {
	BathroomCount   uint   `json:"bathroom_count"`
	BedroomCount    uint   `json:"bedroom_count"`
	KitchenSize     string `json:"kitchen_size"`
	OtherRoomsCount uint   `json:"other_rooms_count"`
	SquareFootage   uint   `json:"square_footage"`
}

func (h *UserHandler) GetHomeInfo(c *fiber.Ctx) error {
	user, err := h.Guard.CurrentUser(c)
	if err != nil {
		return err
	}
	info, err := user.HomeInfo(h.DB)
	if err == gorm.ErrRecordNotFound {
		return apperr.NotFound("home info not found")
	}
	if err != nil {
		return apperr.Server(err)
	}
	return c.JSON(info)
}

// PutHomeInfo upserts the caller's home info: first call creates it, later
// calls overwrite the same record.
func (h *UserHandler) PutHomeInfo(c *fiber.Ctx) error {
	user, err := h.Guard.CurrentUser(c)
	if err != nil {
		return err
	}
	var req homeInfoReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid body")
	}
	info, err := models.UpsertHomeInfo(h.DB, user, req.BathroomCount, req.BedroomCount, req.KitchenSize, req.OtherRoomsCount, req.SquareFootage)
	if err != nil {
		if errors.Is(err, models.ErrConversion) {
			return apperr.BadRequest(err.Error())
		}
		return apperr.Server(err)
	}
	return c.JSON(info)
}
