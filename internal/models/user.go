package models

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/handyhome/handyhome-api/internal/validation"
)

// ErrUnsaved is returned by operations that need a persisted row but were
// handed an entity without an identifier.
var ErrUnsaved = errors.New("entity has not been persisted")

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName    string    `gorm:"column:last_name;not null" json:"last_name"`
	IsAdmin     bool      `gorm:"column:admin;not null;default:false" json:"admin"`
	Password    string    `gorm:"not null" json:"-"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(30);not null" json:"phone_number"`
}

func (User) TableName() string { return "rwusers" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// NewUser validates email and phone number, hashes the password and builds
// an unsaved, non-admin user. The plaintext password is not retained.
func NewUser(email, firstName, lastName, password, phoneNumber string) (*User, error) {
	if err := validation.Email(email); err != nil {
		return nil, err
	}
	if err := validation.PhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		Password:    string(hash),
		PhoneNumber: phoneNumber,
	}, nil
}

// CheckPassword compares a plaintext secret against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// HomeInfo returns the user's home info, or gorm.ErrRecordNotFound if the
// user has none yet.
func (u *User) HomeInfo(db *gorm.DB) (*HomeInfo, error) {
	if u.ID == uuid.Nil {
		return nil, ErrUnsaved
	}
	var info HomeInfo
	if err := db.Where("rwuser_id = ?", u.ID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// Quotes returns every quote request the user has made, oldest first.
func (u *User) Quotes(db *gorm.DB) ([]QuoteRequest, error) {
	if u.ID == uuid.Nil {
		return nil, ErrUnsaved
	}
	var quotes []QuoteRequest
	if err := db.Where("rwuser_id = ?", u.ID).Order("id asc").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
