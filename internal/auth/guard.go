// Package auth resolves the caller behind a request and enforces the
// self-or-admin and admin-only policies. Unauthenticated (no or bad
// credentials) and Forbidden (known caller, insufficient privilege) are
// distinct outcomes and must stay that way.
package auth

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handyhome/handyhome-api/internal/apperr"
	"github.com/handyhome/handyhome-api/internal/models"
)

const SessionCookie = "hh_session"

type Guard struct {
	DB       *gorm.DB
	Sessions *SessionStore
	Secret   string
	TTL      time.Duration
}

// CurrentUser resolves the authenticated user for a request: a valid,
// unrevoked session cookie wins; otherwise Basic credentials are required
// and verified against the stored hash.
func (g *Guard) CurrentUser(c *fiber.Ctx) (*models.User, error) {
	if user, ok := g.sessionUser(c); ok {
		return user, nil
	}

	email, password, ok := basicCredentials(c)
	if !ok {
		return nil, apperr.Unauthenticated()
	}
	// Emails are stored lowercased at registration; normalize the
	// identifier the same way so the lookup matches.
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := g.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperr.Unauthenticated()
	}
	if !user.CheckPassword(password) {
		return nil, apperr.Unauthenticated()
	}
	return &user, nil
}

// RequireAdmin resolves the caller and rejects anyone without the admin
// flag.
func (g *Guard) RequireAdmin(c *fiber.Ctx) (*models.User, error) {
	user, err := g.CurrentUser(c)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, apperr.Forbidden()
	}
	return user, nil
}

// RequireSelfOrAdmin resolves the caller and checks it against the
// resource owner: the owner themselves or any admin passes.
func (g *Guard) RequireSelfOrAdmin(c *fiber.Ctx, ownerID uuid.UUID) (*models.User, error) {
	user, err := g.CurrentUser(c)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin && user.ID != ownerID {
		return nil, apperr.Forbidden()
	}
	return user, nil
}

// IssueSession mints a session token for user, registers it in the store
// and sets the session cookie.
func (g *Guard) IssueSession(c *fiber.Ctx, user *models.User) error {
	token, tokenID, err := SignSession(g.Secret, user.ID, g.TTL)
	if err != nil {
		return apperr.Server(err)
	}
	if err := g.Sessions.Create(c.Context(), tokenID, user.ID.String()); err != nil {
		return apperr.Server(err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   int(g.TTL.Seconds()),
	})
	return nil
}

// ClearSession revokes the current session token, if any, and expires the
// cookie.
func (g *Guard) ClearSession(c *fiber.Ctx) {
	if tokenStr := c.Cookies(SessionCookie); tokenStr != "" {
		if claims, err := ParseSession(g.Secret, tokenStr); err == nil {
			_ = g.Sessions.Revoke(c.Context(), claims.ID)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   -1,
	})
}

func (g *Guard) sessionUser(c *fiber.Ctx) (*models.User, bool) {
	tokenStr := c.Cookies(SessionCookie)
	if tokenStr == "" {
		return nil, false
	}
	claims, err := ParseSession(g.Secret, tokenStr)
	if err != nil {
		return nil, false
	}
	live, err := g.Sessions.Valid(c.Context(), claims.ID)
	if err != nil || !live {
		return nil, false
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := g.DB.First(&user, "id = ?", uid).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// basicCredentials pulls identifier and secret out of an Authorization:
// Basic header.
func basicCredentials(c *fiber.Ctx) (email, password string, ok bool) {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Basic "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(decoded), ":")
	return email, password, ok
}
