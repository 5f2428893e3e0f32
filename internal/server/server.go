// Package server builds the fiber application from an explicit dependency
// bundle. All route registration lives here; nothing hangs off globals.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/handyhome/handyhome-api/internal/apperr"
	"github.com/handyhome/handyhome-api/internal/auth"
	"github.com/handyhome/handyhome-api/internal/config"
	"github.com/handyhome/handyhome-api/internal/handlers"
)

type Deps struct {
	Cfg      config.Config
	DB       *gorm.DB
	Sessions *auth.SessionStore
}

func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	guard := &auth.Guard{
		DB:       d.DB,
		Sessions: d.Sessions,
		Secret:   d.Cfg.SessionSecret,
		TTL:      time.Duration(d.Cfg.SessionExpiresMin) * time.Minute,
	}

	productH := handlers.NewProductHandler(d.DB, guard)
	userH := handlers.NewUserHandler(d.DB, guard)
	quoteH := handlers.NewQuoteHandler(d.DB, guard)

	// Static product routes must register before /products/:id so the
	// type filters are not captured as ids.
	products := app.Group("/products")
	products.Get("/", productH.List)
	products.Get("/business", productH.ListBusiness)
	products.Get("/home", productH.ListHome)
	products.Get("/:id", productH.Get)
	products.Post("/", productH.Create)
	products.Patch("/:id", productH.Update)
	products.Delete("/:id", productH.Delete)

	app.Post("/login", userH.Login)
	app.Get("/logout", userH.Logout)
	app.Get("/me", userH.Me)

	users := app.Group("/users")
	users.Get("/", userH.List)
	users.Post("/", userH.Register)
	users.Get("/homeInfo", userH.GetHomeInfo)
	users.Put("/homeInfo", userH.PutHomeInfo)
	users.Get("/:id", userH.Get)

	quotes := app.Group("/quotes")
	quotes.Get("/", quoteH.ListMine)
	quotes.Post("/product/:productID", quoteH.Create)

	return app
}
