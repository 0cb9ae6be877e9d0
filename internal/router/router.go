package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"stonks/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	wagerHandler *handler.WagerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Backend is running")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Wager routes. No authorization check on the list route: any caller may
	// query any user's wagers, which is the documented contract.
	e.POST("/wagers", wagerHandler.CreateWager)
	e.GET("/wagers/:userId", wagerHandler.ListWagers)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
