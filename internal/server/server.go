package server

import (
	"context"
	"log/slog"
	"net/http"
	"paymob-course-checkout/internal/handler"
	appmiddleware "paymob-course-checkout/internal/middleware"
	"paymob-course-checkout/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
	userHandler    *handler.UserHandler
}

// NewServer wires the routes. webDir holds the static front-end pages,
// including pay_success.html which paymob redirects back to.
func NewServer(paymentService service.PaymentService, userService service.UserService, logger *slog.Logger, webDir string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))

	if webDir != "" {
		e.Static("/", webDir)
	}

	s := &Server{
		echo:           e,
		paymentHandler: handler.NewPaymentHandler(paymentService, logger),
		userHandler:    handler.NewUserHandler(userService, logger),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- paymob checkout --------
	s.echo.POST("/create_payment", s.paymentHandler.CreatePayment)
	s.echo.POST("/verify_payment", s.paymentHandler.VerifyPayment)

	s.echo.GET("/purchases/:uid", s.userHandler.GetPurchases)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
