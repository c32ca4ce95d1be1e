package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"paymob-course-checkout/internal/dto"
	"paymob-course-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *UserHandler) GetPurchases(c echo.Context) error {
	ctx := c.Request().Context()

	purchases, err := h.userService.GetPurchases(ctx, c.Param("uid"))
	if errors.Is(err, service.ErrInvalidRequest) {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "uid required"})
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "get purchases error", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: "Failed to load purchases"})
	}

	return c.JSON(http.StatusOK, purchases)
}
