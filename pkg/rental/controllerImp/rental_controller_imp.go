package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmconnect/pkg/middleware"
	"farmconnect/pkg/rental/controller"
	"farmconnect/pkg/state"
	"farmconnect/pkg/transport"
)

type rentalCtrl struct{}

func New() controller.RentalController { return &rentalCtrl{} }

func (h *rentalCtrl) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StateOf(c).Catalog())
}

func (h *rentalCtrl) Tracked(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StateOf(c).Snapshot().Tracked)
}

type createReq struct {
	ServiceKey string `json:"service_key" form:"service_key"`
}

func (h *rentalCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.ServiceKey) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "service_key required"})
	}
	tr, err := middleware.StateOf(c).CreateRequest(c.Request().Context(), req.ServiceKey)
	if errors.Is(err, state.ErrUnknownService) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown service " + req.ServiceKey})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": transport.Message(err, "request failed")})
	}
	return c.JSON(http.StatusCreated, tr)
}

// Requests is the one load whose failure the client is told about.
func (h *rentalCtrl) Requests(c echo.Context) error {
	reqs, err := middleware.StateOf(c).LoadRequests(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Failed to load requests: " + transport.Message(err, "unknown error"),
		})
	}
	return c.JSON(http.StatusOK, reqs)
}
