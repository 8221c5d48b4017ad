package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmconnect/pkg/middleware"
)

type JournalCtrl struct{}

func New() *JournalCtrl { return &JournalCtrl{} }

// List shows the caller's recent background synchronizations.
func (h *JournalCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := middleware.StateOf(c).SyncLog(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}
