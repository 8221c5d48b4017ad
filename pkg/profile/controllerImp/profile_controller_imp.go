package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmconnect/entities"
	"farmconnect/pkg/middleware"
	"farmconnect/pkg/profile/controller"
)

type profileCtrl struct{}

func New() controller.ProfileController { return &profileCtrl{} }

func (h *profileCtrl) Get(c echo.Context) error {
	snap := middleware.StateOf(c).Snapshot()
	return c.JSON(http.StatusOK, map[string]any{"profile": snap.Profile, "loading": snap.ProfileLoading})
}

// Details adds the display strings the profile screen renders for the
// optional numeric and boolean fields.
func (h *profileCtrl) Details(c echo.Context) error {
	d := middleware.StateOf(c).Snapshot().Details
	if d == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farmer details not available"})
	}
	display := map[string]string{}
	if fd := d.FarmData; fd != nil {
		display["location"] = entities.StringOrDash(fd.Location())
		display["estimated_land_area"] = entities.NumberOrDash(fd.EstimatedLandArea)
		display["water_available"] = entities.BoolOrDash(fd.WaterAvailable)
	}
	return c.JSON(http.StatusOK, map[string]any{"details": d, "display": display})
}
