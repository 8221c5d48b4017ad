package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmconnect/pkg/field/controller"
	"farmconnect/pkg/middleware"
	"farmconnect/pkg/state"
)

type FieldCtrl struct{}

func New() controller.FieldController { return &FieldCtrl{} }

func (h *FieldCtrl) Visits(c echo.Context) error {
	snap := middleware.StateOf(c).Snapshot()
	return c.JSON(http.StatusOK, map[string]any{
		"visits":     snap.Visits,
		"loading":    snap.VisitsLoading,
		"refreshing": snap.VisitsRefreshing,
	})
}

// RefreshVisits blocks until the reload settles and returns the result.
func (h *FieldCtrl) RefreshVisits(c echo.Context) error {
	st := middleware.StateOf(c)
	st.RefreshVisits(c.Request().Context())
	snap := st.Snapshot()
	return c.JSON(http.StatusOK, map[string]any{"visits": snap.Visits, "plan": snap.Plan})
}

func (h *FieldCtrl) Plan(c echo.Context) error {
	st := middleware.StateOf(c)
	snap := st.Snapshot()
	return c.JSON(http.StatusOK, map[string]any{
		"plan":            snap.Plan,
		"loading":         snap.PlanLoading,
		"farmer_todo":     st.FarmerTodo(),
		"supervisor_todo": st.SupervisorTodo(),
	})
}

func (h *FieldCtrl) SubmitPlanItem(c echo.Context) error {
	item, err := middleware.StateOf(c).SubmitPlanItem(c.Param("id"))
	switch {
	case errors.Is(err, state.ErrPlanItemNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, state.ErrPlanItemNotTodo):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, item)
}
