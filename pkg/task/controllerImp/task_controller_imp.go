package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmconnect/pkg/middleware"
	"farmconnect/pkg/state"
	"farmconnect/pkg/task/controller"
)

type taskCtrl struct{}

func New() controller.TaskController { return &taskCtrl{} }

func (h *taskCtrl) List(c echo.Context) error {
	st := middleware.StateOf(c)
	snap := st.Snapshot()
	return c.JSON(http.StatusOK, map[string]any{
		"tasks":   snap.Tasks,
		"loading": snap.TasksLoading,
		"summary": st.Summary(),
	})
}

func (h *taskCtrl) Complete(c echo.Context) error {
	t, err := middleware.StateOf(c).CompleteTask(c.Param("id"))
	if errors.Is(err, state.ErrTaskNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	if errors.Is(err, state.ErrUnmounted) || errors.Is(err, state.ErrClosed) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "session is not active"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}
