package controller

import "github.com/labstack/echo/v4"

type FieldController interface {
	Visits(c echo.Context) error
	RefreshVisits(c echo.Context) error
	Plan(c echo.Context) error
	SubmitPlanItem(c echo.Context) error
}
