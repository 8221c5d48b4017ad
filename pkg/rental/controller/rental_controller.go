package controller

import "github.com/labstack/echo/v4"

type RentalController interface {
	Catalog(c echo.Context) error
	Tracked(c echo.Context) error
	Create(c echo.Context) error
	Requests(c echo.Context) error
}
