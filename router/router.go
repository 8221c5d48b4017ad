package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "farmconnect/pkg/auth/controller"
	fieldCtrl "farmconnect/pkg/field/controller"
	"farmconnect/pkg/middleware"
	profileCtrl "farmconnect/pkg/profile/controller"
	rentalCtrl "farmconnect/pkg/rental/controller"
	"farmconnect/pkg/session"
	taskCtrl "farmconnect/pkg/task/controller"
)

type Controllers struct {
	Auth    authCtrl.AuthController
	Tasks   taskCtrl.TaskController
	Fields  fieldCtrl.FieldController
	Profile profileCtrl.ProfileController
	Rental  rentalCtrl.RentalController
	Journal interface{ List(echo.Context) error }
	Health  interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, secret string, reg *session.Registry, h Controllers) *echo.Echo {
	e.GET("/health", h.Health.Health)

	api := e.Group("/api")
	api.POST("/login", h.Auth.Login)

	authed := api.Group("", middleware.Session(secret))
	authed.POST("/logout", h.Auth.Logout)
	authed.GET("/whoami", h.Auth.WhoAmI)

	g := authed.Group("", middleware.RequireState(reg))
	g.GET("/tasks", h.Tasks.List)
	g.POST("/tasks/:id/complete", h.Tasks.Complete)

	g.GET("/visits", h.Fields.Visits)
	g.POST("/visits/refresh", h.Fields.RefreshVisits)
	g.GET("/plan", h.Fields.Plan)
	g.POST("/plan/:id/submit", h.Fields.SubmitPlanItem)

	g.GET("/profile", h.Profile.Get)
	g.GET("/profile/details", h.Profile.Details)

	g.GET("/services/catalog", h.Rental.Catalog)
	g.GET("/services/tracked", h.Rental.Tracked)
	g.POST("/services/requests", h.Rental.Create)
	g.GET("/services/requests", h.Rental.Requests)

	g.GET("/sync-log", h.Journal.List)
	return e
}
