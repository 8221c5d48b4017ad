package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"

	"farmconnect/config"
	"farmconnect/database"
	"farmconnect/pkg/catalog"
	"farmconnect/pkg/probe"
	"farmconnect/pkg/session"
	"farmconnect/pkg/state"
	"farmconnect/pkg/transport"
	"farmconnect/router"

	// Auth
	authCtrlImp "farmconnect/pkg/auth/controllerImp"
	authSvcImp "farmconnect/pkg/auth/serviceImp"

	// Tasks
	taskCtrlImp "farmconnect/pkg/task/controllerImp"
	taskSvcImp "farmconnect/pkg/task/serviceImp"

	// Field visits + cultivation plan
	fieldCtrlImp "farmconnect/pkg/field/controllerImp"
	fieldSvcImp "farmconnect/pkg/field/serviceImp"

	// Profile
	profileCtrlImp "farmconnect/pkg/profile/controllerImp"
	profileSvcImp "farmconnect/pkg/profile/serviceImp"

	// Rental
	rentalCtrlImp "farmconnect/pkg/rental/controllerImp"
	rentalSvcImp "farmconnect/pkg/rental/serviceImp"

	// Journal
	journalCtrlImp "farmconnect/pkg/journal/controllerImp"
	journalRepoImp "farmconnect/pkg/journal/repositoryImp"

	// Health
	healthCtrlImp "farmconnect/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	log.SetLevel(cfg.Level())
	log.SetHeader("${time_rfc3339} ${level}")
	log.Infof("[cfg] %s", cfg)

	// 2) Journal DB (in-memory sqlite)
	db := database.OpenSQLite(cfg.JournalDSN)
	jRepo := journalRepoImp.New(db)

	// 3) Backend client + endpoint table
	client := transport.New(cfg.APIBaseURL, cfg.RequestTimeout)
	eps, err := probe.LoadEndpoints(cfg.EndpointsFile)
	if err != nil {
		log.Warnf("[cfg] endpoints override ignored: %v", err)
	}

	// 4) Service catalog (built-in unless a sheet overrides it)
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if items, err := catalog.LoadFile(cfg.CatalogPath); err != nil {
			log.Warnf("[cfg] catalog override ignored: %v", err)
		} else {
			cat = items
			log.Infof("[cfg] loaded %d catalog items from %s", len(items), cfg.CatalogPath)
		}
	}

	// 5) Services
	svcs := state.Services{
		Tasks:   taskSvcImp.New(client, eps),
		Fields:  fieldSvcImp.New(client, eps),
		Profile: profileSvcImp.New(client, eps),
		Rental:  rentalSvcImp.New(client, eps, cfg.SimulatedDelay),
		Journal: jRepo,
	}
	reg := session.NewRegistry(func(farmerID string) *state.State {
		return state.New(farmerID, svcs, state.Options{Catalog: cat, SyncTimeout: cfg.RequestTimeout})
	}, jRepo)

	// 6) Background refresh of every open session
	c := cron.New()
	if _, err := c.AddFunc(cfg.RefreshSpec, func() {
		reg.Each(func(st *state.State) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.RequestTimeout)
			defer cancel()
			st.Refresh(ctx)
		})
	}); err != nil {
		log.Warnf("[cron] refresh disabled, bad spec %q: %v", cfg.RefreshSpec, err)
	}
	c.Start()
	defer c.Stop()

	// 7) Echo
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.Level())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())

	r := router.New(e, cfg.JWTSecret, reg, router.Controllers{
		Auth:    authCtrlImp.NewAuthController(authSvcImp.New(client, eps), reg, cfg.JWTSecret, cfg.SessionTTL),
		Tasks:   taskCtrlImp.New(),
		Fields:  fieldCtrlImp.New(),
		Profile: profileCtrlImp.New(),
		Rental:  rentalCtrlImp.New(),
		Journal: journalCtrlImp.New(),
		Health:  healthCtrlImp.NewHealthCtrl(db, reg, cfg.APIBaseURL),
	})

	// 8) Start
	log.Infof("listening on :%s (backend %s)", cfg.Port, cfg.APIBaseURL)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
