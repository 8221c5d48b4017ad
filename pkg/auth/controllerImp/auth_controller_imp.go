package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"farmconnect/pkg/auth/controller"
	"farmconnect/pkg/auth/service"
	"farmconnect/pkg/middleware"
	"farmconnect/pkg/session"
	"farmconnect/pkg/token"
)

type authCtrl struct {
	svc    service.AuthService
	reg    *session.Registry
	secret string
	ttl    time.Duration
}

func NewAuthController(svc service.AuthService, reg *session.Registry, secret string, ttl time.Duration) controller.AuthController {
	return &authCtrl{svc: svc, reg: reg, secret: secret, ttl: ttl}
}

type loginReq struct {
	UserID   string `json:"user_id" form:"user_id"`
	Password string `json:"password" form:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	sess, err := h.svc.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		var le *service.LoginError
		if errors.As(err, &le) && le.Field != "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": le.Message, "field": le.Field})
		}
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	tok, err := token.Generate(sess.FarmerID, h.secret, h.ttl)
	if err != nil {
		log.Errorf("[auth] sign token: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not start session"})
	}
	h.reg.Open(c.Request().Context(), sess)
	c.SetCookie(&http.Cookie{
		Name: middleware.CookieName, Value: tok, Path: "/",
		HttpOnly: true, SameSite: http.SameSiteLaxMode, Expires: time.Now().Add(h.ttl),
	})
	return c.JSON(http.StatusOK, map[string]any{"token": tok, "session": sess})
}

func (h *authCtrl) Logout(c echo.Context) error {
	id := middleware.FarmerID(c)
	closed := h.reg.Close(id)
	c.SetCookie(&http.Cookie{Name: middleware.CookieName, Value: "", Path: "/", MaxAge: -1})
	return c.JSON(http.StatusOK, map[string]any{"farmer_id": id, "closed": closed})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	id := middleware.FarmerID(c)
	_, active := h.reg.Get(id)
	return c.JSON(http.StatusOK, map[string]any{"farmer_id": id, "active": active})
}
