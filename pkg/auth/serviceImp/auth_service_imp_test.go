package serviceImp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmconnect/pkg/auth/service"
	"farmconnect/pkg/probe"
	"farmconnect/pkg/transport"
)

func backend(t *testing.T, h echo.HandlerFunc) service.AuthService {
	t.Helper()
	e := echo.New()
	e.POST("/farmer_managment/login", h)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return New(transport.New(srv.URL, 2*time.Second), probe.DefaultEndpoints())
}

func loginErr(t *testing.T, err error) *service.LoginError {
	t.Helper()
	var le *service.LoginError
	require.ErrorAs(t, err, &le)
	return le
}

func TestLoginSuccess(t *testing.T) {
	var got map[string]any
	svc := backend(t, func(c echo.Context) error {
		require.NoError(t, c.Bind(&got))
		return c.JSON(http.StatusOK, map[string]any{"success": true, "farmer_id": "F-100"})
	})

	sess, err := svc.Login(context.Background(), "f1", "x")
	require.NoError(t, err)
	assert.Equal(t, "F-100", sess.FarmerID)
	assert.False(t, sess.StartedAt.IsZero())
	assert.Equal(t, map[string]any{"user_id": "f1", "password": "x"}, got)
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name string
		h    echo.HandlerFunc
		want string
	}{
		{"message", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]any{"success": false, "message": "bad creds"})
		}, "bad creds"},
		{"detail", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]any{"success": false, "detail": "locked"})
		}, "locked"},
		{"bare failure", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]any{"success": false})
		}, service.MsgIncorrect},
		{"missing farmer id", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]any{"success": true, "farmer_id": "  "})
		}, service.MsgMissingFarmerID},
		{"transport error", func(c echo.Context) error {
			return c.String(http.StatusUnauthorized, "invalid password")
		}, "invalid password"},
		{"html error", func(c echo.Context) error {
			return c.HTML(http.StatusBadGateway, "<html><title>down</title></html>")
		}, "Request failed (502 Bad Gateway)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := backend(t, tt.h)
			sess, err := svc.Login(context.Background(), "f1", "x")
			assert.Nil(t, sess)
			assert.Equal(t, tt.want, loginErr(t, err).Message)
		})
	}
}

func TestLoginValidatesInputWithoutCalling(t *testing.T) {
	called := false
	svc := backend(t, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	le := loginErr(t, func() error { _, err := svc.Login(context.Background(), " ", "x"); return err }())
	assert.Equal(t, service.MsgMissingUserID, le.Message)
	assert.Equal(t, "user_id", le.Field)

	le = loginErr(t, func() error { _, err := svc.Login(context.Background(), "f1", ""); return err }())
	assert.Equal(t, service.MsgMissingPassword, le.Message)
	assert.False(t, called)
}
