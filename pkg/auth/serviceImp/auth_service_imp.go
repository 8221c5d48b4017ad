package serviceImp

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"farmconnect/pkg/auth/service"
	"farmconnect/pkg/normalize"
	"farmconnect/pkg/probe"
	"farmconnect/pkg/session"
	"farmconnect/pkg/transport"
)

type authSvc struct {
	doer transport.Doer
	eps  probe.Endpoints
}

func New(doer transport.Doer, eps probe.Endpoints) service.AuthService {
	return &authSvc{doer: doer, eps: eps}
}

func (s *authSvc) Login(ctx context.Context, userID, password string) (*session.Session, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &service.LoginError{Field: "user_id", Message: service.MsgMissingUserID}
	}
	if strings.TrimSpace(password) == "" {
		return nil, &service.LoginError{Field: "password", Message: service.MsgMissingPassword}
	}

	ep, _ := s.eps.First(probe.Login)
	raw, err := s.doer.Post(ctx, ep.Path, map[string]any{
		"user_id":  strings.TrimSpace(userID),
		"password": password,
	})
	if err != nil {
		log.Warnf("[auth] login call failed: %v", err)
		return nil, &service.LoginError{Message: transport.Message(err, service.MsgIncorrect)}
	}

	res := normalize.Login(raw)
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = service.MsgIncorrect
		}
		return nil, &service.LoginError{Message: msg}
	}
	if res.FarmerID == "" {
		return nil, &service.LoginError{Message: service.MsgMissingFarmerID}
	}
	log.Infof("[auth] farmer %s logged in", res.FarmerID)
	return &session.Session{FarmerID: res.FarmerID, StartedAt: time.Now()}, nil
}
