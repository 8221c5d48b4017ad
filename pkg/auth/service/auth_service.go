package service

import (
	"context"

	"farmconnect/pkg/session"
)

const (
	MsgMissingUserID   = "Enter your user id."
	MsgMissingPassword = "Enter your password."
	MsgIncorrect       = "Incorrect details"
	MsgMissingFarmerID = "Login succeeded but server did not return farmer_id."
)

// LoginError is shown to the user verbatim. Field is set when the input
// itself was rejected before any call was made.
type LoginError struct {
	Field   string
	Message string
}

func (e *LoginError) Error() string { return e.Message }

type AuthService interface {
	Login(ctx context.Context, userID, password string) (*session.Session, error)
}
