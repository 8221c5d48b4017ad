package service

import (
	"context"

	"farmconnect/entities"
)

type ProfileService interface {
	// Load merges the backend profile over prev.
	Load(ctx context.Context, farmerID string, prev entities.UserProfile) (entities.UserProfile, error)
	Details(ctx context.Context, farmerID string) (*entities.FarmerDetails, error)
}
