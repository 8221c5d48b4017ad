package service

import (
	"context"

	"farmconnect/entities"
)

type TaskService interface {
	List(ctx context.Context, farmerID string) ([]entities.Task, error)
	// SyncStatus pushes a locally applied status change. Callers never roll
	// back on failure.
	SyncStatus(ctx context.Context, farmerID string, t entities.Task) error
}
