package service

import (
	"context"

	"farmconnect/entities"
)

// FieldService reads the supervisor visit log and the cultivation plan.
type FieldService interface {
	Visits(ctx context.Context, farmerID string) ([]entities.FieldVisitRecord, error)
	Plan(ctx context.Context, farmerID string) ([]entities.CultivationPlanItem, error)
}
