package service

import (
	"context"

	"farmconnect/entities"
)

type RentalService interface {
	// RateCards returns the backend's priced services; empty when it has none.
	RateCards(ctx context.Context, farmerID string) ([]entities.ServiceCatalogItem, error)
	// Create always yields a tracked request once a session exists. When the
	// backend refuses, the request is simulated and marked as such.
	Create(ctx context.Context, farmerID string, svc entities.ServiceCatalogItem) (entities.TrackedServiceRequest, error)
	// Requests lists the farmer's backend requests with timelines attached.
	Requests(ctx context.Context, farmerID string) ([]entities.ServiceRequest, error)
}
