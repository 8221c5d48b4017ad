package serviceImp

import (
	"context"

	"farmconnect/entities"
	"farmconnect/pkg/field/service"
	"farmconnect/pkg/normalize"
	"farmconnect/pkg/probe"
	"farmconnect/pkg/transport"
)

type fieldSvc struct {
	doer transport.Doer
	eps  probe.Endpoints
}

func New(doer transport.Doer, eps probe.Endpoints) service.FieldService {
	return &fieldSvc{doer: doer, eps: eps}
}

func (s *fieldSvc) Visits(ctx context.Context, farmerID string) ([]entities.FieldVisitRecord, error) {
	raw, err := probe.Probe(ctx, s.doer, farmerID, s.eps[probe.FieldVisits])
	if err != nil {
		return nil, err
	}
	return normalize.FieldVisits(raw), nil
}

func (s *fieldSvc) Plan(ctx context.Context, farmerID string) ([]entities.CultivationPlanItem, error) {
	raw, err := probe.Probe(ctx, s.doer, farmerID, s.eps[probe.CultivationPlan])
	if err != nil {
		return nil, err
	}
	return normalize.CultivationPlan(raw), nil
}
