package serviceImp

import (
	"context"

	"farmconnect/entities"
	"farmconnect/pkg/normalize"
	"farmconnect/pkg/probe"
	"farmconnect/pkg/profile/service"
	"farmconnect/pkg/transport"
)

type profileSvc struct {
	doer transport.Doer
	eps  probe.Endpoints
}

func New(doer transport.Doer, eps probe.Endpoints) service.ProfileService {
	return &profileSvc{doer: doer, eps: eps}
}

func (s *profileSvc) Load(ctx context.Context, farmerID string, prev entities.UserProfile) (entities.UserProfile, error) {
	raw, err := probe.Probe(ctx, s.doer, farmerID, s.eps[probe.Profile])
	if err != nil {
		return prev, err
	}
	return normalize.Profile(raw, prev), nil
}

func (s *profileSvc) Details(ctx context.Context, farmerID string) (*entities.FarmerDetails, error) {
	raw, err := probe.Probe(ctx, s.doer, farmerID, s.eps[probe.FarmerDetails])
	if err != nil {
		return nil, err
	}
	return normalize.FarmerDetails(raw), nil
}
