package serviceImp

import (
	"context"

	"farmconnect/entities"
	"farmconnect/pkg/normalize"
	"farmconnect/pkg/probe"
	"farmconnect/pkg/task/service"
	"farmconnect/pkg/transport"
)

type taskSvc struct {
	doer transport.Doer
	eps  probe.Endpoints
}

func New(doer transport.Doer, eps probe.Endpoints) service.TaskService {
	return &taskSvc{doer: doer, eps: eps}
}

func (s *taskSvc) List(ctx context.Context, farmerID string) ([]entities.Task, error) {
	raw, err := probe.Probe(ctx, s.doer, farmerID, s.eps[probe.Tasks])
	if err != nil {
		return nil, err
	}
	return normalize.Tasks(raw), nil
}

func (s *taskSvc) SyncStatus(ctx context.Context, farmerID string, t entities.Task) error {
	if farmerID == "" {
		return probe.ErrNoSession
	}
	ep, ok := s.eps.First(probe.TaskStatus)
	if !ok {
		return probe.ErrNoCandidates
	}
	_, err := s.doer.Post(ctx, ep.Resolve(farmerID), map[string]any{
		"farmer_id": farmerID,
		"task_id":   t.ID,
		"status":    string(t.Status),
	})
	return err
}
