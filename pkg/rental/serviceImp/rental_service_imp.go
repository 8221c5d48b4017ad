package serviceImp

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"farmconnect/entities"
	"farmconnect/pkg/dates"
	"farmconnect/pkg/normalize"
	"farmconnect/pkg/probe"
	"farmconnect/pkg/rental/service"
	"farmconnect/pkg/timeline"
	"farmconnect/pkg/transport"
)

type rentalSvc struct {
	doer  transport.Doer
	eps   probe.Endpoints
	delay time.Duration
	now   func() time.Time
	intn  func(n int) int
}

type Option func(*rentalSvc)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *rentalSvc) { s.now = now } }

// WithRand replaces the source of simulated request numbers.
func WithRand(intn func(n int) int) Option { return func(s *rentalSvc) { s.intn = intn } }

// New wires the rental service. delay is how long a simulated creation
// pretends to take.
func New(doer transport.Doer, eps probe.Endpoints, delay time.Duration, opts ...Option) service.RentalService {
	s := &rentalSvc{doer: doer, eps: eps, delay: delay, now: time.Now, intn: rand.IntN}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *rentalSvc) RateCards(ctx context.Context, farmerID string) ([]entities.ServiceCatalogItem, error) {
	raw, err := probe.Probe(ctx, s.doer, farmerID, s.eps[probe.RateCards])
	if err != nil {
		return nil, err
	}
	return normalize.RateCards(raw), nil
}

func (s *rentalSvc) simulatedID() string {
	return fmt.Sprintf("#SR-%d", 2000+s.intn(8000))
}

func (s *rentalSvc) Create(ctx context.Context, farmerID string, svc entities.ServiceCatalogItem) (entities.TrackedServiceRequest, error) {
	if farmerID == "" {
		return entities.TrackedServiceRequest{}, probe.ErrNoSession
	}

	var (
		raw any
		err = error(probe.ErrNoCandidates)
	)
	if ep, ok := s.eps.First(probe.RentalCreate); ok {
		raw, err = s.doer.Post(ctx, ep.Resolve(farmerID), map[string]any{
			"farmer_id":    farmerID,
			"service_key":  svc.Key,
			"service_name": svc.Title,
		})
	}

	simulated := err != nil
	requestID, ok := normalize.RequestID(raw)
	if simulated {
		log.Warnf("[rental] create %s failed, simulating: %v", svc.Key, err)
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return entities.TrackedServiceRequest{}, ctx.Err()
		}
		ok = false
	}
	if !ok {
		requestID = s.simulatedID()
	}

	now := s.now()
	scheduled := dates.AddDays(now, svc.DaysUntilAvailable)
	fallback := ""
	if simulated {
		fallback = transport.Detail(err, "backend unavailable")
	}
	return entities.TrackedServiceRequest{
		ID:                 uuid.NewString(),
		RequestID:          requestID,
		CreatedAt:          now,
		Service:            svc,
		Timeline:           timeline.Build(entities.StageProcessing, now, scheduled, svc.Title),
		ScheduledDateLabel: dates.ShortLabel(scheduled),
		Simulated:          simulated,
		Fallback:           fallback,
	}, nil
}

func (s *rentalSvc) Requests(ctx context.Context, farmerID string) ([]entities.ServiceRequest, error) {
	raw, err := probe.Probe(ctx, s.doer, farmerID, s.eps[probe.RentalRequests])
	if err != nil {
		return nil, err
	}
	now := s.now()
	list := normalize.RentalRequests(raw, now)
	for i := range list {
		list[i] = timeline.ForRequest(list[i], now)
	}
	return list, nil
}
