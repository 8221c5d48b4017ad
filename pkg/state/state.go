// Package state holds everything one logged-in farmer sees. Loads run
// concurrently and never fail the container: a failed load leaves the
// previous data in place. Lists are only ever replaced whole, so a Snapshot
// is safe to read while loads land.
package state

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"farmconnect/entities"
	"farmconnect/pkg/catalog"
	fieldsvc "farmconnect/pkg/field/service"
	journal "farmconnect/pkg/journal/repository"
	profilesvc "farmconnect/pkg/profile/service"
	rentalsvc "farmconnect/pkg/rental/service"
	"farmconnect/pkg/status"
	tasksvc "farmconnect/pkg/task/service"
	"farmconnect/pkg/transport"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrPlanItemNotFound = errors.New("plan item not found")
	ErrPlanItemNotTodo  = errors.New("plan item is not awaiting the farmer")
	ErrUnknownService   = errors.New("unknown service")
	ErrUnmounted        = errors.New("state is unmounted")
	ErrClosed           = errors.New("state is closed")
)

type Services struct {
	Tasks   tasksvc.TaskService
	Fields  fieldsvc.FieldService
	Profile profilesvc.ProfileService
	Rental  rentalsvc.RentalService
	Journal journal.JournalRepository
}

type Options struct {
	// Catalog is offered when the backend has no rate cards.
	Catalog []entities.ServiceCatalogItem
	// SyncTimeout bounds each fire-and-forget synchronization.
	SyncTimeout time.Duration
}

// Snapshot is a read-only view. Slices in it are never modified after
// publication.
type Snapshot struct {
	FarmerID string `json:"farmerId"`

	Tasks        []entities.Task `json:"tasks"`
	TasksLoading bool            `json:"tasksLoading"`

	Visits           []entities.FieldVisitRecord `json:"visits"`
	VisitsLoading    bool                        `json:"visitsLoading"`
	VisitsRefreshing bool                        `json:"visitsRefreshing"`

	Plan        []entities.CultivationPlanItem `json:"plan"`
	PlanLoading bool                           `json:"planLoading"`

	Profile        entities.UserProfile    `json:"profile"`
	Details        *entities.FarmerDetails `json:"details,omitempty"`
	ProfileLoading bool                    `json:"profileLoading"`

	RateCards        []entities.ServiceCatalogItem `json:"rateCards"`
	RateCardsLoading bool                          `json:"rateCardsLoading"`

	Tracked         []entities.TrackedServiceRequest `json:"tracked"`
	Requests        []entities.ServiceRequest        `json:"requests"`
	RequestsLoading bool                             `json:"requestsLoading"`
	RequestsError   string                           `json:"requestsError,omitempty"`
}

type State struct {
	farmerID string
	svc      Services
	opts     Options

	gen    atomic.Uint64
	flight singleflight.Group
	syncs  sync.WaitGroup

	// mu guards everything below.
	mu      sync.RWMutex
	snap    Snapshot
	mounted bool
	closed  bool
	cancel  context.CancelFunc
	// Local changes the backend has not reflected yet. Reloads re-apply them.
	doneTasks map[string]struct{}
	submitted map[string]struct{}
}

// PlaceholderProfile is shown until the backend answers.
func PlaceholderProfile() entities.UserProfile {
	return entities.UserProfile{
		Name: entities.Dash, Role: "Farmer", Email: entities.Dash, Phone: entities.Dash,
		Location: entities.Dash, MemberSince: entities.Dash, FarmName: entities.Dash,
		TotalArea: entities.Dash, PrimaryCrops: entities.Dash, Livestock: entities.Dash,
		Stats: entities.ProfileStats{Efficiency: entities.Dash},
	}
}

func New(farmerID string, svc Services, opts Options) *State {
	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = 15 * time.Second
	}
	s := &State{
		farmerID:  farmerID,
		svc:       svc,
		opts:      opts,
		doneTasks: map[string]struct{}{},
		submitted: map[string]struct{}{},
	}
	s.snap = Snapshot{FarmerID: farmerID, Profile: PlaceholderProfile()}
	return s
}

func (s *State) FarmerID() string { return s.farmerID }

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// commit applies fn unless the load that produced it has been superseded.
func (s *State) commit(gen uint64, fn func(*Snapshot)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen {
		return false
	}
	fn(&s.snap)
	return true
}

func (s *State) update(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.snap)
}

type loader func(ctx context.Context, gen uint64, flags bool)

func (s *State) loaders() []loader {
	return []loader{s.loadTasks, s.loadVisits, s.loadPlan, s.loadProfile, s.loadDetails, s.loadRateCards}
}

// Mount starts a new generation and runs every load concurrently, showing
// loading flags. It returns when all loads have settled. A closed state
// never mounts again.
func (s *State) Mount(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.mounted = true
	s.cancel = cancel
	gen := s.gen.Add(1)
	s.mu.Unlock()

	defer cancel()
	s.run(ctx, gen, true)
}

// current returns the live generation, or false when unmounted.
func (s *State) current() (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen.Load(), s.mounted && !s.closed
}

// Refresh reloads in the background of the current generation without
// touching loading flags. Overlapping calls share one run.
func (s *State) Refresh(ctx context.Context) {
	gen, ok := s.current()
	if !ok {
		return
	}
	_, _, _ = s.flight.Do("refresh:"+strconv.FormatUint(gen, 10), func() (any, error) {
		s.run(ctx, gen, false)
		return nil, nil
	})
}

func (s *State) run(ctx context.Context, gen uint64, flags bool) {
	g, gctx := errgroup.WithContext(ctx)
	for _, l := range s.loaders() {
		g.Go(func() error {
			l(gctx, gen, flags)
			return nil
		})
	}
	_ = g.Wait()
}

// Unmount discards whatever in-flight loads bring back and aborts the
// calls of the current mount. A later Mount starts over.
func (s *State) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmountLocked()
}

// Close unmounts for good: Mount, Refresh and CompleteTask are refused from
// then on, so Wait afterwards sees every synchronization there will be.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.unmountLocked()
}

func (s *State) unmountLocked() {
	s.mounted = false
	s.gen.Add(1)
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Wait blocks until background synchronizations have finished.
func (s *State) Wait() { s.syncs.Wait() }

// overlayTasks re-applies local completions to a reloaded list. A task the
// backend already reports completed needs no overlay any more. Caller holds
// s.mu.
func (s *State) overlayTasks(tasks []entities.Task) []entities.Task {
	if len(s.doneTasks) == 0 {
		return tasks
	}
	out := slices.Clone(tasks)
	for i, t := range out {
		if _, ok := s.doneTasks[t.ID]; !ok {
			continue
		}
		if t.Status == entities.TaskCompleted {
			delete(s.doneTasks, t.ID)
			continue
		}
		out[i] = t.Completed()
	}
	return out
}

// overlayPlan keeps submitted rows awaiting approval until the backend moves
// them out of the farmer's hands. Caller holds s.mu.
func (s *State) overlayPlan(rows []entities.CultivationPlanItem) []entities.CultivationPlanItem {
	if len(s.submitted) == 0 || len(rows) == 0 {
		return rows
	}
	out := slices.Clone(rows)
	for i, p := range out {
		if _, ok := s.submitted[p.ID]; !ok {
			continue
		}
		if !status.IsFarmerTodo(p.Status) {
			delete(s.submitted, p.ID)
			continue
		}
		out[i].Status = entities.StatusAwaitingApproval
	}
	return out
}

func (s *State) loadTasks(ctx context.Context, gen uint64, flags bool) {
	if flags {
		s.commit(gen, func(sn *Snapshot) { sn.TasksLoading = true })
		defer s.commit(gen, func(sn *Snapshot) { sn.TasksLoading = false })
	}
	tasks, err := s.svc.Tasks.List(ctx, s.farmerID)
	if err != nil {
		log.Debugf("[state] %s tasks: %v", s.farmerID, err)
		return
	}
	if len(tasks) == 0 {
		return
	}
	s.commit(gen, func(sn *Snapshot) { sn.Tasks = s.overlayTasks(tasks) })
}

func (s *State) loadVisits(ctx context.Context, gen uint64, flags bool) {
	if flags {
		s.commit(gen, func(sn *Snapshot) { sn.VisitsLoading = true })
		defer s.commit(gen, func(sn *Snapshot) { sn.VisitsLoading = false })
	}
	visits, err := s.svc.Fields.Visits(ctx, s.farmerID)
	if err != nil {
		log.Debugf("[state] %s visits: %v", s.farmerID, err)
		return
	}
	if len(visits) == 0 {
		return
	}
	s.commit(gen, func(sn *Snapshot) { sn.Visits = visits })
}

// loadPlan clears the plan on failure; the plan screen never shows stale rows.
func (s *State) loadPlan(ctx context.Context, gen uint64, flags bool) {
	if flags {
		s.commit(gen, func(sn *Snapshot) { sn.PlanLoading = true })
		defer s.commit(gen, func(sn *Snapshot) { sn.PlanLoading = false })
	}
	rows, err := s.svc.Fields.Plan(ctx, s.farmerID)
	if err != nil {
		log.Debugf("[state] %s plan: %v", s.farmerID, err)
		rows = nil
	}
	s.commit(gen, func(sn *Snapshot) { sn.Plan = s.overlayPlan(rows) })
}

func (s *State) loadProfile(ctx context.Context, gen uint64, flags bool) {
	if flags {
		s.commit(gen, func(sn *Snapshot) { sn.ProfileLoading = true })
		defer s.commit(gen, func(sn *Snapshot) { sn.ProfileLoading = false })
	}
	prev := s.Snapshot().Profile
	p, err := s.svc.Profile.Load(ctx, s.farmerID, prev)
	if err != nil {
		log.Debugf("[state] %s profile: %v", s.farmerID, err)
		return
	}
	s.commit(gen, func(sn *Snapshot) { sn.Profile = p })
}

func (s *State) loadDetails(ctx context.Context, gen uint64, _ bool) {
	d, err := s.svc.Profile.Details(ctx, s.farmerID)
	if err != nil {
		log.Debugf("[state] %s farmer details: %v", s.farmerID, err)
		return
	}
	s.commit(gen, func(sn *Snapshot) { sn.Details = d })
}

func (s *State) loadRateCards(ctx context.Context, gen uint64, flags bool) {
	if flags {
		s.commit(gen, func(sn *Snapshot) { sn.RateCardsLoading = true })
		defer s.commit(gen, func(sn *Snapshot) { sn.RateCardsLoading = false })
	}
	cards, err := s.svc.Rental.RateCards(ctx, s.farmerID)
	if err != nil {
		log.Debugf("[state] %s rate cards: %v", s.farmerID, err)
		return
	}
	if len(cards) == 0 {
		return
	}
	s.commit(gen, func(sn *Snapshot) { sn.RateCards = cards })
}

// RefreshVisits is the manual pull-to-refresh of the field screen. It tracks
// its own flag and reloads both visits and plan.
func (s *State) RefreshVisits(ctx context.Context) {
	gen, ok := s.current()
	if !ok {
		return
	}
	_, _, _ = s.flight.Do("visits:"+strconv.FormatUint(gen, 10), func() (any, error) {
		s.commit(gen, func(sn *Snapshot) { sn.VisitsRefreshing = true })
		defer s.commit(gen, func(sn *Snapshot) { sn.VisitsRefreshing = false })

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { s.loadVisits(gctx, gen, false); return nil })
		g.Go(func() error { s.loadPlan(gctx, gen, false); return nil })
		return nil, g.Wait()
	})
}

// CompleteTask marks a task done locally and pushes the change in the
// background. The local change stands whatever the backend says.
func (s *State) CompleteTask(id string) (entities.Task, error) {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return entities.Task{}, ErrClosed
	case !s.mounted:
		s.mu.Unlock()
		return entities.Task{}, ErrUnmounted
	}
	i := slices.IndexFunc(s.snap.Tasks, func(t entities.Task) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return entities.Task{}, ErrTaskNotFound
	}
	done := s.snap.Tasks[i].Completed()
	next := slices.Clone(s.snap.Tasks)
	next[i] = done
	s.snap.Tasks = next
	s.doneTasks[id] = struct{}{}
	s.syncs.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.syncs.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.SyncTimeout)
		defer cancel()
		err := s.svc.Tasks.SyncStatus(ctx, s.farmerID, done)
		if err != nil {
			log.Warnf("[state] %s task %s status sync failed: %v", s.farmerID, done.ID, err)
		}
		s.record(entities.SyncTaskStatus, done.ID, err, false)
	}()
	return done, nil
}

func (s *State) record(kind, ref string, err error, simulated bool) {
	if s.svc.Journal == nil {
		return
	}
	e := &entities.SyncEntry{FarmerID: s.farmerID, Kind: kind, Ref: ref, OK: err == nil, Simulated: simulated}
	if err != nil {
		e.Detail = transport.Detail(err, "")
	}
	if jerr := s.svc.Journal.Record(e); jerr != nil {
		log.Errorf("[state] journal %s %s: %v", kind, ref, jerr)
	}
}

// SubmitPlanItem hands a farmer to-do over to the supervisor. It is local
// only; the backend has no endpoint for it yet.
func (s *State) SubmitPlanItem(id string) (entities.CultivationPlanItem, error) {
	var (
		out entities.CultivationPlanItem
		err = ErrPlanItemNotFound
	)
	s.update(func(sn *Snapshot) {
		i := slices.IndexFunc(sn.Plan, func(p entities.CultivationPlanItem) bool { return p.ID == id })
		if i < 0 {
			return
		}
		if !status.IsFarmerTodo(sn.Plan[i].Status) {
			err = ErrPlanItemNotTodo
			return
		}
		next := slices.Clone(sn.Plan)
		next[i].Status = entities.StatusAwaitingApproval
		sn.Plan = next
		s.submitted[id] = struct{}{}
		out, err = next[i], nil
	})
	return out, err
}

// Catalog is the backend's rate cards, or the built-in catalog when there
// are none.
func (s *State) Catalog() []entities.ServiceCatalogItem {
	if cards := s.Snapshot().RateCards; len(cards) > 0 {
		return cards
	}
	return s.opts.Catalog
}

// CreateRequest submits a service request and prepends the tracked result.
func (s *State) CreateRequest(ctx context.Context, key string) (entities.TrackedServiceRequest, error) {
	item, ok := catalog.Find(s.Catalog(), key)
	if !ok {
		return entities.TrackedServiceRequest{}, ErrUnknownService
	}

	tr, err := s.svc.Rental.Create(ctx, s.farmerID, item)
	if err != nil {
		return tr, err
	}
	s.update(func(sn *Snapshot) {
		next := make([]entities.TrackedServiceRequest, 0, len(sn.Tracked)+1)
		next = append(next, tr)
		sn.Tracked = append(next, sn.Tracked...)
	})
	var syncErr error
	if tr.Simulated {
		syncErr = errors.New(cmp.Or(tr.Fallback, "backend unavailable"))
	}
	s.record(entities.SyncRentalRequest, tr.RequestID, syncErr, tr.Simulated)
	return tr, nil
}

// LoadRequests fetches the backend request list. Unlike the other loads its
// failure is reported to the caller and clears the list.
func (s *State) LoadRequests(ctx context.Context) ([]entities.ServiceRequest, error) {
	gen := s.gen.Load()
	s.commit(gen, func(sn *Snapshot) { sn.RequestsLoading = true })
	defer s.commit(gen, func(sn *Snapshot) { sn.RequestsLoading = false })

	reqs, err := s.svc.Rental.Requests(ctx, s.farmerID)
	if err != nil {
		s.commit(gen, func(sn *Snapshot) {
			sn.Requests = nil
			sn.RequestsError = transport.Message(err, "Failed to load requests")
		})
		return nil, err
	}
	if !s.commit(gen, func(sn *Snapshot) {
		sn.Requests = reqs
		sn.RequestsError = ""
	}) {
		return nil, ErrUnmounted
	}
	return reqs, nil
}

func (s *State) filterPlan(keep func(string) bool) []entities.CultivationPlanItem {
	var out []entities.CultivationPlanItem
	for _, p := range s.Snapshot().Plan {
		if keep(p.Status) {
			out = append(out, p)
		}
	}
	return out
}

func (s *State) FarmerTodo() []entities.CultivationPlanItem {
	return s.filterPlan(status.IsFarmerTodo)
}

func (s *State) SupervisorTodo() []entities.CultivationPlanItem {
	return s.filterPlan(status.IsSupervisorTodo)
}

// SyncLog returns the newest journal entries of this farmer.
func (s *State) SyncLog(limit int) ([]entities.SyncEntry, error) {
	if s.svc.Journal == nil {
		return nil, nil
	}
	return s.svc.Journal.ListByFarmer(s.farmerID, limit)
}

// Summary aggregates the task dashboard header.
func (s *State) Summary() entities.TaskSummary {
	return entities.SummarizeTasks(s.Snapshot().Tasks)
}
