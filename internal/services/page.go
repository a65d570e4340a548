package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"livelink/internal/audit"
	"livelink/internal/collection"
	"livelink/internal/entities"
	"livelink/internal/validators"
	"livelink/pkg/logger"
)

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrUnknownAction = errors.New("unknown action")
)

// Page is the type-erased view of one entity page.
type Page interface {
	Kind() entities.Kind
	Descriptor() entities.Descriptor
	DefaultQuery() collection.Query
	List(q collection.Query) ListResult
	Get(id string) (entities.Row, bool)
	Perform(ctx context.Context, req ActionRequest) (ActionResult, error)
	Counts() entities.Counts
}

type ListResult struct {
	Kind   entities.Kind    `json:"kind"`
	Query  collection.Query `json:"query"`
	Rows   []entities.Row   `json:"rows"`
	Count  int              `json:"count"`
	Total  int              `json:"total"`
	Counts entities.Counts  `json:"counts"`
}

type ActionRequest struct {
	ID       string          `json:"id"`
	Action   string          `json:"action"`
	Params   entities.Params `json:"params,omitempty"`
	Operator string          `json:"operator"`
}

// ActionResult reports the outcome of Perform. Found is false for an
// unknown id; Applied is false when nothing changed.
type ActionResult struct {
	Found   bool            `json:"found"`
	Applied bool            `json:"applied"`
	Row     *entities.Row   `json:"row,omitempty"`
	Counts  entities.Counts `json:"counts"`
}

type page[T any] struct {
	cfg      entities.Config[T]
	mu       sync.RWMutex
	items    collection.Collection[T]
	clock    func() time.Time
	notifier audit.Notifier
	logger   *logger.Logger
}

func newPage[T any](cfg entities.Config[T], records []T, deps Options) *page[T] {
	return &page[T]{
		cfg:      cfg,
		items:    collection.New(records, cfg.ID),
		clock:    deps.Clock,
		notifier: deps.Notifier,
		logger:   deps.Logger.WithField("entity", string(cfg.Kind)),
	}
}

func (p *page[T]) Kind() entities.Kind {
	return p.cfg.Kind
}

func (p *page[T]) Descriptor() entities.Descriptor {
	return p.cfg.Describe()
}

func (p *page[T]) DefaultQuery() collection.Query {
	return p.cfg.Matcher.DefaultQuery()
}

func (p *page[T]) snapshot() collection.Collection[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.items
}

func (p *page[T]) List(q collection.Query) ListResult {
	items := p.snapshot()
	matched := p.cfg.Matcher.Apply(items, q)

	rows := make([]entities.Row, len(matched))
	for i, rec := range matched {
		rows[i] = p.cfg.Row(rec)
	}
	return ListResult{
		Kind:   p.cfg.Kind,
		Query:  q,
		Rows:   rows,
		Count:  len(rows),
		Total:  items.Len(),
		Counts: p.cfg.Counts(items.Items()),
	}
}

func (p *page[T]) Get(id string) (entities.Row, bool) {
	rec := p.snapshot().Get(id)
	if rec == nil {
		return entities.Row{}, false
	}
	return p.cfg.Row(rec), true
}

func (p *page[T]) Counts() entities.Counts {
	return p.cfg.Counts(p.snapshot().Items())
}

func (p *page[T]) count(pred func(*T) bool) int {
	return p.snapshot().Count(pred)
}

func (p *page[T]) Perform(ctx context.Context, req ActionRequest) (ActionResult, error) {
	action, ok := p.cfg.Action(req.Action)
	if !ok {
		return ActionResult{}, fmt.Errorf("%s on %s: %w", req.Action, p.cfg.Kind, ErrUnknownAction)
	}
	// Records are never removed, so an id missing now stays missing.
	if p.snapshot().Get(req.ID) == nil {
		return ActionResult{Counts: p.Counts()}, nil
	}
	if err := validators.ValidateOperator(req.Operator); err != nil {
		return ActionResult{}, err
	}
	if errs := validators.ValidateParams(action.Params, req.Params); len(errs) > 0 {
		return ActionResult{}, errs
	}

	env := entities.Env{Operator: req.Operator, Now: p.clock()}

	p.mu.Lock()
	found := p.items.Get(req.ID) != nil
	next, changed := p.items.Replace(req.ID, func(rec T) (T, bool) {
		return action.Apply(rec, req.Params, env)
	})
	p.items = next
	result := ActionResult{Found: found, Applied: changed, Counts: p.cfg.Counts(next.Items())}
	if rec := next.Get(req.ID); rec != nil {
		row := p.cfg.Row(rec)
		result.Row = &row
	}
	p.mu.Unlock()

	if !changed {
		return result, nil
	}

	p.logger.LogAdminAction(req.Operator, string(p.cfg.Kind), req.ID, req.Action, map[string]interface{}{
		"status": result.Row.Status,
	})

	event := audit.NewEvent(string(p.cfg.Kind), req.ID, req.Action, req.Operator, req.Params, env.Now)
	if err := p.notifier.Notify(ctx, event); err != nil {
		p.logger.WithContext(ctx).WithEntity(string(p.cfg.Kind), req.ID).WithError(err).WithField("event_id", event.ID).Warn("Audit sink failed")
	}

	return result, nil
}
