package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pokework/pokework-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// stubTx runs the function directly; set err to simulate a transaction that
// cannot start.
type stubTx struct {
	err error
}

func (t *stubTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.err != nil {
		return t.err
	}
	return fn(ctx)
}

type stubUserRepo struct {
	byID      map[string]*domain.User
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	clone := *u
	r.byID[u.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubPokemonRepo struct {
	byUser    map[string]*domain.Pokemon
	updateErr error
}

func newStubPokemonRepo() *stubPokemonRepo {
	return &stubPokemonRepo{byUser: make(map[string]*domain.Pokemon)}
}

func (r *stubPokemonRepo) Create(_ context.Context, p *domain.Pokemon) error {
	clone := *p
	r.byUser[p.UserID] = &clone
	return nil
}

func (r *stubPokemonRepo) FindByUserID(_ context.Context, userID string) (*domain.Pokemon, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrPokemonNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPokemonRepo) Update(_ context.Context, p *domain.Pokemon) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *p
	r.byUser[p.UserID] = &clone
	return nil
}

func (r *stubPokemonRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(r.byUser, userID)
	return nil
}

type stubSessionRepo struct {
	byID      map[string]*domain.WorkSession
	createErr error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{byID: make(map[string]*domain.WorkSession)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.WorkSession) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id string) (*domain.WorkSession, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) FindByUserID(_ context.Context, userID string) ([]*domain.WorkSession, error) {
	var out []*domain.WorkSession
	for _, s := range r.byID {
		if s.UserID == userID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, s := range r.byID {
		if s.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}

type stubQuestRepo struct {
	byID map[string]*domain.Quest
}

func newStubQuestRepo() *stubQuestRepo {
	return &stubQuestRepo{byID: make(map[string]*domain.Quest)}
}

func (r *stubQuestRepo) Create(_ context.Context, q *domain.Quest) error {
	clone := *q
	r.byID[q.ID] = &clone
	return nil
}

func (r *stubQuestRepo) FindByID(_ context.Context, id string) (*domain.Quest, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuestRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Quest, error) {
	var out []*domain.Quest
	for _, q := range r.byID {
		if q.UserID == userID {
			clone := *q
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubQuestRepo) Update(_ context.Context, q *domain.Quest) error {
	if _, ok := r.byID[q.ID]; !ok {
		return domain.ErrQuestNotFound
	}
	clone := *q
	r.byID[q.ID] = &clone
	return nil
}

func (r *stubQuestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrQuestNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubQuestRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, q := range r.byID {
		if q.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}

type stubGoalRepo struct {
	byID map[string]*domain.Goal
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{byID: make(map[string]*domain.Goal)}
}

func (r *stubGoalRepo) Create(_ context.Context, g *domain.Goal) error {
	clone := *g
	r.byID[g.ID] = &clone
	return nil
}

func (r *stubGoalRepo) FindByID(_ context.Context, id string) (*domain.Goal, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGoalRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Goal, error) {
	var out []*domain.Goal
	for _, g := range r.byID {
		if g.UserID == userID {
			clone := *g
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubGoalRepo) Update(_ context.Context, g *domain.Goal) error {
	if _, ok := r.byID[g.ID]; !ok {
		return domain.ErrGoalNotFound
	}
	clone := *g
	r.byID[g.ID] = &clone
	return nil
}

func (r *stubGoalRepo) IncrementValue(_ context.Context, id string, delta float64) error {
	g, ok := r.byID[id]
	if !ok {
		return domain.ErrGoalNotFound
	}
	g.CurrentValue += delta
	return nil
}

func (r *stubGoalRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrGoalNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubGoalRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, g := range r.byID {
		if g.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}

// stubDedup is a map-backed IdempotencyStore.
type stubDedup struct {
	seen map[string]string
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]string)}
}

func (d *stubDedup) Get(_ context.Context, key string) (string, error) {
	return d.seen[key], nil
}

func (d *stubDedup) Mark(_ context.Context, key, sessionID string) error {
	d.seen[key] = sessionID
	return nil
}
