// Package memstore keeps the repositories in process memory. It backs
// STORE_DRIVER=memory and the tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smart-hostel/models"
	"smart-hostel/repository"
)

type OutpassRepository struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]*models.OutpassRequest
}

func NewOutpassRepository() *OutpassRepository {
	return &OutpassRepository{requests: make(map[primitive.ObjectID]*models.OutpassRequest)}
}

var _ repository.OutpassRepository = (*OutpassRepository)(nil)

func (r *OutpassRepository) Create(_ context.Context, req *models.OutpassRequest) (*models.OutpassRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	r.requests[req.ID] = cloneOutpass(req)
	return req, nil
}

func (r *OutpassRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.OutpassRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req, ok := r.requests[id]; ok {
		return cloneOutpass(req), nil
	}
	return nil, nil
}

func (r *OutpassRepository) FindApprovedForStudent(_ context.Context, id primitive.ObjectID, studentID string) (*models.OutpassRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.StudentID != studentID || req.Status != models.StatusApproved {
		return nil, nil
	}
	return cloneOutpass(req), nil
}

func (r *OutpassRepository) Find(_ context.Context, filter models.OutpassFilter) ([]models.OutpassRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.OutpassRequest{}
	for _, req := range r.requests {
		if filter.Matches(req) {
			out = append(out, *cloneOutpass(req))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *OutpassRepository) Count(_ context.Context, filter models.OutpassFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, req := range r.requests {
		if filter.Matches(req) {
			n++
		}
	}
	return n, nil
}

func (r *OutpassRepository) Transition(_ context.Context, id primitive.ObjectID, from models.Phase, change models.OutpassChange) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.Phase() != from {
		return false, nil
	}
	change.Apply(req)
	return true, nil
}

func cloneOutpass(src *models.OutpassRequest) *models.OutpassRequest {
	dst := *src
	dst.ExitTime = cloneTime(src.ExitTime)
	dst.EntryTime = cloneTime(src.EntryTime)
	dst.UpdatedAt = cloneTime(src.UpdatedAt)
	if src.LateReturn != nil {
		late := *src.LateReturn
		dst.LateReturn = &late
	}
	return &dst
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]models.User)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, repository.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return user, nil
}

func (r *UserRepository) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

type GateEventRepository struct {
	mu     sync.Mutex
	events []models.GateEvent
}

func NewGateEventRepository() *GateEventRepository {
	return &GateEventRepository{}
}

var _ repository.GateEventRepository = (*GateEventRepository)(nil)

func (r *GateEventRepository) Create(_ context.Context, event *models.GateEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, *event)
	return nil
}

// Recent returns the newest events first. Events with equal timestamps keep
// reverse insertion order.
func (r *GateEventRepository) Recent(_ context.Context, limit int64) ([]models.GateEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.GateEvent, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		out = append(out, r.events[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScannedAt.After(out[j].ScannedAt)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}
