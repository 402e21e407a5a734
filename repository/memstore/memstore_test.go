package memstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"smart-hostel/models"
	"smart-hostel/repository"
)

func TestOutpassTransitionIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := NewOutpassRepository()
	req, _ := repo.Create(ctx, &models.OutpassRequest{StudentID: "s1", Status: models.StatusPending, CreatedAt: time.Now()})

	ok, err := repo.Transition(ctx, req.ID, models.PhaseApproved, models.OutpassChange{ScannedExit: true})
	if err != nil || ok {
		t.Fatalf("transition from the wrong phase must not apply, got %v %v", ok, err)
	}

	ok, err = repo.Transition(ctx, req.ID, models.PhasePending, models.OutpassChange{Status: models.StatusApproved, QRCode: "qr"})
	if err != nil || !ok {
		t.Fatalf("expected approval to apply, got %v %v", ok, err)
	}

	stored, _ := repo.FindByID(ctx, req.ID)
	if stored.Phase() != models.PhaseApproved || stored.QRCode != "qr" {
		t.Fatalf("unexpected stored request %+v", stored)
	}
}

func TestOutpassTransitionRace(t *testing.T) {
	ctx := context.Background()
	repo := NewOutpassRepository()
	req, _ := repo.Create(ctx, &models.OutpassRequest{StudentID: "s1", Status: models.StatusApproved, CreatedAt: time.Now()})

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			now := time.Now()
			ok, err := repo.Transition(ctx, req.ID, models.PhaseApproved, models.OutpassChange{ScannedExit: true, ExitTime: &now})
			if err != nil {
				t.Errorf("transition: %v", err)
			}
			if ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
}

func TestOutpassReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewOutpassRepository()
	req, _ := repo.Create(ctx, &models.OutpassRequest{StudentID: "s1", Status: models.StatusPending, CreatedAt: time.Now()})

	got, _ := repo.FindByID(ctx, req.ID)
	got.Status = models.StatusRejected

	again, _ := repo.FindByID(ctx, req.ID)
	if again.Status != models.StatusPending {
		t.Fatalf("mutating a read leaked into the store")
	}
}

func TestOutpassFindOrderAndScope(t *testing.T) {
	ctx := context.Background()
	repo := NewOutpassRepository()
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	for i, student := range []string{"s1", "s2", "s1", "s1"} {
		repo.Create(ctx, &models.OutpassRequest{StudentID: student, Status: models.StatusPending, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}

	own, _ := repo.Find(ctx, models.OutpassFilter{StudentID: "s1"})
	if len(own) != 3 {
		t.Fatalf("expected 3 requests for s1, got %d", len(own))
	}
	for i := 1; i < len(own); i++ {
		if own[i].CreatedAt.After(own[i-1].CreatedAt) {
			t.Fatalf("requests not sorted newest first")
		}
	}

	limited, _ := repo.Find(ctx, models.OutpassFilter{Limit: 2})
	if len(limited) != 2 || !limited[0].CreatedAt.Equal(base.Add(3*time.Minute)) {
		t.Fatalf("unexpected limited result %+v", limited)
	}

	n, _ := repo.Count(ctx, models.OutpassFilter{StudentID: "s2"})
	if n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}

	missing, _ := repo.FindApprovedForStudent(ctx, own[0].ID, "s1")
	if missing != nil {
		t.Fatalf("pending request must not resolve as approved")
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user, err := repo.CreateUser(ctx, &models.User{Username: "asha", Email: "asha@hostel.test", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.CreateUser(ctx, &models.User{Email: "ASHA@hostel.test"}); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}

	byID, _ := repo.FindUserByID(ctx, user.ID)
	byEmail, _ := repo.FindUserByEmail(ctx, "asha@hostel.test")
	if byID == nil || byEmail == nil || byID.Username != "asha" || byEmail.ID != user.ID {
		t.Fatalf("lookups failed: %+v %+v", byID, byEmail)
	}
	if none, _ := repo.FindUserByEmail(ctx, "nobody@hostel.test"); none != nil {
		t.Fatalf("expected nil for unknown email")
	}
}

func TestGateEventsRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewGateEventRepository()
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		repo.Create(ctx, &models.GateEvent{ID: id, ScannedAt: base.Add(time.Duration(i) * time.Minute)})
	}

	events, _ := repo.Recent(ctx, 2)
	if len(events) != 2 || events[0].ID != "c" || events[1].ID != "b" {
		t.Fatalf("unexpected events %+v", events)
	}
	all, _ := repo.Recent(ctx, 0)
	if len(all) != 3 {
		t.Fatalf("expected all events, got %d", len(all))
	}
}
