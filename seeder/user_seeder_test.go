package seeder

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smart-hostel/pkg/token"
	"smart-hostel/repository/memstore"
)

func TestSeedUsersIsIdempotent(t *testing.T) {
	ctx := context.Background()
	users := memstore.NewUserRepository()
	maker, _ := token.NewJWTMaker("seed-secret")

	if err := SeedUsers(ctx, users, maker, time.Hour); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	first, _ := users.FindUserByEmail(ctx, "warden@hostel.local")
	if first == nil {
		t.Fatalf("warden not seeded")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(first.Password), []byte(DemoPassword)); err != nil {
		t.Fatalf("stored password is not a bcrypt hash of the demo password: %v", err)
	}

	if err := SeedUsers(ctx, users, nil, time.Hour); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	again, _ := users.FindUserByEmail(ctx, "warden@hostel.local")
	if again.ID != first.ID {
		t.Fatalf("seeding twice must not recreate users")
	}
	for _, demo := range DemoUsers {
		if u, _ := users.FindUserByEmail(ctx, demo.Email); u == nil || u.Role != demo.Role {
			t.Fatalf("missing or wrong demo user %s: %+v", demo.Email, u)
		}
	}
}
