package service

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smart-hostel/models"
	"smart-hostel/repository"
)

type Action string

const (
	ActionSubmit         Action = "submit"
	ActionViewOwn        Action = "view_own"
	ActionDecide         Action = "decide"
	ActionListAll        Action = "list_all"
	ActionScan           Action = "scan"
	ActionViewActive     Action = "view_active"
	ActionViewStats      Action = "view_stats"
	ActionViewGateEvents Action = "view_gate_events"
)

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID string
	Role   models.Role
}

// Policy decides which caller may perform which action.
type Policy struct {
	users repository.UserRepository
}

func NewPolicy(users repository.UserRepository) *Policy {
	return &Policy{users: users}
}

// Authorize returns nil when caller may perform action.
//
// Scans are allowed for everyone: the gate scanner holds no user session and
// the QR payload itself is the capability. Staff views check the role stored
// on the user record rather than the one in the token.
func (p *Policy) Authorize(ctx context.Context, caller *Caller, action Action) error {
	if action == ActionScan {
		return nil
	}
	if caller == nil || caller.UserID == "" {
		return newError(ErrUnauthorized, "Unauthorized")
	}

	switch action {
	case ActionSubmit, ActionViewOwn:
		return nil

	case ActionDecide, ActionListAll:
		if caller.Role != models.RoleWarden {
			return newError(ErrForbidden, "Unauthorized: Access restricted to wardens")
		}
		return nil

	case ActionViewActive, ActionViewStats, ActionViewGateEvents:
		return p.requireStoredStaff(ctx, caller)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (p *Policy) requireStoredStaff(ctx context.Context, caller *Caller) error {
	denied := newError(ErrForbidden, "Unauthorized: Access restricted to staff")

	id, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		return denied
	}
	user, err := p.users.FindUserByID(ctx, id)
	if err != nil {
		log.Printf("Warning: staff lookup for %s failed: %v", caller.UserID, err)
		return denied
	}
	if user == nil || (user.Role != models.RoleSecurity && user.Role != models.RoleWarden) {
		return denied
	}
	return nil
}
