package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smart-hostel/models"
	util "smart-hostel/pkg/utils"
	"smart-hostel/repository"
)

const unknownStudent = "Unknown"

// OutpassView is the JSON shape of an outpass at the API boundary.
type OutpassView struct {
	ID           string               `json:"_id" example:"665f1c2e8b3f4a2d9c0e1a77"`
	StudentID    string               `json:"studentId" example:"665f1c2e8b3f4a2d9c0e1a00"`
	StudentName  string               `json:"studentName,omitempty" example:"asha"`
	StudentEmail string               `json:"studentEmail,omitempty" example:"asha@hostel.test"`
	Reason       string               `json:"reason" example:"home visit"`
	FromTime     string               `json:"fromTime" example:"2026-10-16T09:00:00Z"`
	ToTime       string               `json:"toTime" example:"2026-10-16T20:00:00Z"`
	Status       models.OutpassStatus `json:"status" example:"approved"`
	ScannedExit  bool                 `json:"scannedExit"`
	ScannedEntry bool                 `json:"scannedEntry"`
	ExitTime     *string              `json:"exitTime"`
	EntryTime    *string              `json:"entryTime"`
	LateReturn   *bool                `json:"lateReturn,omitempty"`
	QRCode       string               `json:"qrCode,omitempty"`
	CreatedAt    string               `json:"createdAt" example:"2026-10-15T12:00:00Z"`
	UpdatedAt    *string              `json:"updatedAt"`
}

func NewOutpassView(o *models.OutpassRequest) OutpassView {
	return OutpassView{
		ID:           o.ID.Hex(),
		StudentID:    o.StudentID,
		Reason:       o.Reason,
		FromTime:     util.FormatTimestamp(o.FromTime),
		ToTime:       util.FormatTimestamp(o.ToTime),
		Status:       o.Status,
		ScannedExit:  o.ScannedExit,
		ScannedEntry: o.ScannedEntry,
		ExitTime:     optionalTimestamp(o.ExitTime),
		EntryTime:    optionalTimestamp(o.EntryTime),
		LateReturn:   o.LateReturn,
		QRCode:       o.QRCode,
		CreatedAt:    util.FormatTimestamp(o.CreatedAt),
		UpdatedAt:    optionalTimestamp(o.UpdatedAt),
	}
}

func optionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := util.FormatTimestamp(*t)
	return &s
}

// Projector answers the read side. Student queries are always scoped to the
// caller; staff queries are enriched with the requester's identity.
type Projector struct {
	outpasses repository.OutpassRepository
	users     repository.UserRepository
	events    repository.GateEventRepository
}

func NewProjector(outpasses repository.OutpassRepository, users repository.UserRepository, events repository.GateEventRepository) *Projector {
	return &Projector{outpasses: outpasses, users: users, events: events}
}

func (p *Projector) ListOwn(ctx context.Context, studentID string) ([]OutpassView, error) {
	return p.list(ctx, models.OutpassFilter{StudentID: studentID}, false)
}

// ListOwnActive lists the caller's outpasses that are out and not yet back.
func (p *Projector) ListOwnActive(ctx context.Context, studentID string) ([]OutpassView, error) {
	return p.list(ctx, models.CurrentlyOutFilter(studentID), false)
}

func (p *Projector) ListOwnApproved(ctx context.Context, studentID string) ([]OutpassView, error) {
	return p.list(ctx, models.OutpassFilter{StudentID: studentID, Status: models.StatusApproved}, false)
}

// CurrentQR returns the QR of the newest approved outpass that has not been
// used for re-entry yet.
func (p *Projector) CurrentQR(ctx context.Context, studentID string) (*models.QRCodeResponse, error) {
	notReturned := false
	requests, err := p.outpasses.Find(ctx, models.OutpassFilter{
		StudentID:    studentID,
		Status:       models.StatusApproved,
		ScannedEntry: &notReturned,
		HasQRCode:    true,
		Limit:        1,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch current QR: %w", err)
	}
	if len(requests) == 0 {
		return nil, newError(ErrNotFound, "No approved outpass or QR available")
	}

	current := requests[0]
	return &models.QRCodeResponse{
		ID:     current.ID.Hex(),
		QRCode: current.QRCode,
		ToTime: util.FormatTimestamp(current.ToTime),
	}, nil
}

func (p *Projector) ListAll(ctx context.Context) ([]OutpassView, error) {
	return p.list(ctx, models.OutpassFilter{}, true)
}

// ListActive lists every student currently outside the hostel.
func (p *Projector) ListActive(ctx context.Context) ([]OutpassView, error) {
	return p.list(ctx, models.CurrentlyOutFilter(""), true)
}

func (p *Projector) Stats(ctx context.Context) (*models.OutpassStats, error) {
	late := true
	stats := &models.OutpassStats{}
	counts := []struct {
		dst    *int64
		filter models.OutpassFilter
	}{
		{&stats.Total, models.OutpassFilter{}},
		{&stats.Pending, models.OutpassFilter{Status: models.StatusPending}},
		{&stats.Approved, models.OutpassFilter{Status: models.StatusApproved}},
		{&stats.Rejected, models.OutpassFilter{Status: models.StatusRejected}},
		{&stats.LateReturns, models.OutpassFilter{LateReturn: &late}},
		{&stats.CurrentlyOut, models.CurrentlyOutFilter("")},
	}
	for _, c := range counts {
		n, err := p.outpasses.Count(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("compute outpass stats: %w", err)
		}
		*c.dst = n
	}
	return stats, nil
}

func (p *Projector) GateEvents(ctx context.Context, limit int64) ([]models.GateEvent, error) {
	events, err := p.events.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch gate events: %w", err)
	}
	return events, nil
}

func (p *Projector) list(ctx context.Context, filter models.OutpassFilter, enrich bool) ([]OutpassView, error) {
	requests, err := p.outpasses.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list outpasses: %w", err)
	}

	views := make([]OutpassView, 0, len(requests))
	var names *studentDirectory
	if enrich {
		names = &studentDirectory{users: p.users, seen: map[string]studentInfo{}}
	}
	for i := range requests {
		view := NewOutpassView(&requests[i])
		if names != nil {
			info := names.lookup(ctx, view.StudentID)
			view.StudentName, view.StudentEmail = info.name, info.email
		}
		views = append(views, view)
	}
	return views, nil
}

type studentInfo struct {
	name  string
	email string
}

// studentDirectory memoizes user lookups for the duration of one query.
type studentDirectory struct {
	users repository.UserRepository
	seen  map[string]studentInfo
}

func (d *studentDirectory) lookup(ctx context.Context, studentID string) studentInfo {
	if info, ok := d.seen[studentID]; ok {
		return info
	}

	info := studentInfo{name: unknownStudent, email: unknownStudent}
	if id, err := primitive.ObjectIDFromHex(studentID); err == nil {
		user, err := d.users.FindUserByID(ctx, id)
		switch {
		case err != nil:
			log.Printf("Warning: could not resolve student %s: %v", studentID, err)
		case user != nil:
			if user.Username != "" {
				info.name = user.Username
			}
			if user.Email != "" {
				info.email = user.Email
			}
		}
	}
	d.seen[studentID] = info
	return info
}
