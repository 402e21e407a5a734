package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"smart-hostel/models"
	"smart-hostel/pkg/qr"
	util "smart-hostel/pkg/utils"
	"smart-hostel/repository"
)

const (
	msgExit      = "Exit successful. Have a safe trip!"
	msgEntry     = "Welcome back! Entry successful."
	msgLateEntry = "Entry recorded. Warning: You returned LATE."
)

// QREncoder renders the capability payload issued on approval.
type QREncoder interface {
	Encode(p qr.Payload) (string, error)
}

// QRCodec also reads payloads back from scanned images.
type QRCodec interface {
	QREncoder
	Decode(encoded string) (qr.Payload, error)
}

// ScanRequest is what a gate scanner submits: the decoded QR payload and,
// when gate devices are configured, the device that read it.
type ScanRequest struct {
	ID        string
	StudentID string
	DeviceID  string
}

type ScanResult struct {
	Outcome models.ScanOutcome
	Message string
	Request *models.OutpassRequest
}

type Option func(*OutpassService)

// WithClock overrides the service clock used for scan and transition times.
func WithClock(clock func() time.Time) Option {
	return func(s *OutpassService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLocation sets the zone for zone-less timestamps and calendar date checks.
func WithLocation(loc *time.Location) Option {
	return func(s *OutpassService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// OutpassService owns every state change of an outpass request.
type OutpassService struct {
	outpasses repository.OutpassRepository
	events    repository.GateEventRepository
	qr        QRCodec
	now       func() time.Time
	loc       *time.Location
}

func NewOutpassService(outpasses repository.OutpassRepository, events repository.GateEventRepository, codec QRCodec, opts ...Option) *OutpassService {
	s := &OutpassService{
		outpasses: outpasses,
		events:    events,
		qr:        codec,
		now:       time.Now,
		loc:       time.UTC,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Submit creates a pending request for the student.
func (s *OutpassService) Submit(ctx context.Context, studentID string, payload models.OutpassCreatePayload) (*models.OutpassRequest, error) {
	if studentID == "" {
		return nil, newError(ErrUnauthorized, "Unauthorized")
	}

	payload.Reason = strings.TrimSpace(payload.Reason)
	if errs := util.ValidateStruct(payload); errs != nil {
		return nil, &Error{Kind: ErrValidation, Msg: "All fields are required", Fields: errs}
	}

	fromTime, err := util.ParseTimestamp(payload.FromTime, s.loc)
	if err != nil {
		return nil, newError(ErrValidation, "Invalid fromTime: %v", err)
	}
	toTime, err := util.ParseTimestamp(payload.ToTime, s.loc)
	if err != nil {
		return nil, newError(ErrValidation, "Invalid toTime: %v", err)
	}

	req := &models.OutpassRequest{
		StudentID: studentID,
		Reason:    payload.Reason,
		FromTime:  fromTime,
		ToTime:    toTime,
		Status:    models.StatusPending,
		CreatedAt: s.now(),
	}
	created, err := s.outpasses.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submit outpass: %w", err)
	}

	log.Printf("Outpass %s submitted by student %s", created.ID.Hex(), studentID)
	return created, nil
}

// Decide records the single approve/reject decision on a pending request.
// Approval issues the QR capability in the same conditional write.
func (s *OutpassService) Decide(ctx context.Context, requestID string, decision string) (*models.OutpassRequest, error) {
	var target models.Phase
	switch models.OutpassStatus(decision) {
	case models.StatusApproved:
		target = models.PhaseApproved
	case models.StatusRejected:
		target = models.PhaseRejected
	default:
		return nil, newError(ErrValidation, "Invalid status")
	}

	id, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, newError(ErrNotFound, "Request not found")
	}

	req, err := s.outpasses.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("decide outpass: %w", err)
	}
	if req == nil {
		return nil, newError(ErrNotFound, "Request not found")
	}

	from := req.Phase()
	if !models.CanTransition(from, target) {
		return nil, newError(ErrConflict, "Request already %s", req.Status)
	}

	change := models.OutpassChange{
		Status:    models.OutpassStatus(decision),
		UpdatedAt: s.now(),
	}
	if target == models.PhaseApproved {
		code, err := s.qr.Encode(qr.Payload{ID: req.ID.Hex(), StudentID: req.StudentID})
		if err != nil {
			return nil, fmt.Errorf("issue QR code: %w", err)
		}
		change.QRCode = code
	}

	ok, err := s.outpasses.Transition(ctx, id, from, change)
	if err != nil {
		return nil, fmt.Errorf("decide outpass: %w", err)
	}
	if !ok {
		return nil, newError(ErrConflict, "Request was decided by someone else")
	}

	change.Apply(req)
	log.Printf("Outpass %s %s", req.ID.Hex(), req.Status)
	return req, nil
}

// Scan verifies a gate scan at the current time.
func (s *OutpassService) Scan(ctx context.Context, scan ScanRequest) (*ScanResult, error) {
	return s.ScanAt(ctx, scan, s.now())
}

// ScanAt runs the exit/entry protocol for a scan made at the given time.
func (s *OutpassService) ScanAt(ctx context.Context, scan ScanRequest, at time.Time) (*ScanResult, error) {
	result, err := s.scan(ctx, scan, at)
	s.recordScan(ctx, scan, at, result, err)
	return result, err
}

func (s *OutpassService) scan(ctx context.Context, scan ScanRequest, at time.Time) (*ScanResult, error) {
	id, err := primitive.ObjectIDFromHex(scan.ID)
	if err != nil || scan.StudentID == "" {
		return nil, newError(ErrNotFound, "Outpass not found or not approved")
	}

	req, err := s.outpasses.FindApprovedForStudent(ctx, id, scan.StudentID)
	if err != nil {
		return nil, fmt.Errorf("verify scan: %w", err)
	}
	if req == nil {
		return nil, newError(ErrNotFound, "Outpass not found or not approved")
	}

	switch phase := req.Phase(); phase {
	case models.PhaseApproved:
		if !util.SameOrLaterDate(at, req.FromTime, s.loc) {
			return nil, newError(ErrTooEarly, "Valid only from %s", req.FromTime.In(s.loc).Format("2006-01-02"))
		}
		if at.After(req.ToTime) {
			return nil, newError(ErrExpired, "QR Expired: You missed your exit window.")
		}
		exitTime := at
		change := models.OutpassChange{ScannedExit: true, ExitTime: &exitTime, UpdatedAt: at}
		if err := s.transition(ctx, req, phase, change); err != nil {
			return nil, err
		}
		return &ScanResult{Outcome: models.OutcomeExit, Message: msgExit, Request: req}, nil

	case models.PhaseExited:
		entryTime, late := at, at.After(req.ToTime)
		change := models.OutpassChange{ScannedEntry: true, EntryTime: &entryTime, LateReturn: &late, UpdatedAt: at}
		if err := s.transition(ctx, req, phase, change); err != nil {
			return nil, err
		}
		if late {
			return &ScanResult{Outcome: models.OutcomeLateEntry, Message: msgLateEntry, Request: req}, nil
		}
		return &ScanResult{Outcome: models.OutcomeEntry, Message: msgEntry, Request: req}, nil

	case models.PhaseReturned:
		return nil, newError(ErrAlreadyCompleted, "Outpass already completed.")
	}
	return nil, newError(ErrConflict, "Outpass is in an unexpected state")
}

func (s *OutpassService) transition(ctx context.Context, req *models.OutpassRequest, from models.Phase, change models.OutpassChange) error {
	ok, err := s.outpasses.Transition(ctx, req.ID, from, change)
	if err != nil {
		return fmt.Errorf("verify scan: %w", err)
	}
	if !ok {
		return newError(ErrConflict, "Outpass was scanned concurrently, please scan again")
	}
	change.Apply(req)
	return nil
}

// ScanImage decodes a scanned QR image and verifies it like Scan.
func (s *OutpassService) ScanImage(ctx context.Context, image string, deviceID string) (*ScanResult, error) {
	payload, err := s.qr.Decode(image)
	if err != nil {
		at := s.now()
		unreadable := newError(ErrValidation, "Unreadable QR code")
		s.recordScan(ctx, ScanRequest{DeviceID: deviceID}, at, nil, unreadable)
		return nil, unreadable
	}
	return s.Scan(ctx, ScanRequest{ID: payload.ID, StudentID: payload.StudentID, DeviceID: deviceID})
}

func (s *OutpassService) recordScan(ctx context.Context, scan ScanRequest, at time.Time, result *ScanResult, scanErr error) {
	if s.events == nil {
		return
	}

	event := &models.GateEvent{
		ID:        uuid.NewString(),
		OutpassID: scan.ID,
		StudentID: scan.StudentID,
		DeviceID:  scan.DeviceID,
		ScannedAt: at,
	}
	if result != nil {
		event.Outcome = result.Outcome
		event.Message = result.Message
	} else {
		event.Outcome = models.OutcomeRejected
		event.Reason = denialReason(scanErr)
		event.Message = Message(scanErr, "Internal error")
	}

	if err := s.events.Create(ctx, event); err != nil {
		log.Printf("Warning: failed to record gate event for outpass %s: %v", scan.ID, err)
	}
}

func denialReason(err error) models.DenialReason {
	switch {
	case errors.Is(err, ErrNotFound):
		return models.DenialNotFound
	case errors.Is(err, ErrTooEarly):
		return models.DenialTooEarly
	case errors.Is(err, ErrExpired):
		return models.DenialExpired
	case errors.Is(err, ErrAlreadyCompleted):
		return models.DenialAlreadyCompleted
	case errors.Is(err, ErrConflict):
		return models.DenialConflict
	case errors.Is(err, ErrValidation):
		return models.DenialUnreadable
	}
	return ""
}
