package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OutpassStatus string

const (
	StatusPending  OutpassStatus = "pending"
	StatusApproved OutpassStatus = "approved"
	StatusRejected OutpassStatus = "rejected"
)

// Phase is the lifecycle state of an outpass. It is derived from the persisted
// status and scan flags; it is never stored on its own.
type Phase string

const (
	PhasePending  Phase = "pending"
	PhaseApproved Phase = "approved"
	PhaseRejected Phase = "rejected"
	PhaseExited   Phase = "exited"
	PhaseReturned Phase = "returned"
	PhaseUnknown  Phase = "unknown"
)

var phaseTransitions = map[Phase][]Phase{
	PhasePending:  {PhaseApproved, PhaseRejected},
	PhaseApproved: {PhaseExited},
	PhaseExited:   {PhaseReturned},
}

// CanTransition reports whether the lifecycle allows moving from one phase to another.
func CanTransition(from, to Phase) bool {
	for _, next := range phaseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OutpassRequest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID    string             `json:"studentId" bson:"studentId"`
	Reason       string             `json:"reason" bson:"reason"`
	FromTime     time.Time          `json:"fromTime" bson:"fromTime"`
	ToTime       time.Time          `json:"toTime" bson:"toTime"`
	Status       OutpassStatus      `json:"status" bson:"status"`
	ScannedExit  bool               `json:"scannedExit" bson:"scannedExit"`
	ScannedEntry bool               `json:"scannedEntry" bson:"scannedEntry"`
	ExitTime     *time.Time         `json:"exitTime" bson:"exitTime"`
	EntryTime    *time.Time         `json:"entryTime" bson:"entryTime"`
	LateReturn   *bool              `json:"lateReturn,omitempty" bson:"lateReturn,omitempty"`
	QRCode       string             `json:"qrCode,omitempty" bson:"qrCode,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    *time.Time         `json:"updatedAt" bson:"updatedAt"`
}

func (o *OutpassRequest) Phase() Phase {
	switch o.Status {
	case StatusPending:
		return PhasePending
	case StatusRejected:
		return PhaseRejected
	case StatusApproved:
		switch {
		case o.ScannedEntry:
			return PhaseReturned
		case o.ScannedExit:
			return PhaseExited
		default:
			return PhaseApproved
		}
	}
	return PhaseUnknown
}

// OutpassChange is the set of fields written by one lifecycle transition.
type OutpassChange struct {
	Status       OutpassStatus
	QRCode       string
	ScannedExit  bool
	ExitTime     *time.Time
	ScannedEntry bool
	EntryTime    *time.Time
	LateReturn   *bool
	UpdatedAt    time.Time
}

// Apply copies the change onto o. Zero values leave the field untouched.
func (ch OutpassChange) Apply(o *OutpassRequest) {
	if ch.Status != "" {
		o.Status = ch.Status
	}
	if ch.QRCode != "" {
		o.QRCode = ch.QRCode
	}
	if ch.ScannedExit {
		o.ScannedExit = true
		o.ExitTime = ch.ExitTime
	}
	if ch.ScannedEntry {
		o.ScannedEntry = true
		o.EntryTime = ch.EntryTime
		o.LateReturn = ch.LateReturn
	}
	if !ch.UpdatedAt.IsZero() {
		updated := ch.UpdatedAt
		o.UpdatedAt = &updated
	}
}

// OutpassFilter selects outpasses for the query layer. Unset fields match everything.
type OutpassFilter struct {
	StudentID    string
	Status       OutpassStatus
	ScannedExit  *bool
	ScannedEntry *bool
	LateReturn   *bool
	HasQRCode    bool
	Limit        int64
}

func (f OutpassFilter) Matches(o *OutpassRequest) bool {
	if f.StudentID != "" && o.StudentID != f.StudentID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.ScannedExit != nil && o.ScannedExit != *f.ScannedExit {
		return false
	}
	if f.ScannedEntry != nil && o.ScannedEntry != *f.ScannedEntry {
		return false
	}
	if f.LateReturn != nil && (o.LateReturn == nil || *o.LateReturn != *f.LateReturn) {
		return false
	}
	if f.HasQRCode && o.QRCode == "" {
		return false
	}
	return true
}

// CurrentlyOutFilter matches approved outpasses whose holder has left and not returned.
func CurrentlyOutFilter(studentID string) OutpassFilter {
	exited, returned := true, false
	return OutpassFilter{
		StudentID:    studentID,
		Status:       StatusApproved,
		ScannedExit:  &exited,
		ScannedEntry: &returned,
	}
}

type OutpassCreatePayload struct {
	Reason   string `json:"reason" validate:"required"`
	FromTime string `json:"fromTime" validate:"required,isotime"`
	ToTime   string `json:"toTime" validate:"required,isotime"`
}

type OutpassDecisionPayload struct {
	Status string `json:"status" validate:"required,decision"`
}

// QRScanPayload is the decoded QR content as sent by a gate scanner.
type QRScanPayload struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
}

type QRImageScanPayload struct {
	Image string `json:"image" validate:"required"`
}

type OutpassStats struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Approved     int64 `json:"approved"`
	Rejected     int64 `json:"rejected"`
	LateReturns  int64 `json:"late"`
	CurrentlyOut int64 `json:"active"`
}
