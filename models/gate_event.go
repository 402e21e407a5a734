package models

import "time"

type ScanOutcome string

const (
	OutcomeExit      ScanOutcome = "exit"
	OutcomeEntry     ScanOutcome = "entry"
	OutcomeLateEntry ScanOutcome = "late_entry"
	OutcomeRejected  ScanOutcome = "rejected"
)

// DenialReason explains a rejected scan.
type DenialReason string

const (
	DenialNotFound         DenialReason = "not_found"
	DenialTooEarly         DenialReason = "too_early"
	DenialExpired          DenialReason = "expired"
	DenialAlreadyCompleted DenialReason = "already_completed"
	DenialConflict         DenialReason = "conflict"
	DenialUnreadable       DenialReason = "unreadable"
)

// GateEvent records one scan attempt at a gate, accepted or not.
type GateEvent struct {
	ID        string       `json:"id" bson:"_id"`
	OutpassID string       `json:"outpassId" bson:"outpassId"`
	StudentID string       `json:"studentId" bson:"studentId"`
	DeviceID  string       `json:"deviceId,omitempty" bson:"deviceId,omitempty"`
	Outcome   ScanOutcome  `json:"outcome" bson:"outcome"`
	Reason    DenialReason `json:"reason,omitempty" bson:"reason,omitempty"`
	Message   string       `json:"message" bson:"message"`
	ScannedAt time.Time    `json:"scannedAt" bson:"scannedAt"`
}
