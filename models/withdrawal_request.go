package models

import (
	"strings"
	"time"
)

// Withdrawal request lifecycle:
//
//	pending --approve--> approved --complete--> completed
//	pending --reject---> rejected
//
// rejected and completed are terminal.
const (
	WithdrawalPending   = "pending"
	WithdrawalApproved  = "approved"
	WithdrawalRejected  = "rejected"
	WithdrawalCompleted = "completed"
)

// RecoveryPhraseWords is the required word count of a wallet recovery
// phrase. The frontend enforces this too, but the server is authoritative.
const RecoveryPhraseWords = 12

type WithdrawalRequest struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	// Snapshot of the requester at submission time; kept even if the
	// account is later renamed.
	RequesterName  string `gorm:"size:60;not null" json:"requester_name"`
	RequesterEmail string `gorm:"size:191;not null" json:"requester_email"`

	Amount         float64 `gorm:"type:decimal(15,2);not null" json:"amount"`
	WalletType     string  `gorm:"size:50;not null" json:"wallet_type"`
	WalletName     string  `gorm:"size:100;not null" json:"wallet_name"`
	RecoveryPhrase string  `gorm:"type:text;not null" json:"-"`

	// ReferenceID links the request to its ledger transaction.
	ReferenceID string `gorm:"type:varchar(191);not null;uniqueIndex" json:"reference_id"`

	Status      string     `gorm:"type:enum('pending','approved','rejected','completed');not null;default:'pending';index" json:"status"`
	AdminNotes  *string    `gorm:"type:text" json:"admin_notes,omitempty"`
	ProcessedBy *uint      `json:"processed_by,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}

// Terminal reports whether no further status transition is permitted.
func (wr *WithdrawalRequest) Terminal() bool {
	return wr.Status == WithdrawalRejected || wr.Status == WithdrawalCompleted
}

// CanTransition reports whether next is reachable from the current status.
func (wr *WithdrawalRequest) CanTransition(next string) bool {
	switch wr.Status {
	case WithdrawalPending:
		return next == WithdrawalApproved || next == WithdrawalRejected
	case WithdrawalApproved:
		return next == WithdrawalCompleted
	default:
		return false
	}
}

// Transition applies the status change after validating it against the
// state machine, stamping the processing admin and time.
func (wr *WithdrawalRequest) Transition(next string, adminID uint, notes *string) error {
	if !wr.CanTransition(next) {
		return ErrInvalidTransition
	}
	now := time.Now()
	wr.Status = next
	wr.ProcessedBy = &adminID
	wr.ProcessedAt = &now
	if notes != nil && strings.TrimSpace(*notes) != "" {
		wr.AdminNotes = notes
	}
	return nil
}

// ValidRecoveryPhrase reports whether s is exactly RecoveryPhraseWords
// whitespace-separated words.
func ValidRecoveryPhrase(s string) bool {
	return len(strings.Fields(s)) == RecoveryPhraseWords
}
