package models

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{WithdrawalPending, WithdrawalApproved, true},
		{WithdrawalPending, WithdrawalRejected, true},
		{WithdrawalPending, WithdrawalCompleted, false},
		{WithdrawalPending, WithdrawalPending, false},
		{WithdrawalApproved, WithdrawalCompleted, true},
		{WithdrawalApproved, WithdrawalRejected, false},
		{WithdrawalApproved, WithdrawalPending, false},
		{WithdrawalRejected, WithdrawalApproved, false},
		{WithdrawalRejected, WithdrawalCompleted, false},
		{WithdrawalCompleted, WithdrawalPending, false},
		{WithdrawalCompleted, WithdrawalApproved, false},
	}
	for _, c := range cases {
		wr := WithdrawalRequest{Status: c.from}
		if got := wr.CanTransition(c.to); got != c.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTransitionStampsProcessing(t *testing.T) {
	notes := "looks good"
	wr := WithdrawalRequest{Status: WithdrawalPending}
	if err := wr.Transition(WithdrawalApproved, 7, &notes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wr.Status != WithdrawalApproved {
		t.Errorf("status = %s, want approved", wr.Status)
	}
	if wr.ProcessedAt == nil {
		t.Error("ProcessedAt not set")
	}
	if wr.ProcessedBy == nil || *wr.ProcessedBy != 7 {
		t.Error("ProcessedBy not set to reviewing admin")
	}
	if wr.AdminNotes == nil || *wr.AdminNotes != "looks good" {
		t.Error("AdminNotes not recorded")
	}
}

func TestTransitionWithoutNotes(t *testing.T) {
	wr := WithdrawalRequest{Status: WithdrawalPending}
	if err := wr.Transition(WithdrawalApproved, 1, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wr.AdminNotes != nil {
		t.Error("AdminNotes should stay absent when none provided")
	}
}

func TestTransitionOutOfTerminalState(t *testing.T) {
	wr := WithdrawalRequest{Status: WithdrawalRejected}
	err := wr.Transition(WithdrawalApproved, 1, nil)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if wr.Status != WithdrawalRejected {
		t.Error("terminal status must not change on failed transition")
	}
	if wr.ProcessedAt != nil {
		t.Error("failed transition must not stamp ProcessedAt")
	}
}

func TestTransitionIdempotence(t *testing.T) {
	// Re-reviewing with the same target status must fail, never
	// double-apply.
	wr := WithdrawalRequest{Status: WithdrawalPending}
	if err := wr.Transition(WithdrawalRejected, 1, nil); err != nil {
		t.Fatalf("first transition: %v", err)
	}
	if err := wr.Transition(WithdrawalRejected, 1, nil); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second transition: expected ErrInvalidTransition, got %v", err)
	}
}

func TestValidRecoveryPhrase(t *testing.T) {
	cases := []struct {
		phrase string
		want   bool
	}{
		{"alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima", true},
		{"  alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima  ", true},
		{"alpha\tbravo charlie delta echo foxtrot golf hotel india juliet kilo lima", true},
		{"alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo", false},
		{"alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike", false},
		{"", false},
		{"    ", false},
	}
	for _, c := range cases {
		if got := ValidRecoveryPhrase(c.phrase); got != c.want {
			t.Errorf("ValidRecoveryPhrase(%q) = %v, want %v", c.phrase, got, c.want)
		}
	}
}
