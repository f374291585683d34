package models

import (
	"errors"
	"testing"
)

func TestReserveWithdrawal(t *testing.T) {
	u := User{CurrentBalance: 100}
	if err := u.ReserveWithdrawal(50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.CurrentBalance != 50 {
		t.Errorf("CurrentBalance = %v, want 50", u.CurrentBalance)
	}
	if u.PendingWithdrawals != 50 {
		t.Errorf("PendingWithdrawals = %v, want 50", u.PendingWithdrawals)
	}
}

func TestReserveWithdrawalInsufficient(t *testing.T) {
	u := User{CurrentBalance: 100}
	err := u.ReserveWithdrawal(150)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if u.CurrentBalance != 100 || u.PendingWithdrawals != 0 {
		t.Error("failed reservation must not mutate the user")
	}
}

func TestReserveWithdrawalNonPositive(t *testing.T) {
	u := User{CurrentBalance: 100}
	for _, amount := range []float64{0, -5} {
		if err := u.ReserveWithdrawal(amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ReserveWithdrawal(%v): expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestReserveWithdrawalExactBalance(t *testing.T) {
	u := User{CurrentBalance: 100}
	if err := u.ReserveWithdrawal(100); err != nil {
		t.Fatalf("reserving the full balance must succeed: %v", err)
	}
	if u.CurrentBalance != 0 {
		t.Errorf("CurrentBalance = %v, want 0", u.CurrentBalance)
	}
}

func TestReserveWithdrawalSubCentConservation(t *testing.T) {
	// A sub-cent amount must be rounded once before both sides move, so
	// balance + reservation always equals the pre-reserve balance.
	u := User{CurrentBalance: 100}
	if err := u.ReserveWithdrawal(10.005); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.PendingWithdrawals != 10.01 {
		t.Errorf("PendingWithdrawals = %v, want 10.01", u.PendingWithdrawals)
	}
	if u.CurrentBalance != 89.99 {
		t.Errorf("CurrentBalance = %v, want 89.99", u.CurrentBalance)
	}
	if sum := round2(u.CurrentBalance + u.PendingWithdrawals); sum != 100 {
		t.Errorf("balance + reservation = %v, want 100", sum)
	}
}

func TestReleaseWithdrawal(t *testing.T) {
	u := User{CurrentBalance: 50, PendingWithdrawals: 50}
	u.ReleaseWithdrawal(50)
	if u.CurrentBalance != 100 {
		t.Errorf("CurrentBalance = %v, want 100", u.CurrentBalance)
	}
	if u.PendingWithdrawals != 0 {
		t.Errorf("PendingWithdrawals = %v, want 0", u.PendingWithdrawals)
	}
}

func TestSettleWithdrawal(t *testing.T) {
	u := User{CurrentBalance: 50, PendingWithdrawals: 50, TotalWithdrawals: 20}
	u.SettleWithdrawal(50)
	if u.CurrentBalance != 50 {
		t.Errorf("CurrentBalance = %v, want unchanged 50", u.CurrentBalance)
	}
	if u.PendingWithdrawals != 0 {
		t.Errorf("PendingWithdrawals = %v, want 0", u.PendingWithdrawals)
	}
	if u.TotalWithdrawals != 70 {
		t.Errorf("TotalWithdrawals = %v, want 70", u.TotalWithdrawals)
	}
}

func TestReserveSequenceCannotOverdraw(t *testing.T) {
	// Sequential reservations stand in for the serialized order the row
	// lock imposes on concurrent submissions: the accepted total can
	// never exceed the starting balance.
	u := User{CurrentBalance: 100}
	accepted := 0.0
	for i := 0; i < 5; i++ {
		if err := u.ReserveWithdrawal(40); err == nil {
			accepted += 40
		}
	}
	if accepted > 100 {
		t.Errorf("accepted %v total against balance 100", accepted)
	}
	if u.CurrentBalance < 0 {
		t.Errorf("CurrentBalance went negative: %v", u.CurrentBalance)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{10.005, 10.01},
		{10.004, 10.0},
		{-10.005, -10.01},
		{0.1 + 0.2, 0.3},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
