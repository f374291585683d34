package models

import (
	"errors"
	"testing"
)

func TestApplyToUserIncrements(t *testing.T) {
	cases := []struct {
		txType           string
		balance          float64
		wantBalance      float64
		wantDeposits     float64
		wantWithdrawals  float64
		wantProfit       float64
	}{
		{TxDeposit, 100, 150, 50, 0, 0},
		{TxProfit, 100, 150, 0, 0, 50},
		{TxBonus, 100, 150, 0, 0, 0},
		{TxRefund, 100, 150, 0, 0, 0},
		{TxWithdrawal, 100, 50, 0, 50, 0},
		{TxInvestment, 100, 50, 0, 0, 0},
		{TxFee, 100, 50, 0, 0, 0},
	}
	for _, c := range cases {
		u := User{CurrentBalance: c.balance}
		tx := Transaction{Type: c.txType, Amount: 50}
		if err := tx.ApplyToUser(&u); err != nil {
			t.Errorf("%s: unexpected error: %v", c.txType, err)
			continue
		}
		if u.CurrentBalance != c.wantBalance {
			t.Errorf("%s: CurrentBalance = %v, want %v", c.txType, u.CurrentBalance, c.wantBalance)
		}
		if u.TotalDeposits != c.wantDeposits {
			t.Errorf("%s: TotalDeposits = %v, want %v", c.txType, u.TotalDeposits, c.wantDeposits)
		}
		if u.TotalWithdrawals != c.wantWithdrawals {
			t.Errorf("%s: TotalWithdrawals = %v, want %v", c.txType, u.TotalWithdrawals, c.wantWithdrawals)
		}
		if u.TotalProfit != c.wantProfit {
			t.Errorf("%s: TotalProfit = %v, want %v", c.txType, u.TotalProfit, c.wantProfit)
		}
	}
}

func TestApplyToUserDebitsCannotOverdraw(t *testing.T) {
	for _, txType := range []string{TxWithdrawal, TxInvestment, TxFee} {
		u := User{CurrentBalance: 30}
		tx := Transaction{Type: txType, Amount: 50}
		if err := tx.ApplyToUser(&u); !errors.Is(err, ErrInsufficientBalance) {
			t.Errorf("%s: expected ErrInsufficientBalance, got %v", txType, err)
		}
		if u.CurrentBalance != 30 {
			t.Errorf("%s: failed debit must not mutate the user", txType)
		}
	}
}

func TestApplyToUserRejectsBadInput(t *testing.T) {
	u := User{CurrentBalance: 100}
	tx := Transaction{Type: TxDeposit, Amount: 0}
	if err := tx.ApplyToUser(&u); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: expected ErrInvalidAmount, got %v", err)
	}
	tx = Transaction{Type: "transfer", Amount: 10}
	if err := tx.ApplyToUser(&u); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type: expected ErrUnknownType, got %v", err)
	}
}

func TestValidTransactionType(t *testing.T) {
	for _, good := range []string{TxDeposit, TxWithdrawal, TxInvestment, TxProfit, TxFee, TxBonus, TxRefund} {
		if !ValidTransactionType(good) {
			t.Errorf("ValidTransactionType(%s) = false", good)
		}
	}
	for _, bad := range []string{"", "transfer", "Deposit"} {
		if ValidTransactionType(bad) {
			t.Errorf("ValidTransactionType(%s) = true", bad)
		}
	}
}
