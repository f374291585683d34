package models

import (
	"errors"
	"testing"
)

func TestAllowsWithdrawal(t *testing.T) {
	defaults := Setting{MinWithdrawal: 10.00}
	bounded := Setting{MinWithdrawal: 10.00, MaxWithdrawal: 5000.00}

	tests := []struct {
		name    string
		setting Setting
		amount  float64
		wantErr error
	}{
		{"below minimum rejected", defaults, 5, ErrBelowMinimum},
		{"just under minimum rejected", defaults, 9.99, ErrBelowMinimum},
		{"exact minimum accepted", defaults, 10.00, nil},
		{"above minimum accepted", defaults, 250.50, nil},
		{"zero rejected", defaults, 0, ErrInvalidAmount},
		{"negative rejected", defaults, -10, ErrInvalidAmount},
		{"no upper bound when max unset", defaults, 1000000, nil},
		{"above maximum rejected", bounded, 5000.01, ErrAboveMaximum},
		{"exact maximum accepted", bounded, 5000.00, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.setting.AllowsWithdrawal(tc.amount)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("AllowsWithdrawal(%v) = %v, want nil", tc.amount, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("AllowsWithdrawal(%v) = %v, want %v", tc.amount, err, tc.wantErr)
			}
		})
	}
}
