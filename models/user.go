package models

import "time"

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:60;not null" json:"name"`
	Email    string  `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Role     string  `gorm:"type:enum('user','admin');default:'user'" json:"role"`
	Status   string  `gorm:"type:enum('active','inactive','suspended');default:'active'" json:"status"`
	Phone    *string `gorm:"size:30" json:"phone,omitempty"`
	Country  *string `gorm:"size:60" json:"country,omitempty"`

	KYCVerified bool    `gorm:"default:false" json:"kyc_verified"`
	KYCDocument *string `gorm:"type:varchar(255)" json:"kyc_document,omitempty"`

	// Investment profile. All amounts are USD with 2 decimal places.
	// CurrentBalance excludes funds reserved by pending withdrawal
	// requests; those sit in PendingWithdrawals until an admin settles
	// or rejects the request.
	CurrentBalance     float64 `gorm:"type:decimal(15,2);not null;default:0.00" json:"current_balance"`
	TotalDeposits      float64 `gorm:"type:decimal(15,2);not null;default:0.00" json:"total_deposits"`
	TotalWithdrawals   float64 `gorm:"type:decimal(15,2);not null;default:0.00" json:"total_withdrawals"`
	TotalProfit        float64 `gorm:"type:decimal(15,2);not null;default:0.00" json:"total_profit"`
	PendingWithdrawals float64 `gorm:"type:decimal(15,2);not null;default:0.00" json:"pending_withdrawals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// ReserveWithdrawal moves amount from the spendable balance into the
// pending-withdrawal reservation. Fails without mutating u when the
// balance does not cover the amount.
func (u *User) ReserveWithdrawal(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	// Round once up front so the debit and the reservation move the same
	// figure; rounding each side independently can mint or destroy a cent.
	amount = round2(amount)
	if amount > u.CurrentBalance {
		return ErrInsufficientBalance
	}
	u.CurrentBalance = round2(u.CurrentBalance - amount)
	u.PendingWithdrawals = round2(u.PendingWithdrawals + amount)
	return nil
}

// ReleaseWithdrawal returns a previously reserved amount to the spendable
// balance (rejected request).
func (u *User) ReleaseWithdrawal(amount float64) {
	u.PendingWithdrawals = round2(u.PendingWithdrawals - amount)
	if u.PendingWithdrawals < 0 {
		u.PendingWithdrawals = 0
	}
	u.CurrentBalance = round2(u.CurrentBalance + amount)
}

// SettleWithdrawal converts a reserved amount into a realized withdrawal
// (completed request). The balance was already debited at reservation time.
func (u *User) SettleWithdrawal(amount float64) {
	u.PendingWithdrawals = round2(u.PendingWithdrawals - amount)
	if u.PendingWithdrawals < 0 {
		u.PendingWithdrawals = 0
	}
	u.TotalWithdrawals = round2(u.TotalWithdrawals + amount)
}

func round2(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*100+0.5)) / 100
	}
	return float64(int64(v*100-0.5)) / 100
}
