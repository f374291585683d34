package models

import "time"

const (
	TxDeposit    = "deposit"
	TxWithdrawal = "withdrawal"
	TxInvestment = "investment"
	TxProfit     = "profit"
	TxFee        = "fee"
	TxBonus      = "bonus"
	TxRefund     = "refund"
)

const (
	TxPending   = "pending"
	TxCompleted = "completed"
	TxFailed    = "failed"
	TxCancelled = "cancelled"
)

type Transaction struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index:idx_tx_user_created" json:"user_id"`
	Type        string     `gorm:"type:enum('deposit','withdrawal','investment','profit','fee','bonus','refund');not null;index" json:"type"`
	Amount      float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency    string     `gorm:"size:10;not null;default:'USD'" json:"currency"`
	Status      string     `gorm:"type:enum('pending','completed','failed','cancelled');not null;default:'pending';index" json:"status"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Reference   *string    `gorm:"type:varchar(191);index" json:"reference,omitempty"`
	AdminNotes  *string    `gorm:"type:text" json:"admin_notes,omitempty"`
	ProcessedBy *uint      `json:"processed_by,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"index:idx_tx_user_created" json:"created_at"`
	UpdatedAt   time.Time  `json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// ValidTransactionType reports whether t is one of the ledger type tags.
func ValidTransactionType(t string) bool {
	switch t {
	case TxDeposit, TxWithdrawal, TxInvestment, TxProfit, TxFee, TxBonus, TxRefund:
		return true
	}
	return false
}

// ApplyToUser applies the balance increments a completed transaction of
// this type causes. It must be called inside the same DB transaction that
// creates the ledger row, with the user row locked, so the ledger and the
// stored balance cannot diverge.
//
//	deposit     totalDeposits     += amount, currentBalance += amount
//	withdrawal  totalWithdrawals  += amount, currentBalance -= amount
//	profit      totalProfit       += amount, currentBalance += amount
//	investment  currentBalance    -= amount (moved into a plan)
//	fee         currentBalance    -= amount
//	bonus       currentBalance    += amount
//	refund      currentBalance    += amount
func (t *Transaction) ApplyToUser(u *User) error {
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	switch t.Type {
	case TxDeposit:
		u.TotalDeposits = round2(u.TotalDeposits + t.Amount)
		u.CurrentBalance = round2(u.CurrentBalance + t.Amount)
	case TxProfit:
		u.TotalProfit = round2(u.TotalProfit + t.Amount)
		u.CurrentBalance = round2(u.CurrentBalance + t.Amount)
	case TxBonus, TxRefund:
		u.CurrentBalance = round2(u.CurrentBalance + t.Amount)
	case TxWithdrawal:
		if t.Amount > u.CurrentBalance {
			return ErrInsufficientBalance
		}
		u.TotalWithdrawals = round2(u.TotalWithdrawals + t.Amount)
		u.CurrentBalance = round2(u.CurrentBalance - t.Amount)
	case TxInvestment, TxFee:
		if t.Amount > u.CurrentBalance {
			return ErrInsufficientBalance
		}
		u.CurrentBalance = round2(u.CurrentBalance - t.Amount)
	default:
		return ErrUnknownType
	}
	return nil
}
