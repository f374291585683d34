package models

import "time"

type InvestmentPlan struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	Type           string     `gorm:"type:enum('crypto','stocks','real-estate','forex','commodities');not null" json:"type"`
	Amount         float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	CurrentValue   float64    `gorm:"type:decimal(15,2);not null;default:0.00" json:"current_value"`
	ExpectedReturn float64    `gorm:"type:decimal(6,2);not null" json:"expected_return"`
	Duration       int        `gorm:"not null" json:"duration"`
	StartDate      time.Time  `gorm:"not null" json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `gorm:"type:enum('pending','active','completed','cancelled');not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"-"`
}

func (InvestmentPlan) TableName() string {
	return "investment_plans"
}

// Profit is the plan's unrealized gain. CurrentValue falls back to the
// invested amount while no valuation has been recorded.
func (p *InvestmentPlan) Profit() float64 {
	return round2(p.EffectiveValue() - p.Amount)
}

func (p *InvestmentPlan) EffectiveValue() float64 {
	if p.CurrentValue > 0 {
		return p.CurrentValue
	}
	return p.Amount
}

// ProfitPercent is Profit relative to the invested amount, 0 for empty plans.
func (p *InvestmentPlan) ProfitPercent() float64 {
	if p.Amount <= 0 {
		return 0
	}
	return round2(p.Profit() / p.Amount * 100)
}
