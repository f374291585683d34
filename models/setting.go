package models

import "gorm.io/gorm"

// Setting is a single-row table of platform knobs. Defaults match the
// product rules: $10 minimum withdrawal, no maximum.
type Setting struct {
	ID             int     `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"size:100;default:'Greenwood Invest'" json:"name"`
	MinWithdrawal  float64 `gorm:"type:decimal(15,2);not null;default:10.00" json:"min_withdrawal"`
	MaxWithdrawal  float64 `gorm:"type:decimal(15,2);not null;default:0.00" json:"max_withdrawal"`
	Maintenance    bool    `gorm:"default:false" json:"maintenance"`
	ClosedRegister bool    `gorm:"default:false" json:"closed_register"`
}

func (Setting) TableName() string {
	return "settings"
}

// AllowsWithdrawal checks amount against the configured bounds. A zero
// MaxWithdrawal means no upper bound.
func (s *Setting) AllowsWithdrawal(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount < s.MinWithdrawal {
		return ErrBelowMinimum
	}
	if s.MaxWithdrawal > 0 && amount > s.MaxWithdrawal {
		return ErrAboveMaximum
	}
	return nil
}

// GetSetting loads the settings row, falling back to defaults when the
// table is empty.
func GetSetting(db *gorm.DB) (*Setting, error) {
	var s Setting
	err := db.Take(&s).Error
	if err == gorm.ErrRecordNotFound {
		return &Setting{Name: "Greenwood Invest", MinWithdrawal: 10.00}, nil
	}
	if err != nil {
		return nil, err
	}
	if s.MinWithdrawal <= 0 {
		s.MinWithdrawal = 10.00
	}
	return &s, nil
}
