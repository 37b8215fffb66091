package models

import (
	"errors"

	"github.com/paycycle/backend/internal/period"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payday is the payday schedule. There is at most one payday
// configuration per instance.
type Payday struct {
	DefaultModel
	Type           period.Type
	Day            int             // Day of month for SPECIFIC_DAY schedules
	PaycheckAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Expected paycheck per pay period
}

var (
	ErrPaydayExists           = errors.New("a payday schedule is already configured")
	ErrPaydayDayOutOfRange    = errors.New("the payday must be between 1 and 31")
	ErrPaycheckAmountNegative = errors.New("the paycheck amount must not be negative")
)

// BeforeCreate enforces the single payday configuration.
func (p *Payday) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	var count int64
	err := tx.Model(&Payday{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrPaydayExists
	}

	return nil
}

func (p *Payday) BeforeSave(_ *gorm.DB) error {
	if p.Type == "" {
		p.Type = period.TypeMonthly
	}
	if !p.Type.Valid() {
		return period.ErrTypeInvalid
	}

	if p.Type == period.TypeSpecificDay && (p.Day < 1 || p.Day > 31) {
		return ErrPaydayDayOutOfRange
	}

	if p.PaycheckAmount.IsNegative() {
		return ErrPaycheckAmountNegative
	}

	return nil
}

// Policy returns the pay period policy for the schedule.
func (p Payday) Policy() period.Policy {
	return period.Policy{
		Type: p.Type,
		Day:  p.Day,
	}
}

// ActivePayday returns the configured payday schedule. When none is
// configured, the monthly default with a zero paycheck is returned.
func ActivePayday(db *gorm.DB) (Payday, error) {
	var payday Payday

	err := db.First(&payday).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Payday{Type: period.Default.Type}, nil
		}

		return Payday{}, err
	}

	return payday, nil
}
