package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/budget"
	"github.com/paycycle/backend/internal/period"
	"github.com/paycycle/backend/internal/types"
	pc_uuid "github.com/paycycle/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type PlanQuery struct {
	Date     time.Time       `form:"date" time_format:"2006-01-02" time_utc:"1" example:"2026-06-20"` // The cycle date to calculate for
	Strategy budget.Strategy `form:"strategy" example:"PROPORTIONAL"`                                 // The allocation strategy. Defaults to EQUAL.
	Account  pc_uuid.UUID    `form:"account" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`          // The account receiving the paycheck, for the SINGLE strategy
	Paycheck decimal.Decimal `form:"paycheck" example:"2400"`                                         // Overrides the configured paycheck amount
}

type PeriodObject struct {
	Start         int  `json:"start" example:"15"`          // First day of the pay period
	End           int  `json:"end" example:"14"`            // Last day of the pay period
	EndNextMonth  bool `json:"endNextMonth" example:"true"` // Whether the period ends in the following month
	Length        int  `json:"length" example:"30"`         // Total days in the period
	RemainingDays int  `json:"remainingDays" example:"-5"`  // Period end day minus the cycle day plus one. Zero or negative once a rollover payday has passed.
}

func newPeriod(p period.Period) PeriodObject {
	return PeriodObject{
		Start:         p.Start,
		End:           p.End,
		EndNextMonth:  p.EndNextMonth,
		Length:        p.Length,
		RemainingDays: p.RemainingDays,
	}
}

type AccountPlanObject struct {
	ID                 uuid.UUID        `json:"id" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account
	Name               string           `json:"name" example:"Checking"`                           // Name of the account
	Balance            *decimal.Decimal `json:"balance" example:"2735.17" extensions:"x-nullable"` // Balance. Null when tracking is disabled.
	Allocated          decimal.Decimal  `json:"allocated" example:"1200"`                          // Paycheck share for the period
	Required           decimal.Decimal  `json:"required" example:"850"`                            // Still due through the period end
	RequiredFullPeriod decimal.Decimal  `json:"requiredFullPeriod" example:"1050"`                 // Due over the whole period
	Surplus            decimal.Decimal  `json:"surplus" example:"1885.17"`                         // Balance minus required
	DailyBudget        decimal.Decimal  `json:"dailyBudget" example:"75.4"`                        // Surplus spread over the remaining days
	MonthlyExpenses    decimal.Decimal  `json:"monthlyExpenses" example:"980"`                     // Recurring cost per month
	MonthlyAllocated   decimal.Decimal  `json:"monthlyAllocated" example:"2400"`                   // Allocation scaled to a month
	MonthlySurplus     decimal.Decimal  `json:"monthlySurplus" example:"1420"`                     // Monthly allocation minus monthly expenses
	Upcoming           []budget.Item    `json:"upcoming"`                                          // Obligations still due in the period, in due date order
}

type PlanObject struct {
	Date            types.Date          `json:"date" example:"2026-06-20"`      // The cycle date
	Period          PeriodObject        `json:"period"`                         // The resolved pay period
	Accounts        []AccountPlanObject `json:"accounts"`                       // Per-account figures
	TotalExpenses   decimal.Decimal     `json:"totalExpenses" example:"1630"`   // Full-period obligations across accounts
	OverallSurplus  decimal.Decimal     `json:"overallSurplus" example:"770"`   // Paycheck minus the full-period obligations
	MonthlyExpenses decimal.Decimal     `json:"monthlyExpenses" example:"1960"` // Recurring cost per month across accounts
	MonthlyPaycheck decimal.Decimal     `json:"monthlyPaycheck" example:"4800"` // Paycheck income scaled to a month
	MonthlySurplus  decimal.Decimal     `json:"monthlySurplus" example:"2840"`  // Monthly paycheck minus monthly expenses
}

func newPlan(plan budget.Plan) PlanObject {
	accounts := make([]AccountPlanObject, 0, len(plan.Accounts))
	for _, account := range plan.Accounts {
		upcoming := account.Upcoming
		if upcoming == nil {
			upcoming = make([]budget.Item, 0)
		}

		accounts = append(accounts, AccountPlanObject{
			ID:                 account.Account.ID,
			Name:               account.Account.Name,
			Balance:            account.Account.Balance,
			Allocated:          account.Allocated,
			Required:           account.RequiredRemainder,
			RequiredFullPeriod: account.RequiredFullPeriod,
			Surplus:            account.Surplus,
			DailyBudget:        account.DailyBudget,
			MonthlyExpenses:    account.MonthlyExpenses,
			MonthlyAllocated:   account.MonthlyAllocated,
			MonthlySurplus:     account.MonthlySurplus,
			Upcoming:           upcoming,
		})
	}

	return PlanObject{
		Date:            plan.Date,
		Period:          newPeriod(plan.Period),
		Accounts:        accounts,
		TotalExpenses:   plan.TotalExpenses,
		OverallSurplus:  plan.OverallSurplus,
		MonthlyExpenses: plan.MonthlyExpenses,
		MonthlyPaycheck: plan.MonthlyPaycheck,
		MonthlySurplus:  plan.MonthlySurplus,
	}
}

type PlanResponse struct {
	Error *string     `json:"error" example:"a date is required to calculate a plan"` // The error, if any occurred
	Data  *PlanObject `json:"data"`                                                   // The calculated plan
}
