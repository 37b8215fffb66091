package budget

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/period"
	"github.com/paycycle/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ItemKind distinguishes the two obligation types in an upcoming list.
type ItemKind string

const (
	ItemBill    ItemKind = "BILL"
	ItemExpense ItemKind = "EXPENSE"
)

// Item is a single upcoming obligation of an account within the
// current pay period.
type Item struct {
	ID     uuid.UUID       `json:"id" example:"d344b988-0092-47f9-8b71-87d8bd93a976"`
	Kind   ItemKind        `json:"kind" example:"BILL"`
	Name   string          `json:"name" example:"Rent"`
	Amount decimal.Decimal `json:"amount" example:"850"`
	DueDay int             `json:"dueDay" example:"1"`
}

// AccountPlan is the per-account result of a calculation pass.
type AccountPlan struct {
	Account Account

	// Allocated is the share of the paycheck assigned to the account
	// for the current pay period.
	Allocated decimal.Decimal

	// RequiredRemainder is what is still due between the cycle date
	// and the end of the period.
	RequiredRemainder decimal.Decimal

	// RequiredFullPeriod is what is due over the whole period,
	// regardless of the cycle date.
	RequiredFullPeriod decimal.Decimal

	// Surplus is the account balance minus RequiredRemainder. Zero
	// balance is assumed when tracking is disabled.
	Surplus decimal.Decimal

	// DailyBudget is the surplus spread over the remaining days of
	// the period.
	DailyBudget decimal.Decimal

	MonthlyExpenses  decimal.Decimal
	MonthlyAllocated decimal.Decimal
	MonthlySurplus   decimal.Decimal

	// Upcoming lists the obligations still due in the period, ordered
	// by due date within the period.
	Upcoming []Item
}

// Plan is the full result of a calculation pass for one cycle date.
type Plan struct {
	Date   types.Date
	Period period.Period

	Accounts []AccountPlan

	// TotalExpenses is the sum of the full-period obligations across
	// accounts.
	TotalExpenses decimal.Decimal

	// OverallSurplus is the paycheck minus TotalExpenses.
	OverallSurplus decimal.Decimal

	MonthlyExpenses decimal.Decimal
	MonthlyPaycheck decimal.Decimal
	MonthlySurplus  decimal.Decimal
}

var (
	// ErrDateRequired is returned when a calculation is requested
	// without a cycle date.
	ErrDateRequired = errors.New("a date is required to calculate a plan")

	// ErrStrategyInvalid is returned for an unknown allocation
	// strategy.
	ErrStrategyInvalid = errors.New("the allocation strategy is not supported")

	// ErrSingleAccountRequired is returned when the single account
	// strategy is requested without naming an account.
	ErrSingleAccountRequired = errors.New("the single account strategy requires an account")
)

// Compute runs a full calculation pass for the cycle date in the
// snapshot and returns the per-account and combined figures.
func Compute(date types.Date, s Snapshot) (Plan, error) {
	if date.IsZero() {
		return Plan{}, ErrDateRequired
	}

	strategy := s.Strategy
	if strategy == "" {
		strategy = StrategyEqual
	}
	if !strategy.Valid() {
		return Plan{}, ErrStrategyInvalid
	}
	if strategy == StrategySingle && s.SingleAccountID == uuid.Nil {
		return Plan{}, ErrSingleAccountRequired
	}

	p := period.Resolve(date, s.Payday)
	periodsPerYear := s.Payday.Type.PeriodsPerYear()

	year, month, day := date.Year(), date.Month(), date.Day()
	daysInMonth := period.DaysInMonth(year, month)

	// The remainder span covers today through the end of the period,
	// the full span the entire period. Both wrap around the month
	// boundary the same way the period itself does.
	remainder := span{start: day, end: p.End, daysInMonth: daysInMonth, month: month}
	full := span{start: p.Start, end: p.End, daysInMonth: daysInMonth, month: month}

	requiredRemainder := make(map[uuid.UUID]decimal.Decimal, len(s.Accounts))
	requiredFull := make(map[uuid.UUID]decimal.Decimal, len(s.Accounts))
	monthlyExpenses := make(map[uuid.UUID]decimal.Decimal, len(s.Accounts))
	upcoming := make(map[uuid.UUID][]Item, len(s.Accounts))

	for _, account := range s.Accounts {
		requiredRemainder[account.ID] = decimal.Zero
		requiredFull[account.ID] = decimal.Zero
		monthlyExpenses[account.ID] = decimal.Zero
	}

	for _, bill := range s.Bills {
		if _, ok := requiredRemainder[bill.AccountID]; !ok {
			continue
		}

		if bill.dueIn(remainder) {
			requiredRemainder[bill.AccountID] = requiredRemainder[bill.AccountID].Add(bill.Amount)
			upcoming[bill.AccountID] = append(upcoming[bill.AccountID], Item{
				ID:     bill.ID,
				Kind:   ItemBill,
				Name:   bill.Name,
				Amount: bill.Amount,
				DueDay: period.ClampDay(bill.DueDay, daysInMonth),
			})
		}
		if bill.dueIn(full) {
			requiredFull[bill.AccountID] = requiredFull[bill.AccountID].Add(bill.Amount)
		}

		// Bills recur every month.
		monthlyExpenses[bill.AccountID] = monthlyExpenses[bill.AccountID].Add(bill.Amount)
	}

	for _, expense := range s.Expenses {
		if _, ok := requiredRemainder[expense.AccountID]; !ok {
			continue
		}

		cost := expense.periodCost(periodsPerYear)

		if expense.dueIn(remainder) {
			requiredRemainder[expense.AccountID] = requiredRemainder[expense.AccountID].Add(cost)
			upcoming[expense.AccountID] = append(upcoming[expense.AccountID], Item{
				ID:     expense.ID,
				Kind:   ItemExpense,
				Name:   expense.Name,
				Amount: cost,
				DueDay: expense.DueDay,
			})
		}
		if expense.dueIn(full) {
			requiredFull[expense.AccountID] = requiredFull[expense.AccountID].Add(cost)
		}

		monthlyExpenses[expense.AccountID] = monthlyExpenses[expense.AccountID].Add(expense.monthlyCost(month))
	}

	allocated := Allocate(s.Paycheck, s.Accounts, strategy, requiredRemainder, s.Locked, s.SingleAccountID)

	// Scale a per-period figure to a per-month one.
	monthlyFactor := decimal.NewFromInt(int64(periodsPerYear)).Div(decimalTwelve)

	plan := Plan{
		Date:            date,
		Period:          p,
		Accounts:        make([]AccountPlan, 0, len(s.Accounts)),
		TotalExpenses:   decimal.Zero,
		OverallSurplus:  decimal.Zero,
		MonthlyExpenses: decimal.Zero,
		MonthlyPaycheck: s.Paycheck.Mul(monthlyFactor),
	}

	for _, account := range s.Accounts {
		balance := decimal.Zero
		if account.Balance != nil {
			balance = *account.Balance
		}

		surplus := balance.Sub(requiredRemainder[account.ID])

		daily := surplus
		if p.RemainingDays > 0 {
			daily = surplus.Div(decimal.NewFromInt(int64(p.RemainingDays)))
		}

		monthlyAllocated := allocated[account.ID].Mul(monthlyFactor)

		items := upcoming[account.ID]
		sortUpcoming(items, remainder, daysInMonth)

		plan.Accounts = append(plan.Accounts, AccountPlan{
			Account:            account,
			Allocated:          allocated[account.ID],
			RequiredRemainder:  requiredRemainder[account.ID],
			RequiredFullPeriod: requiredFull[account.ID],
			Surplus:            surplus,
			DailyBudget:        daily,
			MonthlyExpenses:    monthlyExpenses[account.ID],
			MonthlyAllocated:   monthlyAllocated,
			MonthlySurplus:     monthlyAllocated.Sub(monthlyExpenses[account.ID]),
			Upcoming:           items,
		})

		plan.TotalExpenses = plan.TotalExpenses.Add(requiredFull[account.ID])
		plan.MonthlyExpenses = plan.MonthlyExpenses.Add(monthlyExpenses[account.ID])
	}

	plan.OverallSurplus = s.Paycheck.Sub(plan.TotalExpenses)
	plan.MonthlySurplus = plan.MonthlyPaycheck.Sub(plan.MonthlyExpenses)

	return plan, nil
}

// sortUpcoming orders items by their due date within the period. In a
// wrapping period, days before the span start belong to the next month
// and sort after the current month's days.
func sortUpcoming(items []Item, s span, daysInMonth int) {
	key := func(i Item) int {
		if i.DueDay < s.start {
			return i.DueDay + daysInMonth
		}
		return i.DueDay
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		return key(a) - key(b)
	})
}
