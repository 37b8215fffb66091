package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/budget"
	"github.com/paycycle/backend/internal/httputil"
	"github.com/paycycle/backend/internal/models"
	"github.com/paycycle/backend/internal/types"
	"github.com/shopspring/decimal"
)

func RegisterPlanRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPlan)
		r.GET("", GetPlan)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan [options]
func OptionsPlan(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Calculate plan
// @Description	Calculates the paycheck distribution and budget figures for a cycle date
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		500	{object}	PlanResponse
// @Router			/v1/plan [get]
// @Param			date		query	string	true	"The cycle date to calculate for, in YYYY-MM-DD format"
// @Param			strategy	query	string	false	"The allocation strategy. One of EQUAL, CUSTOM, SINGLE, PROPORTIONAL. Defaults to EQUAL."
// @Param			account		query	string	false	"The account receiving the paycheck. Required for the SINGLE strategy."
// @Param			paycheck	query	string	false	"Overrides the configured paycheck amount"
func GetPlan(c *gin.Context) {
	var query PlanQuery

	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PlanResponse{
			Error: &s,
		})
		return
	}

	if query.Date.IsZero() {
		s := budget.ErrDateRequired.Error()
		c.JSON(http.StatusBadRequest, PlanResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := loadSnapshot(query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	plan, err := budget.Compute(types.DateOf(query.Date), snapshot)
	if err != nil {
		s := err.Error()
		c.JSON(planStatus(err), PlanResponse{
			Error: &s,
		})
		return
	}

	data := newPlan(plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// planStatus maps calculation errors to HTTP statuses.
func planStatus(err error) int {
	if errors.Is(err, budget.ErrDateRequired) ||
		errors.Is(err, budget.ErrStrategyInvalid) ||
		errors.Is(err, budget.ErrSingleAccountRequired) {
		return http.StatusBadRequest
	}

	return status(err)
}

// loadSnapshot reads all stored collections for one calculation pass.
func loadSnapshot(query PlanQuery) (budget.Snapshot, error) {
	var accounts []models.Account
	err := models.DB.Order("accounts.name ASC").Find(&accounts).Error
	if err != nil {
		return budget.Snapshot{}, err
	}

	var bills []models.Bill
	err = models.DB.Find(&bills).Error
	if err != nil {
		return budget.Snapshot{}, err
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		return budget.Snapshot{}, err
	}

	payday, err := models.ActivePayday(models.DB)
	if err != nil {
		return budget.Snapshot{}, err
	}

	var allocations []models.LockedAllocation
	err = models.DB.Find(&allocations).Error
	if err != nil {
		return budget.Snapshot{}, err
	}

	snapshot := budget.Snapshot{
		Accounts:        make([]budget.Account, 0, len(accounts)),
		Bills:           make([]budget.Bill, 0, len(bills)),
		Expenses:        make([]budget.Expense, 0, len(expenses)),
		Payday:          payday.Policy(),
		Paycheck:        payday.PaycheckAmount,
		Strategy:        query.Strategy,
		Locked:          make(map[uuid.UUID]decimal.Decimal, len(allocations)),
		SingleAccountID: query.Account.UUID,
	}

	if !query.Paycheck.IsZero() {
		snapshot.Paycheck = query.Paycheck
	}

	for _, account := range accounts {
		snapshot.Accounts = append(snapshot.Accounts, budget.Account{
			ID:      account.ID,
			Name:    account.Name,
			Balance: account.Balance,
		})
	}

	for _, bill := range bills {
		snapshot.Bills = append(snapshot.Bills, budget.Bill{
			ID:        bill.ID,
			Name:      bill.Name,
			Amount:    bill.Amount,
			DueDay:    bill.DueDay,
			AccountID: bill.AccountID,
		})
	}

	for _, expense := range expenses {
		snapshot.Expenses = append(snapshot.Expenses, budget.Expense{
			ID:             expense.ID,
			Name:           expense.Name,
			Amount:         expense.Amount,
			DueDay:         expense.DueDay,
			AccountID:      expense.AccountID,
			PlanType:       expense.PlanType,
			Occurrences:    expense.Occurrences,
			SpecificMonths: expense.SpecificMonths,
		})
	}

	for _, allocation := range allocations {
		snapshot.Locked[allocation.AccountID] = allocation.Amount
	}

	return snapshot, nil
}
