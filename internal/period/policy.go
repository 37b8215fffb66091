package period

import "errors"

// Type is the payday schedule variant.
type Type string

const (
	TypeDaily        Type = "DAILY"
	TypeWeekly       Type = "WEEKLY"
	TypeMonthly      Type = "MONTHLY"
	TypeTwiceMonthly Type = "TWICE_MONTHLY" // Paid on the 1st and the 15th
	TypeSpecificDay  Type = "SPECIFIC_DAY"  // Paid on a fixed day of the month
)

var ErrTypeInvalid = errors.New("the payday type is invalid")

// Valid reports whether the type is one of the supported variants.
func (t Type) Valid() bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly, TypeTwiceMonthly, TypeSpecificDay:
		return true
	}

	return false
}

// PeriodsPerYear returns the expected number of pay periods per year
// for the schedule.
func (t Type) PeriodsPerYear() int {
	switch t {
	case TypeDaily:
		return 365
	case TypeWeekly:
		return 52
	case TypeTwiceMonthly:
		return 24
	}

	return 12
}

// Policy is the active payday schedule. Day is only meaningful for
// TypeSpecificDay.
type Policy struct {
	Type Type
	Day  int
}

// Default is the schedule used when no payday has been configured.
// It behaves like a monthly payday on the 1st.
var Default = Policy{Type: TypeMonthly}
