package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Months is a set of calendar months, stored as the numbers 1 to 12.
// It is used for expenses that are only due in specific months.
type Months []int

var ErrMonthOutOfRange = errors.New("months must be between 1 and 12")

// Validate checks that every entry is a valid calendar month.
func (m Months) Validate() error {
	for _, month := range m {
		if month < 1 || month > 12 {
			return fmt.Errorf("%w, got %d", ErrMonthOutOfRange, month)
		}
	}

	return nil
}

// Contains reports whether the calendar month is in the set.
func (m Months) Contains(month time.Month) bool {
	for _, candidate := range m {
		if candidate == int(month) {
			return true
		}
	}

	return false
}

// Scan reads the value from the database.
func (m *Months) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var encoded string
	switch v := value.(type) {
	case string:
		encoded = v
	case []byte:
		encoded = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Months", value)
	}

	if encoded == "" {
		*m = nil
		return nil
	}

	var months Months
	for _, field := range strings.Split(encoded, ",") {
		month, err := strconv.Atoi(field)
		if err != nil {
			return err
		}
		months = append(months, month)
	}

	*m = months
	return nil
}

// Value returns the value for the SQL driver to write to the database.
// The set is encoded as a comma separated list.
func (m Months) Value() (driver.Value, error) {
	fields := make([]string, 0, len(m))
	for _, month := range m {
		fields = append(fields, strconv.Itoa(month))
	}

	return strings.Join(fields, ","), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Months) GormDataType() string {
	return "string"
}
