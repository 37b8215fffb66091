// Package billcsv parses bill import CSV files.
//
// The expected format is a header line "name,amount,dueDay,accountName"
// followed by one line per bill.
package billcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paycycle/backend/internal/importer"
	"github.com/shopspring/decimal"
)

// Indices of the columns in the CSV file.
const (
	Name = iota
	Amount
	DueDay
	AccountName
)

var header = []string{"name", "amount", "dueDay", "accountName"}

var (
	ErrHeaderInvalid     = errors.New("the first line must be the header \"name,amount,dueDay,accountName\"")
	ErrNameEmpty         = errors.New("the name must not be empty")
	ErrAmountInvalid     = errors.New("the amount could not be parsed to a decimal")
	ErrAmountNotPositive = errors.New("the amount must be larger than zero")
	ErrDueDayInvalid     = errors.New("the due day must be a number between 1 and 31")
	ErrAccountEmpty      = errors.New("the account name must not be empty")
)

// Parse reads the bill import file. All lines are checked so that the
// returned error names every problem in the file at once.
func Parse(f io.Reader) ([]importer.BillPreview, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	first, err := reader.Read()
	if err == io.EOF {
		return []importer.BillPreview{}, nil
	}
	if err != nil {
		return []importer.BillPreview{}, fmt.Errorf("could not read the CSV header: %w", err)
	}

	if !headerValid(first) {
		return []importer.BillPreview{}, ErrHeaderInvalid
	}

	var previews []importer.BillPreview
	var errs []error

	lineError := func(err error) {
		// Always use the first field, we are only interested in the line
		line, _ := reader.FieldPos(0)
		errs = append(errs, fmt.Errorf("error in line %d of the CSV: %w", line, err))
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			lineError(err)
			continue
		}

		preview := importer.BillPreview{
			Name:        strings.TrimSpace(record[Name]),
			AccountName: strings.TrimSpace(record[AccountName]),
		}

		if preview.Name == "" {
			lineError(ErrNameEmpty)
		}

		if preview.AccountName == "" {
			lineError(ErrAccountEmpty)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[Amount]))
		if err != nil {
			lineError(ErrAmountInvalid)
		} else if !amount.IsPositive() {
			lineError(ErrAmountNotPositive)
		} else {
			preview.Amount = amount
		}

		dueDay, err := strconv.Atoi(strings.TrimSpace(record[DueDay]))
		if err != nil || dueDay < 1 || dueDay > 31 {
			lineError(ErrDueDayInvalid)
		} else {
			preview.DueDay = dueDay
		}

		previews = append(previews, preview)
	}

	if len(errs) > 0 {
		return []importer.BillPreview{}, errors.Join(errs...)
	}

	return previews, nil
}

// headerValid checks the header line, ignoring case and whitespace.
func headerValid(record []string) bool {
	if len(record) != len(header) {
		return false
	}

	for i, column := range header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), column) {
			return false
		}
	}

	return true
}
