// Package importer turns parsed import files into stored resources.
package importer

import (
	"strings"

	"github.com/paycycle/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillPreview is a bill parsed from an import file before its account
// reference is resolved.
type BillPreview struct {
	Name        string
	Amount      decimal.Decimal
	DueDay      int
	AccountName string
}

// Create stores all bills of an import. Account names are matched
// case-insensitively and may contain * wildcards. Accounts that do not
// exist yet are created with balance tracking disabled.
//
// Everything happens in one transaction. If any bill cannot be stored,
// nothing is.
func Create(db *gorm.DB, previews []BillPreview) ([]models.Bill, error) {
	tx := db.Begin()

	var accounts []models.Account
	err := tx.Find(&accounts).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	bills := make([]models.Bill, 0, len(previews))
	for _, preview := range previews {
		account, found := matchAccount(accounts, preview.AccountName)
		if !found {
			account = models.Account{Name: preview.AccountName}
			err = tx.Create(&account).Error
			if err != nil {
				tx.Rollback()
				return nil, err
			}

			// Later rows can reference the account, too
			accounts = append(accounts, account)
		}

		bill := models.Bill{
			Name:      preview.Name,
			Amount:    preview.Amount,
			DueDay:    preview.DueDay,
			AccountID: account.ID,
		}

		err = tx.Create(&bill).Error
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		bills = append(bills, bill)
	}

	err = tx.Commit().Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// matchAccount returns the first account whose name matches the
// pattern. Matching ignores case, a pattern without wildcards is an
// exact name match.
func matchAccount(accounts []models.Account, pattern string) (models.Account, bool) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	for _, account := range accounts {
		if glob.Glob(pattern, strings.ToLower(account.Name)) {
			return account, true
		}
	}

	return models.Account{}, false
}
