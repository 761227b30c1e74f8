package models

import (
	"strings"

	"github.com/finance-control/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the closed set of transaction kinds.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the allowed values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single income or expense record.
type Transaction struct {
	DefaultModel
	Description string          `gorm:"size:255"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(15,2);check:amount_positive,amount > 0"`
	Type        TransactionType `gorm:"column:transaction_type;size:20"`
	Date        types.Date      `gorm:"column:transaction_date"`
}

// BeforeCreate trims the description and verifies all fields.
//
// Full validation only happens on create. Updates deliberately skip the
// description rules so that a partial update never rewrites a field the
// caller did not touch.
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	fields := make(map[string]string)

	if t.Description == "" {
		fields["description"] = reasonDescriptionEmpty
	} else if len(t.Description) > 255 {
		fields["description"] = reasonDescriptionLong
	}

	validateAmount(t.Amount, fields)
	validateType(t.Type, fields)

	if t.Date.IsZero() {
		fields["transaction_date"] = reasonDateRequired
	}

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

// BeforeUpdate verifies the amount and type before an update is persisted.
// Values that were not part of the update payload carry their stored value,
// which already satisfies the rules, so this amounts to checking exactly
// the supplied fields.
func (t *Transaction) BeforeUpdate(_ *gorm.DB) error {
	fields := make(map[string]string)

	validateAmount(t.Amount, fields)
	validateType(t.Type, fields)

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

func validateAmount(amount decimal.Decimal, fields map[string]string) {
	if !amount.IsPositive() {
		fields["amount"] = reasonAmountNotPositive
	} else if amount.Exponent() < -2 {
		fields["amount"] = reasonAmountPrecision
	}
}

func validateType(t TransactionType, fields map[string]string) {
	if !t.Valid() {
		fields["transaction_type"] = reasonTypeInvalid
	}
}

// TransactionUpdate is a partial update to a transaction. Nil fields were
// not supplied by the caller and keep their stored value. This keeps
// "unset" distinguishable from "set to the zero value".
type TransactionUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Type        *TransactionType
	Date        *types.Date
}

// TransactionFilter restricts the transactions returned by
// ListTransactions. All conditions must match. The zero value of a field
// disables its condition.
type TransactionFilter struct {
	Type      TransactionType
	StartDate types.Date
	EndDate   types.Date
	Skip      int
	Limit     int
}

// CreateTransaction inserts a new transaction and returns the stored
// record with its assigned ID and timestamps.
func CreateTransaction(transaction Transaction) (Transaction, error) {
	err := DB.Create(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// GetTransaction returns the transaction with the ID.
// A missing record is reported as ErrResourceNotFound.
func GetTransaction(id uint64) (Transaction, error) {
	var transaction Transaction

	err := DB.First(&transaction, id).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// where applies the filter conditions to a query.
func (filter TransactionFilter) where(q *gorm.DB) *gorm.DB {
	if filter.Type != "" {
		q = q.Where("transaction_type = ?", filter.Type)
	}

	if !filter.StartDate.IsZero() {
		q = q.Where("datetime(transaction_date) >= datetime(?)", filter.StartDate)
	}

	if !filter.EndDate.IsZero() {
		q = q.Where("datetime(transaction_date) <= datetime(?)", filter.EndDate)
	}

	return q
}

// ListTransactions returns the transactions matching the filter, newest
// date first with the highest ID first for equal dates.
func ListTransactions(filter TransactionFilter) ([]Transaction, error) {
	q := filter.where(DB.Order("datetime(transaction_date) DESC, id DESC"))

	transactions := make([]Transaction, 0)
	err := q.Offset(filter.Skip).Limit(filter.Limit).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// CountTransactions returns the number of transactions matching the
// filter, ignoring pagination.
func CountTransactions(filter TransactionFilter) (int64, error) {
	var count int64

	err := filter.where(DB.Model(&Transaction{})).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// UpdateTransaction applies the supplied fields of the update to the
// transaction with the ID and returns the updated record. The update is a
// single UPDATE statement, UpdatedAt is refreshed by gorm.
func UpdateTransaction(id uint64, update TransactionUpdate) (Transaction, error) {
	transaction, err := GetTransaction(id)
	if err != nil {
		return Transaction{}, err
	}

	if update.Description != nil {
		transaction.Description = *update.Description
	}

	if update.Amount != nil {
		transaction.Amount = *update.Amount
	}

	if update.Type != nil {
		transaction.Type = *update.Type
	}

	if update.Date != nil {
		transaction.Date = *update.Date
	}

	err = DB.Save(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction removes the transaction with the ID permanently.
func DeleteTransaction(id uint64) error {
	transaction, err := GetTransaction(id)
	if err != nil {
		return err
	}

	return DB.Delete(&transaction).Error
}
