package models_test

import (
	"fmt"
	"testing"

	"github.com/finance-control/backend/internal/models"
	"github.com/finance-control/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionCreateGet() {
	created := suite.createTestTransaction(models.Transaction{
		Description: "Salary",
		Amount:      decimal.NewFromFloat(5000),
		Type:        models.TypeIncome,
		Date:        types.NewDate(2024, 3, 1),
	})

	assert.Equal(suite.T(), uint64(1), created.ID, "the first record gets ID 1")
	assert.False(suite.T(), created.CreatedAt.IsZero())
	assert.False(suite.T(), created.UpdatedAt.IsZero())

	transaction, err := models.GetTransaction(created.ID)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "Salary", transaction.Description)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(5000)), "amount is %s", transaction.Amount)
	assert.Equal(suite.T(), models.TypeIncome, transaction.Type)
	assert.True(suite.T(), transaction.Date.Equal(types.NewDate(2024, 3, 1)))
}

func (suite *TestSuiteStandard) TestTransactionCreateTrimsDescription() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "  Groceries \t",
		Amount:      decimal.NewFromFloat(17.23),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 3, 1),
	})

	assert.Equal(suite.T(), "Groceries", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	tests := []struct {
		name        string
		transaction models.Transaction
		field       string
	}{
		{
			"zero amount",
			models.Transaction{Description: "Test", Amount: decimal.Zero, Type: models.TypeExpense, Date: types.NewDate(2024, 1, 1)},
			"amount",
		},
		{
			"negative amount",
			models.Transaction{Description: "Test", Amount: decimal.NewFromFloat(-0.01), Type: models.TypeExpense, Date: types.NewDate(2024, 1, 1)},
			"amount",
		},
		{
			"amount with too many decimal places",
			models.Transaction{Description: "Test", Amount: decimal.NewFromFloat(1.001), Type: models.TypeExpense, Date: types.NewDate(2024, 1, 1)},
			"amount",
		},
		{
			"empty description",
			models.Transaction{Description: "", Amount: decimal.NewFromFloat(1), Type: models.TypeExpense, Date: types.NewDate(2024, 1, 1)},
			"description",
		},
		{
			"whitespace only description",
			models.Transaction{Description: "   ", Amount: decimal.NewFromFloat(1), Type: models.TypeExpense, Date: types.NewDate(2024, 1, 1)},
			"description",
		},
		{
			"invalid type",
			models.Transaction{Description: "Test", Amount: decimal.NewFromFloat(1), Type: "transfer", Date: types.NewDate(2024, 1, 1)},
			"transaction_type",
		},
		{
			"missing date",
			models.Transaction{Description: "Test", Amount: decimal.NewFromFloat(1), Type: models.TypeExpense},
			"transaction_date",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.CreateTransaction(tt.transaction)
			require.NotNil(t, err)

			var validationError models.ValidationError
			require.ErrorAs(t, err, &validationError, "Error is: %s", err)
			assert.Contains(t, validationError.Fields, tt.field)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionGetNotFound() {
	_, err := models.GetTransaction(817)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Salary",
		Amount:      decimal.NewFromFloat(5000),
		Type:        models.TypeIncome,
		Date:        types.NewDate(2024, 3, 1),
	})

	amount := decimal.NewFromFloat(5500)
	updated, err := models.UpdateTransaction(transaction.ID, models.TransactionUpdate{
		Amount: &amount,
	})
	require.Nil(suite.T(), err)

	assert.True(suite.T(), updated.Amount.Equal(amount), "amount is %s", updated.Amount)
	assert.Equal(suite.T(), "Salary", updated.Description, "unset fields must keep their value")
	assert.Equal(suite.T(), models.TypeIncome, updated.Type)
	assert.True(suite.T(), updated.UpdatedAt.After(updated.CreatedAt), "UpdatedAt must be refreshed")
}

func (suite *TestSuiteStandard) TestTransactionUpdateEmpty() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Rent",
		Amount:      decimal.NewFromFloat(1200),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 4, 1),
	})

	updated, err := models.UpdateTransaction(transaction.ID, models.TransactionUpdate{})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), transaction.Description, updated.Description)
	assert.True(suite.T(), transaction.Amount.Equal(updated.Amount))
	assert.Equal(suite.T(), transaction.Type, updated.Type)
	assert.True(suite.T(), transaction.Date.Equal(updated.Date))
	assert.True(suite.T(), updated.UpdatedAt.After(transaction.UpdatedAt), "UpdatedAt must strictly increase")
}

func (suite *TestSuiteStandard) TestTransactionUpdateInvalidAmount() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Rent",
		Amount:      decimal.NewFromFloat(1200),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 4, 1),
	})

	amount := decimal.NewFromFloat(-1)
	_, err := models.UpdateTransaction(transaction.ID, models.TransactionUpdate{
		Amount: &amount,
	})

	var validationError models.ValidationError
	require.ErrorAs(suite.T(), err, &validationError)
	assert.Contains(suite.T(), validationError.Fields, "amount")
}

// The description is deliberately not trimmed or checked again on update,
// only the create path normalizes it.
func (suite *TestSuiteStandard) TestTransactionUpdateKeepsDescriptionVerbatim() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Rent",
		Amount:      decimal.NewFromFloat(1200),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 4, 1),
	})

	description := "  spaced out  "
	updated, err := models.UpdateTransaction(transaction.ID, models.TransactionUpdate{
		Description: &description,
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), description, updated.Description)
}

func (suite *TestSuiteStandard) TestTransactionUpdateNotFound() {
	_, err := models.UpdateTransaction(4711, models.TransactionUpdate{})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "To be deleted",
		Amount:      decimal.NewFromFloat(1),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 1, 1),
	})

	err := models.DeleteTransaction(transaction.ID)
	require.Nil(suite.T(), err)

	_, err = models.GetTransaction(transaction.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDeleteNotFound() {
	err := models.DeleteTransaction(9001)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionListOrder() {
	// Two transactions on the same date to exercise the ID tie-break
	first := suite.createTestTransaction(models.Transaction{
		Description: "Same day, created first",
		Amount:      decimal.NewFromFloat(1),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 1, 15),
	})
	second := suite.createTestTransaction(models.Transaction{
		Description: "Same day, created second",
		Amount:      decimal.NewFromFloat(2),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 1, 15),
	})
	later := suite.createTestTransaction(models.Transaction{
		Description: "Later date",
		Amount:      decimal.NewFromFloat(3),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 2, 1),
	})
	earlier := suite.createTestTransaction(models.Transaction{
		Description: "Earlier date",
		Amount:      decimal.NewFromFloat(4),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 1, 1),
	})

	transactions, err := models.ListTransactions(models.TransactionFilter{Limit: 100})
	require.Nil(suite.T(), err)
	require.Len(suite.T(), transactions, 4)

	assert.Equal(suite.T(), later.ID, transactions[0].ID, "newest date first")
	assert.Equal(suite.T(), second.ID, transactions[1].ID, "highest ID first for equal dates")
	assert.Equal(suite.T(), first.ID, transactions[2].ID)
	assert.Equal(suite.T(), earlier.ID, transactions[3].ID, "oldest date last")
}

func (suite *TestSuiteStandard) TestTransactionListFilter() {
	_ = suite.createTestTransaction(models.Transaction{
		Description: "December expense",
		Amount:      decimal.NewFromFloat(10),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2023, 12, 31),
	})
	january1 := suite.createTestTransaction(models.Transaction{
		Description: "January expense",
		Amount:      decimal.NewFromFloat(20),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 1, 1),
	})
	january31 := suite.createTestTransaction(models.Transaction{
		Description: "January income",
		Amount:      decimal.NewFromFloat(30),
		Type:        models.TypeIncome,
		Date:        types.NewDate(2024, 1, 31),
	})
	_ = suite.createTestTransaction(models.Transaction{
		Description: "February income",
		Amount:      decimal.NewFromFloat(40),
		Type:        models.TypeIncome,
		Date:        types.NewDate(2024, 2, 1),
	})

	tests := []struct {
		name     string
		filter   models.TransactionFilter
		expected []uint64
	}{
		{
			"date range is inclusive on both ends",
			models.TransactionFilter{StartDate: types.NewDate(2024, 1, 1), EndDate: types.NewDate(2024, 1, 31), Limit: 100},
			[]uint64{january31.ID, january1.ID},
		},
		{
			"type filter",
			models.TransactionFilter{Type: models.TypeExpense, StartDate: types.NewDate(2024, 1, 1), Limit: 100},
			[]uint64{january1.ID},
		},
		{
			"no match",
			models.TransactionFilter{StartDate: types.NewDate(2025, 1, 1), Limit: 100},
			[]uint64{},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transactions, err := models.ListTransactions(tt.filter)
			require.Nil(t, err)

			ids := make([]uint64, 0, len(transactions))
			for _, transaction := range transactions {
				ids = append(ids, transaction.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionListPagination() {
	for i := range 150 {
		_ = suite.createTestTransaction(models.Transaction{
			Description: fmt.Sprintf("Transaction %d", i),
			Amount:      decimal.NewFromFloat(1),
			Type:        models.TypeExpense,
			Date:        types.NewDate(2024, 1, 1),
		})
	}

	transactions, err := models.ListTransactions(models.TransactionFilter{Skip: 100, Limit: 100})
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), transactions, 50)

	count, err := models.CountTransactions(models.TransactionFilter{})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(150), count)
}

func (suite *TestSuiteStandard) TestTransactionDBClosed() {
	suite.CloseDB()

	_, err := models.CreateTransaction(models.Transaction{
		Description: "Test",
		Amount:      decimal.NewFromFloat(1),
		Type:        models.TypeExpense,
		Date:        types.NewDate(2024, 1, 1),
	})

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
