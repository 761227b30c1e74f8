package v1

import (
	"github.com/finance-control/backend/internal/models"
	"github.com/finance-control/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains the fields a client sets when creating a
// transaction.
type TransactionEditable struct {
	Description string                 `json:"description" example:"Salary"`                               // What the transaction was for
	Amount      decimal.Decimal        `json:"amount" swaggertype:"string" example:"5000.00"`              // The amount, always positive with at most two decimal places
	Type        models.TransactionType `json:"transaction_type" example:"income" enums:"income,expense"`   // Whether money came in or went out
	Date        types.Date             `json:"transaction_date" swaggertype:"string" example:"2024-03-01"` // The day the transaction occurred
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Description: editable.Description,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Date:        editable.Date,
	}
}

// TransactionUpdateable contains the fields a client may set when updating
// a transaction. Every field is optional; nil means the field was not part
// of the request and keeps its stored value.
type TransactionUpdateable struct {
	Description *string                 `json:"description"`
	Amount      *decimal.Decimal        `json:"amount" swaggertype:"string"`
	Type        *models.TransactionType `json:"transaction_type" enums:"income,expense"`
	Date        *types.Date             `json:"transaction_date" swaggertype:"string"`
}

// model returns the partial update for the database layer
func (updateable TransactionUpdateable) model() models.TransactionUpdate {
	return models.TransactionUpdate{
		Description: updateable.Description,
		Amount:      updateable.Amount,
		Type:        updateable.Type,
		Date:        updateable.Date,
	}
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	Description string                 `json:"description" example:"Salary"`
	Amount      string                 `json:"amount" example:"5000.00"` // Always rendered with two decimal places
	Type        models.TransactionType `json:"transaction_type" example:"income"`
	Date        types.Date             `json:"transaction_date" swaggertype:"string" example:"2024-03-01"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		Description:  model.Description,
		Amount:       model.Amount.StringFixed(2),
		Type:         model.Type,
		Date:         model.Date,
	}
}

type TransactionResponse struct {
	Data   *Transaction      `json:"data"`                                                        // The transaction, if the request was successful
	Error  *string           `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
	Fields map[string]string `json:"fields,omitempty"`                                            // Field level details for validation failures
}

type TransactionListResponse struct {
	Data       []Transaction     `json:"data"`             // List of transactions
	Error      *string           `json:"error"`            // The error, if any occurred
	Fields     map[string]string `json:"fields,omitempty"` // Field level details for validation failures
	Pagination *Pagination       `json:"pagination"`       // Pagination information
}

type Pagination struct {
	Count int   `json:"count" example:"25"`  // The amount of records returned in this response
	Total int64 `json:"total" example:"827"` // The total number of records matching the filter
	Skip  int   `json:"skip" example:"50"`   // The number of records skipped
	Limit int   `json:"limit" example:"100"` // The maximum number of records returned
}

// TransactionQueryFilter contains the query parameters for the
// transaction list endpoint.
type TransactionQueryFilter struct {
	Skip      int                    `form:"skip" binding:"omitempty,min=0"`                            // Number of records to skip. Defaults to 0.
	Limit     int                    `form:"limit,default=100" binding:"min=1,max=1000"`                // Maximum number of records to return. Defaults to 100.
	Type      models.TransactionType `form:"transaction_type" binding:"omitempty,oneof=income expense"` // Only return transactions of this type
	StartDate types.Date             `form:"start_date"`                                                // Only return transactions at or after this date
	EndDate   types.Date             `form:"end_date"`                                                  // Only return transactions at or before this date
}

// filter returns the persistence layer filter for the query parameters
func (f TransactionQueryFilter) filter() models.TransactionFilter {
	return models.TransactionFilter{
		Type:      f.Type,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Skip:      f.Skip,
		Limit:     f.Limit,
	}
}

// URIID is the id path parameter of the detail endpoints.
type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}
