package dto

import (
	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the structure for creating or fully
// replacing a transaction. Binding tags catch missing fields; the full rule
// set (date format, bounds, type) is checked by domain validation so the
// caller gets every violation in one response.
type CreateTransactionRequest struct {
	Date            string          `json:"date" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Type            string          `json:"type" binding:"required"`
	Author          string          `json:"author" binding:"required"`
	Comment         string          `json:"comment"`
	IsDollarSavings bool            `json:"isDollarSavings"`
}

// ToInput converts the request into the domain intake form.
func (r CreateTransactionRequest) ToInput() domain.TransactionInput {
	return domain.TransactionInput{
		Date:          r.Date,
		Category:      r.Category,
		Amount:        r.Amount,
		Type:          r.Type,
		Author:        r.Author,
		Comment:       r.Comment,
		DollarSavings: r.IsDollarSavings,
	}
}

// TransactionSnapshotRequest is a complete replacement push from the sync
// layer: the full transaction collection in one body.
type TransactionSnapshotRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required"`
}

// TransactionResponse defines the structure for API responses containing
// transaction details.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Date            string          `json:"date"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Author          string          `json:"author"`
	Comment         string          `json:"comment,omitempty"`
	IsDollarSavings bool            `json:"isDollarSavings"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Date:            txn.Date.Format(domain.DateLayout),
		Category:        txn.Category,
		Amount:          txn.Amount,
		Type:            string(txn.Type),
		Author:          txn.Author,
		Comment:         txn.Comment,
		IsDollarSavings: txn.DollarSavings,
	}
}

// ToListTransactionResponse converts a slice of domain transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
