package services

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/stores"
)

// TransactionService handles transaction creation against an existing
// investment plus the unscoped management operations (list, get, update,
// delete with back-reference removal).
type TransactionService struct {
	transactions TransactionStore
	investments  InvestmentStore
}

func NewTransactionService(transactions TransactionStore, investments InvestmentStore) *TransactionService {
	return &TransactionService{transactions: transactions, investments: investments}
}

type CreateTransactionInput struct {
	InvestmentID string         `json:"investment_id"`
	Type         string         `json:"type"`
	Amount       float64        `json:"amount"`
	Provider     string         `json:"provider"`
	ProviderRef  string         `json:"provider_ref"`
	Meta         models.JSONMap `json:"meta"`
}

// CreateTransaction records a movement against an investment the caller
// owns (or any investment, for admins) and appends the new id onto the
// investment's back-reference list with the same atomic-append contract the
// creation workflow uses.
func (s *TransactionService) CreateTransaction(ctx context.Context, caller Identity, in CreateTransactionInput) (*models.Transaction, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated()
	}
	invID, err := models.ParseID(in.InvestmentID)
	if err != nil {
		return nil, ErrInvalidInput("invalid investment id")
	}
	inv, err := s.investments.FindByID(ctx, invID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("investment not found")
		}
		return nil, ErrInternal(err)
	}
	if !caller.IsAdmin() && !caller.owns(inv.UserID) {
		return nil, ErrForbidden()
	}

	txType := in.Type
	if txType == "" {
		txType = models.TransactionTypeDeposit
	}
	if !models.ValidTransactionType(txType) {
		return nil, ErrInvalidInput("invalid transaction type")
	}

	// Permissive amount fallback: absent or unusable amounts become zero
	// rather than failing the request.
	amount := in.Amount
	if amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		amount = 0
	}

	tx := &models.Transaction{
		UserID:       caller.UserID,
		InvestmentID: inv.ID,
		Type:         txType,
		Amount:       amount,
		Status:       models.TransactionStatusPending,
		Meta:         in.Meta,
	}
	if in.Provider != "" {
		tx.Provider = &in.Provider
	}
	if in.ProviderRef != "" {
		tx.ProviderRef = &in.ProviderRef
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, ErrInternal(err)
	}

	txID := models.FormatID(tx.ID)
	if err := s.investments.AppendTransactionRef(ctx, inv.ID, txID); err != nil {
		log.Printf("[transactions] partial failure: transaction %s committed but back-reference append on investment %d failed: %v", txID, inv.ID, err)
		return nil, ErrInternal(err)
	}
	return tx, nil
}

// ListTransactions returns the caller's transactions, or all of them for
// admins. No identity yields an empty list.
func (s *TransactionService) ListTransactions(ctx context.Context, caller Identity) ([]models.Transaction, error) {
	if caller.IsZero() {
		return []models.Transaction{}, nil
	}
	var (
		rows []models.Transaction
		err  error
	)
	if caller.IsAdmin() {
		rows, err = s.transactions.ListAll(ctx)
	} else {
		rows, err = s.transactions.ListByUser(ctx, caller.UserID)
	}
	if err != nil {
		return nil, ErrInternal(err)
	}
	if rows == nil {
		rows = []models.Transaction{}
	}
	return rows, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, caller Identity, id string) (*models.Transaction, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated()
	}
	txID, err := models.ParseID(id)
	if err != nil {
		return nil, ErrInvalidInput("invalid id")
	}
	tx, err := s.transactions.FindByID(ctx, txID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("transaction not found")
		}
		return nil, ErrInternal(err)
	}
	return tx, nil
}

type UpdateTransactionInput struct {
	Type        *string        `json:"type"`
	Amount      *float64       `json:"amount"`
	Status      *string        `json:"status"`
	Provider    *string        `json:"provider"`
	ProviderRef *string        `json:"provider_ref"`
	Meta        models.JSONMap `json:"meta"`
}

var validTransactionStatus = map[string]bool{
	models.TransactionStatusPending: true,
	models.TransactionStatusSuccess: true,
	models.TransactionStatusFailed:  true,
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, caller Identity, id string, in UpdateTransactionInput) (*models.Transaction, error) {
	tx, err := s.authorizeOwner(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if in.Type != nil {
		if !models.ValidTransactionType(*in.Type) {
			return nil, ErrInvalidInput("invalid transaction type")
		}
		fields["type"] = *in.Type
	}
	if in.Status != nil {
		if !validTransactionStatus[*in.Status] {
			return nil, ErrInvalidInput("invalid status")
		}
		fields["status"] = *in.Status
	}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	if in.Provider != nil {
		fields["provider"] = *in.Provider
	}
	if in.ProviderRef != nil {
		fields["provider_ref"] = *in.ProviderRef
	}
	if in.Meta != nil {
		fields["meta"] = in.Meta
	}
	updated, err := s.transactions.Update(ctx, tx.ID, fields)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("transaction not found")
		}
		return nil, ErrInternal(err)
	}
	return updated, nil
}

// DeleteTransaction removes the transaction and then pulls its id out of
// the owning investment's back-reference list. The two steps span two
// stores with no atomicity; a failed removal is logged and the delete still
// counts, since the transaction's own investment_id is the source of truth.
func (s *TransactionService) DeleteTransaction(ctx context.Context, caller Identity, id string) error {
	tx, err := s.authorizeOwner(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.transactions.Delete(ctx, tx.ID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrNotFound("transaction not found")
		}
		return ErrInternal(err)
	}
	txID := models.FormatID(tx.ID)
	if err := s.investments.RemoveTransactionRef(ctx, tx.InvestmentID, txID); err != nil {
		log.Printf("[transactions] back-reference removal for transaction %s on investment %d failed: %v", txID, tx.InvestmentID, err)
	}
	return nil
}

// authorizeOwner resolves the transaction and enforces owner-or-admin. A
// transaction is owned by the user it was recorded for.
func (s *TransactionService) authorizeOwner(ctx context.Context, caller Identity, id string) (*models.Transaction, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated()
	}
	txID, err := models.ParseID(id)
	if err != nil {
		return nil, ErrInvalidInput("invalid id")
	}
	tx, err := s.transactions.FindByID(ctx, txID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrNotFound("transaction not found")
		}
		return nil, ErrInternal(err)
	}
	if !caller.IsAdmin() && !caller.owns(tx.UserID) {
		return nil, ErrForbidden()
	}
	return tx, nil
}
