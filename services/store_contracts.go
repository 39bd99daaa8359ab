package services

import (
	"context"

	"github.com/dgeemedia/chrenis/models"
)

// Persistence contracts consumed by the workflows. The stores package
// provides the GORM implementations; tests substitute in-memory fakes.
// Stores signal a missing record with stores.ErrNotFound.

type InvestmentStore interface {
	Create(ctx context.Context, inv *models.Investment) error
	FindByID(ctx context.Context, id uint) (*models.Investment, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Investment, error)
	ListAll(ctx context.Context) ([]models.Investment, error)
	AppendTransactionRef(ctx context.Context, investmentID uint, txID string) error
	RemoveTransactionRef(ctx context.Context, investmentID uint, txID string) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Investment, error)
	Delete(ctx context.Context, id uint) error
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByID(ctx context.Context, id uint) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Transaction, error)
	Delete(ctx context.Context, id uint) error
}

type ProjectLookup interface {
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Project, error)
}

type NotificationWriter interface {
	Create(ctx context.Context, n *models.Notification) error
}

// UnitOfWork runs fn with investment and transaction store views bound to a
// single storage transaction, so the enclosed writes commit or roll back
// together. The composition root supplies the real implementation; without
// one the workflow falls back to running fn against its own stores with no
// cross-store atomicity.
type UnitOfWork func(ctx context.Context, fn func(investments InvestmentStore, transactions TransactionStore) error) error
