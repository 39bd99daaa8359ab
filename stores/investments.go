package stores

import (
	"context"
	"time"

	"github.com/dgeemedia/chrenis/models"

	"gorm.io/gorm"
)

type InvestmentStore struct {
	DB *gorm.DB
}

func NewInvestmentStore(db *gorm.DB) *InvestmentStore {
	return &InvestmentStore{DB: db}
}

func (s *InvestmentStore) Create(ctx context.Context, inv *models.Investment) error {
	if inv.Transactions == nil {
		inv.Transactions = models.IDList{}
	}
	return s.DB.WithContext(ctx).Create(inv).Error
}

func (s *InvestmentStore) FindByID(ctx context.Context, id uint) (*models.Investment, error) {
	var inv models.Investment
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *InvestmentStore) ListByUser(ctx context.Context, userID uint) ([]models.Investment, error) {
	var rows []models.Investment
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *InvestmentStore) ListAll(ctx context.Context) ([]models.Investment, error) {
	var rows []models.Investment
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// AppendTransactionRef appends one canonical transaction id to the
// investment's transactions JSON array in a single UPDATE. Concurrent
// appends against the same investment both land; there is no
// read-modify-write window.
func (s *InvestmentStore) AppendTransactionRef(ctx context.Context, investmentID uint, txID string) error {
	res := s.DB.WithContext(ctx).Model(&models.Investment{}).
		Where("id = ?", investmentID).
		Updates(map[string]interface{}{
			"transactions": gorm.Expr("JSON_ARRAY_APPEND(COALESCE(transactions, JSON_ARRAY()), '$', ?)", txID),
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveTransactionRef pulls one canonical transaction id out of the
// investment's transactions JSON array. Missing investment or missing ref
// both report ErrNotFound; removing a ref that was never appended is not an
// error the caller can act on beyond logging.
func (s *InvestmentStore) RemoveTransactionRef(ctx context.Context, investmentID uint, txID string) error {
	res := s.DB.WithContext(ctx).Model(&models.Investment{}).
		Where("id = ? AND JSON_SEARCH(transactions, 'one', ?) IS NOT NULL", investmentID, txID).
		Updates(map[string]interface{}{
			"transactions": gorm.Expr("JSON_REMOVE(transactions, JSON_UNQUOTE(JSON_SEARCH(transactions, 'one', ?)))", txID),
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Update merges the given column values and stamps updated_at, returning the
// row as persisted.
func (s *InvestmentStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Investment, error) {
	if len(fields) == 0 {
		return s.FindByID(ctx, id)
	}
	fields["updated_at"] = time.Now()
	res := s.DB.WithContext(ctx).Model(&models.Investment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish "no such row" from "values unchanged".
		if _, err := s.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *InvestmentStore) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Investment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
