package stores

import (
	"context"
	"time"

	"github.com/dgeemedia/chrenis/models"

	"gorm.io/gorm"
)

type TransactionStore struct {
	DB *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{DB: db}
}

func (s *TransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	return s.DB.WithContext(ctx).Create(tx).Error
}

func (s *TransactionStore) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

func (s *TransactionStore) ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var rows []models.Transaction
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransactionStore) ListAll(ctx context.Context) ([]models.Transaction, error) {
	var rows []models.Transaction
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransactionStore) ListByInvestment(ctx context.Context, investmentID uint) ([]models.Transaction, error) {
	var rows []models.Transaction
	if err := s.DB.WithContext(ctx).Where("investment_id = ?", investmentID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransactionStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Transaction, error) {
	if len(fields) == 0 {
		return s.FindByID(ctx, id)
	}
	fields["updated_at"] = time.Now()
	res := s.DB.WithContext(ctx).Model(&models.Transaction{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *TransactionStore) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
