package stores

import (
	"context"
	"time"

	"github.com/dgeemedia/chrenis/models"

	"gorm.io/gorm"
)

type ProjectStore struct {
	DB *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{DB: db}
}

func (s *ProjectStore) Create(ctx context.Context, p *models.Project) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *ProjectStore) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// FindByIDs is the batched lookup used for list enrichment: one query for
// the deduplicated id set, never one query per investment.
func (s *ProjectStore) FindByIDs(ctx context.Context, ids []uint) ([]models.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Project
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ProjectStore) ListActive(ctx context.Context) ([]models.Project, error) {
	var rows []models.Project
	if err := s.DB.WithContext(ctx).Where("status = ?", models.ProjectStatusActive).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ProjectStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Project, error) {
	if len(fields) == 0 {
		return s.FindByID(ctx, id)
	}
	fields["updated_at"] = time.Now()
	res := s.DB.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(fields)
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

func (s *ProjectStore) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
