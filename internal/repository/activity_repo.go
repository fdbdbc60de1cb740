package repository

import (
	"context"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) GetAll(
	ctx context.Context,
	f CatalogFilters,
) ([]domain.Activity, int64, error) {

	var items []domain.Activity
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Activity{})

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.AvailableOnly {
		q = q.Where("availability = ?", true)
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Find(&items).Error
	return items, total, err
}

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	var a domain.Activity
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Activity{}, id).Error
}

func (r *ActivityRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("id = ?", id).
		Update("availability", available).Error
}
