package repository

import (
	"context"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) GetAll(
	ctx context.Context,
	f CatalogFilters,
) ([]domain.Location, int64, error) {

	var items []domain.Location
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Location{})

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

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var l domain.Location
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LocationRepository) Create(ctx context.Context, l *domain.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepository) Update(ctx context.Context, l *domain.Location) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Location{}, id).Error
}

func (r *LocationRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Location{}).
		Where("id = ?", id).
		Update("availability", available).Error
}
