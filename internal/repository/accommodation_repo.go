package repository

import (
	"context"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type AccommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

func (r *AccommodationRepository) GetAll(
	ctx context.Context,
	f CatalogFilters,
) ([]domain.Accommodation, int64, error) {

	var items []domain.Accommodation
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Accommodation{})

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

func (r *AccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	var a domain.Accommodation
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccommodationRepository) Update(ctx context.Context, a *domain.Accommodation) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccommodationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Accommodation{}, id).Error
}

func (r *AccommodationRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Accommodation{}).
		Where("id = ?", id).
		Update("availability", available).Error
}
