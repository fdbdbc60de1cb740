package repository

import (
	"context"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type CatalogFilters struct {
	City          string
	AvailableOnly bool
	Limit         int
	Offset        int
}

type TransportProviderRepository struct {
	db *gorm.DB
}

func NewTransportProviderRepository(db *gorm.DB) *TransportProviderRepository {
	return &TransportProviderRepository{db: db}
}

// GetAll returns providers with optional filters
func (r *TransportProviderRepository) GetAll(
	ctx context.Context,
	f CatalogFilters,
) ([]domain.TransportProvider, int64, error) {

	var providers []domain.TransportProvider
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.TransportProvider{})

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

	err := q.Find(&providers).Error
	return providers, total, err
}

func (r *TransportProviderRepository) GetByID(ctx context.Context, id int64) (*domain.TransportProvider, error) {
	var p domain.TransportProvider
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TransportProviderRepository) Create(ctx context.Context, p *domain.TransportProvider) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *TransportProviderRepository) Update(ctx context.Context, p *domain.TransportProvider) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete is physical and unconditional; bookings referencing the provider
// are left untouched.
func (r *TransportProviderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.TransportProvider{}, id).Error
}

func (r *TransportProviderRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.TransportProvider{}).
		Where("id = ?", id).
		Update("availability", available).Error
}
