package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

// ErrItemUnavailable is returned when the compare-and-swap availability check
// fails at booking-creation time (item missing or availability flipped off).
var ErrItemUnavailable = errors.New("catalog item is not available")

type BookingFilters struct {
	Status        string
	AdminStatus   string
	PaymentStatus string
	Type          string
	Tag           string
	Limit         int
	Offset        int
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	BookingID string `gorm:"column:booking_id;uniqueIndex"`
	Type      string `gorm:"column:type"`

	ProviderID      *int64 `gorm:"column:provider_id"`
	AccommodationID *int64 `gorm:"column:accommodation_id"`
	ActivityID      *int64 `gorm:"column:activity_id"`
	LocationID      *int64 `gorm:"column:location_id"`
	UserID          *int64 `gorm:"column:user_id"`

	CustomerName  string `gorm:"column:customer_name"`
	CustomerEmail string `gorm:"column:customer_email"`
	CustomerPhone string `gorm:"column:customer_phone"`

	PickupLocation     *string `gorm:"column:pickup_location"`
	DropoffLocation    *string `gorm:"column:dropoff_location"`
	BookingDate        *string `gorm:"column:booking_date"`
	BookingTime        *string `gorm:"column:booking_time"`
	NumberOfPassengers int     `gorm:"column:number_of_passengers"`

	CheckInDate  *string `gorm:"column:check_in_date"`
	CheckOutDate *string `gorm:"column:check_out_date"`
	Guests       int     `gorm:"column:guests"`

	ScheduledDate *string `gorm:"column:scheduled_date"`
	Participants  int     `gorm:"column:participants"`

	VisitDate *string `gorm:"column:visit_date"`
	GroupSize int     `gorm:"column:group_size"`

	SpecialRequests *string `gorm:"column:special_requests"`

	TotalPrice float64 `gorm:"column:total_price"`
	Currency   string  `gorm:"column:currency"`

	Status        string `gorm:"column:status"`
	AdminStatus   string `gorm:"column:admin_status"`
	PaymentStatus string `gorm:"column:payment_status"`
	UserConfirmed bool   `gorm:"column:user_confirmed"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:                 m.ID,
		BookingID:          m.BookingID,
		Type:               domain.BookingType(m.Type),
		ProviderID:         m.ProviderID,
		AccommodationID:    m.AccommodationID,
		ActivityID:         m.ActivityID,
		LocationID:         m.LocationID,
		UserID:             m.UserID,
		CustomerName:       m.CustomerName,
		CustomerEmail:      m.CustomerEmail,
		CustomerPhone:      m.CustomerPhone,
		PickupLocation:     deref(m.PickupLocation),
		DropoffLocation:    deref(m.DropoffLocation),
		BookingDate:        deref(m.BookingDate),
		BookingTime:        deref(m.BookingTime),
		NumberOfPassengers: m.NumberOfPassengers,
		CheckInDate:        deref(m.CheckInDate),
		CheckOutDate:       deref(m.CheckOutDate),
		Guests:             m.Guests,
		ScheduledDate:      deref(m.ScheduledDate),
		Participants:       m.Participants,
		VisitDate:          deref(m.VisitDate),
		GroupSize:          m.GroupSize,
		SpecialRequests:    deref(m.SpecialRequests),
		TotalPrice:         m.TotalPrice,
		Currency:           m.Currency,
		Status:             domain.BookingStatus(m.Status),
		AdminStatus:        domain.AdminStatus(m.AdminStatus),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		UserConfirmed:      m.UserConfirmed,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:                 b.ID,
		BookingID:          b.BookingID,
		Type:               string(b.Type),
		ProviderID:         b.ProviderID,
		AccommodationID:    b.AccommodationID,
		ActivityID:         b.ActivityID,
		LocationID:         b.LocationID,
		UserID:             b.UserID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		PickupLocation:     strOrNil(b.PickupLocation),
		DropoffLocation:    strOrNil(b.DropoffLocation),
		BookingDate:        strOrNil(b.BookingDate),
		BookingTime:        strOrNil(b.BookingTime),
		NumberOfPassengers: b.NumberOfPassengers,
		CheckInDate:        strOrNil(b.CheckInDate),
		CheckOutDate:       strOrNil(b.CheckOutDate),
		Guests:             b.Guests,
		ScheduledDate:      strOrNil(b.ScheduledDate),
		Participants:       b.Participants,
		VisitDate:          strOrNil(b.VisitDate),
		GroupSize:          b.GroupSize,
		SpecialRequests:    strOrNil(b.SpecialRequests),
		TotalPrice:         b.TotalPrice,
		Currency:           b.Currency,
		Status:             string(b.Status),
		AdminStatus:        string(b.AdminStatus),
		PaymentStatus:      string(b.PaymentStatus),
		UserConfirmed:      b.UserConfirmed,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func referencedItem(b *domain.Booking) (table string, id int64) {
	switch b.Type {
	case domain.BookingTransport:
		return "transport_providers", *b.ProviderID
	case domain.BookingAccommodation:
		return "accommodations", *b.AccommodationID
	case domain.BookingActivity:
		return "activities", *b.ActivityID
	default:
		return "locations", *b.LocationID
	}
}

// Create persists the booking inside one transaction with a conditional
// update on the referenced catalog row (availability = true is the guard).
// The write-then-insert ordering serializes concurrent bookings of the same
// item on the row lock, so a flip to availability=false between the
// caller's read and this insert is caught here, not raced past.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		table, itemID := referencedItem(b)

		res := tx.Table(table).
			Where("id = ? AND availability = ?", itemID, true).
			Update("updated_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemUnavailable
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, ref string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", ref).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetAll returns bookings newest-first with optional filters.
func (r *BookingRepository) GetAll(ctx context.Context, f BookingFilters) ([]domain.Booking, int64, error) {
	var rows []bookingModel
	var total int64

	q := r.db.WithContext(ctx).Model(&bookingModel{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AdminStatus != "" {
		q = q.Where("admin_status = ?", f.AdminStatus)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Tag != "" {
		q = q.Where("special_requests = ?", f.Tag)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()}).Error
}

func (r *BookingRepository) UpdateAdminStatus(ctx context.Context, id int64, status domain.AdminStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"admin_status": string(status), "updated_at": time.Now()}).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"payment_status": string(status), "updated_at": time.Now()}).Error
}

// Confirm flips status to confirmed and records the customer confirmation flag.
func (r *BookingRepository) Confirm(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         string(domain.BookingConfirmed),
			"user_confirmed": true,
			"updated_at":     time.Now(),
		}).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}

// TotalByUser sums total_price over all bookings created by the given user.
func (r *BookingRepository) TotalByUser(ctx context.Context, userID int64) (float64, int64, error) {
	var total float64
	var count int64

	q := r.db.WithContext(ctx).Model(&bookingModel{}).Where("user_id = ?", userID)

	if err := q.Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if err := q.Select("COALESCE(SUM(total_price), 0)").Scan(&total).Error; err != nil {
		return 0, 0, err
	}
	return total, count, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ?", string(status)).
		Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) CountByAdminStatus(ctx context.Context, status domain.AdminStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("admin_status = ?", string(status)).
		Count(&cnt).Error
	return cnt, err
}

// PaidRevenue sums total_price over paid bookings.
func (r *BookingRepository) PaidRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("payment_status = ?", string(domain.PaymentPaid)).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}
