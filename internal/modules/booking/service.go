package booking

import (
	"context"
	"errors"
	"math"
	"strconv"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	catalog  CatalogReader
}

func NewService(bookings BookingRepository, catalog CatalogReader) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
	}
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

func currencyOrDefault(c string) string {
	if c == "" {
		return domain.DefaultCurrency
	}
	return c
}

func (s *Service) CreateTransportBooking(ctx context.Context, req CreateTransportBookingRequest, userID *int64) (*domain.Booking, error) {
	provider, err := s.catalog.GetTransportProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !provider.Availability {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		Type:               domain.BookingTransport,
		ProviderID:         &provider.ID,
		UserID:             userID,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		PickupLocation:     req.PickupLocation,
		DropoffLocation:    req.DropoffLocation,
		BookingDate:        req.BookingDate,
		BookingTime:        req.BookingTime,
		NumberOfPassengers: req.NumberOfPassengers,
		SpecialRequests:    req.SpecialRequests,
	}

	errs := validateBooking(b)
	if req.NumberOfPassengers > provider.Seats {
		if errs == nil {
			errs = FieldErrors{}
		}
		errs["numberOfPassengers"] = "passenger count exceeds available seats"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return s.persist(ctx, b, provider.Price, provider.Currency)
}

func (s *Service) CreateAccommodationBooking(ctx context.Context, req CreateAccommodationBookingRequest, userID *int64) (*domain.Booking, error) {
	acc, err := s.catalog.GetAccommodation(ctx, req.AccommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !acc.Availability {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		Type:            domain.BookingAccommodation,
		AccommodationID: &acc.ID,
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	if errs := validateBooking(b); len(errs) > 0 {
		return nil, errs
	}

	// Price is per stay and guest count only; check-in/check-out dates are
	// recorded but never multiplied in.
	return s.persist(ctx, b, acc.Price, acc.Currency)
}

func (s *Service) CreateActivityBooking(ctx context.Context, req CreateActivityBookingRequest, userID *int64) (*domain.Booking, error) {
	act, err := s.catalog.GetActivity(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !act.Availability {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		Type:            domain.BookingActivity,
		ActivityID:      &act.ID,
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ScheduledDate:   req.ScheduledDate,
		Participants:    req.Participants,
		SpecialRequests: req.SpecialRequests,
	}

	if errs := validateBooking(b); len(errs) > 0 {
		return nil, errs
	}

	return s.persist(ctx, b, act.Price, act.Currency)
}

func (s *Service) CreateLocationBooking(ctx context.Context, req CreateLocationBookingRequest, userID *int64) (*domain.Booking, error) {
	loc, err := s.catalog.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !loc.Availability {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		Type:            domain.BookingLocation,
		LocationID:      &loc.ID,
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		VisitDate:       req.VisitDate,
		GroupSize:       req.GroupSize,
		SpecialRequests: req.SpecialRequests,
	}

	if errs := validateBooking(b); len(errs) > 0 {
		return nil, errs
	}

	return s.persist(ctx, b, loc.Price, loc.Currency)
}

// persist computes the derived fields and writes the booking; the repository
// re-checks availability inside its transaction, so a race with an admin
// flipping availability off surfaces as ErrNotAvailable here.
func (s *Service) persist(ctx context.Context, b *domain.Booking, unitPrice float64, currency string) (*domain.Booking, error) {
	b.BookingID = newReference()
	b.TotalPrice = roundPrice(unitPrice * float64(b.Quantity()))
	b.Currency = currencyOrDefault(currency)
	b.Status = domain.BookingPending
	b.AdminStatus = domain.AdminPending
	b.PaymentStatus = domain.PaymentPending

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrItemUnavailable) {
			return nil, ErrNotAvailable
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// reference collision; one retry with a fresh id
			b.BookingID = newReference()
			if err := s.bookings.Create(ctx, b); err != nil {
				return nil, ErrConflict
			}
			return b, nil
		}
		return nil, err
	}

	return b, nil
}

func (s *Service) GetAll(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, int64, error) {
	return s.bookings.GetAll(ctx, f)
}

// Get resolves either a numeric id or a BK- reference.
func (s *Service) Get(ctx context.Context, idOrRef string) (*domain.Booking, error) {
	var b *domain.Booking
	var err error

	if id, convErr := strconv.ParseInt(idOrRef, 10, 64); convErr == nil {
		b, err = s.bookings.GetByID(ctx, id)
	} else {
		b, err = s.bookings.GetByReference(ctx, idOrRef)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) TotalByUser(ctx context.Context, userID int64) (*TotalByUserResponse, error) {
	total, count, err := s.bookings.TotalByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &TotalByUserResponse{
		UserID:       userID,
		BookingCount: count,
		TotalSpent:   roundPrice(total),
	}, nil
}

// Confirm moves status pending -> confirmed and records the customer
// confirmation flag on their behalf.
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.Confirm(ctx, id); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.setAdminStatus(ctx, id, domain.AdminApproved)
}

func (s *Service) Reject(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.setAdminStatus(ctx, id, domain.AdminRejected)
}

func (s *Service) setAdminStatus(ctx context.Context, id int64, status domain.AdminStatus) (*domain.Booking, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.AdminStatus != domain.AdminPending {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateAdminStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Pay marks the booking paid; only approved bookings can be paid.
func (s *Service) Pay(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.AdminStatus != domain.AdminApproved {
		return nil, ErrInvalidStatusTransition
	}
	if b.PaymentStatus != domain.PaymentPending {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, id, domain.PaymentPaid); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// UpdateStatus applies the customer-facing lifecycle: pending -> confirmed,
// pending/confirmed -> cancelled. Cancelled is terminal.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	next := domain.BookingStatus(status)
	switch next {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled:
	default:
		return nil, ErrValidation
	}

	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := (b.Status == domain.BookingPending && next == domain.BookingConfirmed) ||
		(b.Status == domain.BookingPending && next == domain.BookingCancelled) ||
		(b.Status == domain.BookingConfirmed && next == domain.BookingCancelled)
	if !allowed {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Delete removes the booking unconditionally, whatever its state.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.bookings.Delete(ctx, id)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
