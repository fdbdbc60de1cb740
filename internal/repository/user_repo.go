package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	Username     string          `gorm:"column:username"`
	Email        string          `gorm:"column:email"`
	PasswordHash string          `gorm:"column:password_hash"`
	FirstName    *string         `gorm:"column:first_name"`
	LastName     *string         `gorm:"column:last_name"`
	Phone        *string         `gorm:"column:phone"`
	Role         string          `gorm:"column:role"`
	IsActive     bool            `gorm:"column:is_active"`
	Address      json.RawMessage `gorm:"column:address"`
	Preferences  json.RawMessage `gorm:"column:preferences"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	u := &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    deref(m.FirstName),
		LastName:     deref(m.LastName),
		Phone:        deref(m.Phone),
		Role:         domain.UserRole(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if len(m.Address) > 0 {
		var a domain.Address
		if err := json.Unmarshal(m.Address, &a); err == nil {
			u.Address = &a
		}
	}
	if len(m.Preferences) > 0 {
		var p domain.Preferences
		if err := json.Unmarshal(m.Preferences, &p); err == nil {
			u.Preferences = &p
		}
	}
	return u
}

func toUserModel(u *domain.User) userModel {
	m := userModel{
		ID:           u.ID,
		Username:     strings.TrimSpace(u.Username),
		Email:        strings.TrimSpace(strings.ToLower(u.Email)),
		PasswordHash: u.PasswordHash,
		FirstName:    strOrNil(u.FirstName),
		LastName:     strOrNil(u.LastName),
		Phone:        strOrNil(u.Phone),
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	if u.Address != nil {
		if raw, err := json.Marshal(u.Address); err == nil {
			m.Address = raw
		}
	}
	if u.Preferences != nil {
		if raw, err := json.Marshal(u.Preferences); err == nil {
			m.Preferences = raw
		}
	}
	return m
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	var rows []userModel
	var total int64

	q := r.db.WithContext(ctx).Model(&userModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, total, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&userModel{}, id).Error
}
