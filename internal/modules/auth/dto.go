package auth

import "tourbook/internal/domain"

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName   *string             `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string             `json:"lastName"`
	Phone       *string             `json:"phone"`
	Address     *domain.Address     `json:"address"`
	Preferences *domain.Preferences `json:"preferences"`
}

// AdminUpdateUserRequest is the back-office user edit payload; it can also
// flip isActive and role.
type AdminUpdateUserRequest struct {
	Username    *string             `json:"username" validate:"omitempty,min=3"`
	Email       *string             `json:"email" validate:"omitempty,email"`
	FirstName   *string             `json:"firstName"`
	LastName    *string             `json:"lastName"`
	Phone       *string             `json:"phone"`
	Role        *string             `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive    *bool               `json:"isActive"`
	Address     *domain.Address     `json:"address"`
	Preferences *domain.Preferences `json:"preferences"`
}

type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type UserListResponse struct {
	Users []domain.User `json:"users"`
	Total int64         `json:"total"`
}
