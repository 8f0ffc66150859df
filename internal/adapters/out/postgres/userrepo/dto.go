// Package userrepo provides data transfer objects and mapping functions for
// user persistence. It implements the repository pattern for the user
// aggregate, converting between domain entities and database rows.
package userrepo

import (
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email             string    `gorm:"uniqueIndex;not null"`
	PasswordHash      string    `gorm:"not null"`
	FirstName         string
	LastName          string
	CompanyName       string
	Phone             string
	AccountType       int `gorm:"index"`
	Role              string
	PaymentCustomerID string
	PreferredLanguage string
	IsActive          bool
	CreatedAt         time.Time
	LastLoginAt       *time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:                aggregate.ID().Bytes(),
		Email:             aggregate.Email(),
		PasswordHash:      aggregate.PasswordHash(),
		FirstName:         aggregate.FirstName(),
		LastName:          aggregate.LastName(),
		CompanyName:       aggregate.CompanyName(),
		Phone:             aggregate.Phone(),
		AccountType:       int(aggregate.AccountType()),
		Role:              aggregate.Role(),
		PaymentCustomerID: aggregate.PaymentCustomerID(),
		PreferredLanguage: aggregate.PreferredLanguage(),
		IsActive:          aggregate.IsActive(),
		CreatedAt:         aggregate.CreatedAt(),
		LastLoginAt:       aggregate.LastLoginAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.FirstName,
		dto.LastName,
		dto.CompanyName,
		dto.Phone,
		user.AccountType(dto.AccountType),
		dto.Role,
		dto.PaymentCustomerID,
		dto.PreferredLanguage,
		dto.IsActive,
		dto.CreatedAt,
		dto.LastLoginAt,
	)
}
