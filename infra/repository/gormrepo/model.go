// Package gormrepo is the persistence gateway: a GORM-backed
// implementation of the repository contracts. The core never touches
// this package directly; it is wired in at startup behind the
// repository interfaces.
package gormrepo

import (
	"time"

	"github.com/google/uuid"
)

// customerModel is one row per customer; variant-specific columns are
// nullable and discriminated by Kind.
type customerModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind               string    `gorm:"type:varchar(16);not null"`
	Address            string
	FirstName          string
	LastName           string
	DateOfBirth        time.Time
	Employed           bool
	Employer           string
	CompanyName        string
	RegistrationNumber string
	// AccountNumbers keeps the opening order as a comma-separated list;
	// the authoritative owner link lives on the account row.
	AccountNumbers string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (customerModel) TableName() string { return "customers" }

type accountModel struct {
	Number    string    `gorm:"primaryKey"`
	Kind      string    `gorm:"type:varchar(16);not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Branch    string
	Balance   int64
	Currency  string `gorm:"type:varchar(3);not null;default:'BWP'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (accountModel) TableName() string { return "accounts" }

type transactionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountNumber string    `gorm:"index;not null"`
	Kind          string    `gorm:"type:varchar(16);not null"`
	Amount        int64
	Balance       int64
	Currency      string `gorm:"type:varchar(3);not null;default:'BWP'"`
	Description   string
	CreatedAt     time.Time
}

func (transactionModel) TableName() string { return "transactions" }
