package model

import (
	"net/mail"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// BusinessCategory classifies a business for filtering.
type BusinessCategory string

const (
	BusinessCategoryFood          BusinessCategory = "food"
	BusinessCategoryRetail        BusinessCategory = "retail"
	BusinessCategoryServices      BusinessCategory = "services"
	BusinessCategoryEntertainment BusinessCategory = "entertainment"
	BusinessCategoryOther         BusinessCategory = "other"
)

var businessCategories = map[BusinessCategory]bool{
	BusinessCategoryFood:          true,
	BusinessCategoryRetail:        true,
	BusinessCategoryServices:      true,
	BusinessCategoryEntertainment: true,
	BusinessCategoryOther:         true,
}

// Valid reports whether c is a known business category.
func (c BusinessCategory) Valid() bool {
	return businessCategories[c]
}

// BusinessStatus is a free-form lifecycle enum; no transition graph is enforced.
type BusinessStatus string

const (
	BusinessStatusActive   BusinessStatus = "active"
	BusinessStatusInactive BusinessStatus = "inactive"
	BusinessStatusPending  BusinessStatus = "pending"
)

var businessStatuses = map[BusinessStatus]bool{
	BusinessStatusActive:   true,
	BusinessStatusInactive: true,
	BusinessStatusPending:  true,
}

// Valid reports whether s is a known business status.
func (s BusinessStatus) Valid() bool {
	return businessStatuses[s]
}

// Business is a local business listed in the directory.
type Business struct {
	Base
	Name        string             `json:"name" gorm:"type:varchar(255);not null"`
	Description string             `json:"description" gorm:"type:text"`
	Email       string             `json:"email" gorm:"type:varchar(100);not null"`
	PhoneNumber string             `json:"phone_number" gorm:"type:varchar(50)"`
	Website     string             `json:"website" gorm:"type:varchar(255)"`
	Address     string             `json:"address" gorm:"type:text"`
	Categories  []BusinessCategory `json:"categories" gorm:"serializer:json"`
	Status      BusinessStatus     `json:"status" gorm:"type:varchar(20)"`
}

// Validate checks the value-domain constraints of a persisted business.
func (b *Business) Validate() error {
	if _, err := mail.ParseAddress(b.Email); err != nil {
		return apperr.Validationf("invalid email address: %s", b.Email)
	}
	if !b.Status.Valid() {
		return apperr.Validationf("invalid business status: %s", b.Status)
	}
	for _, c := range b.Categories {
		if !c.Valid() {
			return apperr.Validationf("invalid business category: %s", c)
		}
	}
	return nil
}

// BusinessCreate is the validated input payload for creating a business.
// It never accepts identity or timestamps from the caller.
type BusinessCreate struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phone_number"`
	Website     string             `json:"website"`
	Address     string             `json:"address"`
	Categories  []BusinessCategory `json:"categories"`
	Status      BusinessStatus     `json:"status"`
}

// Validate checks required fields and value domains.
func (in *BusinessCreate) Validate() error {
	if in.Name == "" {
		return apperr.Validationf("name is required")
	}
	if in.Email == "" {
		return apperr.Validationf("email is required")
	}
	return in.ToModel().Validate()
}

// ToModel maps the input to a new business, applying enum defaults.
func (in *BusinessCreate) ToModel() *Business {
	status := in.Status
	if status == "" {
		status = BusinessStatusPending
	}
	return &Business{
		Name:        in.Name,
		Description: in.Description,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Website:     in.Website,
		Address:     in.Address,
		Categories:  in.Categories,
		Status:      status,
	}
}

// BusinessUpdate is a partial-update payload; nil fields mean "leave unchanged".
type BusinessUpdate struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Email       *string             `json:"email"`
	PhoneNumber *string             `json:"phone_number"`
	Website     *string             `json:"website"`
	Address     *string             `json:"address"`
	Categories  *[]BusinessCategory `json:"categories"`
	Status      *BusinessStatus     `json:"status"`
}

// Apply copies the supplied fields onto b.
func (in *BusinessUpdate) Apply(b *Business) {
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Email != nil {
		b.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		b.PhoneNumber = *in.PhoneNumber
	}
	if in.Website != nil {
		b.Website = *in.Website
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Categories != nil {
		b.Categories = *in.Categories
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
}
