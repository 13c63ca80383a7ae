package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// PromotionCategory classifies a promotion for filtering.
type PromotionCategory string

const (
	PromotionCategoryFood          PromotionCategory = "food"
	PromotionCategoryRetail        PromotionCategory = "retail"
	PromotionCategoryServices      PromotionCategory = "services"
	PromotionCategoryEntertainment PromotionCategory = "entertainment"
	PromotionCategoryOther         PromotionCategory = "other"
)

var promotionCategories = map[PromotionCategory]bool{
	PromotionCategoryFood:          true,
	PromotionCategoryRetail:        true,
	PromotionCategoryServices:      true,
	PromotionCategoryEntertainment: true,
	PromotionCategoryOther:         true,
}

// Valid reports whether c is a known promotion category.
func (c PromotionCategory) Valid() bool {
	return promotionCategories[c]
}

// PromotionStatus is a free-form lifecycle enum; no transition graph is enforced.
type PromotionStatus string

const (
	PromotionStatusActive   PromotionStatus = "active"
	PromotionStatusExpired  PromotionStatus = "expired"
	PromotionStatusUpcoming PromotionStatus = "upcoming"
)

var promotionStatuses = map[PromotionStatus]bool{
	PromotionStatusActive:   true,
	PromotionStatusExpired:  true,
	PromotionStatusUpcoming: true,
}

// Valid reports whether s is a known promotion status.
func (s PromotionStatus) Valid() bool {
	return promotionStatuses[s]
}

var maxDiscount = decimal.NewFromInt(100)

// Promotion is a business discount published in the directory.
type Promotion struct {
	Base
	Title       string              `json:"title" gorm:"type:varchar(255);not null"`
	Description string              `json:"description" gorm:"type:text;not null"`
	Discount    decimal.Decimal     `json:"discount" gorm:"type:numeric(5,2);not null"`
	StartDate   time.Time           `json:"start_date" gorm:"not null"`
	EndDate     time.Time           `json:"end_date" gorm:"not null"`
	Categories  []PromotionCategory `json:"categories" gorm:"serializer:json"`
	Status      PromotionStatus     `json:"status" gorm:"type:varchar(20);index"`
	BusinessID  string              `json:"business_id" gorm:"size:36;not null;index"`
}

// Validate checks value domains, the discount range (0, 100], and the
// end-after-start rule.
func (p *Promotion) Validate() error {
	if !p.Discount.GreaterThan(decimal.Zero) || p.Discount.GreaterThan(maxDiscount) {
		return apperr.Validationf("discount must be greater than 0 and at most 100")
	}
	if !p.Status.Valid() {
		return apperr.Validationf("invalid promotion status: %s", p.Status)
	}
	for _, c := range p.Categories {
		if !c.Valid() {
			return apperr.Validationf("invalid promotion category: %s", c)
		}
	}
	if p.EndDate.Before(p.StartDate) {
		return apperr.Validationf("end date must not precede the start date")
	}
	return nil
}

// PromotionCreate is the validated input payload for creating a promotion.
type PromotionCreate struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Discount    decimal.Decimal     `json:"discount"`
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
	Categories  []PromotionCategory `json:"categories"`
	Status      PromotionStatus     `json:"status"`
	BusinessID  string              `json:"business_id"`
}

// Validate checks required fields, value domains, and cross-field rules.
func (in *PromotionCreate) Validate() error {
	if in.Title == "" {
		return apperr.Validationf("title is required")
	}
	if in.Description == "" {
		return apperr.Validationf("description is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return apperr.Validationf("start_date and end_date are required")
	}
	if in.BusinessID == "" {
		return apperr.Validationf("business_id is required")
	}
	return in.ToModel().Validate()
}

// ToModel maps the input to a new promotion, applying enum defaults.
func (in *PromotionCreate) ToModel() *Promotion {
	status := in.Status
	if status == "" {
		status = PromotionStatusUpcoming
	}
	return &Promotion{
		Title:       in.Title,
		Description: in.Description,
		Discount:    in.Discount,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Categories:  in.Categories,
		Status:      status,
		BusinessID:  in.BusinessID,
	}
}

// PromotionUpdate is a partial-update payload; nil fields mean "leave unchanged".
type PromotionUpdate struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Discount    *decimal.Decimal     `json:"discount"`
	StartDate   *time.Time           `json:"start_date"`
	EndDate     *time.Time           `json:"end_date"`
	Categories  *[]PromotionCategory `json:"categories"`
	Status      *PromotionStatus     `json:"status"`
}

// Apply copies the supplied fields onto p.
func (in *PromotionUpdate) Apply(p *Promotion) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Discount != nil {
		p.Discount = *in.Discount
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = *in.EndDate
	}
	if in.Categories != nil {
		p.Categories = *in.Categories
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
}
