package model

import "github.com/EricsonWillians/itafest-backend/internal/apperr"

// CategoryType says which resource kind a category label applies to.
type CategoryType string

const (
	CategoryTypeEvent     CategoryType = "event"
	CategoryTypePromotion CategoryType = "promotion"
	CategoryTypeBusiness  CategoryType = "business"
	CategoryTypeOther     CategoryType = "other"
)

var categoryTypes = map[CategoryType]bool{
	CategoryTypeEvent:     true,
	CategoryTypePromotion: true,
	CategoryTypeBusiness:  true,
	CategoryTypeOther:     true,
}

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return categoryTypes[t]
}

// Category is an admin-managed classification label.
type Category struct {
	Base
	Name        string       `json:"name" gorm:"type:varchar(100);not null"`
	Description string       `json:"description" gorm:"type:text"`
	Type        CategoryType `json:"type" gorm:"type:varchar(20);not null"`
}

// Validate checks the value-domain constraints of a persisted category.
func (c *Category) Validate() error {
	if !c.Type.Valid() {
		return apperr.Validationf("invalid category type: %s", c.Type)
	}
	return nil
}

// CategoryCreate is the validated input payload for creating a category.
type CategoryCreate struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        CategoryType `json:"type"`
}

// Validate checks required fields and value domains.
func (in *CategoryCreate) Validate() error {
	if in.Name == "" {
		return apperr.Validationf("name is required")
	}
	if in.Type == "" {
		return apperr.Validationf("type is required")
	}
	return in.ToModel().Validate()
}

// ToModel maps the input to a new category.
func (in *CategoryCreate) ToModel() *Category {
	return &Category{
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
	}
}

// CategoryUpdate is a partial-update payload; nil fields mean "leave unchanged".
type CategoryUpdate struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Type        *CategoryType `json:"type"`
}

// Apply copies the supplied fields onto c.
func (in *CategoryUpdate) Apply(c *Category) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Type != nil {
		c.Type = *in.Type
	}
}
