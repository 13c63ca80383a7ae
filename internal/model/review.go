package model

import "github.com/EricsonWillians/itafest-backend/internal/apperr"

// ReviewTargetType says what kind of resource a review is attached to.
type ReviewTargetType string

const (
	ReviewTargetBusiness ReviewTargetType = "business"
	ReviewTargetEvent    ReviewTargetType = "event"
)

// Valid reports whether t is a known review target type.
func (t ReviewTargetType) Valid() bool {
	return t == ReviewTargetBusiness || t == ReviewTargetEvent
}

// ReviewRating holds the per-emoji counters of a single review. It is an
// owned sub-object, embedded in the review document and mutated only through
// the review's update operation.
type ReviewRating struct {
	Star          int `json:"star"`
	ThumbsUp      int `json:"thumbs_up"`
	ClappingHands int `json:"clapping_hands"`
	MoneyBag      int `json:"money_bag"`
	Trophy        int `json:"trophy"`
	Music         int `json:"music"`
	BeerMug       int `json:"beer_mug"`
	PartyPopper   int `json:"party_popper"`
	Dancing       int `json:"dancing"`
	Fire          int `json:"fire"`
}

// Review is user feedback on a business or an event.
type Review struct {
	Base
	UserID     string           `json:"user_id" gorm:"size:36;not null;index"`
	TargetID   string           `json:"target_id" gorm:"size:36;not null;index"`
	TargetType ReviewTargetType `json:"target_type" gorm:"type:varchar(20);not null;index"`
	Rating     ReviewRating     `json:"rating" gorm:"serializer:json"`
	Comment    string           `json:"comment" gorm:"type:text"`
}

// Validate checks the value-domain constraints of a persisted review.
func (r *Review) Validate() error {
	if !r.TargetType.Valid() {
		return apperr.Validationf("invalid review target type: %s", r.TargetType)
	}
	return nil
}

// ReviewCreate is the validated input payload for creating a review.
type ReviewCreate struct {
	UserID     string           `json:"user_id"`
	TargetID   string           `json:"target_id"`
	TargetType ReviewTargetType `json:"target_type"`
	Rating     ReviewRating     `json:"rating"`
	Comment    string           `json:"comment"`
}

// Validate checks required fields and value domains.
func (in *ReviewCreate) Validate() error {
	if in.UserID == "" {
		return apperr.Validationf("user_id is required")
	}
	if in.TargetID == "" {
		return apperr.Validationf("target_id is required")
	}
	return in.ToModel().Validate()
}

// ToModel maps the input to a new review.
func (in *ReviewCreate) ToModel() *Review {
	return &Review{
		UserID:     in.UserID,
		TargetID:   in.TargetID,
		TargetType: in.TargetType,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
}

// ReviewUpdate is a partial-update payload; nil fields mean "leave unchanged".
// Only the rating and the comment are mutable.
type ReviewUpdate struct {
	Rating  *ReviewRating `json:"rating"`
	Comment *string       `json:"comment"`
}

// Apply copies the supplied fields onto r.
func (in *ReviewUpdate) Apply(r *Review) {
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if in.Comment != nil {
		r.Comment = *in.Comment
	}
}
