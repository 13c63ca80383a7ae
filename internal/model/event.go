package model

import (
	"time"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// EventCategory classifies an event for filtering.
type EventCategory string

const (
	EventCategoryMusic         EventCategory = "music"
	EventCategoryFood          EventCategory = "food"
	EventCategorySports        EventCategory = "sports"
	EventCategoryEducation     EventCategory = "education"
	EventCategoryEntertainment EventCategory = "entertainment"
	EventCategoryTechnology    EventCategory = "technology"
	EventCategoryOther         EventCategory = "other"
)

var eventCategories = map[EventCategory]bool{
	EventCategoryMusic:         true,
	EventCategoryFood:          true,
	EventCategorySports:        true,
	EventCategoryEducation:     true,
	EventCategoryEntertainment: true,
	EventCategoryTechnology:    true,
	EventCategoryOther:         true,
}

// Valid reports whether c is a known event category.
func (c EventCategory) Valid() bool {
	return eventCategories[c]
}

// EventStatus is a free-form lifecycle enum; no transition graph is enforced.
// The upcoming/past list endpoints additionally compare the event date to now.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

var eventStatuses = map[EventStatus]bool{
	EventStatusUpcoming:  true,
	EventStatusOngoing:   true,
	EventStatusCompleted: true,
	EventStatusCancelled: true,
}

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	return eventStatuses[s]
}

// Event is a city event listed in the directory.
type Event struct {
	Base
	Title       string          `json:"title" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
	EndDate     *time.Time      `json:"end_date"`
	Location    string          `json:"location" gorm:"type:varchar(255);not null"`
	Categories  []EventCategory `json:"categories" gorm:"serializer:json"`
	Status      EventStatus     `json:"status" gorm:"type:varchar(20);index"`
	OrganizerID string          `json:"organizer_id" gorm:"size:36;not null;index"`
}

// Validate checks value domains and the end-after-start rule.
func (e *Event) Validate() error {
	if !e.Status.Valid() {
		return apperr.Validationf("invalid event status: %s", e.Status)
	}
	for _, c := range e.Categories {
		if !c.Valid() {
			return apperr.Validationf("invalid event category: %s", c)
		}
	}
	if e.EndDate != nil && e.EndDate.Before(e.Date) {
		return apperr.Validationf("end date must not precede the event date")
	}
	return nil
}

// EventCreate is the validated input payload for creating an event.
type EventCreate struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	EndDate     *time.Time      `json:"end_date"`
	Location    string          `json:"location"`
	Categories  []EventCategory `json:"categories"`
	Status      EventStatus     `json:"status"`
	OrganizerID string          `json:"organizer_id"`
}

// Validate checks required fields, value domains, and cross-field rules.
func (in *EventCreate) Validate() error {
	if in.Title == "" {
		return apperr.Validationf("title is required")
	}
	if in.Description == "" {
		return apperr.Validationf("description is required")
	}
	if in.Date.IsZero() {
		return apperr.Validationf("date is required")
	}
	if in.Location == "" {
		return apperr.Validationf("location is required")
	}
	if in.OrganizerID == "" {
		return apperr.Validationf("organizer_id is required")
	}
	return in.ToModel().Validate()
}

// ToModel maps the input to a new event, applying enum defaults.
func (in *EventCreate) ToModel() *Event {
	status := in.Status
	if status == "" {
		status = EventStatusUpcoming
	}
	return &Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Categories:  in.Categories,
		Status:      status,
		OrganizerID: in.OrganizerID,
	}
}

// EventUpdate is a partial-update payload; nil fields mean "leave unchanged".
type EventUpdate struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
	EndDate     *time.Time       `json:"end_date"`
	Location    *string          `json:"location"`
	Categories  *[]EventCategory `json:"categories"`
	Status      *EventStatus     `json:"status"`
}

// Apply copies the supplied fields onto e. Cross-field rules are re-checked
// by the caller through e.Validate after applying.
func (in *EventUpdate) Apply(e *Event) {
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Categories != nil {
		e.Categories = *in.Categories
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
}
