package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

func TestEventCreateValidate(t *testing.T) {
	date := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	endBefore := date.Add(-time.Hour)
	endEqual := date

	valid := EventCreate{
		Title:       "Summer Concert",
		Description: "Live music downtown",
		Date:        date,
		Location:    "Main Square",
		Categories:  []EventCategory{EventCategoryMusic},
		OrganizerID: "org-1",
	}

	tests := []struct {
		name    string
		mutate  func(*EventCreate)
		wantErr bool
	}{
		{"valid", func(in *EventCreate) {}, false},
		{"missing title", func(in *EventCreate) { in.Title = "" }, true},
		{"missing description", func(in *EventCreate) { in.Description = "" }, true},
		{"missing date", func(in *EventCreate) { in.Date = time.Time{} }, true},
		{"missing location", func(in *EventCreate) { in.Location = "" }, true},
		{"missing organizer", func(in *EventCreate) { in.OrganizerID = "" }, true},
		{"unknown category", func(in *EventCreate) { in.Categories = []EventCategory{"circus"} }, true},
		{"unknown status", func(in *EventCreate) { in.Status = "postponed" }, true},
		{"end before start", func(in *EventCreate) { in.EndDate = &endBefore }, true},
		{"end equals start", func(in *EventCreate) { in.EndDate = &endEqual }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventCreateDefaultsStatus(t *testing.T) {
	in := EventCreate{
		Title:       "Tech Meetup",
		Description: "Monthly meetup",
		Date:        time.Now().Add(24 * time.Hour),
		Location:    "Hub",
		OrganizerID: "org-1",
	}
	event := in.ToModel()
	assert.Equal(t, EventStatusUpcoming, event.Status)
}

func TestEventUpdateApplyPreservesOmittedFields(t *testing.T) {
	date := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	event := Event{
		Title:       "Summer Concert",
		Description: "Live music downtown",
		Date:        date,
		Location:    "Main Square",
		Categories:  []EventCategory{EventCategoryMusic},
		Status:      EventStatusUpcoming,
		OrganizerID: "org-1",
	}

	newTitle := "Autumn Concert"
	update := EventUpdate{Title: &newTitle}
	update.Apply(&event)

	assert.Equal(t, "Autumn Concert", event.Title)
	assert.Equal(t, "Live music downtown", event.Description)
	assert.Equal(t, date, event.Date)
	assert.Equal(t, EventStatusUpcoming, event.Status)
	assert.Equal(t, "org-1", event.OrganizerID)
}

func TestEventUpdateApplyThenValidateCatchesBadWindow(t *testing.T) {
	date := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	event := Event{
		Title:       "Summer Concert",
		Description: "Live music downtown",
		Date:        date,
		Location:    "Main Square",
		Status:      EventStatusUpcoming,
		OrganizerID: "org-1",
	}

	badEnd := date.Add(-2 * time.Hour)
	update := EventUpdate{EndDate: &badEnd}
	update.Apply(&event)

	err := event.Validate()
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
