package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

func TestTicketCreateValidate(t *testing.T) {
	saleStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	saleEnd := saleStart.AddDate(0, 0, 14)
	saleEndBefore := saleStart.Add(-time.Hour)

	valid := TicketCreate{
		EventID:  "evt-1",
		Type:     TicketTypeGeneralAdmission,
		Price:    decimal.RequireFromString("49.90"),
		Quantity: 200,
	}

	tests := []struct {
		name    string
		mutate  func(*TicketCreate)
		wantErr bool
	}{
		{"valid", func(in *TicketCreate) {}, false},
		{"free ticket", func(in *TicketCreate) { in.Price = decimal.Zero }, false},
		{"missing event", func(in *TicketCreate) { in.EventID = "" }, true},
		{"missing type", func(in *TicketCreate) { in.Type = "" }, true},
		{"unknown type", func(in *TicketCreate) { in.Type = "Backstage" }, true},
		{"negative price", func(in *TicketCreate) { in.Price = decimal.NewFromInt(-1) }, true},
		{"negative quantity", func(in *TicketCreate) { in.Quantity = -1 }, true},
		{"sale window ordered", func(in *TicketCreate) {
			in.SaleStartDate = &saleStart
			in.SaleEndDate = &saleEnd
		}, false},
		{"sale window inverted", func(in *TicketCreate) {
			in.SaleStartDate = &saleStart
			in.SaleEndDate = &saleEndBefore
		}, true},
		{"sale end alone", func(in *TicketCreate) { in.SaleEndDate = &saleEnd }, false},
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

func TestTicketCreateStartsAvailable(t *testing.T) {
	in := TicketCreate{
		EventID:  "evt-1",
		Type:     TicketTypeVIP,
		Price:    decimal.NewFromInt(150),
		Quantity: 20,
	}
	ticket := in.ToModel()
	assert.Equal(t, TicketStatusAvailable, ticket.Status)
}
