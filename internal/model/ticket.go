package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// TicketType names the admission class a ticket sells.
type TicketType string

const (
	TicketTypeGeneralAdmission TicketType = "General Admission"
	TicketTypeVIP              TicketType = "VIP"
	TicketTypeEarlyBird        TicketType = "Early Bird"
	TicketTypeStudent          TicketType = "Student"
	TicketTypeOther            TicketType = "Other"
)

var ticketTypes = map[TicketType]bool{
	TicketTypeGeneralAdmission: true,
	TicketTypeVIP:              true,
	TicketTypeEarlyBird:        true,
	TicketTypeStudent:          true,
	TicketTypeOther:            true,
}

// Valid reports whether t is a known ticket type.
func (t TicketType) Valid() bool {
	return ticketTypes[t]
}

// TicketStatus is a free-form lifecycle enum; no transition graph is enforced.
type TicketStatus string

const (
	TicketStatusAvailable TicketStatus = "Available"
	TicketStatusSoldOut   TicketStatus = "Sold Out"
	TicketStatusReserved  TicketStatus = "Reserved"
	TicketStatusCancelled TicketStatus = "Cancelled"
)

var ticketStatuses = map[TicketStatus]bool{
	TicketStatusAvailable: true,
	TicketStatusSoldOut:   true,
	TicketStatusReserved:  true,
	TicketStatusCancelled: true,
}

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	return ticketStatuses[s]
}

// Ticket is an admission batch sold for an event.
type Ticket struct {
	Base
	EventID       string          `json:"event_id" gorm:"size:36;not null;index"`
	Type          TicketType      `json:"type" gorm:"type:varchar(30);not null"`
	Price         decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Quantity      int             `json:"quantity" gorm:"not null"`
	Status        TicketStatus    `json:"status" gorm:"type:varchar(20)"`
	SaleStartDate *time.Time      `json:"sale_start_date"`
	SaleEndDate   *time.Time      `json:"sale_end_date"`
}

// Validate checks value domains and the sale-window ordering.
func (t *Ticket) Validate() error {
	if !t.Type.Valid() {
		return apperr.Validationf("invalid ticket type: %s", t.Type)
	}
	if !t.Status.Valid() {
		return apperr.Validationf("invalid ticket status: %s", t.Status)
	}
	if t.Price.IsNegative() {
		return apperr.Validationf("price must not be negative")
	}
	if t.Quantity < 0 {
		return apperr.Validationf("quantity must not be negative")
	}
	if t.SaleStartDate != nil && t.SaleEndDate != nil && t.SaleEndDate.Before(*t.SaleStartDate) {
		return apperr.Validationf("sale end date must not precede the sale start date")
	}
	return nil
}

// TicketCreate is the validated input payload for creating a ticket.
type TicketCreate struct {
	EventID       string          `json:"event_id"`
	Type          TicketType      `json:"type"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	SaleStartDate *time.Time      `json:"sale_start_date"`
	SaleEndDate   *time.Time      `json:"sale_end_date"`
}

// Validate checks required fields, value domains, and cross-field rules.
func (in *TicketCreate) Validate() error {
	if in.EventID == "" {
		return apperr.Validationf("event_id is required")
	}
	if in.Type == "" {
		return apperr.Validationf("type is required")
	}
	return in.ToModel().Validate()
}

// ToModel maps the input to a new ticket; the status starts as Available.
func (in *TicketCreate) ToModel() *Ticket {
	return &Ticket{
		EventID:       in.EventID,
		Type:          in.Type,
		Price:         in.Price,
		Quantity:      in.Quantity,
		Status:        TicketStatusAvailable,
		SaleStartDate: in.SaleStartDate,
		SaleEndDate:   in.SaleEndDate,
	}
}

// TicketUpdate is a partial-update payload; nil fields mean "leave unchanged".
type TicketUpdate struct {
	Type          *TicketType      `json:"type"`
	Price         *decimal.Decimal `json:"price"`
	Quantity      *int             `json:"quantity"`
	Status        *TicketStatus    `json:"status"`
	SaleStartDate *time.Time       `json:"sale_start_date"`
	SaleEndDate   *time.Time       `json:"sale_end_date"`
}

// Apply copies the supplied fields onto t.
func (in *TicketUpdate) Apply(t *Ticket) {
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.Price != nil {
		t.Price = *in.Price
	}
	if in.Quantity != nil {
		t.Quantity = *in.Quantity
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.SaleStartDate != nil {
		t.SaleStartDate = in.SaleStartDate
	}
	if in.SaleEndDate != nil {
		t.SaleEndDate = in.SaleEndDate
	}
}
