package model

import (
	"time"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// NotificationType classifies what a notification announces.
type NotificationType string

const (
	NotificationTypeEvent     NotificationType = "event"
	NotificationTypePromotion NotificationType = "promotion"
	NotificationTypeGeneral   NotificationType = "general"
	NotificationTypeUser      NotificationType = "user"
)

var notificationTypes = map[NotificationType]bool{
	NotificationTypeEvent:     true,
	NotificationTypePromotion: true,
	NotificationTypeGeneral:   true,
	NotificationTypeUser:      true,
}

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	return notificationTypes[t]
}

// NotificationTarget selects the audience of a notification. It is an owned
// sub-object, embedded in the notification document.
type NotificationTarget struct {
	UserIDs  []string `json:"user_ids"`
	Roles    []string `json:"roles"`
	AllUsers bool     `json:"all_users"`
}

// Notification is an announcement delivered through the push gateway.
type Notification struct {
	Base
	Title   string             `json:"title" gorm:"type:varchar(255);not null"`
	Message string             `json:"message" gorm:"type:text;not null"`
	Type    NotificationType   `json:"type" gorm:"type:varchar(20);not null"`
	Target  NotificationTarget `json:"target" gorm:"serializer:json"`
	SentAt  time.Time          `json:"sent_at"`
}

// Validate checks the value-domain constraints of a persisted notification.
func (n *Notification) Validate() error {
	if !n.Type.Valid() {
		return apperr.Validationf("invalid notification type: %s", n.Type)
	}
	return nil
}

// NotificationCreate is the validated input payload for creating a notification.
type NotificationCreate struct {
	Title   string             `json:"title"`
	Message string             `json:"message"`
	Type    NotificationType   `json:"type"`
	Target  NotificationTarget `json:"target"`
}

// Validate checks required fields and value domains.
func (in *NotificationCreate) Validate() error {
	if in.Title == "" {
		return apperr.Validationf("title is required")
	}
	if in.Message == "" {
		return apperr.Validationf("message is required")
	}
	if !in.Type.Valid() {
		return apperr.Validationf("invalid notification type: %s", in.Type)
	}
	return nil
}

// ToModel maps the input to a new notification stamped with the send time.
func (in *NotificationCreate) ToModel() *Notification {
	return &Notification{
		Title:   in.Title,
		Message: in.Message,
		Type:    in.Type,
		Target:  in.Target,
		SentAt:  time.Now().UTC(),
	}
}

// NotificationUpdate is a partial-update payload; nil fields mean "leave unchanged".
type NotificationUpdate struct {
	Title   *string             `json:"title"`
	Message *string             `json:"message"`
	Type    *NotificationType   `json:"type"`
	Target  *NotificationTarget `json:"target"`
}

// Apply copies the supplied fields onto n.
func (in *NotificationUpdate) Apply(n *Notification) {
	if in.Title != nil {
		n.Title = *in.Title
	}
	if in.Message != nil {
		n.Message = *in.Message
	}
	if in.Type != nil {
		n.Type = *in.Type
	}
	if in.Target != nil {
		n.Target = *in.Target
	}
}
