package model

import (
	"time"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// MessageType says who is talking to whom.
type MessageType string

const (
	MessageUserToUser     MessageType = "user_to_user"
	MessageUserToBusiness MessageType = "user_to_business"
	MessageBusinessToUser MessageType = "business_to_user"
)

var messageTypes = map[MessageType]bool{
	MessageUserToUser:     true,
	MessageUserToBusiness: true,
	MessageBusinessToUser: true,
}

// Valid reports whether t is a known message type.
func (t MessageType) Valid() bool {
	return messageTypes[t]
}

// ReactionEmoji is the fixed set of emoji a message can be reacted with.
type ReactionEmoji string

const (
	ReactionHeart         ReactionEmoji = "❤️"
	ReactionThumbsUp      ReactionEmoji = "👍"
	ReactionSmileyFace    ReactionEmoji = "😊"
	ReactionFire          ReactionEmoji = "🔥"
	ReactionClappingHands ReactionEmoji = "👏"
	ReactionStar          ReactionEmoji = "⭐"
	ReactionPartyPopper   ReactionEmoji = "🎉"
	ReactionMusicalNote   ReactionEmoji = "🎵"
	ReactionTropicalDrink ReactionEmoji = "🍹"
	ReactionNeutralFace   ReactionEmoji = "😐"
)

var reactionEmojis = map[ReactionEmoji]bool{
	ReactionHeart:         true,
	ReactionThumbsUp:      true,
	ReactionSmileyFace:    true,
	ReactionFire:          true,
	ReactionClappingHands: true,
	ReactionStar:          true,
	ReactionPartyPopper:   true,
	ReactionMusicalNote:   true,
	ReactionTropicalDrink: true,
	ReactionNeutralFace:   true,
}

// Valid reports whether e is a known reaction emoji.
func (e ReactionEmoji) Valid() bool {
	return reactionEmojis[e]
}

// Reaction is one user's emoji reaction to a message. Reactions are owned by
// the message document and keyed by (user_id, emoji) for removal.
type Reaction struct {
	Emoji  ReactionEmoji `json:"emoji"`
	UserID string        `json:"user_id"`
}

// Validate checks the reaction's value domains.
func (r *Reaction) Validate() error {
	if !r.Emoji.Valid() {
		return apperr.Validationf("invalid reaction emoji: %s", r.Emoji)
	}
	if r.UserID == "" {
		return apperr.Validationf("user_id is required")
	}
	return nil
}

// Message is a direct message between users and businesses.
type Message struct {
	Base
	SenderID    string      `json:"sender_id" gorm:"size:36;not null;index"`
	ReceiverID  string      `json:"receiver_id" gorm:"size:36;not null;index"`
	MessageType MessageType `json:"message_type" gorm:"type:varchar(30);not null"`
	Content     string      `json:"content" gorm:"type:text;not null"`
	SentAt      time.Time   `json:"sent_at"`
	Read        bool        `json:"read"`
	Reactions   []Reaction  `json:"reactions" gorm:"serializer:json"`
}

// Validate checks the value-domain constraints of a persisted message.
func (m *Message) Validate() error {
	if !m.MessageType.Valid() {
		return apperr.Validationf("invalid message type: %s", m.MessageType)
	}
	for i := range m.Reactions {
		if err := m.Reactions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AddReaction appends a reaction to the message.
func (m *Message) AddReaction(r Reaction) {
	m.Reactions = append(m.Reactions, r)
}

// RemoveReaction drops every reaction matching the (userID, emoji) compound
// key and reports whether anything was removed.
func (m *Message) RemoveReaction(userID string, emoji ReactionEmoji) bool {
	kept := m.Reactions[:0]
	removed := false
	for _, r := range m.Reactions {
		if r.UserID == userID && r.Emoji == emoji {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	m.Reactions = kept
	return removed
}

// MessageCreate is the validated input payload for sending a message.
type MessageCreate struct {
	SenderID    string      `json:"sender_id"`
	ReceiverID  string      `json:"receiver_id"`
	MessageType MessageType `json:"message_type"`
	Content     string      `json:"content"`
}

// Validate checks required fields and value domains.
func (in *MessageCreate) Validate() error {
	if in.SenderID == "" {
		return apperr.Validationf("sender_id is required")
	}
	if in.ReceiverID == "" {
		return apperr.Validationf("receiver_id is required")
	}
	if in.Content == "" {
		return apperr.Validationf("content is required")
	}
	if !in.MessageType.Valid() {
		return apperr.Validationf("invalid message type: %s", in.MessageType)
	}
	return nil
}

// ToModel maps the input to a new unread message stamped with the send time.
func (in *MessageCreate) ToModel() *Message {
	return &Message{
		SenderID:    in.SenderID,
		ReceiverID:  in.ReceiverID,
		MessageType: in.MessageType,
		Content:     in.Content,
		SentAt:      time.Now().UTC(),
		Reactions:   []Reaction{},
	}
}

// MessageUpdate is a partial-update payload; nil fields mean "leave unchanged".
type MessageUpdate struct {
	Content   *string     `json:"content"`
	Read      *bool       `json:"read"`
	Reactions *[]Reaction `json:"reactions"`
}

// Apply copies the supplied fields onto m.
func (in *MessageUpdate) Apply(m *Message) {
	if in.Content != nil {
		m.Content = *in.Content
	}
	if in.Read != nil {
		m.Read = *in.Read
	}
	if in.Reactions != nil {
		m.Reactions = *in.Reactions
	}
}
