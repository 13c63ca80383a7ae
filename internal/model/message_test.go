package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

func TestMessageCreateValidate(t *testing.T) {
	valid := MessageCreate{
		SenderID:    "user-1",
		ReceiverID:  "user-2",
		MessageType: MessageUserToUser,
		Content:     "hey, see you at the festival?",
	}

	tests := []struct {
		name    string
		mutate  func(*MessageCreate)
		wantErr bool
	}{
		{"valid", func(in *MessageCreate) {}, false},
		{"missing sender", func(in *MessageCreate) { in.SenderID = "" }, true},
		{"missing receiver", func(in *MessageCreate) { in.ReceiverID = "" }, true},
		{"missing content", func(in *MessageCreate) { in.Content = "" }, true},
		{"unknown type", func(in *MessageCreate) { in.MessageType = "broadcast" }, true},
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

func TestMessageCreateStampsSendTime(t *testing.T) {
	in := MessageCreate{
		SenderID:    "user-1",
		ReceiverID:  "user-2",
		MessageType: MessageUserToUser,
		Content:     "hello",
	}
	msg := in.ToModel()
	assert.False(t, msg.SentAt.IsZero())
	assert.False(t, msg.Read)
	assert.Empty(t, msg.Reactions)
}

func TestReactionValidate(t *testing.T) {
	r := Reaction{Emoji: ReactionFire, UserID: "user-1"}
	assert.NoError(t, r.Validate())

	r = Reaction{Emoji: "🦄", UserID: "user-1"}
	assert.True(t, apperr.IsValidation(r.Validate()))

	r = Reaction{Emoji: ReactionFire}
	assert.True(t, apperr.IsValidation(r.Validate()))
}

func TestMessageReactions(t *testing.T) {
	var msg Message
	msg.AddReaction(Reaction{Emoji: ReactionHeart, UserID: "user-1"})
	msg.AddReaction(Reaction{Emoji: ReactionHeart, UserID: "user-2"})
	msg.AddReaction(Reaction{Emoji: ReactionThumbsUp, UserID: "user-1"})

	// Removal is keyed on (user, emoji); the other reactions survive.
	assert.True(t, msg.RemoveReaction("user-1", ReactionHeart))
	require.Len(t, msg.Reactions, 2)
	assert.Equal(t, "user-2", msg.Reactions[0].UserID)
	assert.Equal(t, ReactionThumbsUp, msg.Reactions[1].Emoji)

	// Removing an absent pairing is a no-op.
	assert.False(t, msg.RemoveReaction("user-1", ReactionHeart))
	assert.Len(t, msg.Reactions, 2)
}
