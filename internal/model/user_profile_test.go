package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmojiRatingIncrement(t *testing.T) {
	var r EmojiRating

	assert.True(t, r.Increment(EmojiFire))
	assert.True(t, r.Increment(EmojiFire))
	assert.True(t, r.Increment(EmojiCocktail))
	assert.Equal(t, 2, r.Fire)
	assert.Equal(t, 1, r.Cocktail)
	assert.Equal(t, 0, r.Hearts)

	assert.False(t, r.Increment("eggplant"))
}

func TestUserProfileBlockUnblock(t *testing.T) {
	var p UserProfile

	assert.True(t, p.BlockUser("user-1"))
	assert.False(t, p.BlockUser("user-1"))
	assert.True(t, p.BlockUser("user-2"))
	assert.Equal(t, []string{"user-1", "user-2"}, p.BlockedUsers)

	assert.True(t, p.UnblockUser("user-1"))
	assert.False(t, p.UnblockUser("user-1"))
	assert.Equal(t, []string{"user-2"}, p.BlockedUsers)
}

func TestUserProfileCreateDefaults(t *testing.T) {
	in := UserProfileCreate{UserID: "user-1"}
	profile := in.ToModel()

	assert.True(t, profile.ShowComments)
	assert.True(t, profile.AllowChat)
	assert.Empty(t, profile.Comments)
	assert.Empty(t, profile.BlockedUsers)

	off := false
	in = UserProfileCreate{UserID: "user-1", AllowChat: &off}
	profile = in.ToModel()
	assert.False(t, profile.AllowChat)
	assert.True(t, profile.ShowComments)
}
