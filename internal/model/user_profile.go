package model

import (
	"time"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// SocialMediaLinks holds a profile's external links.
type SocialMediaLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
}

// ProfileComment is a comment another user left on a profile. Comments are
// owned by the profile document and mutated only through it.
type ProfileComment struct {
	CommenterID string    `json:"commenter_id"`
	Comment     string    `json:"comment"`
	Timestamp   time.Time `json:"timestamp"`
	Approved    bool      `json:"approved"`
}

// EmojiRatingKind names one counter within a profile's embedded ratings.
type EmojiRatingKind string

const (
	EmojiHeart         EmojiRatingKind = "heart"
	EmojiThumbsUp      EmojiRatingKind = "thumbs_up"
	EmojiSmileyFace    EmojiRatingKind = "smiley_face"
	EmojiFire          EmojiRatingKind = "fire"
	EmojiClappingHands EmojiRatingKind = "clapping_hands"
	EmojiStar          EmojiRatingKind = "star"
	EmojiPartyPopper   EmojiRatingKind = "party_popper"
	EmojiMusicalNote   EmojiRatingKind = "musical_note"
	EmojiCocktail      EmojiRatingKind = "cocktail"
	EmojiSparkles      EmojiRatingKind = "sparkles"
	EmojiNeutralFace   EmojiRatingKind = "neutral_face"
)

// EmojiRating holds the per-emoji counters a profile has received.
type EmojiRating struct {
	Hearts        int `json:"hearts"`
	ThumbsUp      int `json:"thumbs_up"`
	SmileyFace    int `json:"smiley_face"`
	Fire          int `json:"fire"`
	ClappingHands int `json:"clapping_hands"`
	Star          int `json:"star"`
	PartyPopper   int `json:"party_popper"`
	MusicalNote   int `json:"musical_note"`
	Cocktail      int `json:"cocktail"`
	Sparkles      int `json:"sparkles"`
	NeutralFace   int `json:"neutral_face"`
}

// Increment bumps the counter named by kind and reports whether the kind
// was recognized.
func (r *EmojiRating) Increment(kind EmojiRatingKind) bool {
	switch kind {
	case EmojiHeart:
		r.Hearts++
	case EmojiThumbsUp:
		r.ThumbsUp++
	case EmojiSmileyFace:
		r.SmileyFace++
	case EmojiFire:
		r.Fire++
	case EmojiClappingHands:
		r.ClappingHands++
	case EmojiStar:
		r.Star++
	case EmojiPartyPopper:
		r.PartyPopper++
	case EmojiMusicalNote:
		r.MusicalNote++
	case EmojiCocktail:
		r.Cocktail++
	case EmojiSparkles:
		r.Sparkles++
	case EmojiNeutralFace:
		r.NeutralFace++
	default:
		return false
	}
	return true
}

// UserProfile is the public face of a user account.
type UserProfile struct {
	Base
	UserID           string            `json:"user_id" gorm:"size:36;not null;index"`
	Bio              string            `json:"bio" gorm:"type:text"`
	ProfilePicture   string            `json:"profile_picture" gorm:"type:varchar(255)"`
	SocialMediaLinks *SocialMediaLinks `json:"social_media_links" gorm:"serializer:json"`
	EmojiRatings     EmojiRating       `json:"emoji_ratings" gorm:"serializer:json"`
	Comments         []ProfileComment  `json:"comments" gorm:"serializer:json"`
	ShowComments     bool              `json:"show_comments"`
	AllowChat        bool              `json:"allow_chat"`
	BlockedUsers     []string          `json:"blocked_users" gorm:"serializer:json"`
}

// BlockUser adds userID to the blocked list; duplicates are ignored.
func (p *UserProfile) BlockUser(userID string) bool {
	for _, id := range p.BlockedUsers {
		if id == userID {
			return false
		}
	}
	p.BlockedUsers = append(p.BlockedUsers, userID)
	return true
}

// UnblockUser removes userID from the blocked list and reports whether it
// was present.
func (p *UserProfile) UnblockUser(userID string) bool {
	for i, id := range p.BlockedUsers {
		if id == userID {
			p.BlockedUsers = append(p.BlockedUsers[:i], p.BlockedUsers[i+1:]...)
			return true
		}
	}
	return false
}

// UserProfileCreate is the validated input payload for creating a profile.
// Ratings and comments always start empty.
type UserProfileCreate struct {
	UserID           string            `json:"user_id"`
	Bio              string            `json:"bio"`
	ProfilePicture   string            `json:"profile_picture"`
	SocialMediaLinks *SocialMediaLinks `json:"social_media_links"`
	ShowComments     *bool             `json:"show_comments"`
	AllowChat        *bool             `json:"allow_chat"`
	BlockedUsers     []string          `json:"blocked_users"`
}

// Validate checks required fields.
func (in *UserProfileCreate) Validate() error {
	if in.UserID == "" {
		return apperr.Validationf("user_id is required")
	}
	return nil
}

// ToModel maps the input to a new profile. Comment visibility and chat
// default to enabled when unset.
func (in *UserProfileCreate) ToModel() *UserProfile {
	showComments := true
	if in.ShowComments != nil {
		showComments = *in.ShowComments
	}
	allowChat := true
	if in.AllowChat != nil {
		allowChat = *in.AllowChat
	}
	blocked := in.BlockedUsers
	if blocked == nil {
		blocked = []string{}
	}
	return &UserProfile{
		UserID:           in.UserID,
		Bio:              in.Bio,
		ProfilePicture:   in.ProfilePicture,
		SocialMediaLinks: in.SocialMediaLinks,
		EmojiRatings:     EmojiRating{},
		Comments:         []ProfileComment{},
		ShowComments:     showComments,
		AllowChat:        allowChat,
		BlockedUsers:     blocked,
	}
}

// UserProfileUpdate is a partial-update payload; nil fields mean "leave unchanged".
type UserProfileUpdate struct {
	Bio              *string           `json:"bio"`
	ProfilePicture   *string           `json:"profile_picture"`
	SocialMediaLinks *SocialMediaLinks `json:"social_media_links"`
	ShowComments     *bool             `json:"show_comments"`
	AllowChat        *bool             `json:"allow_chat"`
	BlockedUsers     *[]string         `json:"blocked_users"`
}

// Apply copies the supplied fields onto p.
func (in *UserProfileUpdate) Apply(p *UserProfile) {
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.ProfilePicture != nil {
		p.ProfilePicture = *in.ProfilePicture
	}
	if in.SocialMediaLinks != nil {
		p.SocialMediaLinks = in.SocialMediaLinks
	}
	if in.ShowComments != nil {
		p.ShowComments = *in.ShowComments
	}
	if in.AllowChat != nil {
		p.AllowChat = *in.AllowChat
	}
	if in.BlockedUsers != nil {
		p.BlockedUsers = *in.BlockedUsers
	}
}
