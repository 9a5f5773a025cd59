package domain

import (
	"fmt"
	"strings"
)

// Snowflake is an ID issued by the chat platform. Snowflakes are 64-bit
// integers but are carried as strings end to end, matching the wire format.
type Snowflake string

// UserID uniquely identifies a user account.
type UserID = Snowflake

// GuildID uniquely identifies a guild.
type GuildID = Snowflake

// RoleID uniquely identifies a role within a guild.
type RoleID = Snowflake

// avatarCDNBase is the image CDN serving user avatars.
const avatarCDNBase = "https://cdn.discordapp.com/avatars"

// animatedAvatarPrefix marks avatar hashes that refer to animated images.
const animatedAvatarPrefix = "a_"

// User is the subset of a platform user account relevant to abuse checking.
type User struct {
	// ID is the unique identifier of the account.
	ID UserID `json:"id"`
	// Username is the account's display/user name as reported by the platform.
	Username string `json:"username"`
	// Avatar is the avatar image hash; empty when the account has no custom avatar.
	Avatar string `json:"avatar,omitempty"`
	// Bot reports whether the account is a bot account.
	Bot bool `json:"bot,omitempty"`
}

// HasAnimatedAvatar reports whether the user's avatar is animated. Animated
// avatars are excluded from image comparison.
func (u User) HasAnimatedAvatar() bool {
	return strings.HasPrefix(u.Avatar, animatedAvatarPrefix)
}

// AvatarURL returns a static PNG CDN URL for the user's avatar at the given
// pixel size, or an empty string when the user has no custom avatar.
func (u User) AvatarURL(size int) string {
	if u.Avatar == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s/%s.png?size=%d", avatarCDNBase, u.ID, u.Avatar, size)
}

// Member is a snapshot of a user's membership in a guild, carrying everything
// the verdict engine needs without reaching back to the platform.
type Member struct {
	// GuildID is the guild the member belongs to.
	GuildID GuildID `json:"guildId"`
	// User is the account behind the membership.
	User User `json:"user"`
	// RoleIDs lists the roles held by the member in the guild.
	RoleIDs []RoleID `json:"roleIds,omitempty"`
}

// CheckedUser is the verdict produced by one abuse evaluation. It is a value
// object: produced fresh per evaluation and never mutated after return.
type CheckedUser struct {
	// UserID identifies the evaluated account.
	UserID UserID `json:"userId"`
	// MatchedUsername is true when the normalized username contains an
	// abuse-indicator keyword.
	MatchedUsername bool `json:"matchedUsername"`
	// MatchedAvatar is true only when MatchedUsername is true and the avatar's
	// perceptual-hash distance to a known abusive image was within threshold.
	MatchedAvatar bool `json:"matchedAvatar"`
	// SimilarityScore is the phash distance reported by the similarity service,
	// or nil when no score was obtained.
	SimilarityScore *int `json:"similarityScore,omitempty"`
}
