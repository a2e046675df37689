package domain

import "time"

// Profile is a user account. Profiles are created at signup and never
// hard-deleted.
type Profile struct {
	// ID is the unique identifier for this profile.
	ID string

	// Email is the login identity, unique across profiles.
	Email string

	// Name is the display name.
	Name string

	// Username is the short handle, defaulted from the email local part
	// at signup when not provided.
	Username string

	// AvatarURL points at the profile picture.
	AvatarURL string

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string

	// CreatedAt is when the profile was created.
	CreatedAt time.Time
}

// ProfileUpdate carries the mutable profile fields for an update.
// Identity and creation time are never client-controlled.
type ProfileUpdate struct {
	Name      string
	Username  string
	AvatarURL string
}

// ContactSubmission is an append-only record of a contact form message.
type ContactSubmission struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	UserID    string
	CreatedAt time.Time
}

// NewsletterSubscriber is an append-only newsletter signup.
// Email is unique; re-subscribing is not an error.
type NewsletterSubscriber struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// DashboardCounts is the site-wide aggregate snapshot.
// The four counts are read together and are all-or-nothing: a partial
// snapshot is never produced.
type DashboardCounts struct {
	TotalQuotes    int
	TotalUsers     int
	TotalFavorites int
	TotalLikes     int
}

// UserStats are per-user aggregate counts.
type UserStats struct {
	FavoritesCount  int
	SubmittedQuotes int
}
