// Package domain contains core business entities and rules.
package domain

import "time"

// Quote represents a quotation in the catalog.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the content of the quote.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Category is the catalog category (wisdom, motivation, ...).
	Category string

	// Tags are additional themes associated with the quote.
	Tags []string

	// Source is an optional citation (book, speech, ...).
	Source string

	// SubmittedBy is the ID of the profile that submitted the quote.
	SubmittedBy string

	// Approved reports whether the quote passed moderation.
	// Submitted quotes always start unapproved; only approved quotes
	// appear on public read paths.
	Approved bool

	// CreatedAt is when the quote was submitted.
	CreatedAt time.Time
}

// RankedQuote is a quote with its derived like count, used for trending.
type RankedQuote struct {
	Quote

	// LikeCount is the number of likes recorded for the quote.
	// Zero when no likes exist.
	LikeCount int
}
