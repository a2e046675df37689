package domain

// Proverb represents a proverb in the catalog.
// Proverbs are read-only: there is no submission path for them.
type Proverb struct {
	// ID is the unique identifier for this proverb.
	ID string

	// Content is the proverb text.
	Content string

	// Origin is the culture or region the proverb comes from.
	Origin string

	// Category is the catalog category.
	Category string

	// Meaning explains the proverb.
	Meaning string

	// Translation is the English rendering for non-English proverbs.
	Translation string

	// LikesCount is the stored like counter.
	LikesCount int
}
