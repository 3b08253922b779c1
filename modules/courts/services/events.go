package services

// CollectionReplaced is published after a sub-collection save succeeds.
type CollectionReplaced struct {
	Slug  string
	Tab   string
	Count int
}

// CourtRenamed is published when a general-details save changes the slug.
type CourtRenamed struct {
	OldSlug string
	NewSlug string
	Name    string
}

// GeneralUpdated is published after any successful general-details save.
type GeneralUpdated struct {
	Slug string
}
