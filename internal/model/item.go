package model

import "time"

// SourceKind identifies which community/site a feed belongs to. The kind
// drives per-site normalization quirks in the fetcher (reddit entries carry
// HTML bodies and often only an "updated" date).
type SourceKind string

const (
	KindReddit      SourceKind = "reddit"
	KindHackerNews  SourceKind = "hn"
	KindProductHunt SourceKind = "producthunt"
	KindGeneric     SourceKind = "generic"
)

// FeedSource is one configured RSS/Atom feed. Immutable for a run.
type FeedSource struct {
	Name string     `yaml:"name"`
	URL  string     `yaml:"url"`
	Kind SourceKind `yaml:"kind"`
}

// FeedItem is a normalized feed entry produced by the fetcher.
type FeedItem struct {
	SourceName  string    `json:"source_name"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
	Snippet     string    `json:"snippet,omitempty"`
}

// Window is the trailing time range used to select recent items.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowEnding returns the window of the given span ending at now.
func WindowEnding(now time.Time, span time.Duration) Window {
	return Window{Start: now.Add(-span), End: now}
}

// Contains reports whether t falls within the window (inclusive bounds).
// The zero time is never contained; undated items must not pass.
func (w Window) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(w.Start) && !t.After(w.End)
}
