package digest

import "feed-digest/internal/model"

// FilterRecent returns the items whose publication time falls inside the
// window. Undated items (zero time) are dropped. Pure function; input
// order is preserved.
func FilterRecent(items []model.FeedItem, w model.Window) []model.FeedItem {
	out := make([]model.FeedItem, 0, len(items))
	for _, it := range items {
		if w.Contains(it.PublishedAt) {
			out = append(out, it)
		}
	}
	return out
}
