package digest

import (
	"bytes"
	_ "embed"
	"text/template"

	"feed-digest/internal/model"
)

// EmptyText is the sentinel digest body when no items survive filtering.
const EmptyText = "No new items in the window."

// Digest is the formatted text block handed to the summarizer. Immutable
// once built.
type Digest struct {
	Text        string
	ItemCount   int
	SourceCount int
}

// Empty reports whether the digest carries no items. An empty digest must
// never reach the summarizer.
func (d Digest) Empty() bool { return d.ItemCount == 0 }

// Builder renders filtered items into a bounded plain-text digest.
type Builder struct {
	MaxPromptChars    int // rendered size budget, in runes
	MaxItemsPerSource int // starting per-source cap
}

type section struct {
	Name  string
	Items []model.FeedItem
}

//go:embed digest.tmpl
var digestTpl string

var compiled = template.Must(template.New("digest").Parse(digestTpl))

// Build groups items by source (first-seen order, stable within a group)
// and renders them. If the render exceeds the size budget, the per-source
// cap shrinks one step at a time: breadth across sources is preferred over
// depth within one, and entries are never cut mid-line.
func (b Builder) Build(items []model.FeedItem) Digest {
	maxPer := b.MaxItemsPerSource
	if maxPer <= 0 {
		maxPer = 8
	}
	budget := b.MaxPromptChars
	if budget <= 0 {
		budget = 12000
	}
	if len(items) == 0 {
		return Digest{Text: EmptyText}
	}
	sections := group(items)

	for per := maxPer; ; per-- {
		kept := capped(sections, per)
		text := render(kept)
		if len([]rune(text)) <= budget || per <= 1 {
			n := 0
			for _, s := range kept {
				n += len(s.Items)
			}
			return Digest{Text: text, ItemCount: n, SourceCount: len(kept)}
		}
	}
}

func group(items []model.FeedItem) []section {
	idx := map[string]int{}
	var sections []section
	for _, it := range items {
		i, ok := idx[it.SourceName]
		if !ok {
			i = len(sections)
			idx[it.SourceName] = i
			sections = append(sections, section{Name: it.SourceName})
		}
		sections[i].Items = append(sections[i].Items, it)
	}
	return sections
}

func capped(sections []section, per int) []section {
	out := make([]section, len(sections))
	for i, s := range sections {
		items := s.Items
		if len(items) > per {
			items = items[:per]
		}
		out[i] = section{Name: s.Name, Items: items}
	}
	return out
}

func render(sections []section) string {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, struct{ Sections []section }{sections}); err != nil {
		// The template is static and the data plain values; an execute
		// failure here is a programming error.
		panic(err)
	}
	return buf.String()
}
