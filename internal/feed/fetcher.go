package feed

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"feed-digest/internal/model"

	"github.com/mmcdole/gofeed"
)

const maxSnippetRunes = 300

// Fetcher retrieves and normalizes RSS/Atom feeds. A failure on one source
// never aborts the run; the contract is best-effort partial results.
type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
	delay   time.Duration
}

// Config controls per-feed fetching behavior.
type Config struct {
	Timeout   time.Duration // per-feed HTTP timeout
	Delay     time.Duration // pause between feeds, politeness to hosts
	UserAgent string        // reddit rejects default library UAs
}

func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: cfg.Timeout}
	if cfg.UserAgent != "" {
		p.UserAgent = cfg.UserAgent
	}
	return &Fetcher{parser: p, timeout: cfg.Timeout, delay: cfg.Delay}
}

// FetchAll retrieves every source sequentially and returns the combined
// normalized items. Per-source fetch/parse errors are logged and skipped.
func (f *Fetcher) FetchAll(ctx context.Context, sources []model.FeedSource) []model.FeedItem {
	var all []model.FeedItem
	for i, src := range sources {
		if i > 0 && f.delay > 0 {
			select {
			case <-ctx.Done():
				return all
			case <-time.After(f.delay):
			}
		}
		items, err := f.fetchOne(ctx, src)
		if err != nil {
			slog.Warn("fetcher: source failed, skipping", "source", src.Name, "url", src.URL, "err", err)
			continue
		}
		slog.Info("fetcher: source fetched", "source", src.Name, "entries", len(items))
		all = append(all, items...)
	}
	return all
}

func (f *Fetcher) fetchOne(ctx context.Context, src model.FeedSource) ([]model.FeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	parsed, err := f.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}
	items := make([]model.FeedItem, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		it, ok := normalize(src, entry)
		if !ok {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// normalize converts a parsed entry into a FeedItem, failing closed:
// entries without a title or link are dropped rather than passed downstream
// in an ambiguous shape. A missing date yields the zero time, which the
// window filter later rejects.
func normalize(src model.FeedSource, entry *gofeed.Item) (model.FeedItem, bool) {
	title := strings.TrimSpace(entry.Title)
	link := strings.TrimSpace(entry.Link)
	if title == "" || link == "" {
		return model.FeedItem{}, false
	}
	var published time.Time
	if entry.PublishedParsed != nil {
		published = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		// Reddit Atom feeds carry only <updated>.
		published = *entry.UpdatedParsed
	}
	return model.FeedItem{
		SourceName:  src.Name,
		Title:       title,
		Link:        link,
		PublishedAt: published,
		Snippet:     snippet(entry.Description),
	}, true
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`) // best-effort removal

// snippet strips markup from a feed description and bounds its length so a
// single verbose entry cannot dominate the prompt.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = htmlTagRe.ReplaceAllString(s, " ")
	replacer := strings.NewReplacer(
		"&quot;", "\"",
		"&apos;", "'",
		"&#39;", "'",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&nbsp;", " ",
	)
	s = replacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > maxSnippetRunes {
		s = string(r[:maxSnippetRunes]) + "…"
	}
	return s
}
