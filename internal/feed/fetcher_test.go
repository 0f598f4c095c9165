package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feed-digest/internal/model"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>TestFeed</title>
    <link>https://example.com</link>
    <item>
      <title>First post</title>
      <link>https://example.com/1</link>
      <pubDate>Wed, 01 May 2024 10:00:00 GMT</pubDate>
      <description><![CDATA[<p>hello &amp; world</p>]]></description>
    </item>
    <item>
      <title>Second post</title>
      <link>https://example.com/2</link>
      <pubDate>Wed, 01 May 2024 11:00:00 GMT</pubDate>
    </item>
    <item>
      <title></title>
      <link>https://example.com/untitled</link>
      <pubDate>Wed, 01 May 2024 12:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

const atomBody = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>UpdatedOnly</title>
  <id>urn:test</id>
  <updated>2024-05-01T10:00:00Z</updated>
  <entry>
    <title>Atom entry</title>
    <link href="https://example.org/a"/>
    <id>urn:test:a</id>
    <updated>2024-05-01T09:30:00Z</updated>
  </entry>
</feed>`

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAllSkipsFailingSource(t *testing.T) {
	good := feedServer(t, rssBody)
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer bad.Close()

	f := NewFetcher(Config{Timeout: 5 * time.Second})
	items := f.FetchAll(context.Background(), []model.FeedSource{
		{Name: "Broken", URL: bad.URL, Kind: model.KindGeneric},
		{Name: "Working", URL: good.URL, Kind: model.KindGeneric},
	})

	if len(items) != 2 {
		t.Fatalf("expected the 2 titled items from the working source, got %d: %+v", len(items), items)
	}
	for _, it := range items {
		if it.SourceName != "Working" {
			t.Errorf("item attributed to wrong source: %+v", it)
		}
	}
}

func TestFetchAllNormalizesEntries(t *testing.T) {
	srv := feedServer(t, rssBody)
	f := NewFetcher(Config{Timeout: 5 * time.Second})
	items := f.FetchAll(context.Background(), []model.FeedSource{
		{Name: "TestFeed", URL: srv.URL, Kind: model.KindGeneric},
	})
	if len(items) != 2 {
		t.Fatalf("untitled entry must be dropped; got %d items", len(items))
	}
	first := items[0]
	if first.Title != "First post" || first.Link != "https://example.com/1" {
		t.Errorf("unexpected first item: %+v", first)
	}
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(want) {
		t.Errorf("published time: want %v, got %v", want, first.PublishedAt)
	}
	if first.Snippet != "hello & world" {
		t.Errorf("snippet not stripped/unescaped: %q", first.Snippet)
	}
	if items[1].Snippet != "" {
		t.Errorf("expected empty snippet, got %q", items[1].Snippet)
	}
}

func TestFetchAllFallsBackToUpdatedDate(t *testing.T) {
	srv := feedServer(t, atomBody)
	f := NewFetcher(Config{Timeout: 5 * time.Second})
	items := f.FetchAll(context.Background(), []model.FeedSource{
		{Name: "UpdatedOnly", URL: srv.URL, Kind: model.KindReddit},
	})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	want := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	if !items[0].PublishedAt.Equal(want) {
		t.Errorf("expected updated-date fallback %v, got %v", want, items[0].PublishedAt)
	}
}

func TestSnippetBoundsLength(t *testing.T) {
	long := strings.Repeat("word ", 200)
	got := snippet(long)
	if n := len([]rune(got)); n > maxSnippetRunes+1 {
		t.Errorf("snippet too long: %d runes", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated snippet should end with ellipsis: %q", got[len(got)-10:])
	}
}

func TestSnippetCollapsesWhitespace(t *testing.T) {
	got := snippet("<div>one\n\n   two</div>")
	if got != "one two" {
		t.Errorf("expected %q, got %q", "one two", got)
	}
}
