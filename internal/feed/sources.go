package feed

import (
	"fmt"
	"os"
	"strings"

	"feed-digest/internal/model"

	"gopkg.in/yaml.v3"
)

// DefaultSources returns the built-in feed list covering the targeted
// AI/automation communities. Used when no sources file is configured.
func DefaultSources() []model.FeedSource {
	return []model.FeedSource{
		{Name: "r/MachineLearning", URL: "https://www.reddit.com/r/MachineLearning/hot.rss", Kind: model.KindReddit},
		{Name: "r/artificial", URL: "https://www.reddit.com/r/artificial/hot.rss", Kind: model.KindReddit},
		{Name: "r/OpenAI", URL: "https://www.reddit.com/r/OpenAI/hot.rss", Kind: model.KindReddit},
		{Name: "r/ClaudeAI", URL: "https://www.reddit.com/r/ClaudeAI/hot.rss", Kind: model.KindReddit},
		{Name: "r/LocalLLaMA", URL: "https://www.reddit.com/r/LocalLLaMA/hot.rss", Kind: model.KindReddit},
		{Name: "r/n8n", URL: "https://www.reddit.com/r/n8n/hot.rss", Kind: model.KindReddit},
		{Name: "r/automation", URL: "https://www.reddit.com/r/automation/hot.rss", Kind: model.KindReddit},
		{Name: "r/nocode", URL: "https://www.reddit.com/r/nocode/hot.rss", Kind: model.KindReddit},
		{Name: "Hacker News", URL: "https://news.ycombinator.com/rss", Kind: model.KindHackerNews},
		{Name: "Product Hunt AI", URL: "https://www.producthunt.com/topics/artificial-intelligence.rss", Kind: model.KindProductHunt},
	}
}

// LoadSources reads a YAML feed list from path. An empty path returns the
// default list. Entries must carry both name and url; kind defaults to
// "generic".
func LoadSources(path string) ([]model.FeedSource, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSources(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	var sources []model.FeedSource
	if err := yaml.Unmarshal(b, &sources); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("sources file %s lists no feeds", path)
	}
	for i := range sources {
		s := &sources[i]
		s.Name = strings.TrimSpace(s.Name)
		s.URL = strings.TrimSpace(s.URL)
		if s.Name == "" || s.URL == "" {
			return nil, fmt.Errorf("sources file %s: entry %d must set name and url", path, i)
		}
		switch s.Kind {
		case model.KindReddit, model.KindHackerNews, model.KindProductHunt, model.KindGeneric:
		case "":
			s.Kind = model.KindGeneric
		default:
			return nil, fmt.Errorf("sources file %s: entry %d has unknown kind %q", path, i, s.Kind)
		}
	}
	return sources, nil
}
