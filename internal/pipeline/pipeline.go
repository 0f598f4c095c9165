package pipeline

import (
	"context"
	"log/slog"
	"time"

	"feed-digest/internal/ai"
	"feed-digest/internal/config"
	"feed-digest/internal/digest"
	"feed-digest/internal/feed"
	"feed-digest/internal/mail"
	"feed-digest/internal/model"
)

// FeedFetcher retrieves and normalizes all configured sources. It never
// fails as a whole; unreachable sources just reduce the result.
type FeedFetcher interface {
	FetchAll(ctx context.Context, sources []model.FeedSource) []model.FeedItem
}

// Pipeline holds the wired stages for one run. Each stage consumes the
// previous stage's output; there is no shared mutable state.
type Pipeline struct {
	Fetcher    FeedFetcher
	Summarizer ai.Summarizer
	Mailer     mail.Mailer
	Sources    []model.FeedSource
	Builder    digest.Builder
	WindowSpan time.Duration
	Now        func() time.Time
}

// New validates the configuration and wires the real clients. Validation
// happens before any client is constructed, so a misconfigured run aborts
// without a single outbound call.
func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &StageError{Stage: StageConfig, Err: err}
	}
	sources, err := feed.LoadSources(cfg.SourcesFile)
	if err != nil {
		return nil, &StageError{Stage: StageConfig, Err: err}
	}
	mailer, err := mail.NewSMTP(mail.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		From:      cfg.Mail.From,
		Recipient: cfg.Mail.Recipient,
		Timeout:   config.Duration(cfg.Mail.Timeout, 30*time.Second),
	})
	if err != nil {
		return nil, &StageError{Stage: StageConfig, Err: err}
	}
	return &Pipeline{
		Fetcher: feed.NewFetcher(feed.Config{
			Timeout:   config.Duration(cfg.Fetch.Timeout, 10*time.Second),
			Delay:     config.Duration(cfg.Fetch.Delay, time.Second),
			UserAgent: cfg.Fetch.UserAgent,
		}),
		Summarizer: ai.NewOpenAI(ai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		}),
		Mailer:     mailer,
		Sources:    sources,
		Builder:    digest.Builder{MaxPromptChars: cfg.Digest.MaxPromptChars, MaxItemsPerSource: cfg.Digest.MaxItemsPerSource},
		WindowSpan: cfg.WindowSpan(),
	}, nil
}

// Run executes one fetch→filter→build→summarize→notify pass.
//
// An empty window short-circuits before the summarizer and sends no email.
// A summarization failure still notifies (the body carries the error) and
// the run then fails with the summarize stage error so the scheduler's
// history reflects it.
func (p *Pipeline) Run(ctx context.Context) error {
	now := p.now()
	window := model.WindowEnding(now, p.WindowSpan)

	items := p.Fetcher.FetchAll(ctx, p.Sources)
	slog.Info("run: fetched", "sources", len(p.Sources), "entries", len(items))

	recent := digest.FilterRecent(items, window)
	slog.Info("run: filtered to window", "kept", len(recent), "window_start", window.Start, "window_end", window.End)

	d := p.Builder.Build(recent)
	if d.Empty() {
		slog.Info("run: no items in window, skipping summary and email")
		return nil
	}
	slog.Info("run: digest built", "items", d.ItemCount, "sources", d.SourceCount, "chars", len(d.Text))

	summary, sumErr := p.Summarizer.SummarizeDigest(ctx, d.Text)
	if sumErr != nil {
		slog.Error("run: summarization failed", "err", sumErr)
	}

	report := mail.BuildReport(now, d.ItemCount, summary, sumErr)
	if err := p.Mailer.SendReport(ctx, report); err != nil {
		if sumErr != nil {
			// Both stages failed; report the earlier one, the mail error
			// only lives in the logs.
			slog.Error("run: failure notification also failed", "err", err)
			return &StageError{Stage: StageSummarize, Err: sumErr}
		}
		return &StageError{Stage: StageNotify, Err: err}
	}
	slog.Info("run: report sent", "subject", report.Subject, "items", report.ItemCount)

	if sumErr != nil {
		return &StageError{Stage: StageSummarize, Err: sumErr}
	}
	return nil
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
