package config

import (
	"fmt"
	"strings"
	"time"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// OpenAIConfig holds settings for the summarization endpoint.
// APIKey is bound to the LLM_API_KEY environment variable.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // optional, OpenAI-compatible endpoint
}

// MailConfig holds SMTP transport settings. Username, Password and
// Recipient are bound to MAIL_USER, MAIL_PASS and RECIPIENT_EMAIL.
type MailConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	From      string `mapstructure:"from"` // defaults to username
	Recipient string `mapstructure:"recipient"`
	Timeout   string `mapstructure:"timeout"` // duration string, e.g., "30s"
}

// FetchConfig controls feed retrieval.
type FetchConfig struct {
	Timeout   string `mapstructure:"timeout"` // per-feed HTTP timeout
	Delay     string `mapstructure:"delay"`   // pause between feeds
	UserAgent string `mapstructure:"user_agent"`
}

// DigestConfig controls the time window and prompt sizing.
type DigestConfig struct {
	Window            string `mapstructure:"window"` // e.g., "24h"
	MaxPromptChars    int    `mapstructure:"max_prompt_chars"`
	MaxItemsPerSource int    `mapstructure:"max_items_per_source"`
}

// Config is the top-level configuration structure.
type Config struct {
	App         AppConfig    `mapstructure:"app"`
	OpenAI      OpenAIConfig `mapstructure:"openai"`
	Mail        MailConfig   `mapstructure:"mail"`
	Fetch       FetchConfig  `mapstructure:"fetch"`
	Digest      DigestConfig `mapstructure:"digest"`
	SourcesFile string       `mapstructure:"sources_file"` // optional YAML feed list
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Mail.Host == "" {
		c.Mail.Host = "smtp.gmail.com"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = c.Mail.Username
	}
	if c.Mail.Timeout == "" {
		c.Mail.Timeout = "30s"
	}
	if c.Fetch.Timeout == "" {
		c.Fetch.Timeout = "10s"
	}
	if c.Fetch.Delay == "" {
		c.Fetch.Delay = "1s"
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "feed-digest/1.0 (daily digest bot)"
	}
	if c.Digest.Window == "" {
		c.Digest.Window = "24h"
	}
	if c.Digest.MaxPromptChars == 0 {
		c.Digest.MaxPromptChars = 12000
	}
	if c.Digest.MaxItemsPerSource == 0 {
		c.Digest.MaxItemsPerSource = 8
	}
}

// Validate checks that every required credential is present and every
// duration parses. It must be called before any client is constructed so a
// misconfigured run aborts before the first network call.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.OpenAI.APIKey) == "" {
		missing = append(missing, "openai.api_key (env LLM_API_KEY)")
	}
	if strings.TrimSpace(c.Mail.Username) == "" {
		missing = append(missing, "mail.username (env MAIL_USER)")
	}
	if strings.TrimSpace(c.Mail.Password) == "" {
		missing = append(missing, "mail.password (env MAIL_PASS)")
	}
	if strings.TrimSpace(c.Mail.Recipient) == "" {
		missing = append(missing, "mail.recipient (env RECIPIENT_EMAIL)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required settings: %s", strings.Join(missing, ", "))
	}
	if !strings.Contains(c.Mail.Recipient, "@") {
		return fmt.Errorf("config: mail.recipient %q is not an email address", c.Mail.Recipient)
	}
	if c.Mail.From != "" && !strings.Contains(c.Mail.From, "@") {
		return fmt.Errorf("config: mail.from %q is not an email address", c.Mail.From)
	}
	for _, d := range []struct {
		key, val string
	}{
		{"mail.timeout", c.Mail.Timeout},
		{"fetch.timeout", c.Fetch.Timeout},
		{"digest.window", c.Digest.Window},
	} {
		v, err := time.ParseDuration(d.val)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", d.key, err)
		}
		if v <= 0 {
			return fmt.Errorf("config: %s must be positive", d.key)
		}
	}
	if _, err := time.ParseDuration(c.Fetch.Delay); err != nil {
		return fmt.Errorf("config: invalid fetch.delay: %w", err)
	}
	return nil
}

// WindowSpan returns the parsed digest window duration.
// Validate must have succeeded first.
func (c *Config) WindowSpan() time.Duration {
	d, err := time.ParseDuration(c.Digest.Window)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// Duration parses s, falling back to def on error.
func Duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
