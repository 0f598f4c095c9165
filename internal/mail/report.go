package mail

import (
	"bytes"
	_ "embed"
	"text/template"
	"time"
)

// Report is the composed email: a date-stamped subject plus a plain-text
// body carrying either the summary or an explicit failure notice.
type Report struct {
	Subject   string
	Body      string
	ItemCount int
}

type reportData struct {
	Generated string
	ItemCount int
	Summary   string
	Failed    bool
	ErrText   string
}

//go:embed report.tmpl
var reportTpl string

var compiled = template.Must(template.New("report").Parse(reportTpl))

// BuildReport composes the email for a run. When runErr is non-nil the body
// states the failure instead of a summary: a cron job that fails must fail
// visibly, and the error email is the visible channel.
func BuildReport(now time.Time, itemCount int, summary string, runErr error) Report {
	d := reportData{
		Generated: now.UTC().Format("2006-01-02 15:04"),
		ItemCount: itemCount,
		Summary:   summary,
	}
	if runErr != nil {
		d.Failed = true
		d.ErrText = runErr.Error()
	}
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, d); err != nil {
		panic(err)
	}
	return Report{
		Subject:   "AI Trends Daily Report - " + now.UTC().Format("2006-01-02"),
		Body:      buf.String(),
		ItemCount: itemCount,
	}
}
