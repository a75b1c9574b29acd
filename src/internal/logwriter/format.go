package logwriter

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

const (
	HEADER_TMPL_TIMESTAMP = "timestamp"
	HEADER_TMPL_ELAPSED   = "elapsed"
	HEADER_TMPL_TAG       = "tag"
	HEADER_TMPL_LEVEL     = "level"
)

// DefaultHeaderTemplate renders "2006-01-02 15:04:05 (00:00:01.250000) [I]: ".
const DefaultHeaderTemplate = "{{timestamp}} ({{elapsed}}) {{tag}}: "

const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp formats t as YYYY-MM-DD HH:MM:SS in t's location.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// FormatElapsed formats d as HH:MM:SS.ffffff. The hour field is not wrapped at
// 24, so a span of 26 hours prints as 26:00:00.000000. Negative spans print as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	micros := int64(d / time.Microsecond)
	hours := micros / int64(time.Hour/time.Microsecond)
	micros -= hours * int64(time.Hour/time.Microsecond)
	minutes := micros / int64(time.Minute/time.Microsecond)
	micros -= minutes * int64(time.Minute/time.Microsecond)
	seconds := micros / int64(time.Second/time.Microsecond)
	micros -= seconds * int64(time.Second/time.Microsecond)

	return fmt.Sprintf("%02d:%02d:%02d.%06d", hours, minutes, seconds, micros)
}

// compileHeader parses a header template using {{ }} delimiters.
func compileHeader(template string) (*fasttemplate.Template, error) {
	return fasttemplate.NewTemplate(template, "{{", "}}")
}

// ValidateHeaderTemplate reports whether template can be used as a record header.
func ValidateHeaderTemplate(template string) error {
	_, err := compileHeader(template)
	return err
}

func renderHeader(t *fasttemplate.Template, now time.Time, elapsed time.Duration, level Severity) string {
	return t.ExecuteString(map[string]interface{}{
		HEADER_TMPL_TIMESTAMP: FormatTimestamp(now),
		HEADER_TMPL_ELAPSED:   FormatElapsed(elapsed),
		HEADER_TMPL_TAG:       level.Tag(),
		HEADER_TMPL_LEVEL:     level.String(),
	})
}

var lineTerminators = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine replaces embedded line terminators so one record stays one line.
func singleLine(fragment string) string {
	if !strings.ContainsAny(fragment, "\r\n") {
		return fragment
	}
	return lineTerminators.Replace(fragment)
}
