package logwriter

import (
	"fmt"
	"strings"
)

// Severity is the level a record is written with. All severities are always
// recorded and printed; there is no filtering by level.
type Severity uint8

const (
	Info Severity = iota
	Debug
	Warning
	Error
	Critical
	Verbose
)

// ColorPair is the ANSI escape sequence wrapped around console output.
type ColorPair struct {
	Prefix string
	Suffix string
}

const colorReset = "\x1b[0m"

const unknownTag = "[?]"

var severityNames = map[Severity]string{
	Info:     "info",
	Debug:    "debug",
	Warning:  "warning",
	Error:    "error",
	Critical: "critical",
	Verbose:  "verbose",
}

var severityTags = map[Severity]string{
	Info:     "[I]",
	Debug:    "[D]",
	Warning:  "[W]",
	Error:    "[E]",
	Critical: "[C]",
	Verbose:  "[V]",
}

var severityColors = map[Severity]ColorPair{
	Info:     {Prefix: "\x1b[1;37;40m", Suffix: colorReset}, // Bright white
	Debug:    {Prefix: "\x1b[1;32;40m", Suffix: colorReset}, // Green
	Warning:  {Prefix: "\x1b[1;33;40m", Suffix: colorReset}, // Yellow
	Error:    {Prefix: "\x1b[1;31;40m", Suffix: colorReset}, // Red
	Critical: {Prefix: "\x1b[5;30;41m", Suffix: colorReset}, // Blinking, red background
	Verbose:  {Prefix: "\x1b[1;34;40m", Suffix: colorReset}, // Blue
}

// Severities returns every severity in declaration order.
func Severities() []Severity {
	return []Severity{Info, Debug, Warning, Error, Critical, Verbose}
}

// Tag returns the bracketed display tag written into the log file, e.g. "[I]".
// Values outside the enumeration resolve to "[?]".
func (s Severity) Tag() string {
	if tag, ok := severityTags[s]; ok {
		return tag
	}
	return unknownTag
}

// Colors returns the console escape pair for the severity. Values outside the
// enumeration get an empty pair, so the message is printed uncolored.
func (s Severity) Colors() ColorPair {
	return severityColors[s]
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// ParseSeverity accepts a severity name ("warning"), its first letter ("w")
// or its tag ("[W]"), case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, sev := range Severities() {
		name := severityNames[sev]
		if key == name || key == name[:1] || key == strings.ToLower(severityTags[sev]) {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity: %q", s)
}
