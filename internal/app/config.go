package app

import (
	"os"
	"strings"
)

// Constants
const (
	DefaultLogLevel = "info"
	DefaultLocale   = "es_ES"

	// Environment variables
	EnvLogLevel = "FESTIVAL_LOG_LEVEL"
	EnvLocale   = "FESTIVAL_LOCALE"

	// Subcommands
	CommandShow   = "show"
	CommandCount  = "count"
	CommandStyles = "styles"
	CommandMonths = "months"

	// Output messages
	MsgNotScheduled = "not scheduled"
	MsgEmptyAgenda  = "No festivals scheduled"
)

// Global variables, overridden by environment and then by flags.
var (
	LogLevel = DefaultLogLevel
	Locale   = DefaultLocale
)

func init() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLocale)); v != "" {
		Locale = v
	}
}
