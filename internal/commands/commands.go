package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/klabast/wb-services/festival-agenda/internal/app"
	"github.com/klabast/wb-services/festival-agenda/internal/festival"
	"github.com/rs/zerolog/log"
)

// Show handles the show subcommand (the default)
func Show(w io.Writer, agenda *festival.Agenda, args []string) error {
	fs := newFlagSet(app.CommandShow, "Prints every festival grouped by month.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app.WriteAgenda(w, agenda)
	return nil
}

// Count handles the count subcommand
func Count(w io.Writer, agenda *festival.Agenda, args []string) error {
	fs := newFlagSet(app.CommandCount, "Prints how many festivals a month holds.")
	monthLabel := fs.String("month", "", "Month label, e.g. MARCH (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *monthLabel == "" {
		fs.Usage()
		return fmt.Errorf("missing -month")
	}

	month, err := festival.ParseMonth(*monthLabel)
	if err != nil {
		return err
	}

	count := agenda.CountInMonth(month)
	log.Debug().Stringer("month", month).Int("count", count).Msg("Counted festivals")
	app.WriteCount(w, month, count)
	return nil
}

// Styles handles the styles subcommand
func Styles(w io.Writer, agenda *festival.Agenda, args []string) error {
	fs := newFlagSet(app.CommandStyles, "Prints festival names grouped by musical style.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app.WriteStyles(w, agenda.GroupByStyle())
	return nil
}

// Months handles the months subcommand
func Months(w io.Writer, agenda *festival.Agenda, args []string) error {
	fs := newFlagSet(app.CommandMonths, "Prints scheduled months with localized names and counts.")
	locale := fs.String("locale", app.Locale, "Locale for month names")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return app.WriteMonths(w, agenda, *locale)
}

func newFlagSet(name, description string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: festival-agenda %s [OPTIONS]\n\n", name)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  %s    Log level (default: %s)\n", app.EnvLogLevel, app.DefaultLogLevel)
		fmt.Fprintf(os.Stderr, "  %s       Locale for month names (default: %s)\n", app.EnvLocale, app.DefaultLocale)
	}
	return fs
}
