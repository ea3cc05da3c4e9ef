package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/klabast/wb-services/festival-agenda/internal/app"
	"github.com/klabast/wb-services/festival-agenda/internal/commands"
	"github.com/klabast/wb-services/festival-agenda/internal/festival"
	"github.com/rs/zerolog/log"
)

func main() {
	// Global flags come before the subcommand
	flag.StringVar(&app.LogLevel, "log-level", app.LogLevel, "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	if err := app.SetupLogging(app.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	command := app.CommandShow
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	agenda := app.BuildAgenda(app.SampleFestivals())
	log.Info().Int("festivals", agenda.Len()).Str("command", command).Msg("Festival agenda ready")

	var run func(io.Writer, *festival.Agenda, []string) error
	switch command {
	case app.CommandShow:
		run = commands.Show
	case app.CommandCount:
		run = commands.Count
	case app.CommandStyles:
		run = commands.Styles
	case app.CommandMonths:
		run = commands.Months
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q (want %s, %s, %s or %s)\n",
			command, app.CommandShow, app.CommandCount, app.CommandStyles, app.CommandMonths)
		os.Exit(2)
	}

	if err := run(os.Stdout, agenda, args); err != nil {
		log.Error().Err(err).Str("command", command).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
