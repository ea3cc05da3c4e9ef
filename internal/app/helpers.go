package app

import (
	"fmt"
	"io"

	"github.com/klabast/wb-services/festival-agenda/internal/festival"
	"github.com/rs/zerolog/log"
)

// writeString writes to w and logs any error
func writeString(w io.Writer, s string) {
	if _, err := fmt.Fprint(w, s); err != nil {
		log.Error().Err(err).Msg("Error writing output")
	}
}

// BuildAgenda adds festivals to a new agenda in the given order
func BuildAgenda(festivals []festival.Festival) *festival.Agenda {
	agenda := festival.NewAgenda()
	for _, f := range festivals {
		agenda.Add(f)
	}
	log.Debug().Int("festivals", agenda.Len()).Int("months", len(agenda.Months())).Msg("Agenda built")
	return agenda
}
