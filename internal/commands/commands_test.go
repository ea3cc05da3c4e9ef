package commands

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/klabast/wb-services/festival-agenda/internal/app"
	"github.com/klabast/wb-services/festival-agenda/internal/festival"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.New(io.Discard)
	os.Exit(m.Run())
}

func TestCount(t *testing.T) {
	agenda := app.BuildAgenda(app.SampleFestivals())

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "Scheduled month", args: []string{"-month", "july"}, want: "JULY: 6\n"},
		{name: "Unscheduled month", args: []string{"-month", "JANUARY"}, want: "JANUARY: not scheduled\n"},
		{name: "Unknown month", args: []string{"-month", "Smarch"}, wantErr: festival.ErrUnknownMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Count(&buf, agenda, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCountMissingMonth(t *testing.T) {
	var buf bytes.Buffer
	err := Count(&buf, festival.NewAgenda(), nil)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestShow(t *testing.T) {
	agenda := app.BuildAgenda(app.SampleFestivals())
	var buf bytes.Buffer

	require.NoError(t, Show(&buf, agenda, nil))
	assert.Equal(t, agenda.Render(), buf.String())
}

func TestStyles(t *testing.T) {
	agenda := app.BuildAgenda(app.SampleFestivals())
	var buf bytes.Buffer

	require.NoError(t, Styles(&buf, agenda, nil))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(agenda.GroupByStyle()))
	assert.Equal(t, "BLUES: Jazzaldia, azkena Rock", lines[0])
	assert.Equal(t, "TECHNO: Sónar", lines[len(lines)-1])
}

func TestMonths(t *testing.T) {
	agenda := app.BuildAgenda(app.SampleFestivals())
	var buf bytes.Buffer

	require.NoError(t, Months(&buf, agenda, []string{"-locale", "en_US"}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(agenda.Months()))
	assert.Equal(t, []string{"March", "1"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"October", "1"}, strings.Fields(lines[len(lines)-1]))
}

func TestUnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	err := Styles(&buf, festival.NewAgenda(), []string{"-verbose"})
	assert.Error(t, err)
}
