package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	defer Set(prev)

	Set(zerolog.New(&buf))
	l := For("cli")
	l.Info().Msg("ready")

	require.Contains(t, buf.String(), `"component":"cli"`)
	require.Contains(t, buf.String(), `"ready"`)
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	defer Set(prev)

	Set(zerolog.New(nil))
	SetOutput(&buf)
	l := Logger()
	l.Error().Msg("boom")

	require.Contains(t, buf.String(), "boom")
}
