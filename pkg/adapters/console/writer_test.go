package console_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/orthology/pkg/adapters/console"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var records = []domain.Record{
	{Target: "man_a", Other: "man_b", Relationship: domain.InParalogous},
	{Target: "man_a", Other: "rat_c", Relationship: domain.Orthologous},
}

func TestWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	w := console.NewWriter(&buf, console.WithColor(false))

	require.NoError(t, w.Write(context.Background(), 0, "man_a", records))
	assert.Equal(t, "man_a:\n\tman_b: in-paralogous\n\trat_c: orthologous\n\n", buf.String())
}

func TestWriter_LaterTreesAreLabelled(t *testing.T) {
	var buf bytes.Buffer
	w := console.NewWriter(&buf, console.WithColor(false))

	require.NoError(t, w.Write(context.Background(), 1, "man_a", records))
	assert.True(t, strings.HasPrefix(buf.String(), "[tree 2] man_a:\n"))
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := console.NewWriter(&buf, console.WithJSON(true))

	require.NoError(t, w.Write(context.Background(), 0, "man_a", records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, "rat_c", got["other"])
	assert.Equal(t, "orthologous", got["relationship"])
	assert.Equal(t, float64(0), got["tree"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_OutputError(t *testing.T) {
	w := console.NewWriter(failingWriter{}, console.WithColor(false))
	err := w.Write(context.Background(), 0, "man_a", records)
	assert.ErrorIs(t, err, domain.ErrOutputTarget)
}
