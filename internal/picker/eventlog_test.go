package picker

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yearpick/internal/logger"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogEventsWritesEachEvent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	in := baseInputs()
	in.InitialDate = ptr(at("2023-06-15"))
	c, err := New(in, fixedClock("2023-06-20"))
	require.NoError(t, err)

	stop := LogEvents(c, log)
	c.Next()
	c.OnDateTapped(at("2024-02-02"))
	c.OnLeadingDateTap()

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 3)

	require.Equal(t, "picker event", entries[0]["message"])
	require.Equal(t, "page_jump_requested", entries[0]["event_type"])
	require.EqualValues(t, 4, entries[0]["index"])
	require.Equal(t, true, entries[0]["animated"])

	require.Equal(t, "date_selected", entries[1]["event_type"])
	require.Equal(t, "2024-02-02", entries[1]["date"])

	require.Equal(t, "leading_date_tapped", entries[2]["event_type"])

	stop()
	c.OnLeadingDateTap()
	require.Len(t, decodeEntries(t, buf), 3)
}
