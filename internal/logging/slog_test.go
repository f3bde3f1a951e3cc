package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), sc.Text())
		out = append(out, rec)
	}
	return out
}

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogJSON(&buf, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "checkpoint_id", "c1")
	log.Info(ctx, "inf", "count", 2)
	log.Warn(ctx, "wrn", "error", errors.New("boom"))
	log.Error(ctx, "err", "local_id", "l-1")

	recs := decodeRecords(t, &buf)
	require.Len(t, recs, 4)

	want := []struct {
		level, msg, key string
		val             any
	}{
		{"DEBUG", "dbg", "checkpoint_id", "c1"},
		{"INFO", "inf", "count", float64(2)},
		{"WARN", "wrn", "error", "boom"},
		{"ERROR", "err", "local_id", "l-1"},
	}
	for i, w := range want {
		assert.Equal(t, w.level, recs[i]["level"])
		assert.Equal(t, w.msg, recs[i]["msg"])
		assert.Equal(t, w.val, recs[i][w.key])
	}
}

func TestSlogLogger_WithAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogJSON(&buf, slog.LevelInfo).With("module", "sync")

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "sync pass finished", "synced", 3)

	recs := decodeRecords(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "sync pass finished", recs[0]["msg"])
	assert.Equal(t, "sync", recs[0]["module"])
	assert.Equal(t, float64(3), recs[0]["synced"])
}
