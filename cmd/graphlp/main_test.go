package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/graphlp/lpjson"
)

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		input:   writeRequest(t, `{"constraints": [[1, 0, 2], [0, 1, 3]], "objective": [2, 3]}`),
		sense:   "max",
		png:     filepath.Join(dir, "region.png"),
		scale:   10,
		geojson: filepath.Join(dir, "region.geojson"),
		quiet:   true,
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	var resp lpjson.Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "optimal", string(resp.Status))
	assert.Equal(t, 13.0, *resp.BestValue)

	assert.FileExists(t, cfg.png)

	data, err := os.ReadFile(cfg.geojson)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3)
}

func TestRun_Malformed(t *testing.T) {
	cfg := config{input: writeRequest(t, `{"constraints": [[1, 0]], "objective": [2, 3]}`), quiet: true}
	var out bytes.Buffer
	err := run(cfg, &out)
	assert.True(t, errors.Is(err, lpjson.ErrMalformedRequest))
	assert.Contains(t, out.String(), `"error"`)
}

func TestRun_MissingInput(t *testing.T) {
	cfg := config{input: filepath.Join(t.TempDir(), "nope.json"), quiet: true}
	err := run(cfg, &bytes.Buffer{})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, lpjson.ErrMalformedRequest))
}
