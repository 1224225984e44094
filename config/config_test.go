package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/revelaction/nlpcorpus/nlperr"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, Prose, c.Pipeline.Kind)
	assert.Equal(t, FormatFile, c.Format)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlpcorpus.yaml")
	content := `
pipeline:
  kind: spacy
  url: http://localhost:8080
  model: de_core_news_lg
  timeout: 2m
lemmatizer: data/IWNLP.Lemmatizer_20181001.json
output_dir: /tmp/nlp
format: sqlite
allow_lists:
  - match: dewiki
    path: data/dewiki_ids.txt
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Pipeline{Kind: Spacy, URL: "http://localhost:8080", Model: "de_core_news_lg", Timeout: 2 * time.Minute}, c.Pipeline)
	assert.Equal(t, "data/IWNLP.Lemmatizer_20181001.json", c.Lemmatizer)
	assert.Equal(t, "/tmp/nlp", c.OutputDir)
	assert.Equal(t, "nlp/vocab", c.VocabDir)
	assert.Equal(t, FormatSqlite, c.Format)
	assert.Equal(t, []AllowList{{Match: "dewiki", Path: "data/dewiki_ids.txt"}}, c.AllowLists)

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, l)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"kind":       "pipeline: {kind: stanza}",
		"spacy url":  "pipeline: {kind: spacy}",
		"format":     "format: parquet",
		"allow list": "allow_lists: [{match: dewiki}]",
		"log level":  "log_level: loud",
		"yaml":       "pipeline: [",
	}

	for name, data := range cases {
		_, err := Parse([]byte(data))
		assert.ErrorIs(t, err, nlperr.ErrResourceLoad, name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, err, nlperr.ErrResourceLoad)
}

func TestValidateAfterOverride(t *testing.T) {
	c := Default()
	c.Format = "parquet"
	assert.ErrorIs(t, c.Validate(), nlperr.ErrResourceLoad)
}
