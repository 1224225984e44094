package spacy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/token"
)

const catDog = `{
  "tokens": [
    {"i": 0, "text": "Cat", "lemma": "cat", "pos": "NOUN", "is_sent_start": null, "ent_iob": "B", "ent_type": "ORG"},
    {"i": 1, "text": "Dog", "lemma": "dog", "pos": "NOUN", "is_sent_start": false, "ent_iob": "I", "ent_type": "ORG"},
    {"i": 2, "text": ".", "lemma": ".", "pos": "PUNCT", "is_sent_start": false, "ent_iob": "", "ent_type": ""}
  ],
  "noun_chunks": [{"start": 0, "end": 2}]
}`

func newServer(t *testing.T, loaded bool, annotate string, status int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/models/de_core_news_sm", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(modelResponse{Name: "de_core_news_sm", Version: "3.7.0", Loaded: loaded})
	})
	mux.HandleFunc("/annotate", func(w http.ResponseWriter, r *http.Request) {
		var req annotateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model != "de_core_news_sm" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(annotate))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAnnotate(t *testing.T) {
	srv := newServer(t, true, catDog, http.StatusOK)
	ctx := context.Background()

	c, err := New(ctx, Options{BaseURL: srv.URL, Model: "de_core_news_sm"})
	require.NoError(t, err)

	doc, err := c.Annotate(ctx, "Cat Dog.")
	require.NoError(t, err)
	require.Len(t, doc.Tokens, 3)

	assert.Equal(t, "Cat", doc.Tokens[0].Text)
	assert.False(t, doc.Tokens[0].SentStart)
	assert.Equal(t, token.Begin, doc.Tokens[0].EntIOB)
	assert.Equal(t, token.Inside, doc.Tokens[1].EntIOB)
	assert.Equal(t, token.Outside, doc.Tokens[2].EntIOB)
	assert.Equal(t, 2, doc.Tokens[2].Index)

	require.Len(t, doc.Chunks, 1)
	assert.Equal(t, 0, doc.Chunks[0].Start)
	assert.Equal(t, 2, doc.Chunks[0].End)

	assert.True(t, c.Vocab().Contains("Dog"))
	assert.True(t, c.Vocab().Contains("ORG"))
}

func TestModelNotLoaded(t *testing.T) {
	srv := newServer(t, false, catDog, http.StatusOK)

	_, err := New(context.Background(), Options{BaseURL: srv.URL, Model: "de_core_news_sm"})
	require.Error(t, err)
	assert.ErrorIs(t, err, nlperr.ErrResourceLoad)
}

func TestUnknownModel(t *testing.T) {
	srv := newServer(t, true, catDog, http.StatusOK)

	_, err := New(context.Background(), Options{BaseURL: srv.URL, Model: "en_core_web_sm"})
	require.Error(t, err)
	assert.ErrorIs(t, err, nlperr.ErrResourceLoad)
}

func TestMissingOptions(t *testing.T) {
	_, err := New(context.Background(), Options{Model: "x"})
	assert.ErrorIs(t, err, nlperr.ErrResourceLoad)

	_, err = New(context.Background(), Options{BaseURL: "http://localhost"})
	assert.ErrorIs(t, err, nlperr.ErrResourceLoad)
}

func TestAnnotateServerError(t *testing.T) {
	srv := newServer(t, true, `{"error": "text too long"}`, http.StatusUnprocessableEntity)
	ctx := context.Background()

	c, err := New(ctx, Options{BaseURL: srv.URL, Model: "de_core_news_sm"})
	require.NoError(t, err)

	_, err = c.Annotate(ctx, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, nlperr.ErrAnnotate)
	assert.Contains(t, err.Error(), "text too long")
}

func TestAnnotateMalformedResponse(t *testing.T) {
	bad := `{"tokens": [{"i": 1, "text": "x"}], "noun_chunks": []}`
	srv := newServer(t, true, bad, http.StatusOK)
	ctx := context.Background()

	c, err := New(ctx, Options{BaseURL: srv.URL, Model: "de_core_news_sm"})
	require.NoError(t, err)

	_, err = c.Annotate(ctx, "x")
	assert.ErrorIs(t, err, nlperr.ErrAnnotate)
}

func TestConvertRejectsChunkOutOfRange(t *testing.T) {
	_, err := convert(annotateResponse{
		Tokens:     []tokenJSON{{I: 0, Text: "a"}},
		NounChunks: []spanJSON{{Start: 0, End: 2}},
	})
	assert.Error(t, err)
}
