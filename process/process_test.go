package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/revelaction/nlpcorpus/annotate"
	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/pipeline/pipelinetest"
	"github.com/revelaction/nlpcorpus/storage"
	"github.com/revelaction/nlpcorpus/storage/filesystem"
	"github.com/revelaction/nlpcorpus/vocab"
)

type progress struct {
	total   int
	steps   []string
	stopped bool
}

func (p *progress) Start(total int)                    { p.total = total }
func (p *progress) Step(done int, doc corpus.Document) { p.steps = append(p.steps, doc.ID) }
func (p *progress) Stop()                              { p.stopped = true }

func writeCorpus(t *testing.T, n int) string {
	t.Helper()

	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "{\"id\": \"d%d\", \"title\": \"Title %d\", \"text\": \"Some Words go. Other Words\"}\n", i, i)
	}

	path := filepath.Join(t.TempDir(), "news.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func newProcessor(t *testing.T, logs *bytes.Buffer) (*Processor, *pipelinetest.Pipeline, string) {
	t.Helper()

	p := pipelinetest.New()
	out := filepath.Join(t.TempDir(), "nlp")

	return &Processor{
		Open: func(location string) (storage.DocReader, error) {
			return filesystem.NewDocStore(location), nil
		},
		Annotator: annotate.New(p, nil),
		Tables:    filesystem.NewTableStore(out),
		Vocab:     p.Vocab(),
		VocabDir:  filepath.Join(out, "vocab"),
		Logger:    NewLogger(logs, zapcore.InfoLevel),
		Out:       &bytes.Buffer{},
	}, p, out
}

func TestReadProcessStoreSlice(t *testing.T) {
	var logs bytes.Buffer
	proc, p, out := newProcessor(t, &logs)
	prog := &progress{}
	proc.Progress = prog

	opts := DefaultOptions()
	opts.Range = corpus.NewRange(5, 10)

	res, err := proc.ReadProcessStore(context.Background(), writeCorpus(t, 20), "news", opts)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Docs)
	assert.Equal(t, 5, p.Calls)
	assert.Equal(t, []string{"d5", "d6", "d7", "d8", "d9"}, res.Table.Docs())
	assert.True(t, strings.HasSuffix(res.Location, "news_5_9_nlp.tok"))
	assert.FileExists(t, filepath.Join(out, "news_5_9_nlp.tok"))
	assert.NotEmpty(t, res.RunID)

	assert.Equal(t, 5, prog.total)
	assert.Len(t, prog.steps, 5)
	assert.True(t, prog.stopped)

	got, err := filesystem.NewTableStore(out).ReadTable(context.Background(), "news_5_9_nlp")
	require.NoError(t, err)
	assert.True(t, res.Table.Equal(got))

	l := logs.String()
	assert.Contains(t, l, "*** start new corpus: news")
	assert.Contains(t, l, "news: reading corpus[5:10] from ")
	assert.Contains(t, l, "using 5 documents")
	assert.Contains(t, l, "news: start processing")
	assert.Contains(t, l, "news: saving to news_5_9_nlp")
	assert.Contains(t, l, "news: done in 00:00:")
	assert.Contains(t, l, res.RunID)
}

func TestReadProcessStoreIndices(t *testing.T) {
	var logs bytes.Buffer
	proc, _, _ := newProcessor(t, &logs)

	opts := DefaultOptions()
	opts.Store = false
	opts.Range = corpus.NewRange(0, 2)

	res, err := proc.ReadProcessStore(context.Background(), writeCorpus(t, 3), "news", opts)
	require.NoError(t, err)
	assert.Empty(t, res.Location)

	// "Title 0\nSome Words go. Other Words": sentences restart after "go ."
	tb := res.Table
	require.Equal(t, 16, tb.Len())
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 2, 2, 3, 3, 3, 3, 3, 3, 4, 4}, tb.SentIdx)
	assert.Equal(t, []int{1, 0, 2, 2, 0, 0, 3, 3, 4, 0, 5, 5, 0, 0, 6, 6}, tb.NounPhrase)
}

func TestReadProcessStorePrintAndVocab(t *testing.T) {
	var logs bytes.Buffer
	proc, _, out := newProcessor(t, &logs)

	opts := Options{Print: true, Head: 3, Vocab: true}
	_, err := proc.ReadProcessStore(context.Background(), writeCorpus(t, 2), "news", opts)
	require.NoError(t, err)

	preview := proc.Out.(*bytes.Buffer).String()
	assert.Contains(t, preview, "noun_phrase")
	assert.Contains(t, preview, "rows x 10 columns]")

	assert.FileExists(t, filepath.Join(out, "vocab", vocab.SnapshotName))
	v, err := vocab.Load(context.Background(), filepath.Join(out, "vocab"))
	require.NoError(t, err)
	assert.True(t, v.Contains("Words"))
}

func TestReadProcessStoreFilters(t *testing.T) {
	var logs bytes.Buffer
	proc, p, _ := newProcessor(t, &logs)
	proc.Filters = corpus.Filters{
		{Match: "news", Filter: corpus.NewAllowList("good", []string{"d1", "d3"})},
		{Match: "dewiki", Filter: corpus.NewAllowList("wiki", nil)},
	}

	opts := DefaultOptions()
	opts.Store = false
	res, err := proc.ReadProcessStore(context.Background(), writeCorpus(t, 5), "news", opts)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Docs)
	assert.Equal(t, 2, p.Calls)
	assert.Equal(t, []string{"d1", "d3"}, res.Table.Docs())
	assert.Contains(t, logs.String(), "applying filter good")
	assert.Contains(t, logs.String(), "using 2 documents")
}

func TestReadProcessStoreErrors(t *testing.T) {
	var logs bytes.Buffer
	ctx := context.Background()

	proc, _, _ := newProcessor(t, &logs)
	_, err := proc.ReadProcessStore(ctx, filepath.Join(t.TempDir(), "missing.jsonl"), "news", DefaultOptions())
	assert.ErrorIs(t, err, nlperr.ErrInputRead)

	proc, p, out := newProcessor(t, &logs)
	p.FailOn = "Title 1"
	_, err = proc.ReadProcessStore(ctx, writeCorpus(t, 3), "news", DefaultOptions())
	assert.ErrorIs(t, err, pipelinetest.ErrFail)
	assert.Contains(t, err.Error(), "document d1")
	assert.NoFileExists(t, filepath.Join(out, "news_nlp.tok"))

	proc, p, _ = newProcessor(t, &logs)
	p.FailOn = "Title 1"
	proc.Annotator.ContinueOnError = true
	res, err := proc.ReadProcessStore(ctx, writeCorpus(t, 3), "news", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "d1", res.Skipped[0].DocID)
	assert.Equal(t, []string{"d0", "d2"}, res.Table.Docs())
	assert.True(t, strings.HasSuffix(res.Location, "news_nlp.tok"))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatElapsed(300*time.Millisecond))
	assert.Equal(t, "01:01:01", FormatElapsed(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "26:00:05", FormatElapsed(26*time.Hour+5*time.Second))
}
