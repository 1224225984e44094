// Package process runs an annotation batch: read a corpus slice, annotate
// it, assemble the token table and persist it.
package process

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/revelaction/nlpcorpus/annotate"
	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/render"
	"github.com/revelaction/nlpcorpus/storage"
	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/token"
	"github.com/revelaction/nlpcorpus/vocab"
)

// SourceFunc opens the document source at location.
type SourceFunc func(location string) (storage.DocReader, error)

// Progress is notified while the documents of a batch are annotated.
type Progress interface {
	Start(total int)
	Step(done int, doc corpus.Document)
	Stop()
}

// Options of one run.
type Options struct {
	Range corpus.Range

	// Store writes the token table.
	Store bool

	// Vocab writes the vocabulary snapshot.
	Vocab bool

	// Print writes a preview of the first Head rows to the processor output.
	Print bool
	Head  int
}

// DefaultOptions stores the table of the full corpus.
func DefaultOptions() Options {
	return Options{Store: true, Head: 10}
}

// Result of one run.
type Result struct {
	RunID    string
	Table    *table.Table
	Location string
	Docs     int
	Skipped  []annotate.Failure
	Elapsed  time.Duration
}

// Processor reads, annotates and stores corpora.
type Processor struct {
	Open      SourceFunc
	Annotator *annotate.Annotator
	Tables    storage.TableWriter
	Filters   corpus.Filters

	Vocab    *vocab.Store
	VocabDir string

	Logger   *zap.SugaredLogger
	Progress Progress

	// Out receives the table preview.
	Out io.Writer
}

// ReadProcessStore annotates the documents of the range read from location
// and stores the table as <corpusName><suffix>.
func (p *Processor) ReadProcessStore(ctx context.Context, location, corpusName string, opts Options) (*Result, error) {
	t0 := time.Now()

	res := &Result{RunID: ulid.MustNew(ulid.Now(), rand.Reader).String()}
	logg := p.logger().With("run", res.RunID)

	logg.Infof("*** start new corpus: %s", corpusName)
	logg.Infof("%s: reading corpus%s from %s", corpusName, opts.Range, location)

	src, err := p.Open(location)
	if err != nil {
		return nil, err
	}

	docs, total, err := src.ReadDocs(ctx, opts.Range)
	if err != nil {
		return nil, err
	}

	for _, f := range p.Filters.For(location) {
		logg.Infof("%s: applying filter %s", corpusName, f.Name())
	}
	docs = corpus.Apply(docs, p.Filters.For(location))
	res.Docs = len(docs)

	logg.Infof("using %d documents", len(docs))
	logg.Infof("%s: start processing", corpusName)

	records, failures, err := p.annotate(ctx, docs)
	if err != nil {
		return nil, err
	}

	for _, f := range failures {
		logg.Warnw("document skipped", "doc", f.DocID, "error", f.Err)
	}
	res.Skipped = failures

	res.Table = table.Assemble(records)

	if opts.Print {
		if err := render.Table(p.out(), res.Table, opts.Head); err != nil {
			return nil, err
		}
	}

	if opts.Store {
		name := corpusName + opts.Range.Suffix(total)
		logg.Infof("%s: saving to %s", corpusName, name)

		res.Location, err = p.Tables.WriteTable(ctx, name, res.Table)
		if err != nil {
			return nil, err
		}
		logg.Debugw("table written", "location", res.Location, "rows", res.Table.Len())
	}

	if opts.Vocab && p.Vocab != nil {
		logg.Infof("writing vocabulary to disk: %s", p.VocabDir)
		if _, err := p.Vocab.Save(ctx, p.VocabDir); err != nil {
			return nil, err
		}
	}

	res.Elapsed = time.Since(t0)
	logg.Infof("%s: done in %s", corpusName, FormatElapsed(res.Elapsed))

	return res, nil
}

func (p *Processor) annotate(ctx context.Context, docs []corpus.Document) ([]token.Record, []annotate.Failure, error) {
	if p.Progress == nil {
		return p.Annotator.AnnotateAll(ctx, docs, nil)
	}

	p.Progress.Start(len(docs))
	defer p.Progress.Stop()

	return p.Annotator.AnnotateAll(ctx, docs, p.Progress.Step)
}

func (p *Processor) logger() *zap.SugaredLogger {
	if p.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return p.Logger
}

func (p *Processor) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// FormatElapsed formats d as HH:MM:SS, hours not wrapping at 24.
func FormatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}
