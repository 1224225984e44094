package spacy

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/pipeline"
	"github.com/revelaction/nlpcorpus/token"
	"github.com/revelaction/nlpcorpus/vocab"
)

const (
	annotatePath = "/annotate"
	modelPath    = "/models/{model}"

	DefaultTimeout = 60 * time.Second
)

// Options configures the client of a spaCy annotation service.
type Options struct {
	// BaseURL of the service, e.g. http://localhost:8080
	BaseURL string

	// Model is the spaCy pipeline the service must have loaded,
	// e.g. de_core_news_lg
	Model string

	Timeout time.Duration

	// Vocab receives the strings of every annotated document. A new store
	// is used when nil.
	Vocab *vocab.Store
}

// Client annotates texts with a remote spaCy pipeline.
type Client struct {
	client *resty.Client
	model  string
	vocab  *vocab.Store
}

var _ pipeline.Pipeline = (*Client)(nil)

type annotateRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

type annotateResponse struct {
	Tokens     []tokenJSON `json:"tokens"`
	NounChunks []spanJSON  `json:"noun_chunks"`
}

type tokenJSON struct {
	I           int    `json:"i"`
	Text        string `json:"text"`
	Lemma       string `json:"lemma"`
	Pos         string `json:"pos"`
	IsSentStart *bool  `json:"is_sent_start"`
	EntIOB      string `json:"ent_iob"`
	EntType     string `json:"ent_type"`
}

type spanJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type modelResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Loaded  bool   `json:"loaded"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New connects to the service and checks that the model is loaded.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("%w: spacy: no service url", nlperr.ErrResourceLoad)
	}

	if opts.Model == "" {
		return nil, fmt.Errorf("%w: spacy: no model", nlperr.ErrResourceLoad)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	voc := opts.Vocab
	if voc == nil {
		voc = vocab.New()
	}

	c := &Client{
		client: resty.New().
			SetBaseURL(opts.BaseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		model: opts.Model,
		vocab: voc,
	}

	if err := c.checkModel(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) checkModel(ctx context.Context) error {
	var model modelResponse
	var apiErr errorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetResult(&model).
		SetError(&apiErr).
		Get(modelPath)
	if err != nil {
		return fmt.Errorf("%w: spacy model %s: %w", nlperr.ErrResourceLoad, c.model, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: spacy model %s: %s", nlperr.ErrResourceLoad, c.model, statusMessage(resp, apiErr))
	}

	if !model.Loaded {
		return fmt.Errorf("%w: spacy model %s is not loaded", nlperr.ErrResourceLoad, c.model)
	}

	return nil
}

// Annotate posts text to the service and converts the response.
func (c *Client) Annotate(ctx context.Context, text string) (*pipeline.Doc, error) {
	var out annotateResponse
	var apiErr errorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(annotateRequest{Model: c.model, Text: text}).
		SetResult(&out).
		SetError(&apiErr).
		Post(annotatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: spacy: %w", nlperr.ErrAnnotate, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: spacy: %s", nlperr.ErrAnnotate, statusMessage(resp, apiErr))
	}

	doc, err := convert(out)
	if err != nil {
		return nil, fmt.Errorf("%w: spacy: %w", nlperr.ErrAnnotate, err)
	}

	pipeline.Intern(c.vocab, doc)
	return doc, nil
}

func (c *Client) Vocab() *vocab.Store {
	return c.vocab
}

func convert(r annotateResponse) (*pipeline.Doc, error) {
	doc := &pipeline.Doc{
		Tokens: make([]pipeline.Token, len(r.Tokens)),
		Chunks: make([]pipeline.Span, 0, len(r.NounChunks)),
	}

	for i, t := range r.Tokens {
		if t.I != i {
			return nil, fmt.Errorf("token %d reported at position %d", i, t.I)
		}

		doc.Tokens[i] = pipeline.Token{
			Index:     t.I,
			Text:      t.Text,
			Lemma:     t.Lemma,
			Pos:       t.Pos,
			SentStart: t.IsSentStart != nil && *t.IsSentStart,
			EntIOB:    token.ParseIOB(t.EntIOB),
			EntType:   t.EntType,
		}
	}

	for _, s := range r.NounChunks {
		if s.Start < 0 || s.End > len(r.Tokens) || s.Start >= s.End {
			return nil, fmt.Errorf("noun chunk [%d, %d) out of %d tokens", s.Start, s.End, len(r.Tokens))
		}
		doc.Chunks = append(doc.Chunks, pipeline.Span{Start: s.Start, End: s.End})
	}

	return doc, nil
}

func statusMessage(resp *resty.Response, apiErr errorResponse) string {
	if apiErr.Error != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode(), apiErr.Error)
	}
	return fmt.Sprintf("status %d", resp.StatusCode())
}
