// Package engine ties the pipeline together: it normalizes incoming text,
// walks it span by span, resolves each span through the lookup processor and
// publishes the results. Dictionary reloads swap in a whole new processor so
// in-flight queries keep a consistent view.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/SanzharKuandyk/saya/config"
	"github.com/SanzharKuandyk/saya/dictionary"
	"github.com/SanzharKuandyk/saya/frequency"
	"github.com/SanzharKuandyk/saya/jlpt"
	"github.com/SanzharKuandyk/saya/lookup"
	"github.com/SanzharKuandyk/saya/pitch"
	"github.com/SanzharKuandyk/saya/tokenize"
)

// Query is one piece of text submitted for lookup.
type Query struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary carries counts over a processed query.
type Summary struct {
	Spans       int `json:"spans"`
	Matched     int `json:"matched"`
	Definitions int `json:"definitions_found"`
}

// QueryResult is the full outcome of processing one query.
type QueryResult struct {
	Query   Query           `json:"query"`
	Results []lookup.Result `json:"results"`
	Summary Summary         `json:"summary"`
}

// CardCreator exports a looked-up word to a flashcard backend.
type CardCreator interface {
	CreateCard(ctx context.Context, term, reading, definition string) error
}

// Translator produces a sentence-level translation alongside word lookups.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// TextSource feeds text into the engine, e.g. from capture or clipboard.
type TextSource interface {
	Texts() <-chan string
}

// Engine owns the lookup processor and the query pipeline. The processor
// pointer is swapped atomically on reload.
type Engine struct {
	proc atomic.Pointer[lookup.Processor]

	// Queries receives submitted text; Results publishes processed output.
	Queries chan Query
	Results chan QueryResult

	cards CardCreator
}

// New builds an engine around an initial dictionary and enrichment tables.
// Any of freq, accents, levels may be nil.
func New(store *dictionary.Store, freq *frequency.Table, accents *pitch.Accents, levels *jlpt.Levels) *Engine {
	e := &Engine{
		// buffered channels to decouple producer and consumers
		Queries: make(chan Query, 100),
		Results: make(chan QueryResult, 100),
	}
	e.proc.Store(lookup.NewProcessor(store, freq, accents, levels))
	return e
}

// Processor returns the current lookup processor snapshot.
func (e *Engine) Processor() *lookup.Processor {
	return e.proc.Load()
}

// Swap replaces the dictionary behind the engine, keeping the existing
// enrichment tables. Queries already being processed finish against the old
// snapshot.
func (e *Engine) Swap(store *dictionary.Store) {
	old := e.proc.Load()
	e.proc.Store(old.WithStore(store))
}

// SetCardCreator installs the flashcard backend used by CreateCard.
func (e *Engine) SetCardCreator(c CardCreator) {
	e.cards = c
}

// Submit validates text, wraps it in a Query and publishes it to Queries
// without blocking the caller.
func (e *Engine) Submit(text string) (Query, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Query{}, errors.New("empty query")
	}

	q := Query{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}

	// publish asynchronously so callers are not blocked
	go func(q Query) {
		select {
		case e.Queries <- q:
		default:
			// channel is full; drop silently for now
		}
	}(q)

	return q, nil
}

// Start launches the worker that drains Queries and publishes to Results.
// It returns immediately; the worker stops when ctx is cancelled.
func (e *Engine) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case q := <-e.Queries:
				res, err := e.Process(ctx, q)
				if err != nil {
					continue
				}
				select {
				case e.Results <- res:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// Process runs one query through the pipeline synchronously.
func (e *Engine) Process(ctx context.Context, q Query) (QueryResult, error) {
	spans := tokenize.Tokenize(q.Text)
	results, err := e.resolve(ctx, spans)
	if err != nil {
		return QueryResult{}, err
	}
	sum := Summary{Spans: len(spans), Matched: len(results)}
	for _, r := range results {
		sum.Definitions += len(r.Definitions)
	}
	return QueryResult{Query: q, Results: results, Summary: sum}, nil
}

// ProcessText segments text greedily: at each position the longest span with
// a dictionary resolution wins and scanning resumes after it; positions with
// no resolution advance by one rune.
func (e *Engine) ProcessText(ctx context.Context, text string) ([]lookup.Result, error) {
	return e.resolve(ctx, tokenize.Tokenize(text))
}

func (e *Engine) resolve(ctx context.Context, spans []tokenize.Span) ([]lookup.Result, error) {
	proc := e.proc.Load()

	var out []lookup.Result
	next := 0
	for _, span := range spans {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if span.Position < next {
			continue
		}
		hits := proc.Lookup(span)
		if len(hits) == 0 {
			continue
		}
		out = append(out, hits...)
		next = span.Position + len([]rune(span.Normalized))
	}
	return out, nil
}

// CreateCard exports the first reading and definition of a result through the
// configured card backend.
func (e *Engine) CreateCard(ctx context.Context, r lookup.Result) error {
	if e.cards == nil {
		return errors.New("no card backend configured")
	}
	var reading, definition string
	if len(r.Readings) > 0 {
		reading = r.Readings[0]
	}
	if len(r.Definitions) > 0 {
		definition = r.Definitions[0]
	}
	return e.cards.CreateCard(ctx, r.Term, reading, definition)
}

// LoadDictionaries loads the base dictionary plus any additional files and
// merges them in order, later files overriding earlier entries. All files
// must parse; a failure leaves nothing loaded.
func LoadDictionaries(cfg config.Dictionary) (*dictionary.Store, error) {
	if !cfg.Enabled || cfg.Path == "" {
		return dictionary.New(), nil
	}
	store, err := dictionary.LoadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", cfg.Path, err)
	}
	for _, p := range cfg.AdditionalPaths {
		extra, err := dictionary.LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %s: %w", p, err)
		}
		store = store.Merge(extra)
	}
	return store, nil
}
