package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/config"
	"github.com/rlacademy/rl-academy/internal/filter"
	"github.com/rlacademy/rl-academy/internal/logging"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/rlacademy/rl-academy/internal/report"
	"github.com/rlacademy/rl-academy/internal/search"
	"github.com/rlacademy/rl-academy/internal/source"
	"github.com/rlacademy/rl-academy/internal/storage"
)

var (
	// ErrLessonNotFound is returned when a lesson identifier is not part of its item.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrTrackNotFound is returned when browsing a track the catalog does not have.
	ErrTrackNotFound = errors.New("track not found")
)

// Options configures an Academy.
type Options struct {
	Primary  string
	Fallback string
	Fetcher  *source.Fetcher
	Store    progress.Store
	Provider search.Provider
	// Reporter receives load warnings. Defaults to the console.
	Reporter report.Reporter
}

// Academy loads the catalog once and answers browsing, playback and progress
// requests against it. A failed load is terminal: every later call returns
// the same error.
type Academy struct {
	opts   Options
	engine *filter.Engine

	mu       sync.Mutex
	loaded   bool
	loadErr  error
	catalog  *catalog.Catalog
	ledger   *progress.Ledger
	warnings []catalog.Warning
}

// NewAcademy creates an academy that loads lazily on first use.
func NewAcademy(opts Options) *Academy {
	if opts.Fetcher == nil {
		opts.Fetcher = source.NewFetcher(source.DefaultTimeout)
	}
	if opts.Reporter == nil {
		opts.Reporter = report.Console()
	}
	return &Academy{opts: opts, engine: filter.NewEngine(opts.Provider)}
}

// NewFromConfig creates an academy from the loaded configuration.
func NewFromConfig() (*Academy, error) {
	store, err := storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("progress storage: %w", err)
	}
	return NewAcademy(Options{
		Primary:  config.Get("content_primary", "content.json"),
		Fallback: config.Get("content_fallback", "data/content.json"),
		Fetcher:  source.NewFetcherFromConfig(),
		Store:    store,
		Provider: search.ForMode(config.Get("search_mode", config.SearchSubstring)),
	}), nil
}

// NewWithCatalog creates an academy over an already loaded catalog.
func NewWithCatalog(cat *catalog.Catalog, ledger *progress.Ledger, provider search.Provider) *Academy {
	a := NewAcademy(Options{Provider: provider})
	a.loaded = true
	a.catalog = cat
	a.ledger = ledger
	if a.ledger == nil {
		a.ledger = progress.Load(nil)
	}
	return a
}

// Load fetches and parses the content document, then loads the ledger.
// Non-fatal warnings are reported through colors and the log.
func (a *Academy) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loaded {
		return a.loadErr
	}
	a.loaded = true

	raw, err := a.opts.Fetcher.Fetch(ctx, a.opts.Primary, a.opts.Fallback)
	if err != nil {
		a.loadErr = err
		logging.Error("catalog fetch failed", "error", err)
		return err
	}
	cat, warnings, err := catalog.Load(raw)
	if err != nil {
		a.loadErr = err
		logging.Error("catalog parse failed", "error", err)
		return err
	}
	for _, w := range warnings {
		a.opts.Reporter.Warning(string(w))
		logging.Warn("catalog warning", "warning", string(w))
	}
	a.catalog = cat
	a.warnings = warnings
	a.ledger = progress.Load(a.opts.Store)
	logging.Info("catalog loaded", "items", cat.Len(), "tracks", len(cat.Tracks()), "completed", a.ledger.Len())
	return nil
}

// Catalog returns the loaded catalog.
func (a *Academy) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	if err := a.Load(ctx); err != nil {
		return nil, err
	}
	return a.catalog, nil
}

// Warnings returns the non-fatal conditions reported while loading.
func (a *Academy) Warnings(ctx context.Context) ([]catalog.Warning, error) {
	if err := a.Load(ctx); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.warnings, nil
}

// Ledger returns the progress ledger, or nil before a successful load.
func (a *Academy) Ledger() *progress.Ledger {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger
}

// Engine returns the filter engine.
func (a *Academy) Engine() *filter.Engine {
	return a.engine
}

// Browse returns the listing for state.
func (a *Academy) Browse(ctx context.Context, state State) (View, error) {
	cat, err := a.Catalog(ctx)
	if err != nil {
		return View{}, err
	}
	if state.Mode == ModeTrack {
		if _, ok := cat.Track(state.Selection.Track); !ok {
			return View{}, fmt.Errorf("%w: %q", ErrTrackNotFound, state.Selection.Track)
		}
	}
	return state.View(cat, a.engine, a.Ledger()), nil
}

// Tracks returns all tracks in document order.
func (a *Academy) Tracks(ctx context.Context) ([]catalog.Track, error) {
	cat, err := a.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Tracks(), nil
}

// Open resolves itemID into its playable lesson and reports its status.
func (a *Academy) Open(ctx context.Context, itemID string) (navigation.Playback, string, error) {
	cat, err := a.Catalog(ctx)
	if err != nil {
		return navigation.Playback{}, "", err
	}
	pb, err := navigation.Open(cat, itemID)
	if err != nil {
		return navigation.Playback{}, "", err
	}
	logging.Debug("item opened", "item", itemID, "lesson", pb.Lesson.ID)
	return pb, navigation.StatusLabel(a.Ledger(), pb.Lesson), nil
}

// Lesson returns the lesson lessonID of itemID. An empty lessonID selects the
// lesson the item opens to.
func (a *Academy) Lesson(ctx context.Context, itemID, lessonID string) (navigation.Playback, error) {
	if lessonID == "" {
		pb, _, err := a.Open(ctx, itemID)
		return pb, err
	}
	cat, err := a.Catalog(ctx)
	if err != nil {
		return navigation.Playback{}, err
	}
	item, ok := cat.Item(itemID)
	if !ok {
		return navigation.Playback{}, fmt.Errorf("%w: %q", navigation.ErrItemNotFound, itemID)
	}
	lesson := navigation.FindLesson(item, lessonID)
	if lesson == nil {
		return navigation.Playback{}, fmt.Errorf("%w: %q in %q", ErrLessonNotFound, lessonID, itemID)
	}
	return navigation.Playback{Item: item, Lesson: *lesson}, nil
}

// LessonStatus returns the completion label of a lesson.
func (a *Academy) LessonStatus(ctx context.Context, itemID, lessonID string) (navigation.Playback, string, error) {
	pb, err := a.Lesson(ctx, itemID, lessonID)
	if err != nil {
		return navigation.Playback{}, "", err
	}
	return pb, navigation.StatusLabel(a.Ledger(), pb.Lesson), nil
}

// MarkDone marks a lesson completed and persists the ledger.
func (a *Academy) MarkDone(ctx context.Context, itemID, lessonID string) (navigation.Playback, error) {
	pb, err := a.Lesson(ctx, itemID, lessonID)
	if err != nil {
		return navigation.Playback{}, err
	}
	if err := a.Ledger().MarkCompleted(pb.Key()); err != nil {
		return pb, err
	}
	return pb, nil
}

// Completed returns the items with at least one completed lesson and the
// completed keys in ledger order.
func (a *Academy) Completed(ctx context.Context) ([]catalog.Item, []progress.Key, error) {
	cat, err := a.Catalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	ledger := a.Ledger()
	return filter.CompletedItems(cat, ledger), ledger.Keys(), nil
}

// Close releases the progress store if it holds resources.
func (a *Academy) Close() error {
	if closer, ok := a.opts.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
