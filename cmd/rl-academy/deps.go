package main

import (
	"context"
	"sync"

	"github.com/rlacademy/rl-academy/internal/app"
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/config"
	"github.com/rlacademy/rl-academy/internal/logging"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/rlacademy/rl-academy/internal/progress"
)

// lazyAcademy builds the academy on first use so that commands such as help
// and version never read configuration or touch storage.
type lazyAcademy struct {
	once    sync.Once
	academy *app.Academy
	err     error
}

func (l *lazyAcademy) get() (*app.Academy, error) {
	l.once.Do(func() {
		config.Load()
		colors.SetDebug(config.GetBool("debug", false))
		colors.SetQuiet(config.GetBool("quiet", false))
		if err := logging.InitGlobal(); err != nil {
			colors.Warning("logging disabled: " + err.Error())
		}
		l.academy, l.err = app.NewFromConfig()
	})
	return l.academy, l.err
}

func (l *lazyAcademy) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	a, err := l.get()
	if err != nil {
		return nil, err
	}
	return a.Catalog(ctx)
}

func (l *lazyAcademy) Warnings(ctx context.Context) ([]catalog.Warning, error) {
	a, err := l.get()
	if err != nil {
		return nil, err
	}
	return a.Warnings(ctx)
}

func (l *lazyAcademy) Browse(ctx context.Context, state app.State) (app.View, error) {
	a, err := l.get()
	if err != nil {
		return app.View{}, err
	}
	return a.Browse(ctx, state)
}

func (l *lazyAcademy) Tracks(ctx context.Context) ([]catalog.Track, error) {
	a, err := l.get()
	if err != nil {
		return nil, err
	}
	return a.Tracks(ctx)
}

func (l *lazyAcademy) Open(ctx context.Context, itemID string) (navigation.Playback, string, error) {
	a, err := l.get()
	if err != nil {
		return navigation.Playback{}, "", err
	}
	return a.Open(ctx, itemID)
}

func (l *lazyAcademy) LessonStatus(ctx context.Context, itemID, lessonID string) (navigation.Playback, string, error) {
	a, err := l.get()
	if err != nil {
		return navigation.Playback{}, "", err
	}
	return a.LessonStatus(ctx, itemID, lessonID)
}

func (l *lazyAcademy) MarkDone(ctx context.Context, itemID, lessonID string) (navigation.Playback, error) {
	a, err := l.get()
	if err != nil {
		return navigation.Playback{}, err
	}
	return a.MarkDone(ctx, itemID, lessonID)
}

func (l *lazyAcademy) Completed(ctx context.Context) ([]catalog.Item, []progress.Key, error) {
	a, err := l.get()
	if err != nil {
		return nil, nil, err
	}
	return a.Completed(ctx)
}

// Close releases the academy if it was built.
func (l *lazyAcademy) Close() error {
	if l.academy == nil {
		return nil
	}
	return l.academy.Close()
}

var academyClient = &lazyAcademy{}
