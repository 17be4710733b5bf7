// Package tracker is the application layer: it turns user actions into
// repository reads and writes, applying the progression rules on the way.
// Every get-then-replace sequence runs under one mutex.
package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/levelup/internal/catalog"
	"github.com/sandeepkv93/levelup/internal/repository"
	"github.com/sandeepkv93/levelup/internal/scheduler"
)

var (
	ErrQuestNotFound = errors.New("tracker: quest not found")
	ErrAmbiguousID   = errors.New("tracker: id prefix matches more than one quest")
	ErrEmptyMood     = errors.New("tracker: mood label is required")
)

type Clock = repository.Clock

type IDFunc func() string

// ReminderScheduler is the scheduled-callback port. scheduler.Engine
// satisfies it.
type ReminderScheduler interface {
	Schedule(ev scheduler.ReminderEvent) error
	Cancel(id string) int
}

type Options struct {
	Clock     Clock
	NewID     IDFunc
	Scheduler ReminderScheduler
	Catalog   *catalog.Catalog
	Logger    zerolog.Logger
}

type Service struct {
	repo    *repository.Repository
	clock   Clock
	newID   IDFunc
	sched   ReminderScheduler
	catalog catalog.Catalog
	log     zerolog.Logger

	mu sync.Mutex
}

func New(repo *repository.Repository, opts Options) *Service {
	s := &Service{
		repo:  repo,
		clock: opts.Clock,
		newID: opts.NewID,
		sched: opts.Scheduler,
		log:   opts.Logger,
	}
	if s.clock == nil {
		s.clock = repository.ClockFunc(time.Now)
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if opts.Catalog != nil {
		s.catalog = *opts.Catalog
	} else {
		s.catalog = catalog.Default()
	}
	return s
}

func (s *Service) Catalog() catalog.Catalog {
	return s.catalog
}

func (s *Service) Export(ctx context.Context) (string, error) {
	return s.repo.Export(ctx)
}

// Import replaces the stored state and re-arms the hydration reminder from
// the imported settings.
func (s *Service) Import(ctx context.Context, blob string) error {
	s.mu.Lock()
	err := s.repo.Import(ctx, blob)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.RestoreReminder(ctx)
}
