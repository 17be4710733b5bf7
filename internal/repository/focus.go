package repository

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/levelup/internal/codec"
	"github.com/sandeepkv93/levelup/internal/model"
)

func (r *Repository) focusCounter(ctx context.Context) (model.FocusSessionCounter, error) {
	rawDay, err := r.read(ctx, r.timer, KeyFocusDay)
	if err != nil {
		return model.FocusSessionCounter{}, err
	}
	rawCount, err := r.read(ctx, r.timer, KeyFocusCount)
	if err != nil {
		return model.FocusSessionCounter{}, err
	}
	day, _ := codec.DecodeString(rawDay)
	return model.FocusSessionCounter{Day: day, Count: codec.DecodeInt(rawCount, 0)}, nil
}

func (r *Repository) saveFocusCounter(ctx context.Context, c model.FocusSessionCounter) error {
	entries, err := encodeEntries(map[string]any{KeyFocusDay: c.Day, KeyFocusCount: c.Count})
	if err != nil {
		return err
	}
	if err := r.timer.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("write focus counter: %w", err)
	}
	return nil
}

// FocusSessionsToday reads the counter without writing; a counter stamped
// with another day reads as zero.
func (r *Repository) FocusSessionsToday(ctx context.Context) (int, error) {
	c, err := r.focusCounter(ctx)
	if err != nil {
		return 0, err
	}
	return c.CountOn(r.Today()), nil
}

func (r *Repository) SetFocusSessionsToday(ctx context.Context, n int) error {
	if n < 0 {
		n = 0
	}
	return r.saveFocusCounter(ctx, model.FocusSessionCounter{Day: r.Today(), Count: n})
}

// BumpFocusSessionsToday increments today's count, restarting from zero on a
// new day, and returns the new value.
func (r *Repository) BumpFocusSessionsToday(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, err := r.focusCounter(ctx)
	if err != nil {
		return 0, err
	}
	next := c.Bump(r.Today())
	if err := r.saveFocusCounter(ctx, next); err != nil {
		return 0, err
	}
	return next.Count, nil
}

