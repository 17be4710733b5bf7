package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/scheduler"
)

const (
	HydrationReminderID = "hydration"
	HydrationTitle      = "Hydration Quest!"
	HydrationBody       = "Time to refill your HP! 💧 Drink some water."
)

// ConfigureReminder stores the hydration reminder settings and arms or
// cancels the repeating reminder. minutes == 0 keeps the stored interval;
// any other value must be positive.
func (s *Service) ConfigureReminder(ctx context.Context, enabled bool, minutes int) (model.ReminderConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.repo.Reminder(ctx)
	if err != nil {
		return model.ReminderConfig{}, err
	}
	cfg.Enabled = enabled
	if minutes != 0 {
		cfg.IntervalMinutes = minutes
	}
	if err := cfg.Validate(); err != nil {
		return model.ReminderConfig{}, err
	}
	if err := s.repo.SaveReminder(ctx, cfg); err != nil {
		return model.ReminderConfig{}, err
	}
	if err := s.armReminder(cfg); err != nil {
		return cfg, err
	}
	s.log.Info().Bool("enabled", cfg.Enabled).Int("minutes", cfg.IntervalMinutes).Msg("hydration reminder configured")
	return cfg, nil
}

// RestoreReminder re-arms the reminder from stored settings, e.g. at start-up.
func (s *Service) RestoreReminder(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := s.repo.Reminder(ctx)
	if err != nil {
		return err
	}
	if cfg.Enabled {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return s.armReminder(cfg)
}

func (s *Service) armReminder(cfg model.ReminderConfig) error {
	if s.sched == nil {
		return nil
	}
	s.sched.Cancel(HydrationReminderID)
	if !cfg.Enabled {
		return nil
	}
	every := time.Duration(cfg.IntervalMinutes) * time.Minute
	err := s.sched.Schedule(scheduler.ReminderEvent{
		ID:        HydrationReminderID,
		Kind:      scheduler.KindHydration,
		Title:     HydrationTitle,
		Body:      HydrationBody,
		TriggerAt: s.clock.Now().Add(every).UTC(),
		Every:     every,
	})
	if err != nil {
		return fmt.Errorf("schedule hydration reminder: %w", err)
	}
	return nil
}
