package model

import (
	"errors"
	"fmt"
)

var ErrInvalidInterval = errors.New("model: reminder interval must be positive")

const DefaultReminderMinutes = 60

type ReminderConfig struct {
	Enabled         bool
	IntervalMinutes int
}

func DefaultReminderConfig() ReminderConfig {
	return ReminderConfig{Enabled: false, IntervalMinutes: DefaultReminderMinutes}
}

func (r ReminderConfig) Validate() error {
	if r.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, r.IntervalMinutes)
	}
	return nil
}
