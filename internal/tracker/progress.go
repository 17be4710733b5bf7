package tracker

import (
	"context"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/progression"
)

type StreakUpdate struct {
	Streak    int
	Evaluated bool
	NewBadges []string
}

// GrantXP applies delta to the stored level and xp.
func (s *Service) GrantXP(ctx context.Context, delta int) (model.ProgressionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grantXPLocked(ctx, delta)
}

func (s *Service) grantXPLocked(ctx context.Context, delta int) (model.ProgressionState, error) {
	state, err := s.repo.Progression(ctx)
	if err != nil {
		return model.ProgressionState{}, err
	}
	before := state.Level
	state.Level, state.XP = progression.GrantXP(state.Level, state.XP, delta)
	if err := s.repo.SaveLevelAndXP(ctx, state.Level, state.XP); err != nil {
		return model.ProgressionState{}, err
	}
	if state.Level > before {
		s.log.Info().Int("level", state.Level).Msg("level up")
	}
	return state, nil
}

// UpdateStreakAndBadges runs the daily streak check against the current
// quest list. Storage failures are logged and skipped step by step; this is
// the only place where they do not fail the operation.
func (s *Service) UpdateStreakAndBadges(ctx context.Context) StreakUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	quests, err := s.repo.Quests(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("streak check: read quests")
		return StreakUpdate{}
	}
	last, err := s.repo.LastActiveDate(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("streak check: read last active date")
		last = ""
	}
	streak, err := s.repo.Streak(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("streak check: read streak")
		streak = 0
	}
	badges, err := s.repo.Badges(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("streak check: read badges")
		badges = nil
	}

	today := model.DateString(s.clock.Now())
	prev := model.ProgressionState{Streak: streak, LastActiveDate: last, Badges: badges}
	next, changed := progression.EvaluateStreak(prev, progression.IsSuccessfulDay(quests), today)
	if !changed {
		return StreakUpdate{Streak: next.Streak}
	}

	if err := s.repo.SaveStreak(ctx, next.Streak); err != nil {
		s.log.Warn().Err(err).Int("streak", next.Streak).Msg("streak check: save streak")
	}
	if err := s.repo.SaveLastActiveDate(ctx, today); err != nil {
		s.log.Warn().Err(err).Str("day", today).Msg("streak check: save last active date")
	}

	_, candidates := progression.UnlockBadges(badges, next.Streak)
	added := make([]string, 0, len(candidates))
	for _, badge := range candidates {
		ok, err := s.repo.UnlockBadge(ctx, badge)
		if err != nil {
			s.log.Warn().Err(err).Str("badge", badge).Msg("streak check: unlock badge")
			continue
		}
		if ok {
			added = append(added, badge)
		}
	}
	s.log.Debug().Int("streak", next.Streak).Str("day", today).Msg("streak evaluated")
	return StreakUpdate{Streak: next.Streak, Evaluated: true, NewBadges: added}
}
