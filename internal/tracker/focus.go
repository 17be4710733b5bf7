package tracker

import "context"

// CompleteFocusSession records a finished focus timer and returns today's
// count. Focus sessions grant no XP.
func (s *Service) CompleteFocusSession(ctx context.Context) (int, error) {
	n, err := s.repo.BumpFocusSessionsToday(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Debug().Int("sessions_today", n).Msg("focus session completed")
	return n, nil
}

func (s *Service) FocusSessionsToday(ctx context.Context) (int, error) {
	return s.repo.FocusSessionsToday(ctx)
}
