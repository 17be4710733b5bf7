package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/levelup/internal/model"
)

type QuestProgress struct {
	Completed int
	Total     int
	Percent   int
}

func (s *Service) Quests(ctx context.Context) ([]model.Quest, error) {
	return s.repo.Quests(ctx)
}

// AddQuest puts a new quest at the top of the list.
func (s *Service) AddQuest(ctx context.Context, title string) (model.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addQuestLocked(ctx, title)
}

func (s *Service) addQuestLocked(ctx context.Context, title string) (model.Quest, error) {
	title = strings.TrimSpace(title)
	if err := model.ValidateQuestTitle(title); err != nil {
		return model.Quest{}, err
	}
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return model.Quest{}, err
	}
	q := model.NewQuest(s.newID(), title)
	next := append([]model.Quest{q}, quests...)
	if err := s.repo.SaveQuests(ctx, next); err != nil {
		return model.Quest{}, err
	}
	s.log.Debug().Str("quest_id", q.ID).Str("title", q.Title).Msg("quest added")
	return q, nil
}

// ToggleQuest flips completion and then runs the daily streak check. It
// reports false when no quest has the id.
func (s *Service) ToggleQuest(ctx context.Context, id string) (model.Quest, bool, error) {
	s.mu.Lock()
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		s.mu.Unlock()
		return model.Quest{}, false, err
	}
	idx, ok := model.FindQuest(quests, id)
	if !ok {
		s.mu.Unlock()
		return model.Quest{}, false, nil
	}
	quests[idx].IsCompleted = !quests[idx].IsCompleted
	toggled := quests[idx]
	if err := s.repo.SaveQuests(ctx, quests); err != nil {
		s.mu.Unlock()
		return model.Quest{}, false, err
	}
	s.mu.Unlock()

	s.UpdateStreakAndBadges(ctx)
	return toggled, true, nil
}

func (s *Service) DeleteQuest(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return false, err
	}
	idx, ok := model.FindQuest(quests, id)
	if !ok {
		return false, nil
	}
	next := append(quests[:idx:idx], quests[idx+1:]...)
	return true, s.repo.SaveQuests(ctx, next)
}

func (s *Service) RenameQuest(ctx context.Context, id, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if err := model.ValidateQuestTitle(title); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return false, err
	}
	idx, ok := model.FindQuest(quests, id)
	if !ok {
		return false, nil
	}
	quests[idx].Title = title
	return true, s.repo.SaveQuests(ctx, quests)
}

// ReorderQuests stores the list exactly as given.
func (s *Service) ReorderQuests(ctx context.Context, ordered []model.Quest) error {
	for i, q := range ordered {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quest %d: %w", i, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveQuests(ctx, ordered)
}

// ResetDailyQuests clears every completion flag, keeping the list.
func (s *Service) ResetDailyQuests(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return err
	}
	for i := range quests {
		quests[i].IsCompleted = false
	}
	return s.repo.SaveQuests(ctx, quests)
}

// ResolveQuest finds the single quest whose id starts with prefix.
func (s *Service) ResolveQuest(ctx context.Context, prefix string) (model.Quest, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return model.Quest{}, ErrQuestNotFound
	}
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return model.Quest{}, err
	}
	var (
		found model.Quest
		hits  int
	)
	for _, q := range quests {
		id := strings.ToLower(q.ID)
		if id == prefix {
			return q, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = q
			hits++
		}
	}
	switch hits {
	case 0:
		return model.Quest{}, fmt.Errorf("%w: %s", ErrQuestNotFound, prefix)
	case 1:
		return found, nil
	default:
		return model.Quest{}, fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}

// QuestProgress is the home-screen widget figure.
func (s *Service) QuestProgress(ctx context.Context) (QuestProgress, error) {
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return QuestProgress{}, err
	}
	completed, total := model.CountCompleted(quests)
	p := QuestProgress{Completed: completed, Total: total}
	if total > 0 {
		p.Percent = completed * 100 / total
	}
	return p, nil
}

// SuggestQuestForMood adds the catalog quest for mood unless a quest with
// that title already exists. added is false for unknown moods and
// duplicates.
func (s *Service) SuggestQuestForMood(ctx context.Context, mood string) (model.Quest, bool, error) {
	title, ok := s.catalog.QuestForMood(mood)
	if !ok {
		return model.Quest{}, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return model.Quest{}, false, err
	}
	for _, q := range quests {
		if q.Title == title {
			return q, false, nil
		}
	}
	q, err := s.addQuestLocked(ctx, title)
	if err != nil {
		return model.Quest{}, false, err
	}
	return q, true, nil
}

func (s *Service) QuestSuggestions() []string {
	return append([]string{}, s.catalog.QuestSuggestions...)
}

// RestoreQuest puts a deleted quest back at index, keeping its id and
// completion flag. A quest whose id is already present is left alone.
func (s *Service) RestoreQuest(ctx context.Context, q model.Quest, index int) error {
	if err := q.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return err
	}
	if _, ok := model.FindQuest(quests, q.ID); ok {
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index > len(quests) {
		index = len(quests)
	}
	next := make([]model.Quest, 0, len(quests)+1)
	next = append(next, quests[:index]...)
	next = append(next, q)
	next = append(next, quests[index:]...)
	return s.repo.SaveQuests(ctx, next)
}

// SearchQuests filters by a case-insensitive title substring. An empty query
// returns every quest.
func (s *Service) SearchQuests(ctx context.Context, query string) ([]model.Quest, error) {
	quests, err := s.repo.Quests(ctx)
	if err != nil {
		return nil, err
	}
	return FilterQuests(quests, query), nil
}

func FilterQuests(quests []model.Quest, query string) []model.Quest {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return quests
	}
	out := make([]model.Quest, 0, len(quests))
	for _, quest := range quests {
		if strings.Contains(strings.ToLower(quest.Title), q) {
			out = append(out, quest)
		}
	}
	return out
}
