package repository

import "github.com/sandeepkv93/levelup/internal/codec"

// Main namespace keys.
const (
	KeyQuests         = "quests"
	KeyMoods          = codec.MoodsKey
	KeyLegacyMoods    = codec.LegacyMoodsKey
	KeyLevel          = "user_level"
	KeyXP             = "user_xp"
	KeyReminderOn     = "reminder_on"
	KeyReminderMin    = "reminder_min"
	KeyStreak         = "streak_count"
	KeyLastActiveDate = "last_active_date"
	KeyBadges         = "badges"
)

// Timer namespace keys.
const (
	KeyFocusDay   = "focus_sessions_day"
	KeyFocusCount = "focus_sessions_today"
)

const (
	DefaultLevel = 1
	DefaultXP    = 0
)
