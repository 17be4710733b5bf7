package update

import (
	"fmt"

	"github.com/sandeepkv93/levelup/internal/scheduler"
)

func (m *Model) applyReminderBehavior(ev scheduler.ReminderEvent) {
	switch ev.Kind {
	case scheduler.KindHydration:
		m.Status = StatusBar{Text: fmt.Sprintf("%s %s", ev.Title, ev.Body)}
		m.notify(ev.Title, ev.Body, "info")
	case scheduler.KindFocus:
		m.Status = StatusBar{Text: ev.Title}
		m.notify(ev.Title, ev.Body, "info")
	default:
		m.Status = StatusBar{Text: fmt.Sprintf("reminder fired: %s", ev.ID)}
	}
	m.log.Debug().Str("id", ev.ID).Str("kind", ev.Kind).Msg("reminder delivered")
}
