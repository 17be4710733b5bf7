package storage

// The main namespace holds tracker state; the timer namespace holds only the
// focus-session counter. Keys never collide across namespaces.
const (
	NamespaceMain  = "leveluplife"
	NamespaceTimer = "leveluplife_prefs"
)

type Entry struct {
	Key   string
	Value string
}
