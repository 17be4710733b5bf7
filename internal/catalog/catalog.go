// Package catalog holds the static content shown alongside the tracker:
// mood chips, tag chips, quest suggestions and the daily quote list.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

var ErrEmptyCatalog = errors.New("catalog: no quotes or suggestions defined")

type Mood struct {
	Emoji string `yaml:"emoji"`
	Label string `yaml:"label"`
}

// Chip renders the mood the way the picker shows it, e.g. "🙂 Calm".
func (m Mood) Chip() string {
	return m.Emoji + " " + m.Label
}

type Catalog struct {
	Moods            []Mood            `yaml:"moods"`
	Tags             []string          `yaml:"tags"`
	QuestSuggestions []string          `yaml:"quest_suggestions"`
	MoodQuests       map[string]string `yaml:"mood_quests"`
	Quotes           []string          `yaml:"quotes"`
}

func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Quotes) == 0 || len(c.QuestSuggestions) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	if c.MoodQuests == nil {
		c.MoodQuests = map[string]string{}
	}
	return c, nil
}

// Default returns the embedded catalog. It panics only if the embedded file
// is broken, which the package tests rule out.
func Default() Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog override from path, or the embedded one when path is
// empty.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// QuestForMood returns the suggested quest title for a mood label.
func (c Catalog) QuestForMood(mood string) (string, bool) {
	title, ok := c.MoodQuests[mood]
	return title, ok
}

// QuoteFor picks the quote for the day of year of t.
func (c Catalog) QuoteFor(t time.Time) string {
	if len(c.Quotes) == 0 {
		return ""
	}
	return c.Quotes[t.YearDay()%len(c.Quotes)]
}
