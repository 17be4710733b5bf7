// Package codec turns entities into the JSON text kept in the state store and
// back. Decoding is forgiving: corrupt or missing text yields the documented
// default so the app stays usable. Only snapshot import decodes strictly.
package codec

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sandeepkv93/levelup/internal/model"
)

// Encode writes v as compact JSON without HTML escaping, so emoji and
// punctuation in titles and notes are stored literally.
func Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func DecodeQuests(raw string) []model.Quest {
	out := decodeList[model.Quest](raw)
	for i := range out {
		if out[i].TargetPerDay < 1 {
			out[i].TargetPerDay = 1
		}
	}
	return out
}

func DecodeMoods(raw string) []model.MoodEntry {
	out := decodeList[model.MoodEntry](raw)
	for i := range out {
		if out[i].Tags == nil {
			out[i].Tags = []string{}
		}
	}
	return out
}

func DecodeStrings(raw string) []string {
	return decodeList[string](raw)
}

func DecodeInt(raw string, def int) int {
	var v int
	if !decode(raw, &v) {
		return def
	}
	return v
}

func DecodeBool(raw string, def bool) bool {
	var v bool
	if !decode(raw, &v) {
		return def
	}
	return v
}

// DecodeString reports ok=false for absent, null or malformed text.
func DecodeString(raw string) (string, bool) {
	var v *string
	if !decode(raw, &v) || v == nil {
		return "", false
	}
	return *v, true
}

func decodeList[T any](raw string) []T {
	var out []T
	if !decode(raw, &out) || out == nil {
		return []T{}
	}
	return out
}

func decode(raw string, dst any) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}
