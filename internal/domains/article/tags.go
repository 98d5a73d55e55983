package article

import (
	"encoding/json"
	"errors"
	"strings"
)

// TagList accepts either a JSON array of strings or a single comma-separated
// string. The two forms are kept apart until Normalize so that validation can
// report on the raw input the client sent.
type TagList struct {
	values     []string
	fromString bool
}

// NewTagList builds an array-form TagList, mainly for tests.
func NewTagList(values ...string) *TagList {
	return &TagList{values: values}
}

func (t *TagList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		t.values = arr
		t.fromString = false
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.values = []string{s}
		t.fromString = true
		return nil
	}

	return errors.New("tags must be a string or an array of strings")
}

func (t TagList) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.values)
}

// Normalize produces the stored form: the string form is split on commas,
// every entry is trimmed, and entries empty after trimming are dropped.
// Duplicates are kept; deduplication is deliberately not done here.
func (t *TagList) Normalize() []string {
	if t == nil {
		return []string{}
	}

	raw := t.values
	if t.fromString && len(t.values) == 1 {
		raw = strings.Split(t.values[0], ",")
	}

	out := make([]string, 0, len(raw))
	for _, tag := range raw {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// validateTagList is the ozzo rule for TagList fields: each array entry, or
// the whole comma string, must be non-empty after trimming.
func validateTagList(value interface{}) error {
	t, ok := value.(*TagList)
	if !ok || t == nil {
		return nil
	}

	if t.fromString {
		if strings.TrimSpace(t.values[0]) == "" {
			return errors.New("tags cannot be empty")
		}
		return nil
	}

	for _, tag := range t.values {
		if strings.TrimSpace(tag) == "" {
			return errors.New("tag cannot be empty")
		}
	}

	return nil
}
