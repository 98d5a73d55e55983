package article

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListUnmarshal(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		var tags TagList
		require.NoError(t, json.Unmarshal([]byte(`["go","web"]`), &tags))
		assert.Equal(t, []string{"go", "web"}, tags.Normalize())
	})

	t.Run("comma string form", func(t *testing.T) {
		var tags TagList
		require.NoError(t, json.Unmarshal([]byte(`"go, web ,backend"`), &tags))
		assert.Equal(t, []string{"go", "web", "backend"}, tags.Normalize())
	})

	t.Run("rejects other types", func(t *testing.T) {
		var tags TagList
		err := json.Unmarshal([]byte(`42`), &tags)
		assert.EqualError(t, err, "tags must be a string or an array of strings")
	})

	t.Run("rejects mixed arrays", func(t *testing.T) {
		var tags TagList
		err := json.Unmarshal([]byte(`["go", 42]`), &tags)
		assert.Error(t, err)
	})
}

func TestTagListNormalize(t *testing.T) {
	t.Run("nil yields empty slice", func(t *testing.T) {
		var tags *TagList
		assert.Equal(t, []string{}, tags.Normalize())
	})

	t.Run("trims and drops empties", func(t *testing.T) {
		tags := NewTagList("  go ", "", "   ", "web")
		assert.Equal(t, []string{"go", "web"}, tags.Normalize())
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		tags := NewTagList("go", "go")
		assert.Equal(t, []string{"go", "go"}, tags.Normalize())
	})

	t.Run("string form entries are split and trimmed", func(t *testing.T) {
		var tags TagList
		require.NoError(t, json.Unmarshal([]byte(`" go ,, web "`), &tags))
		assert.Equal(t, []string{"go", "web"}, tags.Normalize())
	})
}

func TestTagListMarshal(t *testing.T) {
	data, err := json.Marshal(NewTagList("go", "web"))
	require.NoError(t, err)
	assert.JSONEq(t, `["go","web"]`, string(data))
}
