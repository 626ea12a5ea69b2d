package utils_test

import (
	"encoding/json"
	"testing"

	"taskboard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Name        utils.Optional[string]  `json:"name"`
		Description utils.Optional[*string] `json:"description"`
	}

	t.Run("absent fields stay unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Name.Set)
		assert.False(t, p.Description.Set)
	})

	t.Run("present fields are set with their values", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Sprint 1","description":"planning"}`), &p))
		assert.True(t, p.Name.Set)
		assert.Equal(t, "Sprint 1", p.Name.Value)
		assert.True(t, p.Description.Set)
		require.NotNil(t, p.Description.Value)
		assert.Equal(t, "planning", *p.Description.Value)
	})

	t.Run("explicit null is set with a nil value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))
		assert.False(t, p.Name.Set)
		assert.True(t, p.Description.Set)
		assert.Nil(t, p.Description.Value)
	})

	t.Run("zero value is distinct from absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &p))
		assert.True(t, p.Name.Set)
		assert.Equal(t, "", p.Name.Value)
	})
}

func TestNewOptional(t *testing.T) {
	o := utils.NewOptional("value")
	assert.True(t, o.Set)
	assert.Equal(t, "value", o.Value)

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `"value"`, string(data))
}
