package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptional_ThreeStates covers the distinction partial updates depend on:
// an omitted field is untouched, an explicit null clears, a value overwrites.
func TestOptional_ThreeStates(t *testing.T) {
	type patch struct {
		Title    Optional[string] `json:"title"`
		Priority Optional[string] `json:"priority"`
		Done     Optional[bool]   `json:"done"`
	}

	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"renamed","priority":null}`), &p))

	assert.True(t, p.Title.Set)
	assert.True(t, p.Title.Valid)
	assert.Equal(t, "renamed", p.Title.Value)

	assert.True(t, p.Priority.Set)
	assert.False(t, p.Priority.Valid)
	assert.Nil(t, p.Priority.Ptr())

	assert.False(t, p.Done.Set)
}

func TestOptional_TypeMismatch(t *testing.T) {
	var o Optional[int]
	err := json.Unmarshal([]byte(`"not a number"`), &o)
	assert.Error(t, err)
}
