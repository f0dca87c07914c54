package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingColumnsError(t *testing.T) {
	err := NewMissingColumnsError([]string{"Pressure", "Temperature"})

	assert.True(t, IsValidationError(err))
	assert.False(t, IsParseError(err))
	assert.Equal(t, "missing required columns: Pressure, Temperature", err.Error())

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"Pressure", "Temperature"}, missing.Columns)
}

func TestNumericFieldError(t *testing.T) {
	err := NewNumericFieldError("Flowrate", 7)

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "invalid numeric in Flowrate at row 7", err.Error())
}

func TestParseError(t *testing.T) {
	err := NewParseError("bad header", nil)
	assert.True(t, IsParseError(err))
	assert.False(t, IsValidationError(err))

	wrapped := NewParseError("decode failed", errors.New("unexpected EOF"))
	assert.True(t, IsParseError(wrapped))
	assert.Contains(t, wrapped.Error(), "unexpected EOF")
}

func TestErrorWrappingSurvivesContext(t *testing.T) {
	err := fmt.Errorf("analyzing plant.csv: %w", NewMissingColumnsError([]string{"Type"}))
	assert.True(t, IsValidationError(err))
}
