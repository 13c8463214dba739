package problemgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"simple", DifficultySimple},
		{"NORMAL", DifficultyNormal},
		{"  Simple ", DifficultySimple},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDifficulty("hard")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDifficulty))
}

func TestDifficulty_Next(t *testing.T) {
	assert.Equal(t, DifficultyNormal, DifficultySimple.Next())
	assert.Equal(t, DifficultySimple, DifficultyNormal.Next())
	assert.Equal(t, DifficultyNormal, Difficulty("bogus").Next())
}

func TestDifficulty_Profile(t *testing.T) {
	simple := DifficultySimple.Profile()
	assert.Equal(t, 5, simple.CorrectPoints)
	assert.Equal(t, 1, simple.WrongPenalty)
	assert.Equal(t, 10, simple.DistractorSpread)
	assert.True(t, simple.Bounded)
	assert.Equal(t, SimpleMax, simple.MaxValue)

	normal := DifficultyNormal.Profile()
	assert.Equal(t, 10, normal.CorrectPoints)
	assert.Equal(t, 2, normal.WrongPenalty)
	assert.Equal(t, 15, normal.DistractorSpread)
	assert.False(t, normal.Bounded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		p     Problem
		check string
	}{
		{"ok", Problem{Operand1: 6, Operand2: 3, Operator: OpDiv, Answer: 2}, ""},
		{"inexact division", Problem{Operand1: 7, Operand2: 3, Operator: OpDiv, Answer: 2}, "division"},
		{"divide by zero", Problem{Operand1: 7, Operand2: 0, Operator: OpDiv}, "division"},
		{"unknown operator", Problem{Operand1: 1, Operand2: 1, Operator: "%"}, "operator"},
		{"wrong answer", Problem{Operand1: 2, Operand2: 2, Operator: OpAdd, Answer: 5}, "arithmetic"},
		{"above bound", Problem{Operand1: 60, Operand2: 50, Operator: OpAdd, Answer: 110}, "bound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.p, DifficultySimple)
			if tt.check == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.check, verr.Check)
		})
	}

	// Normal difficulty has no bound.
	assert.NoError(t, Validate(Problem{Operand1: 60, Operand2: 50, Operator: OpAdd, Answer: 110}, DifficultyNormal))
}
