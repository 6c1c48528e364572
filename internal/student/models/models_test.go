package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCollapsesStatusAlias(t *testing.T) {
	t.Run("status wins over alias", func(t *testing.T) {
		s := Normalize("s1", map[string]any{"status": "Applying", "applicationStatus": "Accepted"})
		assert.Equal(t, "Applying", s.Status)
	})

	t.Run("alias used when status absent", func(t *testing.T) {
		s := Normalize("s1", map[string]any{"applicationStatus": "Accepted"})
		assert.Equal(t, "Accepted", s.Status)
	})

	t.Run("both absent defaults to Exploring", func(t *testing.T) {
		s := Normalize("s1", map[string]any{"name": "Ada"})
		assert.Equal(t, StatusExploring, s.Status)
	})
}

func TestNormalizeCollapsesIntentAlias(t *testing.T) {
	s := Normalize("s1", map[string]any{"intentLevel": "High"})
	assert.Equal(t, "High", s.Intent)

	s = Normalize("s1", map[string]any{"intent": "low", "intentLevel": "High"})
	assert.Equal(t, "low", s.Intent)
}

func TestNormalizeTimestamps(t *testing.T) {
	ref := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s := Normalize("s1", map[string]any{"lastActive": ref})
	require.NotNil(t, s.LastActive)
	assert.Equal(t, ref, *s.LastActive)

	s = Normalize("s1", map[string]any{"lastActive": "garbage"})
	assert.Nil(t, s.LastActive)
}

func TestNormalizeScoresKeepSentinel(t *testing.T) {
	s := Normalize("s1", map[string]any{"gpa": "3.91", "actScore": "-", "satMath": int64(0)})
	assert.Equal(t, "3.91", s.GPA)
	assert.Equal(t, "-", s.ACTScore)
	assert.Equal(t, "0", s.SATMath)
}

func TestNormalizeCollegeInterestBackRef(t *testing.T) {
	ci := NormalizeCollegeInterest("ci1", map[string]any{
		"name":      "List College",
		"state":     "NY",
		"tuition":   int64(86964),
		"collegeId": "c42",
	})
	assert.Equal(t, "ci1", ci.ID)
	assert.Equal(t, "c42", ci.CollegeID)
	assert.Equal(t, 86964, ci.Tuition)
}
