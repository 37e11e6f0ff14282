package vocab_test

import (
	"testing"

	"quiz_api_backend/internal/vocab"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategory(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"tecnologia", "Tecnología"},
		{"TECNOLOGÍA", "Tecnología"},
		{" Tecnología ", "Tecnología"},
		{"geografia", "Geografía"},
		{"HISTORIA", "Historia"},
		{"deporte", "Deporte"},
	}

	for _, tc := range cases {
		got, ok := vocab.CanonicalCategory(tc.input)
		assert.True(t, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestCanonicalCategoryUnknown(t *testing.T) {
	_, ok := vocab.CanonicalCategory("xyz")
	assert.False(t, ok)

	// 不允许部分匹配
	_, ok = vocab.CanonicalCategory("tecno")
	assert.False(t, ok)
}

func TestCanonicalDifficulty(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"facil", "fácil"},
		{"FÁCIL", "fácil"},
		{"medio", "medio"},
		{"dificil", "difícil"},
		{" DIFÍCIL ", "difícil"},
	}

	for _, tc := range cases {
		got, ok := vocab.CanonicalDifficulty(tc.input)
		assert.True(t, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestCanonicalDifficultyUnknown(t *testing.T) {
	_, ok := vocab.CanonicalDifficulty("imposible")
	assert.False(t, ok)
}
