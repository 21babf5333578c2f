package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	style, err := LoadStyle(filepath.Join("testdata", "style", StyleFile))
	require.NoError(t, err)
	assert.Len(t, style, 3)
	assert.NotContains(t, style, "note")

	sum := SummarizeStyle(style)
	require.NotNil(t, sum.EmojiPresence)
	require.NotNil(t, sum.SlangPresence)
	assert.Equal(t, 0.375, *sum.EmojiPresence)
	assert.Equal(t, 0.5, *sum.SlangPresence)
	assert.Equal(t, []string{"forward_test", "hinglish_forward_test", "reverse_test"}, sum.Labels)
}

func TestLoadStyle_Missing(t *testing.T) {
	t.Parallel()

	style, err := LoadStyle(filepath.Join(t.TempDir(), StyleFile))
	require.NoError(t, err)
	assert.Nil(t, style)

	sum := SummarizeStyle(style)
	assert.Nil(t, sum.EmojiPresence)
	assert.Nil(t, sum.SlangPresence)
	assert.Empty(t, sum.Labels)
}

func TestLoadStyle_Malformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not json":  "{emoji",
		"array":     `[{"emoji_presence": 1}]`,
		"bare text": `"style"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), StyleFile)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			style, err := LoadStyle(path)
			assert.Error(t, err)
			assert.Nil(t, style)

			sum := SummarizeStyle(style)
			assert.Nil(t, sum.EmojiPresence)
			assert.Nil(t, sum.SlangPresence)
		})
	}
}

func TestSummarizeStyle_NonNumericOnly(t *testing.T) {
	t.Parallel()

	sum := SummarizeStyle(map[string]Payload{
		"forward_test": {EmojiPresenceField: "high", SlangPresenceField: nil},
		"reverse_test": {EmojiPresenceField: false},
	})
	assert.Nil(t, sum.EmojiPresence)
	assert.Nil(t, sum.SlangPresence)
	assert.Len(t, sum.Labels, 2)
}
