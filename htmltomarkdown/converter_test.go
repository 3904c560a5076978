package htmltomarkdown_test

import (
	"testing"

	"github.com/mr-devs/querymode/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		converter := htmltomarkdown.NewConverter()

		result, err := converter.Convert(`<a href="https://news.example/story">A headline</a>`)

		require.NoError(t, err)
		assert.Contains(t, result, "[A headline](https://news.example/story)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		converter := htmltomarkdown.NewConverter()

		result, err := converter.Convert(`<ol><li>First story</li><li>Second story</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, result, "First story")
		assert.Contains(t, result, "Second story")
	})

	t.Run("empty input is not an error", func(t *testing.T) {
		t.Parallel()

		converter := htmltomarkdown.NewConverter()

		result, err := converter.Convert("   ")

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
