package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-organiser/database"
)

func TestClassify_Screenshot(t *testing.T) {
	c := NewHeuristicClassifier()

	result, err := c.Classify("/photos/Screenshot_2024-03-01.png")
	require.NoError(t, err)

	assert.Equal(t, database.ContentTypeScreenshot, result.Type)
	assert.True(t, result.IsScreenshot)
	assert.False(t, result.HasText)
	assert.InDelta(t, 0.8, result.Confidence, 0.001)
	assert.Empty(t, result.Text)
}

func TestClassify_ScreenshotRuleWinsOverMeme(t *testing.T) {
	c := NewHeuristicClassifier()

	// first matching rule wins, so "screenshot" beats "meme"
	result, err := c.Classify("/photos/screenshot_of_meme.jpg")
	require.NoError(t, err)
	assert.Equal(t, database.ContentTypeScreenshot, result.Type)
}

func TestClassify_ScreenshotNeedsImageExtension(t *testing.T) {
	c := NewHeuristicClassifier()

	// .heic is not in the screenshot extension set, so the name alone
	// does not make it a screenshot
	result, err := c.Classify("/photos/screenshot.heic")
	require.NoError(t, err)
	assert.Equal(t, database.ContentTypePhoto, result.Type)
	assert.False(t, result.IsScreenshot)
}

func TestClassify_MemeKeywords(t *testing.T) {
	c := NewHeuristicClassifier()

	for _, name := range []string{"best_meme.jpg", "funny_cat.png", "lol.webp"} {
		result, err := c.Classify("/photos/" + name)
		require.NoError(t, err)

		assert.Equal(t, database.ContentTypeMeme, result.Type, "name %s", name)
		assert.True(t, result.HasText)
		assert.InDelta(t, 0.7, result.Confidence, 0.001)
		assert.Equal(t, "meme text placeholder", result.Text)
	}
}

func TestClassify_DefaultPhoto(t *testing.T) {
	c := NewHeuristicClassifier()

	result, err := c.Classify("/photos/IMG_2041.jpg")
	require.NoError(t, err)

	assert.Equal(t, database.ContentTypePhoto, result.Type)
	assert.False(t, result.IsScreenshot)
	assert.False(t, result.HasText)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewHeuristicClassifier()

	first, err := c.Classify("/photos/funny_meme.jpg")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := c.Classify("/photos/funny_meme.jpg")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
