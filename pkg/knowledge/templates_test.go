package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "hi", NormalizeLanguage("hi"))
	assert.Equal(t, "ta", NormalizeLanguage("ta"))
	assert.Equal(t, "en", NormalizeLanguage("fr"))
	assert.Equal(t, "en", NormalizeLanguage(""))
}

func TestRiskTextsFallback(t *testing.T) {
	assert.Equal(t, "Possible pests due to high humidity", RiskTexts("de").HighHumidity)
	assert.Equal(t, "सामान्य जोखिम", RiskTexts("hi").Normal)
}

func TestFallbackExplanationKnownCrop(t *testing.T) {
	out := FallbackExplanation("Rice", "Loamy", 30.5, "en")
	assert.Contains(t, out, "Your soil is Loamy, suitable for Rice.")
	assert.Contains(t, out, "30.5°C")
	assert.Contains(t, out, "Fertilizer:")
	assert.Contains(t, out, "Precaution:")
	// crop lookup is case insensitive
	assert.Contains(t, out, CropDetails("rice", "en").Fertilizer)
}

func TestFallbackExplanationUnknownCropUsesGenericAdvice(t *testing.T) {
	out := FallbackExplanation("Quinoa", "Black", 25, "en")
	assert.Contains(t, out, CropDetails("default", "en").Fertilizer)
}

func TestFallbackExplanationUnsupportedLanguage(t *testing.T) {
	en := FallbackExplanation("Rice", "Loamy", 30, "en")
	fr := FallbackExplanation("Rice", "Loamy", 30, "fr")
	assert.Equal(t, en, fr)
}

func TestCropDetailsLanguageFallback(t *testing.T) {
	hi := CropDetails("rice", "hi")
	assert.NotEmpty(t, hi.Fertilizer)
	assert.NotEqual(t, CropDetails("rice", "en").Fertilizer, hi.Fertilizer)

	// unsupported language falls back to English text
	assert.Equal(t, CropDetails("rice", "en"), CropDetails("rice", "xx"))
}

func TestFallbackExplanationShape(t *testing.T) {
	out := FallbackExplanation("Maize", "Red", 28, "te")
	parts := strings.SplitN(out, "\n\n", 2)
	assert.Len(t, parts, 2)
}
