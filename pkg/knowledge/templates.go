package knowledge

import "fmt"

// Supported UI languages. Anything else falls back to English.
var supported = map[string]bool{"en": true, "hi": true, "te": true, "ta": true}

func NormalizeLanguage(lang string) string {
	if supported[lang] {
		return lang
	}
	return "en"
}

type RiskBundle struct {
	HighHumidity string
	Normal       string
	Drainage     string
	Organic      string
}

var riskTemplates = map[string]RiskBundle{
	"en": {
		HighHumidity: "Possible pests due to high humidity",
		Normal:       "Normal risks",
		Drainage:     "Ensure proper drainage",
		Organic:      "Use organic fertilizers",
	},
	"hi": {
		HighHumidity: "उच्च आर्द्रता के कारण कीटों का खतरा",
		Normal:       "सामान्य जोखिम",
		Drainage:     "उचित जल निकासी सुनिश्चित करें",
		Organic:      "जैविक उर्वरकों का प्रयोग करें",
	},
	"te": {
		HighHumidity: "ఎక్కువ తేమ కారణంగా చీడపీడల రావచ్చు",
		Normal:       "సాధారణ ప్రమాదాలు",
		Drainage:     "సరైన నీటి పారుదల ఉండేలా చూసుకోండి",
		Organic:      "సేంద్రీయ ఎరువులు వాడండి",
	},
	"ta": {
		HighHumidity: "அதிக ஈரப்பதம் காரணமாக பூச்சிகள் வரலாம்",
		Normal:       "சாதாரண இடர்கள்",
		Drainage:     "சரியான வடிகால் வசதி செய்யுங்கள்",
		Organic:      "இயற்கை உரங்களைப் பயன்படுத்துங்கள்",
	},
}

func RiskTexts(lang string) RiskBundle {
	return riskTemplates[NormalizeLanguage(lang)]
}

type explanationTemplate struct {
	text      string // fmt: soil, crop, temperature
	fertLabel string
	precLabel string
}

var explanationTemplates = map[string]explanationTemplate{
	"en": {
		text:      "Your soil is %s, suitable for %s. Weather (%.1f°C) is favorable.",
		fertLabel: "Fertilizer:", precLabel: "Precaution:",
	},
	"hi": {
		text:      "आपकी मिट्टी %s है, जो %s के लिए उपयुक्त है। मौसम (%.1f°C) अनुकूल है।",
		fertLabel: "उर्वरक:", precLabel: "सावधानी:",
	},
	"te": {
		text:      "మీ మట్టి %s, ఇది %s కు అనుకూలం. వాతావరణం (%.1f°C) బాగుంది.",
		fertLabel: "ఎరువులు:", precLabel: "జాగ్రత్త:",
	},
	"ta": {
		text:      "உங்கள் மண் %s, இது %s பயிரிட ஏற்றது. வானிலை (%.1f°C) சாதகமாக உள்ளது.",
		fertLabel: "உரம்:", precLabel: "முன்னெச்சரிக்கை:",
	},
}

// FallbackExplanation renders the deterministic template used when the
// generative backend is unavailable. Always non-empty.
func FallbackExplanation(crop, soilType string, temperature float64, lang string) string {
	lang = NormalizeLanguage(lang)
	t := explanationTemplates[lang]
	base := fmt.Sprintf(t.text, soilType, crop, temperature)
	d := CropDetails(crop, lang)
	return fmt.Sprintf("%s\n\n%s %s\n%s %s", base, t.fertLabel, d.Fertilizer, t.precLabel, d.Precautions)
}
