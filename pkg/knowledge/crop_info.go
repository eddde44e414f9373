package knowledge

import "strings"

type CropDetail struct {
	Fertilizer  string
	Precautions string
}

// cropInfo: crop (lowercased) -> language -> advisory details.
var cropInfo = map[string]map[string]CropDetail{
	"rice": {
		"en": {
			Fertilizer:  "Apply Urea (Nitrogen) in 3 splits. Use DAP for Phosphorus and MOP for Potassium.",
			Precautions: "Maintain 2-5 cm standing water. Monitor for Stem Borer and Blast disease.",
		},
		"hi": {
			Fertilizer:  "यूरिया (नाइट्रोजन) को 3 भागों में डालें। फास्फोरस के लिए डीएपी और पोटेशियम के लिए एमओपी का उपयोग करें।",
			Precautions: "2-5 सेमी खड़ा पानी बनाए रखें। तना छेदक और झुलसा रोग की निगरानी करें।",
		},
		"te": {
			Fertilizer:  "యూరియా (నత్రజని) 3 విడతలుగా వేయాలి. భాస్వరం కోసం డి.ఎ.పి మరియు పొటాషియం కోసం ఎం.ఓ.పి వాడాలి.",
			Precautions: "2-5 సెం.మీ నీరు నిల్వ ఉండేలా చూడాలి. కాండం తొలుచు పురుగు మరియు అగ్గి తెగులు కోసం గమనించాలి.",
		},
		"ta": {
			Fertilizer:  "யூரியாவை (நைட்ரஜன்) 3 தவணைகளாக இடவும். பாஸ்பரசிற்கு டிஏபி மற்றும் பொட்டாசியத்திற்கு எம்ஓபி பயன்படுத்தவும்.",
			Precautions: "2-5 செ.மீ நீர் தேங்கி இருக்குமாறு பார்த்துக்கொள்ளவும். தண்டு துளைப்பான் மற்றும் குலை நோயை கண்காணிக்கவும்.",
		},
	},
	"maize": {
		"en": {
			Fertilizer:  "Requires high Nitrogen. Apply Zinc Sulphate if leaves turn white.",
			Precautions: "Ensure good drainage. Avoid water stagnation.",
		},
		"hi": {
			Fertilizer:  "उच्च नाइट्रोजन की आवश्यकता होती है। यदि पत्तियां सफेद हो जाएं तो जिंक सल्फेट का प्रयोग करें।",
			Precautions: "उचित जल निकासी सुनिश्चित करें। जल जमाव से बचें।",
		},
		"te": {
			Fertilizer:  "ఎక్కువ నత్రజని అవసరం. ఆకులు తెల్లగా మారితే జింక్ సల్ఫేట్ వాడాలి.",
			Precautions: "మంచి నీటి పారుదల ఉండేలా చూడాలి. నీరు నిల్వ ఉండకుండా చూడాలి.",
		},
		"ta": {
			Fertilizer:  "அதிக நைட்ரஜன் தேவை. இலைகள் வெளுத்தால் ஜிங்க் சல்பேட் இடவும்.",
			Precautions: "நல்ல வடிகால் வசதியை உறுதி செய்யவும். நீர் தேங்குவதை தவிர்க்கவும்.",
		},
	},
	"cotton": {
		"en": {
			Fertilizer:  "Apply NPK 20:20:20. Use Magnesium Sulphate for red leaf trouble.",
			Precautions: "Monitor for Bollworms. Avoid excessive irrigation during flowering.",
		},
		"hi": {
			Fertilizer:  "NPK 20:20:20 का प्रयोग करें। लाल पत्ती की समस्या के लिए मैग्नीशियम सल्फेट का उपयोग करें।",
			Precautions: "बॉलवर्म की निगरानी करें। फूल आते समय अत्यधिक सिंचाई से बचें।",
		},
		"te": {
			Fertilizer:  "NPK 20:20:20 వాడాలి. ఎర్ర ఆకు సమస్యకు మెగ్నీషియం సల్ఫేట్ వాడాలి.",
			Precautions: "కాయ తొలుచు పురుగును గమనించాలి. పూత దశలో అధిక నీటి పారుదల నివారించాలి.",
		},
		"ta": {
			Fertilizer:  "NPK 20:20:20 ஐ இடவும். சிவப்பு இலை பிரச்சனைக்கு மெக்னீசியம் சல்பேட் பயன்படுத்தவும்.",
			Precautions: "காய்ப்புழுவை கண்காணிக்கவும். பூக்கும் போது அதிக நீர் பாய்ச்சுவதை தவிர்க்கவும்.",
		},
	},
	"mango": {
		"en": {
			Fertilizer:  "Apply 1kg Urea, 1kg Super Phosphate, 1kg Potash per tree annually.",
			Precautions: "Protect flowers from Hoppers using Neem Oil. Prune dead branches.",
		},
		"hi": {
			Fertilizer:  "प्रति पेड़ प्रति वर्ष 1 किलो यूरिया, 1 किलो सुपर फॉस्फेट, 1 किलो पोटाश डालें।",
			Precautions: "नीम के तेल का उपयोग करके फूलों को हॉपर से बचाएं। सूखी शाखाओं की छंटाई करें।",
		},
		"te": {
			Fertilizer:  "చెట్టుకు ఏడాదికి 1 కిలో యూరియా, 1 కిలో సూపర్ ఫాస్ఫేట్, 1 కిలో పొటాష్ వేయాలి.",
			Precautions: "వేప నూనె వాడి పూతను తేనె రసం పురుగుల నుండి కాపాడాలి. ఎండిన కొమ్మలను కత్తిరించాలి.",
		},
		"ta": {
			Fertilizer:  "மரத்திற்கு ஆண்டுக்கு 1 கிலோ யூரியா, 1 கிலோ சூப்பர் பாஸ்பேட், 1 கிலோ பொட்டாஷ் இடவும்.",
			Precautions: "வேப்பெண்ணெய் பயன்படுத்தி பூக்களை தத்துப்பூச்சிகளிடமிருந்து பாதுகாக்கவும். காய்ந்த கிளைகளை கத்தரிக்கவும்.",
		},
	},
	"default": {
		"en": {
			Fertilizer:  "Use organic manure (FYM) and balanced NPK fertilizers.",
			Precautions: "Ensure proper irrigation and weed control.",
		},
		"hi": {
			Fertilizer:  "जैविक खाद (FYM) और संतुलित NPK उर्वरकों का प्रयोग करें।",
			Precautions: "उचित सिंचाई और खरपतवार नियंत्रण सुनिश्चित करें।",
		},
		"te": {
			Fertilizer:  "సేంద్రీయ ఎరువులు (FYM) మరియు సమతుల్య NPK ఎరువులు వాడాలి.",
			Precautions: "సరైన నీటి పారుదల మరియు కలుపు నివారణ చర్యలు చేపట్టాలి.",
		},
		"ta": {
			Fertilizer:  "இயற்கை உரம் (FYM) மற்றும் சமச்சீர் NPK உரங்களைப் பயன்படுத்தவும்.",
			Precautions: "சரியான நீர்ப்பாசனம் மற்றும் களை கட்டுப்பாட்டை உறுதி செய்யவும்.",
		},
	},
}

// CropDetails looks up advisory text for a crop, falling back to the
// generic entry for unknown crops and to English for unknown languages.
func CropDetails(crop, lang string) CropDetail {
	lang = NormalizeLanguage(lang)
	byLang, ok := cropInfo[strings.ToLower(crop)]
	if !ok {
		byLang = cropInfo["default"]
	}
	if d, ok := byLang[lang]; ok {
		return d
	}
	return byLang["en"]
}
