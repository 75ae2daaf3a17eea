package advisory

// displayLanguages maps supported two-letter codes to the language name used
// when instructing the model which language to reply in.
var displayLanguages = map[string]string{
	"ml": "Malayalam",
	"hi": "Hindi",
	"ta": "Tamil",
	"kn": "Kannada",
	"en": "English",
}

// DefaultLanguageCode is used when a request omits the language field.
const DefaultLanguageCode = "en"

// DisplayLanguage resolves a language code to its display name. Unknown
// codes fall back to English.
func DisplayLanguage(code string) string {
	if name, ok := displayLanguages[code]; ok {
		return name
	}
	return "English"
}
