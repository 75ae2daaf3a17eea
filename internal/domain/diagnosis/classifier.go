package diagnosis

import "strings"

// Result is the heuristic classification extracted from the model's reply.
type Result struct {
	PlantName       string
	DiseaseDetected bool
	DiseaseName     string
}

// Analyzer extracts a structured diagnosis from free-form model output. The
// keyword implementation below is a heuristic; the interface exists so it
// can be swapped for structured model output without touching the handler.
type Analyzer interface {
	Analyze(text string) Result
}

// diseaseKeywords flags disease presence across all five supported
// languages. Matching is a case-insensitive substring scan.
var diseaseKeywords = []string{
	"disease", "sick", "problem", "infection", "pest", "damage", "blight", "spot", "rot", "wilt",
	"रोग", "बीमारी", "समस्या", "कीड़े", "खराब", // Hindi
	"രോഗം", "അസുഖം", "പ്രശ്നം", "കീടം", // Malayalam
	"நோய்", "பிரச்சனை", "வியாधி", "பூச்சி", // Tamil
	"ರೋಗ", "ಸಮಸ್ಯೆ", "ಅನಾರೋಗ್ಯ", "ಕೀಟ", // Kannada
}

// commonPlants maps crop keywords to display labels; the first match in
// table order wins.
var commonPlants = []struct {
	keyword string
	label   string
}{
	{"tomato", "Tomato Plant"},
	{"rice", "Rice Crop"},
	{"wheat", "Wheat Crop"},
	{"potato", "Potato Plant"},
	{"cotton", "Cotton Plant"},
	{"corn", "Corn/Maize"},
	{"chili", "Chili Plant"},
	{"onion", "Onion Plant"},
	{"cabbage", "Cabbage Plant"},
}

// diseaseNames resolves a specific disease label; checks are mutually
// exclusive in this priority order.
var diseaseNames = []struct {
	keyword string
	label   string
}{
	{"blight", "Blight Disease"},
	{"fungal", "Fungal Infection"},
	{"pest", "Pest Infestation"},
}

const (
	defaultPlantName   = "Plant Analyzed"
	defaultDiseaseName = "Disease/Problem Detected"
)

// KeywordAnalyzer is the fixed-table substring classifier.
type KeywordAnalyzer struct{}

func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

func (a *KeywordAnalyzer) Analyze(text string) Result {
	lower := strings.ToLower(text)

	result := Result{PlantName: defaultPlantName}

	for _, keyword := range diseaseKeywords {
		if strings.Contains(lower, keyword) {
			result.DiseaseDetected = true
			break
		}
	}

	for _, plant := range commonPlants {
		if strings.Contains(lower, plant.keyword) {
			result.PlantName = plant.label
			break
		}
	}

	if result.DiseaseDetected {
		result.DiseaseName = defaultDiseaseName
		for _, disease := range diseaseNames {
			if strings.Contains(lower, disease.keyword) {
				result.DiseaseName = disease.label
				break
			}
		}
	}

	return result
}
