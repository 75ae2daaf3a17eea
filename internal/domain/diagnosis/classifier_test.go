package diagnosis

import "testing"

func TestAnalyze_DiseaseKeywordsAllLanguages(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	tests := []struct {
		name string
		text string
	}{
		{"english", "The plant shows signs of disease on lower leaves"},
		{"english uppercase", "SEVERE PEST DAMAGE OBSERVED"},
		{"hindi", "पौधे में रोग के लक्षण दिख रहे हैं"},
		{"malayalam", "ഇലകളിൽ രോഗം കാണുന്നു"},
		{"tamil", "இலைகளில் நோய் உள்ளது"},
		{"kannada", "ಎಲೆಗಳಲ್ಲಿ ರೋಗ ಕಂಡುಬಂದಿದೆ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(tt.text)
			if !result.DiseaseDetected {
				t.Errorf("Analyze(%q).DiseaseDetected = false, want true", tt.text)
			}
		})
	}
}

func TestAnalyze_HealthyText(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	result := analyzer.Analyze("The tomato plant looks healthy and vigorous with good leaf color")
	if result.DiseaseDetected {
		t.Error("healthy text should not flag a disease")
	}
	if result.DiseaseName != "" {
		t.Errorf("disease name = %q, want empty for healthy text", result.DiseaseName)
	}
	if result.PlantName != "Tomato Plant" {
		t.Errorf("plant name = %q, want Tomato Plant", result.PlantName)
	}
}

func TestAnalyze_PlantTable(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	tests := []struct {
		text string
		want string
	}{
		{"This is a Rice crop in early tillering stage", "Rice Crop"},
		{"A field of WHEAT ready for harvest", "Wheat Crop"},
		{"Looks like corn, possibly maize hybrid", "Corn/Maize"},
		{"Some unknown ornamental shrub", "Plant Analyzed"},
	}
	for _, tt := range tests {
		if got := analyzer.Analyze(tt.text).PlantName; got != tt.want {
			t.Errorf("Analyze(%q).PlantName = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestAnalyze_PlantTableOrder(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	// tomato precedes rice in the table, so it wins when both appear.
	result := analyzer.Analyze("Intercropping of rice and tomato observed")
	if result.PlantName != "Tomato Plant" {
		t.Errorf("plant name = %q, want Tomato Plant (table order)", result.PlantName)
	}
}

func TestAnalyze_DiseaseNamePriority(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"blight beats pest", "Early blight with secondary pest infestation", "Blight Disease"},
		{"blight beats fungal", "fungal growth typical of late blight", "Blight Disease"},
		{"fungal beats pest", "a fungal infection attracting pests", "Fungal Infection"},
		{"pest alone", "heavy pest pressure on leaves", "Pest Infestation"},
		{"generic fallback", "the plant is sick with an unidentified problem", "Disease/Problem Detected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(tt.text)
			if !result.DiseaseDetected {
				t.Fatal("disease should be detected")
			}
			if result.DiseaseName != tt.want {
				t.Errorf("disease name = %q, want %q", result.DiseaseName, tt.want)
			}
		})
	}
}
