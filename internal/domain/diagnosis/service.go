package diagnosis

import (
	"context"
	"fmt"
	"strings"

	"krishi-officer-go/internal/domain/advisory"
	domainimage "krishi-officer-go/internal/domain/image"
	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

// VisionCompleter is the slice of the AI client the diagnosis service
// depends on.
type VisionCompleter interface {
	CompleteWithImage(ctx context.Context, prompt, mimeType, base64Data string) (string, error)
}

// Report is the response body for an image diagnosis. TreatmentAdvice is set
// in the disease case, Message in the healthy case.
type Report struct {
	PlantName       string `json:"plant_name"`
	DiseaseDetected bool   `json:"disease_detected"`
	DiseaseName     string `json:"disease_name,omitempty"`
	TreatmentAdvice string `json:"treatment_advice,omitempty"`
	Message         string `json:"message,omitempty"`
	Language        string `json:"language"`
}

// Service validates plant photos, submits them with the diagnostic prompt
// and annotates the reply with the keyword classification.
type Service struct {
	ai       VisionCompleter
	pipeline *domainimage.Pipeline
	analyzer Analyzer
	logger   *logging.Logger
}

func NewService(ai VisionCompleter, pipeline *domainimage.Pipeline, analyzer Analyzer, logger *logging.Logger) *Service {
	if analyzer == nil {
		analyzer = NewKeywordAnalyzer()
	}
	return &Service{
		ai:       ai,
		pipeline: pipeline,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Diagnose runs the full identify flow for an uploaded image.
func (s *Service) Diagnose(ctx context.Context, input domainimage.Input, language string) (*Report, error) {
	if language == "" {
		language = advisory.DefaultLanguageCode
	}

	output, err := s.pipeline.Process(ctx, input)
	if err != nil {
		return nil, err
	}

	prompt := BuildIdentifyPrompt(advisory.DisplayLanguage(language))

	s.logger.DebugTag("VISION", "identify: language=%s format=%s image_bytes=%d",
		language, output.Format, len(output.Bytes))

	analysis, err := s.ai.CompleteWithImage(ctx, prompt, output.MIMEType, output.Base64)
	if err != nil {
		return nil, errors.Wrap(errors.KindAnalysis, "diagnosis.identify",
			fmt.Sprintf("Cannot analyze image: %v", err), err)
	}
	analysis = strings.TrimSpace(analysis)

	result := s.analyzer.Analyze(analysis)

	report := &Report{
		PlantName:       result.PlantName,
		DiseaseDetected: result.DiseaseDetected,
		Language:        language,
	}
	if result.DiseaseDetected {
		report.DiseaseName = result.DiseaseName
		report.TreatmentAdvice = analysis
	} else {
		report.Message = analysis
	}

	return report, nil
}
