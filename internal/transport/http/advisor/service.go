package advisor

import (
	"context"

	"github.com/gin-gonic/gin"

	"krishi-officer-go/internal/domain/advisory"
	"krishi-officer-go/internal/domain/diagnosis"
	domainimage "krishi-officer-go/internal/domain/image"
	"krishi-officer-go/internal/domain/market"
	"krishi-officer-go/internal/domain/schemes"
	"krishi-officer-go/internal/domain/weather"
	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
	httptransport "krishi-officer-go/internal/transport/http"
)

// Advisor answers free-text farming questions.
type Advisor interface {
	Ask(ctx context.Context, question, language string) (*advisory.Answer, error)
}

// Diagnoser analyzes uploaded plant images.
type Diagnoser interface {
	Diagnose(ctx context.Context, input domainimage.Input, language string) (*diagnosis.Report, error)
}

// WeatherReporter fetches current conditions, forecast and alerts.
type WeatherReporter interface {
	GetWeather(ctx context.Context, location string) (*weather.Report, error)
}

// PriceSearcher looks up commodity price rows.
type PriceSearcher interface {
	Search(ctx context.Context, cropName, stateName string) ([]market.PriceRecord, error)
}

// SchemeLister returns localized government schemes.
type SchemeLister interface {
	List(ctx context.Context, language string) ([]schemes.LocalizedScheme, error)
}

// Service is the HTTP transport layer for the farmer advisory endpoints.
type Service struct {
	logger    *logging.Logger
	advisory  Advisor
	diagnosis Diagnoser
	weather   WeatherReporter
	market    PriceSearcher
	schemes   SchemeLister
}

// NewService wires the advisory handlers over their domain services.
func NewService(
	logger *logging.Logger,
	advisoryService Advisor,
	diagnosisService Diagnoser,
	weatherService WeatherReporter,
	marketService PriceSearcher,
	schemeService SchemeLister,
) (*Service, error) {
	if logger == nil {
		return nil, errors.New(errors.KindConfig, "advisor.new", "logger is required")
	}
	if advisoryService == nil || diagnosisService == nil || weatherService == nil ||
		marketService == nil || schemeService == nil {
		return nil, errors.New(errors.KindConfig, "advisor.new", "all domain services are required")
	}
	return &Service{
		logger:    logger,
		advisory:  advisoryService,
		diagnosis: diagnosisService,
		weather:   weatherService,
		market:    marketService,
		schemes:   schemeService,
	}, nil
}

// Register mounts the advisory routes on the given router group.
func (s *Service) Register(ctx context.Context, router *gin.RouterGroup) error {
	router.POST("/ask", s.handleAsk)
	router.POST("/identify", s.handleIdentify)
	router.POST("/weather", s.handleWeather)
	router.POST("/crop-price", s.handleCropPrice)
	router.POST("/government-schemes", s.handleSchemes)

	s.logger.InfoTag("HTTP", "advisory routes registered")
	return nil
}

type askRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type weatherRequest struct {
	Location string `json:"location"`
}

type cropPriceRequest struct {
	CropName  string `json:"crop_name"`
	StateName string `json:"state_name"`
}

type schemesRequest struct {
	Language string `json:"language"`
}

// handleAsk answers a free-text farming question.
// @Summary Ask a farming question
// @Description Submit a question and preferred language, get AI advisory text back
// @Tags Advisory
// @Accept json
// @Produce json
// @Param request body askRequest true "Question and language code"
// @Success 200 {object} advisory.Answer
// @Router /ask [post]
func (s *Service) handleAsk(c *gin.Context) {
	var req askRequest
	// Malformed or missing bodies fall through to the empty-question check.
	_ = c.ShouldBindJSON(&req)

	answer, err := s.advisory.Ask(c.Request.Context(), req.Query, req.Language)
	if err != nil {
		s.logger.WarnTag("AI", "ask failed: %v", err)
		httptransport.RespondError(c, err)
		return
	}
	httptransport.RespondJSON(c, answer)
}

// handleIdentify diagnoses an uploaded plant image.
// @Summary Identify plant and disease from an image
// @Description Upload a plant photo, get identification and treatment advice
// @Tags Advisory
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Plant image"
// @Param language formData string false "Language code"
// @Success 200 {object} diagnosis.Report
// @Router /identify [post]
func (s *Service) handleIdentify(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httptransport.RespondError(c, errors.Wrap(
			errors.KindInvalidInput, "identify.parse", "No image uploaded", err,
		))
		return
	}
	defer file.Close()

	language := c.Request.FormValue("language")
	if language == "" {
		language = advisory.DefaultLanguageCode
	}

	input := domainimage.Input{
		Reader:       file,
		Filename:     header.Filename,
		DeclaredSize: header.Size,
		DeclaredMIME: header.Header.Get("Content-Type"),
	}

	report, err := s.diagnosis.Diagnose(c.Request.Context(), input, language)
	if err != nil {
		s.logger.WarnTag("VISION", "identify failed: %v", err)
		httptransport.RespondError(c, err)
		return
	}
	httptransport.RespondJSON(c, report)
}

// handleWeather returns current conditions, a 10-day forecast and advisory alerts.
// @Summary Get weather and farming alerts for a location
// @Tags Advisory
// @Accept json
// @Produce json
// @Param request body weatherRequest true "Location name"
// @Success 200 {object} weather.Report
// @Router /weather [post]
func (s *Service) handleWeather(c *gin.Context) {
	var req weatherRequest
	_ = c.ShouldBindJSON(&req)

	report, err := s.weather.GetWeather(c.Request.Context(), req.Location)
	if err != nil {
		s.logger.WarnTag("WEATHER", "lookup failed: %v", err)
		httptransport.RespondError(c, err)
		return
	}
	httptransport.RespondJSON(c, report)
}

// handleCropPrice searches the commodity price table.
// @Summary Search crop prices by commodity and state
// @Tags Advisory
// @Accept json
// @Produce json
// @Param request body cropPriceRequest true "Crop and state filters"
// @Success 200 {object} object
// @Router /crop-price [post]
func (s *Service) handleCropPrice(c *gin.Context) {
	var req cropPriceRequest
	_ = c.ShouldBindJSON(&req)

	records, err := s.market.Search(c.Request.Context(), req.CropName, req.StateName)
	if err != nil {
		s.logger.WarnTag("MARKET", "price search failed: %v", err)
		httptransport.RespondError(c, err)
		return
	}
	httptransport.RespondJSON(c, gin.H{"data": records})
}

// handleSchemes returns localized government scheme descriptions.
// @Summary List government schemes in a requested language
// @Tags Advisory
// @Accept json
// @Produce json
// @Param request body schemesRequest true "Language code"
// @Success 200 {object} object
// @Router /government-schemes [post]
func (s *Service) handleSchemes(c *gin.Context) {
	var req schemesRequest
	_ = c.ShouldBindJSON(&req)

	language := req.Language
	if language == "" {
		language = advisory.DefaultLanguageCode
	}

	localized, err := s.schemes.List(c.Request.Context(), language)
	if err != nil {
		s.logger.WarnTag("SCHEMES", "list failed: %v", err)
		httptransport.RespondError(c, err)
		return
	}
	httptransport.RespondJSON(c, gin.H{"schemes": localized})
}
