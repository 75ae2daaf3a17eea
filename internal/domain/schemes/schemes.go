// Package schemes serves localized government scheme descriptions from a
// static JSON document.
package schemes

import (
	"context"
	"encoding/json"
	"os"

	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

const fallbackLanguage = "en"

// Scheme is a raw document entry: each text field maps language codes to
// localized strings; the link is language independent.
type Scheme struct {
	Name        map[string]string `json:"scheme_name"`
	Description map[string]string `json:"description"`
	Eligibility map[string]string `json:"eligibility"`
	MoreInfo    string            `json:"more_info"`
}

// LocalizedScheme is a scheme resolved to a single language.
type LocalizedScheme struct {
	SchemeName  string `json:"scheme_name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	MoreInfo    string `json:"more_info"`
}

// Provider supplies the scheme document. The file implementation re-reads
// the document per call.
type Provider interface {
	Load(ctx context.Context) ([]Scheme, error)
}

// FileProvider reads the scheme document from a local JSON file.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Load(_ context.Context) ([]Scheme, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "schemes.load", "read schemes document", err)
	}

	var schemes []Scheme
	if err := json.Unmarshal(raw, &schemes); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "schemes.load", "parse schemes document", err)
	}
	return schemes, nil
}

// Service localizes the scheme document for a requested language.
type Service struct {
	provider Provider
	logger   *logging.Logger
}

func NewService(provider Provider, logger *logging.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Verify confirms the document is present and well-formed. An unreadable
// document is a startup failure, not a per-request one.
func (s *Service) Verify(ctx context.Context) error {
	schemes, err := s.provider.Load(ctx)
	if err != nil {
		return err
	}
	s.logger.InfoTag("SCHEMES", "schemes document verified: %d entries", len(schemes))
	return nil
}

// List resolves every scheme to the requested language, falling back to
// English per field when a translation is missing. Document order is kept.
func (s *Service) List(ctx context.Context, language string) ([]LocalizedScheme, error) {
	if language == "" {
		language = fallbackLanguage
	}

	schemes, err := s.provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	localized := make([]LocalizedScheme, 0, len(schemes))
	for _, scheme := range schemes {
		localized = append(localized, LocalizedScheme{
			SchemeName:  pickLanguage(scheme.Name, language),
			Description: pickLanguage(scheme.Description, language),
			Eligibility: pickLanguage(scheme.Eligibility, language),
			MoreInfo:    scheme.MoreInfo,
		})
	}
	return localized, nil
}

func pickLanguage(field map[string]string, language string) string {
	if value, ok := field[language]; ok {
		return value
	}
	return field[fallbackLanguage]
}
