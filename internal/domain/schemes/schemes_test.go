package schemes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

const testDocument = `[
	{
		"scheme_name": {"en": "PM-KISAN", "ta": "பிஎம்-கிசான்", "hi": "पीएम-किसान"},
		"description": {"en": "Income support of Rs 6000 per year for farmer families."},
		"eligibility": {"en": "All landholding farmer families.", "hi": "सभी भूमिधारक किसान परिवार।"},
		"more_info": "https://pmkisan.gov.in/"
	},
	{
		"scheme_name": {"en": "Soil Health Card"},
		"description": {"en": "Soil testing and nutrient recommendations.", "ta": "மண் பரிசோதனை மற்றும் ஊட்டச்சத்து பரிந்துரைகள்."},
		"eligibility": {"en": "All farmers."},
		"more_info": "https://soilhealth.dac.gov.in/"
	}
]`

func testService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemes.json")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))
	logger, err := logging.New(logging.Config{Level: "error"})
	require.NoError(t, err)
	return NewService(NewFileProvider(path), logger)
}

func TestList_PerFieldFallback(t *testing.T) {
	svc := testService(t)

	schemes, err := svc.List(context.Background(), "ta")
	require.NoError(t, err)
	require.Len(t, schemes, 2)

	// First scheme: Tamil name exists, Tamil description/eligibility do
	// not, so those fall back to English independently.
	assert.Equal(t, "பிஎம்-கிசான்", schemes[0].SchemeName)
	assert.Equal(t, "Income support of Rs 6000 per year for farmer families.", schemes[0].Description)
	assert.Equal(t, "All landholding farmer families.", schemes[0].Eligibility)
	assert.Equal(t, "https://pmkisan.gov.in/", schemes[0].MoreInfo)

	// Second scheme: only the description has a Tamil entry.
	assert.Equal(t, "Soil Health Card", schemes[1].SchemeName)
	assert.Equal(t, "மண் பரிசோதனை மற்றும் ஊட்டச்சத்து பரிந்துரைகள்.", schemes[1].Description)
}

func TestList_DefaultLanguage(t *testing.T) {
	svc := testService(t)

	schemes, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "PM-KISAN", schemes[0].SchemeName)
}

func TestList_DocumentOrder(t *testing.T) {
	svc := testService(t)

	schemes, err := svc.List(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, schemes, 2)
	assert.Equal(t, "PM-KISAN", schemes[0].SchemeName)
	assert.Equal(t, "Soil Health Card", schemes[1].SchemeName)
}

func TestVerify(t *testing.T) {
	svc := testService(t)
	require.NoError(t, svc.Verify(context.Background()))
}

func TestVerify_MissingDocument(t *testing.T) {
	logger, err := logging.New(logging.Config{Level: "error"})
	require.NoError(t, err)
	svc := NewService(NewFileProvider("/nonexistent/schemes.json"), logger)

	err = svc.Verify(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindStorage))
}

func TestVerify_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	logger, err := logging.New(logging.Config{Level: "error"})
	require.NoError(t, err)
	svc := NewService(NewFileProvider(path), logger)

	require.Error(t, svc.Verify(context.Background()))
}
