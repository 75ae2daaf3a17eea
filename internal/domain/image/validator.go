package image

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"krishi-officer-go/internal/platform/config"
	"krishi-officer-go/internal/platform/logging"
)

// Validator performs content-level checks against incoming image payloads,
// beyond the size/extension gate the pipeline applies first.
type Validator struct {
	config config.ImageConfig
	logger *logging.Logger
}

func NewValidator(cfg config.ImageConfig, logger *logging.Logger) *Validator {
	return &Validator{config: cfg, logger: logger}
}

var imageSignatures = map[string][]byte{
	"jpeg": {0xFF, 0xD8},
	"jpg":  {0xFF, 0xD8},
	"png":  {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
	"gif":  {0x47, 0x49, 0x46, 0x38},
	"webp": {0x52, 0x49, 0x46, 0x46},
	"bmp":  {0x42, 0x4D},
}

// ValidateBytes decodes the payload header and enforces format and
// dimension limits.
func (v *Validator) ValidateBytes(raw []byte, declaredFormat string) ValidationResult {
	result := ValidationResult{IsValid: false, Format: declaredFormat}

	if len(raw) == 0 {
		result.Error = fmt.Errorf("empty image payload")
		return result
	}

	if declaredFormat != "" && !v.validateFileSignature(raw, declaredFormat) {
		actualHeader := fmt.Sprintf("%x", raw[:min(len(raw), 16)])
		v.logger.Warn(
			"file signature mismatch: declared_format=%s actual_header=%s",
			declaredFormat,
			actualHeader,
		)
		result.Error = fmt.Errorf("file content does not match declared format %s", declaredFormat)
		result.SecurityRisk = "format mismatch"
		return result
	}

	cfg, actualFormat, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		result.Error = fmt.Errorf("decode image config: %w", err)
		result.SecurityRisk = "corrupted image data"
		return result
	}
	if actualFormat != "" {
		result.Format = actualFormat
	}

	if cfg.Width > v.config.MaxWidth || cfg.Height > v.config.MaxHeight {
		result.Error = fmt.Errorf("dimensions exceed limit: %dx%d (max %dx%d)",
			cfg.Width, cfg.Height, v.config.MaxWidth, v.config.MaxHeight)
		result.SecurityRisk = "dimensions too large"
		return result
	}

	totalPixels := int64(cfg.Width) * int64(cfg.Height)
	if totalPixels > v.config.MaxPixels {
		result.Error = fmt.Errorf("pixel count exceeds limit: %d (max %d)", totalPixels, v.config.MaxPixels)
		result.SecurityRisk = "pixel count too high"
		return result
	}

	if v.scanForMaliciousContent(raw) {
		result.Error = fmt.Errorf("potential malicious content detected")
		result.SecurityRisk = "suspicious content"
		return result
	}

	result.IsValid = true
	result.Width = cfg.Width
	result.Height = cfg.Height
	result.FileSize = int64(len(raw))

	v.logger.Debug(
		"image validation success: format=%s width=%d height=%d size=%d",
		result.Format,
		result.Width,
		result.Height,
		result.FileSize,
	)

	return result
}

func (v *Validator) validateFileSignature(raw []byte, format string) bool {
	signature, ok := imageSignatures[strings.ToLower(format)]
	if !ok || len(signature) == 0 {
		return true
	}
	if len(raw) < len(signature) {
		return false
	}
	return bytes.Equal(signature, raw[:len(signature)])
}

func (v *Validator) scanForMaliciousContent(raw []byte) bool {
	// Executables and archives disguised with image extensions.
	suspiciousSignatures := [][]byte{
		{0x4D, 0x5A},
		{0x25, 0x50, 0x44, 0x46},
		{0x50, 0x4B, 0x03, 0x04},
		{0x1F, 0x8B, 0x08},
	}

	for _, signature := range suspiciousSignatures {
		if bytes.HasPrefix(raw, signature) {
			v.logger.Warn(
				"detected non-image signature: signature_hex=%x",
				signature,
			)
			return true
		}
	}
	return false
}
