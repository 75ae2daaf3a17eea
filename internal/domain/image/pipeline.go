package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"krishi-officer-go/internal/platform/config"
	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

// Pipeline gates uploaded images through the fixed validation order
// (filename, size, extension) and produces a base64 payload for the
// multimodal AI call. Deep content validation is optional and off by
// default so the accept/reject contract stays purely size+extension based.
type Pipeline struct {
	config    config.ImageConfig
	validator *Validator
	logger    *logging.Logger
}

func NewPipeline(cfg config.ImageConfig, logger *logging.Logger) *Pipeline {
	return &Pipeline{
		config:    cfg,
		validator: NewValidator(cfg, logger),
		logger:    logger,
	}
}

// Process validates and encodes an upload. Failures carry the exact
// user-facing message for each rejection case.
func (p *Pipeline) Process(ctx context.Context, input Input) (*Output, error) {
	if strings.TrimSpace(input.Filename) == "" {
		return nil, errors.New(errors.KindInvalidInput, "image.process", "Please select an image")
	}

	if input.DeclaredSize > p.config.MaxFileSize {
		p.logger.WarnTag("VISION", "oversized upload rejected: size=%d max=%d",
			input.DeclaredSize, p.config.MaxFileSize)
		return nil, errors.New(errors.KindPayloadTooLarge, "image.process",
			"File too large. Maximum size is 5MB")
	}

	ext := extension(input.Filename)
	if !p.isExtensionAllowed(ext) {
		return nil, errors.New(errors.KindUnsupportedMedia, "image.process",
			"Invalid file type. Please upload PNG, JPG, JPEG, GIF, BMP, or WebP images")
	}

	// The declared size already passed; the limit still applies while
	// reading in case the two disagree.
	raw, err := io.ReadAll(io.LimitReader(input.Reader, p.config.MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(errors.KindAnalysis, "image.process", "read image payload", err)
	}
	if int64(len(raw)) > p.config.MaxFileSize {
		return nil, errors.New(errors.KindPayloadTooLarge, "image.process",
			"File too large. Maximum size is 5MB")
	}
	if len(raw) == 0 {
		return nil, errors.New(errors.KindInvalidInput, "image.process", "Please select an image")
	}

	format := ext
	if p.config.EnableDeepScan {
		result := p.validator.ValidateBytes(raw, ext)
		if !result.IsValid {
			return nil, errors.Wrap(errors.KindAnalysis, "image.process",
				fmt.Sprintf("Cannot analyze image: %v", result.Error), result.Error)
		}
		if result.Format != "" {
			format = result.Format
		}
	}

	mimeType := input.DeclaredMIME
	if mimeType == "" {
		mimeType = mimeForFormat(format)
	}

	return &Output{
		Bytes:    raw,
		Base64:   base64.StdEncoding.EncodeToString(raw),
		Format:   format,
		MIMEType: mimeType,
	}, nil
}

func (p *Pipeline) isExtensionAllowed(ext string) bool {
	if ext == "" {
		return false
	}
	for _, allowed := range p.config.AllowedFormats {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

// extension returns the lowercase suffix after the last dot, or "" when the
// filename has no dot.
func extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

func mimeForFormat(format string) string {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
