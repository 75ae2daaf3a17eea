package image

import "io"

// Input describes an uploaded image before validation.
type Input struct {
	Reader       io.Reader
	Filename     string
	DeclaredSize int64
	DeclaredMIME string
}

// Output is a validated, transport-ready image payload.
type Output struct {
	Bytes    []byte
	Base64   string
	Format   string
	MIMEType string
}

// ValidationResult captures the outcome of the deep validation pass.
type ValidationResult struct {
	IsValid      bool
	Format       string
	Width        int
	Height       int
	FileSize     int64
	SecurityRisk string
	Error        error
}
