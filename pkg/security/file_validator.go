package security

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxInvoiceSize is the upload cap for warranty invoice files.
const MaxInvoiceSize = 5 << 20 // 5MB

// FileValidationResult contains the result of invoice validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // MIME type sniffed from content
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed invoice types
var invoiceMagicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
}

// Allowed invoice extensions (strict whitelist)
var allowedInvoiceExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// Allowed invoice MIME types - application/octet-stream is deliberately absent
var allowedInvoiceMIMEs = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// ValidateInvoice performs 3-layer validation of an uploaded invoice:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. Content sniffing against the MIME whitelist
func ValidateInvoice(filename string, data []byte) FileValidationResult {
	var result FileValidationResult

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: Extension whitelist
	if !allowedInvoiceExtensions[ext] {
		result.Error = "Only JPG, PNG and PDF files are allowed"
		return result
	}

	// Layer 2: Magic byte validation
	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	// Layer 3: sniff the content itself; the client-declared Content-Type is untrusted
	detected := mimetype.Detect(data).String()
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	result.DetectedMIME = detected

	if !allowedInvoiceMIMEs[detected] {
		result.Error = "Only JPG, PNG and PDF files are allowed"
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := invoiceMagicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}
