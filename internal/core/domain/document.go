package domain

import (
	"path/filepath"
	"strings"
)

// Document kinds accepted on renewal-form uploads.
const (
	DocumentAadhar    = "aadhar"
	DocumentResult    = "result"
	DocumentCasteCert = "caste_cert"
	DocumentPhoto     = "photo"
)

// MaxDocumentSize caps uploads at 5MB, matching the server-side limit.
const MaxDocumentSize = 5 * 1024 * 1024

var allowedDocumentExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

func ValidDocumentKind(kind string) bool {
	switch kind {
	case DocumentAadhar, DocumentResult, DocumentCasteCert, DocumentPhoto:
		return true
	}
	return false
}

func ValidDocumentExtension(filename string) bool {
	return allowedDocumentExtensions[strings.ToLower(filepath.Ext(filename))]
}
