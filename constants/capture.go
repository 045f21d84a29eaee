package constants

import "strings"

// CaptureKind names the two capture document variants. The OCR settings row
// whose function matches the kind supplies the prompt for that variant.
type CaptureKind string

const (
	KindDeliveryNote CaptureKind = "Delivery Note Capture"
	KindToll         CaptureKind = "Toll Capture"
)

// ProviderFamily selects a vision-language adapter.
type ProviderFamily string

const (
	FamilyOpenAI    ProviderFamily = "openai"
	FamilyAnthropic ProviderFamily = "anthropic"
)

// AllowedExtensions holds the file extensions accepted at capture submission.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
