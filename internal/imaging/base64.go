package imaging

import (
	"encoding/base64"
	"os"

	"github.com/fleetware/transport-ops/internal/common"
)

// ReadBase64 reads the selected file and returns its base64 encoding.
func ReadBase64(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", common.DocumentProcessingError("read image for base64 encoding", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
