package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

// SignatureStore holds the default signature image, loaded once at startup
// and passed to generators explicitly. Request-supplied signatures take
// precedence over the default.
type SignatureStore struct {
	log        *logger.Logger
	defaultPNG []byte
}

func NewSignatureStore(log *logger.Logger, path string) (*SignatureStore, error) {
	store := &SignatureStore{log: log.With("service", "SignatureStore")}
	if strings.TrimSpace(path) == "" {
		return store, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read default signature: %w", err)
	}
	store.defaultPNG = data
	return store, nil
}

// Resolve decodes a request's base64 signature, falling back to the default
// when the request carried none or the payload does not decode.
func (s *SignatureStore) Resolve(encoded string) []byte {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return s.defaultPNG
	}
	// Data-URL prefix from canvas captures.
	if idx := strings.Index(encoded, ","); idx != -1 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		s.log.Warn("signature did not decode, using default", "error", err)
		return s.defaultPNG
	}
	return data
}
