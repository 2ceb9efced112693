// Package upload stores client-submitted audio files on disk and hands back
// the public URL they will be served from.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Store writes uploads into a single directory, one uuid-named file each.
type Store struct {
	dir        string
	maxBytes   int64
	publicPath string
}

// NewStore ensures dir exists. publicPath is the URL prefix the files are
// mounted under (e.g. "/files").
func NewStore(dir string, maxBytes int64, publicPath string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes, publicPath: publicPath}, nil
}

// allowedAudio accepts anything sniffed as audio plus the container types
// browsers commonly produce when recording audio.
func allowedAudio(m *mimetype.MIME) bool {
	if strings.HasPrefix(m.String(), "audio/") {
		return true
	}
	for _, t := range []string{"video/webm", "application/ogg", "video/mp4"} {
		if m.Is(t) {
			return true
		}
	}
	return false
}

// Save sniffs, size-checks and persists one uploaded file. The declared
// size is checked first, but the read is capped too so a lying client
// cannot write past the limit. Returns the public URL path of the file.
func (s *Store) Save(r io.Reader, size int64) (string, error) {
	if size > s.maxBytes {
		return "", ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	m := mimetype.Detect(data)
	if !allowedAudio(m) {
		log.Warn().Str("module", "upload").Str("mime", m.String()).Msg("rejected upload")
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + m.Extension()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	url := path.Join(s.publicPath, name)
	log.Info().Str("module", "upload").Str("file", name).Str("mime", m.String()).Int("bytes", len(data)).Msg("stored upload")
	return url, nil
}
