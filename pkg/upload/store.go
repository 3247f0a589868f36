package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/unicode/norm"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/observability"
)

var (
	ErrNotFound    = errors.New("upload not found")
	ErrInvalidName = errors.New("invalid upload name")
)

// fallbackName replaces an original filename that sanitises to nothing.
const fallbackName = "image"

// Store keeps report images in a single flat directory.
type Store struct {
	dir     string
	clock   clockwork.Clock
	loc     *time.Location
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewStore creates dir if needed.
func NewStore(dir string, clock clockwork.Clock, loc *time.Location, metrics *observability.Metrics, logger *slog.Logger) (*Store, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: abs, clock: clock, loc: loc, metrics: metrics, logger: logger}, nil
}

func (s *Store) Dir() string { return s.dir }

// maxSaveAttempts bounds the _N suffixes tried when a name is taken.
const maxSaveAttempts = 100

// Save writes r under a timestamp-prefixed, sanitised version of original
// and returns the stored name. An existing file is never overwritten; a
// taken name gets a _1, _2, ... suffix before its extension.
func (s *Store) Save(original string, r io.Reader) (string, error) {
	base := s.clock.Now().In(s.loc).Format("20060102150405") + "_" + SanitizeFilename(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	var (
		name string
		f    *os.File
		err  error
	)
	for i := 0; i < maxSaveAttempts; i++ {
		name = base
		if i > 0 {
			name = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}
		f, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, os.ErrExist) {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	s.metrics.UploadsStored.Inc()
	s.logger.Info("upload stored", "name", name)
	return name, nil
}

// Path resolves a stored name to a file inside the upload directory.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", ErrInvalidName
	}
	p := filepath.Join(s.dir, name)
	rel, err := filepath.Rel(s.dir, p)
	if err != nil || rel != name || strings.HasPrefix(rel, "..") {
		return "", ErrInvalidName
	}
	fi, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat %s: %w", name, err)
	}
	if !fi.Mode().IsRegular() {
		return "", ErrNotFound
	}
	return p, nil
}

// SanitizeFilename reduces a client-supplied filename to ASCII letters,
// digits, '_', '-' and '.', with no directory part.
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r > unicode.MaxASCII:
			continue
		case r == '/' || r == '\\':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	name = strings.Join(strings.Fields(b.String()), "_")

	b.Reset()
	for _, r := range name {
		if r == '_' || r == '-' || r == '.' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name = strings.Trim(b.String(), "._")
	if name == "" {
		return fallbackName
	}
	return name
}
