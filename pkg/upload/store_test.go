package upload

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/observability"
)

func newStore(t *testing.T) (*Store, *observability.Metrics) {
	t.Helper()
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	m := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 0, 30, 15, 0, time.UTC))
	s, err := NewStore(filepath.Join(t.TempDir(), "uploads"), clock, tokyo, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s, m
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"photo.jpg":            "photo.jpg",
		"My cool movie.mov":    "My_cool_movie.mov",
		"../../../etc/passwd":  "etc_passwd",
		`C:\Users\me\leaf.png`: "C_Users_me_leaf.png",
		"写真.jpg":               "jpg",
		"畑":                    fallbackName,
		"":                     fallbackName,
		"...":                  fallbackName,
		"café.jpg":             "cafe.jpg",
		"a\x00b.png":           "ab.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestSave_TimestampPrefix(t *testing.T) {
	s, m := newStore(t)

	name, err := s.Save("leaf.jpg", strings.NewReader("jpegdata"))
	require.NoError(t, err)

	assert.Equal(t, "20260301093015_leaf.jpg", name)
	b, err := os.ReadFile(filepath.Join(s.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(b))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsStored))
}

func TestSave_SameNameSameSecondKeepsBoth(t *testing.T) {
	s, m := newStore(t)

	first, err := s.Save("IMG_0001.jpg", strings.NewReader("first report photo"))
	require.NoError(t, err)
	second, err := s.Save("IMG_0001.jpg", strings.NewReader("second report photo"))
	require.NoError(t, err)
	third, err := s.Save("IMG_0001.jpg", strings.NewReader("third report photo"))
	require.NoError(t, err)

	assert.Equal(t, "20260301093015_IMG_0001.jpg", first)
	assert.Equal(t, "20260301093015_IMG_0001_1.jpg", second)
	assert.Equal(t, "20260301093015_IMG_0001_2.jpg", third)
	for name, want := range map[string]string{
		first:  "first report photo",
		second: "second report photo",
		third:  "third report photo",
	} {
		b, err := os.ReadFile(filepath.Join(s.Dir(), name))
		require.NoError(t, err)
		assert.Equal(t, want, string(b))
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.UploadsStored))
}

func TestSave_TraversalNameStaysInside(t *testing.T) {
	s, _ := newStore(t)

	name, err := s.Save("../../evil.sh", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, name, "/")
	p, err := s.Path(name)
	require.NoError(t, err)
	assert.Equal(t, s.Dir(), filepath.Dir(p))
}

func TestPath(t *testing.T) {
	s, _ := newStore(t)
	name, err := s.Save("ok.png", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "sub"), 0o755))
	outside := filepath.Join(filepath.Dir(s.Dir()), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))

	p, err := s.Path(name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), name), p)

	_, err = s.Path("missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Path("sub")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, bad := range []string{"", ".", "..", "../secret.txt", "sub/../../secret.txt", `..\secret.txt`, "/etc/passwd"} {
		_, err := s.Path(bad)
		assert.ErrorIs(t, err, ErrInvalidName, bad)
	}
}
