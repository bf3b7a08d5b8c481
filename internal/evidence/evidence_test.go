package evidence

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiata/coreiq/internal/model"
)

func newTestFileStore(t *testing.T, maxBytes int64) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir(), maxBytes)
	require.NoError(t, err)
	return fs
}

func TestFileStore_PutOpenRemove(t *testing.T) {
	fs := newTestFileStore(t, 0)

	att, err := fs.Put("audit-1", model.FunctionOps, "process-map.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)

	assert.Equal(t, "process-map.pdf", att.Name)
	assert.Equal(t, int64(9), att.Size)
	assert.Equal(t, "application/pdf", att.MimeType)
	assert.True(t, strings.HasPrefix(att.StoragePath, "audit-1/OPS/"))
	assert.True(t, strings.HasSuffix(att.StoragePath, "-process-map.pdf"))

	f, err := fs.Open(att.StoragePath)
	require.NoError(t, err)
	got, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "pdf bytes", string(got))

	require.NoError(t, fs.Remove(att.StoragePath))
	_, err = fs.Open(att.StoragePath)
	require.Error(t, err)

	// Removing twice is fine.
	require.NoError(t, fs.Remove(att.StoragePath))
}

func TestFileStore_PutStripsDirectories(t *testing.T) {
	fs := newTestFileStore(t, 0)

	att, err := fs.Put("audit-1", model.FunctionCX, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", att.Name)
	assert.True(t, strings.HasPrefix(att.StoragePath, "audit-1/CX/"))
}

func TestFileStore_PutRejectsUnknownFunction(t *testing.T) {
	fs := newTestFileStore(t, 0)

	_, err := fs.Put("audit-1", "LOGISTICS", "notes.txt", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

func TestFileStore_PutEnforcesSizeLimit(t *testing.T) {
	fs := newTestFileStore(t, 16)

	_, err := fs.Put("audit-1", model.FunctionOps, "big.bin", strings.NewReader(strings.Repeat("x", 17)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte limit")

	// At the limit exactly is fine.
	att, err := fs.Put("audit-1", model.FunctionOps, "ok.bin", strings.NewReader(strings.Repeat("x", 16)))
	require.NoError(t, err)
	assert.Equal(t, int64(16), att.Size)
}

func TestFileStore_ResolveRejectsTraversal(t *testing.T) {
	fs := newTestFileStore(t, 0)

	_, err := fs.Open("../outside.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage path")

	_, err = fs.Open("/etc/passwd")
	require.Error(t, err)
}

func TestSigner_RoundTrip(t *testing.T) {
	s, err := NewSigner("test-secret")
	require.NoError(t, err)

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	exp, sig := s.Sign("audit-1/OPS/file.pdf", 10*time.Minute, now)

	assert.Equal(t, now.Add(10*time.Minute).Unix(), exp)
	require.NoError(t, s.Verify("audit-1/OPS/file.pdf", exp, sig, now))
	require.NoError(t, s.Verify("audit-1/OPS/file.pdf", exp, sig, now.Add(10*time.Minute)))
}

func TestSigner_RejectsExpired(t *testing.T) {
	s, err := NewSigner("test-secret")
	require.NoError(t, err)

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	exp, sig := s.Sign("audit-1/OPS/file.pdf", time.Minute, now)

	err = s.Verify("audit-1/OPS/file.pdf", exp, sig, now.Add(time.Minute+time.Second))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestSigner_RejectsTampering(t *testing.T) {
	s, err := NewSigner("test-secret")
	require.NoError(t, err)

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	exp, sig := s.Sign("audit-1/OPS/file.pdf", time.Minute, now)

	// Different path.
	require.Error(t, s.Verify("audit-1/OPS/other.pdf", exp, sig, now))
	// Shifted expiry.
	require.Error(t, s.Verify("audit-1/OPS/file.pdf", exp+60, sig, now))
	// Mangled signature.
	require.Error(t, s.Verify("audit-1/OPS/file.pdf", exp, sig+"x", now))
}

func TestNewSigner_RequiresSecret(t *testing.T) {
	_, err := NewSigner("")
	require.Error(t, err)
}
