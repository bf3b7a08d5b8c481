// Package evidence stores attachment files on local disk and issues
// time-bounded signed download paths for the HTTP API. File bytes never
// live in the database; audits carry only the metadata.
package evidence

import (
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/curiata/coreiq/internal/model"
)

// DefaultMaxUploadBytes caps a single evidence file at 10 MB.
const DefaultMaxUploadBytes = 10 << 20

// FileStore keeps evidence under root/{auditID}/{function}/.
type FileStore struct {
	root     string
	maxBytes int64
}

// NewFileStore creates the root directory if needed. maxBytes <= 0 falls
// back to DefaultMaxUploadBytes.
func NewFileStore(root string, maxBytes int64) (*FileStore, error) {
	if root == "" {
		return nil, eris.New("evidence: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, eris.Wrapf(err, "evidence: create root %s", root)
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &FileStore{root: root, maxBytes: maxBytes}, nil
}

// Put stores the file and returns attachment metadata ready to hang on the
// audit. Reads are capped at the store's size limit; oversize files fail
// without a partial write surviving.
func (fs *FileStore) Put(auditID string, fn model.FunctionName, name string, r io.Reader) (*model.Attachment, error) {
	if !fn.Valid() {
		return nil, eris.Errorf("evidence: unknown function %s", fn)
	}
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return nil, eris.Errorf("evidence: invalid file name %q", name)
	}

	dir := filepath.Join(fs.root, auditID, string(fn))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "evidence: create dir %s", dir)
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	stored := now.Format("20060102T150405") + "-" + id[:8] + "-" + base
	path := filepath.Join(dir, stored)

	f, err := os.Create(path)
	if err != nil {
		return nil, eris.Wrapf(err, "evidence: create %s", path)
	}

	n, err := io.Copy(f, io.LimitReader(r, fs.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return nil, eris.Wrapf(err, "evidence: write %s", path)
	}
	if n > fs.maxBytes {
		os.Remove(path)
		return nil, eris.Errorf("evidence: %s exceeds %d byte limit", base, fs.maxBytes)
	}

	rel, err := filepath.Rel(fs.root, path)
	if err != nil {
		return nil, eris.Wrap(err, "evidence: relative path")
	}

	return &model.Attachment{
		ID:          id,
		Name:        base,
		Size:        n,
		MimeType:    mimeFor(base),
		AddedAt:     now,
		StoragePath: filepath.ToSlash(rel),
	}, nil
}

// Open returns the stored file for a storage path issued by Put.
func (fs *FileStore) Open(storagePath string) (*os.File, error) {
	path, err := fs.resolve(storagePath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "evidence: open %s", storagePath)
	}
	return f, nil
}

// Remove deletes the stored file. Missing files are not an error; the
// metadata is already gone from the audit when this runs.
func (fs *FileStore) Remove(storagePath string) error {
	path, err := fs.resolve(storagePath)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return eris.Wrapf(err, "evidence: remove %s", storagePath)
	}
	return nil
}

// resolve maps a storage path back under root, rejecting traversal.
func (fs *FileStore) resolve(storagePath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(storagePath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", eris.Errorf("evidence: invalid storage path %q", storagePath)
	}
	return filepath.Join(fs.root, clean), nil
}

func mimeFor(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
