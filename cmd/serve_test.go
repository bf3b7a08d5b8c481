package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiata/coreiq/internal/evidence"
	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/store"
)

// stubStore serves a fixed set of audits to API handlers.
type stubStore struct {
	audits map[string]*model.Audit
}

func (s *stubStore) GetAudit(_ context.Context, id string) (*model.Audit, error) {
	a, ok := s.audits[id]
	if !ok {
		return nil, eris.Errorf("audit not found: %s", id)
	}
	return a, nil
}

func (s *stubStore) SaveAudit(_ context.Context, a *model.Audit) error {
	s.audits[a.ID] = a
	return nil
}

func (s *stubStore) ListAudits(context.Context, store.AuditFilter) ([]model.Audit, error) {
	return nil, nil
}

func (s *stubStore) Migrate(context.Context) error { return nil }
func (s *stubStore) Close() error                  { return nil }

func newEvidenceAPI(t *testing.T) (*apiServer, *model.Audit, *model.Attachment) {
	t.Helper()

	fs, err := evidence.NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)
	signer, err := evidence.NewSigner("test-secret")
	require.NoError(t, err)

	a, err := model.NewAudit("Acme", "", map[model.FunctionName]bool{model.FunctionOps: true})
	require.NoError(t, err)

	// File name with characters that need escaping in a query string.
	att, err := fs.Put(a.ID, model.FunctionOps, "q1 report & notes.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	require.NoError(t, a.AddAttachment(model.FunctionOps, *att))

	api := &apiServer{
		store:    &stubStore{audits: map[string]*model.Audit{a.ID: a}},
		evidence: fs,
		signer:   signer,
		urlTTL:   time.Minute,
	}
	return api, a, att
}

func TestSignedAttachmentURLRoundTrip(t *testing.T) {
	api, a, att := newEvidenceAPI(t)
	srv := httptest.NewServer(api.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/audits/" + a.ID + "/attachments/" + att.ID + "/url")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var signed struct {
		URL string `json:"url"`
		Exp int64  `json:"exp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signed))
	assert.NotZero(t, signed.Exp)

	// The issued URL must survive query parsing even though the storage
	// path contains spaces and an ampersand.
	dl, err := http.Get(srv.URL + signed.URL)
	require.NoError(t, err)
	defer dl.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusOK, dl.StatusCode)

	body, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(body))
}

func TestEvidenceDownloadRejectsBadSignature(t *testing.T) {
	api, _, att := newEvidenceAPI(t)
	srv := httptest.NewServer(api.routes())
	defer srv.Close()

	q := url.Values{}
	q.Set("path", att.StoragePath)
	q.Set("exp", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))
	q.Set("sig", "forged")

	resp, err := http.Get(srv.URL + "/evidence?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}
