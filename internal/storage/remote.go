package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

const defaultTimeout = 30 * time.Second

// Remote persists the ledger document to a hosted JSON-bin style store.
// The whole document is fetched with a single GET and overwritten with a
// single PUT; the master key is sent in the X-Master-Key header.
type Remote struct {
	httpClient *http.Client
	url        string
	masterKey  string
}

// NewRemote creates a remote document store client.
func NewRemote(url, masterKey string) *Remote {
	return &Remote{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		url:       url,
		masterKey: masterKey,
	}
}

// binEnvelope is the wire shape of the hosted store's read response.
type binEnvelope struct {
	Record *models.Document `json:"record"`
}

// Load fetches the entire ledger document.
func (r *Remote) Load(ctx context.Context) (*models.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	req.Header.Set("X-Master-Key", r.masterKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &PersistenceError{Op: "load", Err: r.statusError(resp)}
	}

	var envelope binEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if envelope.Record == nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("response contains no record")}
	}

	return envelope.Record, nil
}

// Save overwrites the entire remote document with the given state.
func (r *Remote) Save(ctx context.Context, doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("failed to marshal document: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.url, bytes.NewReader(body))
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Master-Key", r.masterKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &PersistenceError{Op: "save", Err: r.statusError(resp)}
	}

	return nil
}

// Close implements Storage; the remote backend holds no resources.
func (r *Remote) Close() error {
	return nil
}

// statusError builds an error from a non-200 response.
func (r *Remote) statusError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return fmt.Errorf("document store returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("document store returned status %d: %s", resp.StatusCode, string(body))
}
