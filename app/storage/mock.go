package storage

import (
	"context"
	"io"
	"sync"
)

// Mock is an in-memory BlobService that records every call. Tests use it
// to assert that handlers touch the object store exactly as expected.
type Mock struct {
	mu       sync.Mutex
	Objects  map[string][]byte
	Uploads  []string // keys, in call order
	Deletes  []string // public URLs, in call order
	BaseURL  string
	FailWith error
}

func NewMock() *Mock {
	return &Mock{
		Objects: make(map[string][]byte),
		BaseURL: "https://storage.test",
	}
}

func (m *Mock) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return "", m.FailWith
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.Objects[key] = data
	m.Uploads = append(m.Uploads, key)
	return m.PublicURL(key), nil
}

func (m *Mock) Delete(ctx context.Context, publicURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Deletes = append(m.Deletes, publicURL)
	key := publicURL
	prefix := m.BaseURL + "/"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		key = key[len(prefix):]
	}
	delete(m.Objects, key)
	return nil
}

func (m *Mock) PublicURL(key string) string {
	return m.BaseURL + "/" + key
}
