package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockUploadAndDelete(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	url, err := m.Upload(ctx, "blog_images/1.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	require.Equal(t, "https://storage.test/blog_images/1.png", url)
	require.Equal(t, []byte("png-bytes"), m.Objects["blog_images/1.png"])

	require.NoError(t, m.Delete(ctx, url))
	require.NotContains(t, m.Objects, "blog_images/1.png")
	require.Equal(t, []string{"blog_images/1.png"}, m.Uploads)
	require.Equal(t, []string{url}, m.Deletes)
}

func TestMockFailureInjection(t *testing.T) {
	m := NewMock()
	m.FailWith = errors.New("boom")

	_, err := m.Upload(context.Background(), "k", strings.NewReader("x"), "text/plain")
	require.Error(t, err)
	require.Error(t, m.Delete(context.Background(), "https://storage.test/k"))
	require.Empty(t, m.Uploads)
	require.Empty(t, m.Deletes)
}
