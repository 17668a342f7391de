package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	id := uuid.New()
	path, err := store.Upload(ctx, id, "my contract.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Contains(t, path, id.String())
	assert.NotContains(t, path, " ")

	reader, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestLocalStorageDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	path, err := store.Upload(ctx, uuid.New(), "doc.txt", strings.NewReader("text"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, path))

	_, err = store.Download(ctx, path)
	assert.Error(t, err)

	// Deleting an already-deleted document is not an error
	assert.NoError(t, store.Delete(ctx, path))
}

func TestDocumentPathSharding(t *testing.T) {
	id := uuid.New()
	path := documentPath(id, "a b.pdf")
	assert.Equal(t, id.String()[:2], path[:2])
	assert.Contains(t, path, "a_b.pdf")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", contentType("doc.PDF"))
	assert.Equal(t, "text/plain", contentType("doc.txt"))
	assert.Equal(t, "application/octet-stream", contentType("doc.docx"))
}
