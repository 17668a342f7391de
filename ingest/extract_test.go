package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("notes.txt", strings.NewReader("hello legal world"))
	require.NoError(t, err)
	assert.Equal(t, "hello legal world", text)
}

func TestExtractTextEmpty(t *testing.T) {
	_, err := ExtractText("notes.txt", strings.NewReader("   \n\t"))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractTextBadPDF(t *testing.T) {
	_, err := ExtractText("broken.pdf", strings.NewReader("this is not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadablePDF)
}

func TestExtractTextCaseInsensitiveExtension(t *testing.T) {
	_, err := ExtractText("BROKEN.PDF", strings.NewReader("still not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadablePDF)
}
