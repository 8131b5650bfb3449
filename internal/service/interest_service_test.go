package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/scotty/internal/extract"
)

type fakeExtractor struct {
	text string
	err  error
	size int64
}

func (f *fakeExtractor) ExtractText(_ context.Context, _ io.ReaderAt, size int64) (string, error) {
	f.size = size
	return f.text, f.err
}

func TestInterestService_FromDocument(t *testing.T) {
	ex := &fakeExtractor{text: "Research assistant in Machine Learning and computer vision; enjoys Robotics."}
	svc := NewInterestService(ex)

	got, err := svc.FromDocument(context.Background(), strings.NewReader("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"computer vision", "machine learning", "robotics"}, got.Terms())
}

func TestInterestService_ExtractionFailure(t *testing.T) {
	ex := &fakeExtractor{err: fmt.Errorf("%w: bad xref", extract.ErrExtraction)}
	svc := NewInterestService(ex)

	got, err := svc.FromDocument(context.Background(), strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, extract.ErrExtraction)
	assert.True(t, got.Empty())
}

func TestInterestService_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))
	ex := &fakeExtractor{text: "Security and networking"}
	svc := NewInterestService(ex)

	got, err := svc.FromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(10), ex.size)
	assert.Equal(t, "networking, security", got.String())
}

func TestInterestService_FromFileMissing(t *testing.T) {
	svc := NewInterestService(&fakeExtractor{})

	_, err := svc.FromFile(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, extract.ErrExtraction)
}

func TestInterestService_FromTextNoMatches(t *testing.T) {
	svc := NewInterestService(&fakeExtractor{})
	assert.True(t, svc.FromText("I like long walks.").Empty())
}
