package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

func init() {
	logger.SetOutput(&strings.Builder{})
}

// fakeRegistry serves canned text per source path.
type fakeRegistry struct {
	texts map[string]string // path -> text; missing path fails extraction
}

func (f *fakeRegistry) Extract(_ context.Context, src domain.SourceDescriptor) (string, error) {
	text, ok := f.texts[src.Path]
	if !ok {
		return "", fmt.Errorf("%s: %w", src.Filename, domain.ErrInvalidInput)
	}
	return text, nil
}

func (f *fakeRegistry) Register(driven.Extractor) {}

func (f *fakeRegistry) SupportedTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeTXT}
}

// fakeWriter collects written batches in memory.
type fakeWriter struct {
	batches []*domain.Batch
	failOn  int // 1-based write that fails; 0 never fails
}

func (f *fakeWriter) Write(_ context.Context, b *domain.Batch) (string, error) {
	if f.failOn > 0 && len(f.batches)+1 == f.failOn {
		return "", fmt.Errorf("disk full: %w", domain.ErrWrite)
	}
	f.batches = append(f.batches, b)
	return fmt.Sprintf("out/batch_%04d.json", len(f.batches)), nil
}

// fakeIndex records which batches were indexed.
type fakeIndex struct {
	indexed []string // artifact paths
	err     error
}

func (f *fakeIndex) IndexBatch(_ context.Context, _ *domain.Batch, artifactPath string) error {
	if f.err != nil {
		return f.err
	}
	f.indexed = append(f.indexed, artifactPath)
	return nil
}

func (f *fakeIndex) Search(context.Context, string, int) ([]domain.SearchResult, error) {
	return nil, nil
}

func (f *fakeIndex) Close() error { return nil }

// feed returns a closed channel preloaded with descriptors for the paths.
func feed(paths ...string) <-chan domain.SourceDescriptor {
	ch := make(chan domain.SourceDescriptor, len(paths))
	for _, p := range paths {
		ch <- domain.NewSourceDescriptor(p)
	}
	close(ch)
	return ch
}

func TestNewConvertService_RequiresDependencies(t *testing.T) {
	w := &fakeWriter{}
	r := &fakeRegistry{}

	_, err := NewConvertService(nil, w, nil, 4000, 1<<20)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewConvertService(r, nil, nil, 4000, 1<<20)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewConvertService(r, w, nil, 4000, 1<<20)
	assert.NoError(t, err)
}

func TestRun_ConvertsSources(t *testing.T) {
	reg := &fakeRegistry{texts: map[string]string{
		"/in/a.txt": "first document body",
		"/in/b.txt": "second document body",
	}}
	w := &fakeWriter{}
	svc, err := NewConvertService(reg, w, nil, 4000, 1<<20)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), feed("/in/a.txt", "/in/b.txt"))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 2, report.Chunks)
	assert.Empty(t, report.Skipped)
	require.Len(t, w.batches, 1)
	assert.Len(t, w.batches[0].Documents, 2)
	assert.Equal(t, []string{"out/batch_0001.json"}, report.Artifacts)
}

func TestRun_SplitsLongDocument(t *testing.T) {
	reg := &fakeRegistry{texts: map[string]string{
		"/in/long.txt": strings.Repeat("palavra ", 100), // 800 chars
	}}
	w := &fakeWriter{}
	svc, err := NewConvertService(reg, w, nil, 300, 1<<20)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), feed("/in/long.txt"))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Greater(t, report.Chunks, 1)
	require.Len(t, w.batches, 1)
	// Split chunks are indexed from one.
	assert.Equal(t, 1, w.batches[0].Documents[0].ChunkIndex)
}

func TestRun_SkipsFailingSources(t *testing.T) {
	reg := &fakeRegistry{texts: map[string]string{
		"/in/good.txt":  "usable content",
		"/in/empty.txt": "   \n\t  ",
	}}
	w := &fakeWriter{}
	svc, err := NewConvertService(reg, w, nil, 4000, 1<<20)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), feed("/in/bad.txt", "/in/empty.txt", "/in/good.txt"))
	require.NoError(t, err)

	// Extraction and empty-content failures skip the source; the rest
	// of the run is unaffected.
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Chunks)
	require.Len(t, report.Skipped, 2)
	assert.Equal(t, "bad.txt", report.Skipped[0].Source.Filename)
	assert.Equal(t, "empty.txt", report.Skipped[1].Source.Filename)
}

func TestRun_WriterFailureAborts(t *testing.T) {
	reg := &fakeRegistry{texts: map[string]string{"/in/a.txt": "content"}}
	w := &fakeWriter{failOn: 1}
	svc, err := NewConvertService(reg, w, nil, 4000, 1<<20)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), feed("/in/a.txt"))
	assert.ErrorIs(t, err, domain.ErrWrite)
	assert.Empty(t, report.Artifacts)
}

func TestRun_IndexesWrittenBatches(t *testing.T) {
	reg := &fakeRegistry{texts: map[string]string{"/in/a.txt": "indexável"}}
	w := &fakeWriter{}
	idx := &fakeIndex{}
	svc, err := NewConvertService(reg, w, idx, 4000, 1<<20)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), feed("/in/a.txt"))
	require.NoError(t, err)

	assert.Equal(t, report.Artifacts, idx.indexed)
}

func TestRun_IndexFailureAborts(t *testing.T) {
	reg := &fakeRegistry{texts: map[string]string{"/in/a.txt": "content"}}
	w := &fakeWriter{}
	idx := &fakeIndex{err: errors.New("index locked")}
	svc, err := NewConvertService(reg, w, idx, 4000, 1<<20)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), feed("/in/a.txt"))
	assert.Error(t, err)
	// The artifact was written before indexing failed.
	assert.Len(t, report.Artifacts, 1)
}

func TestRun_NoSources(t *testing.T) {
	reg := &fakeRegistry{}
	w := &fakeWriter{}
	svc, err := NewConvertService(reg, w, nil, 4000, 1<<20)
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), feed())
	require.NoError(t, err)

	assert.Zero(t, report.Processed)
	assert.Empty(t, w.batches)
}

func TestRun_CancelledContext(t *testing.T) {
	reg := &fakeRegistry{texts: map[string]string{"/in/a.txt": "content"}}
	w := &fakeWriter{}
	svc, err := NewConvertService(reg, w, nil, 4000, 1<<20)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Run(ctx, feed("/in/a.txt"))
	assert.ErrorIs(t, err, context.Canceled)
}
