package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

// rankedIndex returns canned results and remembers the last query.
type rankedIndex struct {
	fakeIndex
	results   []domain.SearchResult
	lastQuery string
	lastLimit int
}

func (r *rankedIndex) Search(_ context.Context, query string, limit int) ([]domain.SearchResult, error) {
	r.lastQuery = query
	r.lastLimit = limit
	return r.results, nil
}

func TestNewSearchService_RequiresIndex(t *testing.T) {
	_, err := NewSearchService(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_Delegates(t *testing.T) {
	idx := &rankedIndex{results: []domain.SearchResult{{ChunkID: "c1", Score: 3}}}
	svc, err := NewSearchService(idx)
	require.NoError(t, err)

	results, err := svc.Search(context.Background(), "relatório anual", 5)
	require.NoError(t, err)

	assert.Len(t, results, 1)
	assert.Equal(t, "relatório anual", idx.lastQuery)
	assert.Equal(t, 5, idx.lastLimit)
}

func TestSearch_RejectsBlankQuery(t *testing.T) {
	svc, err := NewSearchService(&rankedIndex{})
	require.NoError(t, err)

	_, err = svc.Search(context.Background(), "   \t ", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
