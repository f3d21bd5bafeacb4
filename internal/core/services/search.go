package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
)

// SearchService answers ranked term queries against the chunk index.
type SearchService struct {
	index driven.ChunkIndex
}

// NewSearchService creates the service.
func NewSearchService(index driven.ChunkIndex) (*SearchService, error) {
	if index == nil {
		return nil, fmt.Errorf("%w: chunk index is required", domain.ErrInvalidInput)
	}
	return &SearchService{index: index}, nil
}

// Search validates the query and delegates to the index.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	return s.index.Search(ctx, query, limit)
}
