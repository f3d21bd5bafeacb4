package domain

// SearchResult is one ranked hit from the chunk index.
type SearchResult struct {
	// ChunkID identifies the matching chunk.
	ChunkID string

	// SourcePath and Filename locate the origin document.
	SourcePath string
	Filename   string

	// Filetype is the declared source type.
	Filetype FileType

	// ChunkIndex is the chunk ordinal within the source document.
	ChunkIndex int

	// CharCount is the chunk text length in characters.
	CharCount int

	// ArtifactPath is the batch file that holds the chunk.
	ArtifactPath string

	// Score is the term-frequency rank; higher is more relevant.
	Score int
}
