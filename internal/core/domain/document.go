package domain

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DocumentChunk is a single ingestible unit of text cut from one source document.
//
// ChunkIndex 0 means the whole document fit in one chunk; indices starting at 1
// denote ordered fragments of a document that required splitting. Concatenating
// all chunks of one source in index order reconstructs the extracted text.
type DocumentChunk struct {
	// ID is the globally unique chunk identifier, assigned at creation.
	ID string

	// Source references the descriptor of the origin document.
	// The descriptor is shared across all chunks of the same document.
	Source *SourceDescriptor

	// ChunkIndex is the zero-based ordinal within the source document.
	ChunkIndex int

	// Text is the chunk payload.
	Text string

	// CharCount is the length of Text in characters, fixed at creation.
	CharCount int
}

// NewDocumentChunk creates a chunk for the given source and fragment.
// CharCount is computed once here and never recomputed.
func NewDocumentChunk(source *SourceDescriptor, index int, text string) DocumentChunk {
	return DocumentChunk{
		ID:         uuid.New().String(),
		Source:     source,
		ChunkIndex: index,
		Text:       text,
		CharCount:  utf8.RuneCountInString(text),
	}
}

// chunkRecord is the persisted form of a chunk: the source descriptor
// is flattened into the record.
type chunkRecord struct {
	ID         string `json:"id"`
	SourcePath string `json:"source_path"`
	Filename   string `json:"filename"`
	Filetype   string `json:"filetype"`
	ChunkIndex int    `json:"chunk_index"`
	Text       string `json:"text"`
	CharCount  int    `json:"char_count"`
}

// MarshalJSON encodes the chunk in its flat wire form.
func (c DocumentChunk) MarshalJSON() ([]byte, error) {
	rec := chunkRecord{
		ID:         c.ID,
		ChunkIndex: c.ChunkIndex,
		Text:       c.Text,
		CharCount:  c.CharCount,
	}
	if c.Source != nil {
		rec.SourcePath = c.Source.Path
		rec.Filename = c.Source.Filename
		rec.Filetype = c.Source.Type.String()
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes the flat wire form, rebuilding a source descriptor.
func (c *DocumentChunk) UnmarshalJSON(data []byte) error {
	var rec chunkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	c.ID = rec.ID
	c.Source = &SourceDescriptor{
		Path:     rec.SourcePath,
		Filename: rec.Filename,
		Type:     FileType(rec.Filetype),
	}
	c.ChunkIndex = rec.ChunkIndex
	c.Text = rec.Text
	c.CharCount = rec.CharCount
	return nil
}
