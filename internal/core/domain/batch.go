package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Batch is a bounded collection of chunks destined for one output artifact.
//
// A batch is opened empty, grows by Append in emission order, and is sealed
// before it is handed to a writer. The batch tracks its own serialized size
// as chunks are appended; CreatedAt is truncated to whole seconds so the
// envelope encoding has a stable length.
type Batch struct {
	// ID is the unique batch identifier, assigned when the batch is opened.
	ID string `json:"batch_id"`

	// CreatedAt is the UTC open time.
	CreatedAt time.Time `json:"created_at"`

	// Documents holds the chunks in emission order.
	Documents []DocumentChunk `json:"documents"`

	wireSize int
	sealed   bool
}

// OpenBatch creates a new empty batch. The initial wire size is the
// encoded size of the empty envelope.
func OpenBatch() (*Batch, error) {
	b := &Batch{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Documents: []DocumentChunk{},
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	b.wireSize = len(data)
	return b, nil
}

// WireSize returns the exact serialized byte size of the batch as it stands.
func (b *Batch) WireSize() int {
	return b.wireSize
}

// Append adds a chunk to the batch. encodedSize must be the byte length of
// the chunk's JSON encoding; the caller obtains it from the size estimator
// so the batch never re-serializes its contents.
func (b *Batch) Append(c DocumentChunk, encodedSize int) error {
	if b.sealed {
		return ErrBatchSealed
	}
	if len(b.Documents) > 0 {
		b.wireSize++ // element separator
	}
	b.wireSize += encodedSize
	b.Documents = append(b.Documents, c)
	return nil
}

// Seal closes the batch. A sealed batch rejects further appends.
func (b *Batch) Seal() {
	b.sealed = true
}

// Sealed reports whether the batch has been closed.
func (b *Batch) Sealed() bool {
	return b.sealed
}
