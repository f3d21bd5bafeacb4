package domain

import "path/filepath"

// SourceDescriptor identifies the origin of a document.
// It is created once per discovered input file and never mutated;
// all chunks cut from the same document share one descriptor by reference.
type SourceDescriptor struct {
	// Path is the absolute path of the input file.
	Path string

	// Filename is the base name of the input file.
	Filename string

	// Type is the declared file type derived from the extension.
	Type FileType
}

// NewSourceDescriptor builds a descriptor for the given path.
// The path is made absolute when possible; a path that cannot be
// resolved is kept as given.
func NewSourceDescriptor(path string) SourceDescriptor {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return SourceDescriptor{
		Path:     path,
		Filename: filepath.Base(path),
		Type:     FileTypeFromPath(path),
	}
}
