package domain

import (
	"path/filepath"
	"strings"
)

// FileType is the declared format of a source document.
// The set of recognised types is closed; anything else is FileTypeUnknown.
type FileType string

const (
	// FileTypeTXT is a plain text file.
	FileTypeTXT FileType = "txt"
	// FileTypePDF is a PDF document.
	FileTypePDF FileType = "pdf"
	// FileTypeDOCX is an Office Open XML word processing document.
	FileTypeDOCX FileType = "docx"
	// FileTypeDOC is a legacy binary Word document. Extraction is best effort.
	FileTypeDOC FileType = "doc"
	// FileTypeUnknown is any extension outside the recognised set.
	FileTypeUnknown FileType = "unknown"
)

// FileTypeFromPath derives the file type from the path extension.
func FileTypeFromPath(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FileTypeTXT
	case ".pdf":
		return FileTypePDF
	case ".docx":
		return FileTypeDOCX
	case ".doc":
		return FileTypeDOC
	default:
		return FileTypeUnknown
	}
}

// Supported reports whether the type can be converted.
func (t FileType) Supported() bool {
	switch t {
	case FileTypeTXT, FileTypePDF, FileTypeDOCX, FileTypeDOC:
		return true
	case FileTypeUnknown:
		return false
	}
	return false
}

// String returns the wire representation of the type.
func (t FileType) String() string {
	return string(t)
}
