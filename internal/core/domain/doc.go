// Package domain contains the core types of the conversion pipeline:
// source descriptors, document chunks, batches and the run report.
// It has no dependencies on adapters and performs no I/O.
package domain
