// Package scanner drives the parse-and-project pipeline over many conf
// files with a bounded worker pool. It owns the only file I/O in the
// codebase; the conf and project packages stay purely computational.
package scanner
