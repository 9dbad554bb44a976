// Package bamio opens alignment containers (BAM or SAM, local or S3)
// and exposes their records through a scanner suited to streaming
// consumers.  It is the thin boundary between the hts readers and the
// complexity estimator, which only needs an ordered record stream.
package bamio

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
)

// Format identifies the container format of an alignment file.
type Format int

const (
	// InferFromPath selects the format from the file extension.
	InferFromPath Format = iota
	// SAM is the text format.
	SAM
	// BAM is the BGZF-compressed binary format.
	BAM
)

// InferFormat returns the Format implied by the path's extension.
// CRAM is called out explicitly: there is no CRAM codec in this
// stack, so .cram inputs must be converted to BAM first.
func InferFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sam":
		return SAM, nil
	case ".bam":
		return BAM, nil
	case ".cram":
		return InferFromPath, errors.E("CRAM is not supported, convert to BAM first:", path)
	default:
		return InferFromPath, errors.E("cannot infer alignment format, expected a .sam or .bam extension:", path)
	}
}

// recordReader is the part of the hts readers the scanner needs.
// Both *bam.Reader and *sam.Reader satisfy it.
type recordReader interface {
	Read() (*sam.Record, error)
	Header() *sam.Header
}

// Reader scans records from one alignment file in file order.  It
// implements complexity.RecordSource.
type Reader struct {
	ctx    context.Context
	in     file.File
	reader recordReader
	rec    *sam.Record
	err    error
	done   bool
}

// Open opens the alignment file at path, which may be a local path or
// an S3 URL.  With format InferFromPath the container format is taken
// from the extension.
func Open(ctx context.Context, path string, format Format) (*Reader, error) {
	if format == InferFromPath {
		var err error
		if format, err = InferFormat(path); err != nil {
			return nil, err
		}
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "could not open alignment file:", path)
	}
	r := &Reader{ctx: ctx, in: in}
	switch format {
	case BAM:
		// Decompression parallelism 1: the estimator is a strict
		// single consumer and provides no read-ahead buffer.
		r.reader, err = bam.NewReader(in.Reader(ctx), 1)
	case SAM:
		r.reader, err = sam.NewReader(in.Reader(ctx))
	}
	if err != nil {
		_ = in.Close(ctx)
		return nil, errors.E(err, "could not read alignment header:", path)
	}
	return r, nil
}

// Header returns the SAM header of the underlying file.
func (r *Reader) Header() *sam.Header { return r.reader.Header() }

// Scan advances to the next record.  It returns false at end of file
// or on error; Err distinguishes the two.
func (r *Reader) Scan() bool {
	if r.done {
		return false
	}
	rec, err := r.reader.Read()
	if err != nil {
		r.done = true
		if err != io.EOF {
			r.err = err
		}
		return false
	}
	r.rec = rec
	return true
}

// Record returns the record read by the last successful Scan.
func (r *Reader) Record() *sam.Record { return r.rec }

// Err returns the error that stopped scanning, if any.
func (r *Reader) Err() error { return r.err }

// Close releases the underlying readers.  It returns the scan error
// if one occurred, otherwise any close error.
func (r *Reader) Close() error {
	if c, ok := r.reader.(io.Closer); ok {
		if err := c.Close(); err != nil && r.err == nil {
			r.err = err
		}
	}
	if err := r.in.Close(r.ctx); err != nil && r.err == nil {
		r.err = err
	}
	return r.err
}
