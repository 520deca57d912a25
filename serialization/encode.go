package serialization

import (
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/kiteco/imageset/errors"
)

// Encode writes the object to the path, using the format implied by the file
// extension: .json is encoded as JSON, anything else as gob. The path may
// additionally have a .gz suffix, in which case the stream will be compressed.
func Encode(path string, obj interface{}) (err error) {
	enc, err := NewEncoder(path)
	if err != nil {
		return err
	}
	defer errors.Defer(&err, enc.Close)
	return enc.Encode(obj)
}

// Encoder is an interface that matches gob.Encoder and json.Encoder
type Encoder interface {
	// Encode adds an item to the stream
	Encode(interface{}) error
}

// EncodeCloser is an encoder that can also close its underlying stream
type EncodeCloser struct {
	encoder Encoder
	closers []io.Closer
}

// Encode writes an object to the underlying stream
func (e *EncodeCloser) Encode(x interface{}) error {
	return e.encoder.Encode(x)
}

// Close closes the underlying stream
func (e *EncodeCloser) Close() error {
	var err error
	// close in reverse order so compression flushes before the file
	for i := len(e.closers) - 1; i >= 0; i-- {
		err = errors.Combine(err, e.closers[i].Close())
	}
	return err
}

// NewEncoder opens the specified path and returns an encoder that writes in
// the format implied by the file extension: .json is encoded as JSON, anything
// else as gob. The path may additionally have a .gz suffix, in which case the
// stream will be compressed. Multiple objects may be encoded sequentially onto
// the same stream.
func NewEncoder(path string) (*EncodeCloser, error) {
	var w io.WriteCloser
	w, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	closers := []io.Closer{w}

	// Switch on compression
	if strings.HasSuffix(path, ".gz") {
		path = strings.TrimSuffix(path, ".gz")
		w = gzip.NewWriter(w)
		closers = append(closers, w)
	}

	// Switch on encoding
	var e Encoder
	switch {
	case strings.HasSuffix(path, ".json"):
		e = json.NewEncoder(w)
	default:
		e = gob.NewEncoder(w)
	}

	return &EncodeCloser{
		encoder: e,
		closers: closers,
	}, nil
}
