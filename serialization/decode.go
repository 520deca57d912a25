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

// Decode reads a single object from the path into the pointer x. Compression
// and encoding are determined from the file extension as in NewDecoder.
func Decode(path string, x interface{}) (err error) {
	dec, err := NewDecoder(path)
	if err != nil {
		return err
	}
	defer errors.Defer(&err, dec.Close)
	return dec.Decode(x)
}

// Decoder is an interface that matches gob.Decoder and json.Decoder
type Decoder interface {
	// Decode extracts an object from the stream
	Decode(interface{}) error
}

// DecodeCloser is a decoder that can also close its underlying stream
type DecodeCloser struct {
	decoder Decoder
	closers []io.Closer
}

// Decode extracts the next object from the underlying stream
func (d *DecodeCloser) Decode(x interface{}) error {
	return d.decoder.Decode(x)
}

// Close closes the underlying stream
func (d *DecodeCloser) Close() error {
	var err error
	for i := len(d.closers) - 1; i >= 0; i-- {
		err = errors.Combine(err, d.closers[i].Close())
	}
	return err
}

// NewDecoder opens the specified path and returns a decoder that reads in the
// format implied by the file extension: .json is decoded as JSON, anything
// else as gob. If the path ends with .gz the contents will be decompressed
// first. Multiple objects may be decoded sequentially from the same stream, in
// the order they were encoded.
func NewDecoder(path string) (*DecodeCloser, error) {
	var r io.ReadCloser
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	closers := []io.Closer{r}

	inpath := path
	// Switch on compression
	if strings.HasSuffix(path, ".gz") {
		path = strings.TrimSuffix(path, ".gz")
		gz, err := gzip.NewReader(r)
		if err != nil {
			r.Close()
			return nil, errors.Wrapf(err, "error loading %s", inpath)
		}
		r = gz
		closers = append(closers, gz)
	}

	// Switch on encoding
	var d Decoder
	switch {
	case strings.HasSuffix(path, ".json"):
		d = json.NewDecoder(r)
	default:
		d = gob.NewDecoder(r)
	}

	return &DecodeCloser{
		decoder: d,
		closers: closers,
	}, nil
}
