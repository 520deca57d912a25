package imageset

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kiteco/imageset/errors"
	"github.com/kiteco/imageset/serialization"
)

// Dataset holds decoded images alongside their textual and numeric labels.
// The three slices are index-aligned and always the same length.
type Dataset struct {
	Images        []Image
	Labels        []string
	NumericLabels []int
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.Images)
}

func (d *Dataset) add(img Image, rec Record) {
	d.Images = append(d.Images, img)
	d.Labels = append(d.Labels, rec.Label)
	d.NumericLabels = append(d.NumericLabels, rec.NumericLabel)
}

// Save serializes the dataset to path as three sequential values in fixed
// order: images, labels, numeric labels. The encoding follows the path
// extension as described in the serialization package; the conventional .dat
// output is a bare gob stream with no header or version.
func (d *Dataset) Save(path string) (err error) {
	enc, err := serialization.NewEncoder(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	defer errors.Defer(&err, enc.Close)

	for _, x := range []interface{}{d.Images, d.Labels, d.NumericLabels} {
		if err := enc.Encode(x); err != nil {
			return errors.Wrapf(err, "error writing %s", path)
		}
	}
	return nil
}

// LoadDataset reads back a dataset written by Save, decoding the three
// parallel sequences in the order they were written.
func LoadDataset(path string) (d *Dataset, err error) {
	dec, err := serialization.NewDecoder(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %s", path)
	}
	defer errors.Defer(&err, dec.Close)

	d = &Dataset{}
	for _, x := range []interface{}{&d.Images, &d.Labels, &d.NumericLabels} {
		if err := dec.Decode(x); err != nil {
			return nil, errors.Wrapf(err, "error reading %s", path)
		}
	}
	if len(d.Labels) != d.Len() || len(d.NumericLabels) != d.Len() {
		return nil, errors.Errorf("mismatched sequence lengths in %s: %d images, %d labels, %d numeric labels",
			path, d.Len(), len(d.Labels), len(d.NumericLabels))
	}
	return d, nil
}

// BuildOptions configures Build.
type BuildOptions struct {
	// Rows and Cols give the resolution every image is resized to; zero
	// values fall back to the defaults.
	Rows int
	Cols int
	// Logger receives progress and skip messages; nil suppresses them.
	Logger io.Writer
}

// DefaultBuildOptions are the options used by the imageset command.
var DefaultBuildOptions = BuildOptions{
	Rows:   224,
	Cols:   224,
	Logger: os.Stderr,
}

// progressInterval is the number of records between progress messages.
const progressInterval = 1000

// Build converts the class directory tree rooted at root into a dataset file
// at output. Records are processed sequentially in listing order; an image
// that fails to decode is logged and skipped rather than aborting the run.
// Cancelling ctx stops the loop at the next record boundary and saves
// whatever has been accumulated, returning nil; callers that need to
// distinguish a partial save can inspect ctx.Err().
func Build(ctx context.Context, root, output string, opts BuildOptions) error {
	if opts.Rows <= 0 {
		opts.Rows = DefaultBuildOptions.Rows
	}
	if opts.Cols <= 0 {
		opts.Cols = DefaultBuildOptions.Cols
	}

	records, err := List(root)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.Errorf("no images found in %s", root)
	}

	var d Dataset
	for i, rec := range records {
		if ctx.Err() != nil {
			logf(opts.Logger, "interrupted, saving the %d images loaded so far", d.Len())
			break
		}

		img, err := LoadAndResize(rec.Path, opts.Rows, opts.Cols)
		if err != nil {
			logf(opts.Logger, "skipping: %v", err)
			continue
		}
		d.add(img, rec)

		if (i+1)%progressInterval == 0 || i == len(records)-1 {
			logf(opts.Logger, "%d of %d", i+1, len(records))
		}
	}

	if err := d.Save(output); err != nil {
		return err
	}
	logf(opts.Logger, "saved %d images to %s", d.Len(), output)
	return nil
}

// logf writes a formatted message to w, appending a newline if one is
// missing; a nil writer suppresses output.
func logf(w io.Writer, fstr string, args ...interface{}) {
	if w == nil {
		return
	}
	if !strings.HasSuffix(fstr, "\n") {
		fstr += "\n"
	}
	fmt.Fprintf(w, fstr, args...)
}
