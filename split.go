package imageset

import (
	"math/rand"
	"time"

	"github.com/kiteco/imageset/errors"
)

// Split holds a dataset partitioned into training and testing subsets. Only
// numeric labels are carried over.
type Split struct {
	TrainingImages []Image
	TrainingLabels []int
	TestingImages  []Image
	TestingLabels  []int
}

// SplitOptions configures how a dataset is partitioned.
type SplitOptions struct {
	// TestFraction is the proportion of records assigned to the testing
	// subset; training receives floor(N*(1-TestFraction)) records and
	// testing the rest. Must be within [0, 1].
	TestFraction float64
	// Rand is the source for the shuffle; nil uses a fresh time-seeded
	// source, so the partition differs between runs.
	Rand *rand.Rand
}

// DefaultSplitOptions reserve 5% of the records for testing.
var DefaultSplitOptions = SplitOptions{TestFraction: 0.05}

// LoadSplit reads the dataset at path and partitions it at random into
// training and testing subsets.
func LoadSplit(path string, opts SplitOptions) (Split, error) {
	d, err := LoadDataset(path)
	if err != nil {
		return Split{}, err
	}
	return d.Split(opts)
}

// Split partitions the dataset at random: a permutation of the record
// indices is cut at floor(N*(1-TestFraction)), the first part becoming the
// training subset and the remainder the testing subset. Every record lands
// in exactly one subset.
func (d *Dataset) Split(opts SplitOptions) (Split, error) {
	if opts.TestFraction < 0 || opts.TestFraction > 1 {
		return Split{}, errors.Errorf("test fraction %v outside [0, 1]", opts.TestFraction)
	}

	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	indices := make([]int, d.Len())
	for i := range indices {
		indices[i] = i
	}
	r.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	splitPoint := int(float64(d.Len()) * (1 - opts.TestFraction))

	var s Split
	for i, idx := range indices {
		if i < splitPoint {
			s.TrainingImages = append(s.TrainingImages, d.Images[idx])
			s.TrainingLabels = append(s.TrainingLabels, d.NumericLabels[idx])
		} else {
			s.TestingImages = append(s.TestingImages, d.Images[idx])
			s.TestingLabels = append(s.TestingLabels, d.NumericLabels[idx])
		}
	}
	return s, nil
}
