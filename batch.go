package portrait

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
)

// Pair names a source portrait and the rounded thumbnail made from it.
type Pair struct {
	Input  string
	Output string
}

// DefaultPairs are the portraits used by the visualization.
var DefaultPairs = []Pair{
	{Input: "socrates.jpg", Output: "socrates-rounded.png"},
	{Input: "plato.jpg", Output: "plato-rounded.png"},
	{Input: "aristotle.jpg", Output: "aristotle-rounded.png"},
	{Input: "nietzsche.jpg", Output: "nietzsche-rounded.png"},
	{Input: "descartes.jpg", Output: "descartes-rounded.png"},
}

// Batch rounds a list of portraits, one after the other.
type Batch struct {
	// Dir is the directory that holds both inputs and outputs.
	Dir string

	// Size of every thumbnail.
	Size image.Point

	// Pairs to process, in order.
	Pairs []Pair

	// Out receives the progress messages.
	Out io.Writer
}

// NewBatch returns a batch over [DefaultPairs] at [DefaultSize] in dir.
func NewBatch(dir string, out io.Writer) *Batch {
	return &Batch{
		Dir:   dir,
		Size:  DefaultSize,
		Pairs: slices.Clone(DefaultPairs),
		Out:   out,
	}
}

// Run processes all pairs and returns the number of thumbnails written.
//
// A missing input is reported and skipped. Any other failure stops the run;
// thumbnails written up to that point are left in place.
func (b *Batch) Run() (created int, err error) {
	out := b.Out
	if out == nil {
		out = io.Discard
	}

	for _, pair := range b.Pairs {
		var (
			input  = filepath.Join(b.Dir, pair.Input)
			output = filepath.Join(b.Dir, pair.Output)
		)
		if _, err = os.Stat(input); err != nil {
			logrus.WithError(err).Debugf("portrait: skipping %s", input)
			fmt.Fprintf(out, "Warning: %s not found\n", pair.Input)
			continue
		}

		if err = Transform(input, output, b.Size); err != nil {
			return created, err
		}
		created++
		fmt.Fprintf(out, "Created %s\n", pair.Output)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "All portraits processed!")
	fmt.Fprintln(out, "Move the -rounded.png files to the parent directory to use them.")
	return created, nil
}
