package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	arg "github.com/alexflint/go-arg"
	humanize "github.com/dustin/go-humanize"

	"github.com/kiteco/imageset"
)

func fail(msg interface{}, parts ...interface{}) {
	fmt.Fprintf(os.Stderr, fmt.Sprintf("%v", msg)+"\n", parts...)
	os.Exit(1)
}

func main() {
	var args struct {
		ImageDir string `arg:"positional,required"`
		Output   string `arg:"positional,required"`
		Size     int    `arg:"positional,required"`
	}

	parser, err := arg.NewParser(arg.Config{Program: "imageset"}, &args)
	if err != nil {
		fail(err)
	}
	if err := parser.Parse(os.Args[1:]); err != nil {
		if err == arg.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		parser.WriteUsage(os.Stderr)
		fail(err)
	}
	if args.Size <= 0 {
		parser.WriteUsage(os.Stderr)
		fail("SIZE must be positive, got %d", args.Size)
	}

	// Ctrl-C stops the build at the next record and saves what has been
	// accumulated so far.
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	opts := imageset.DefaultBuildOptions
	opts.Rows = args.Size
	opts.Cols = args.Size

	if err := imageset.Build(ctx, args.ImageDir, args.Output, opts); err != nil {
		fail(err)
	}
	if ctx.Err() != nil {
		return
	}

	split, err := imageset.LoadSplit(args.Output, imageset.DefaultSplitOptions)
	if err != nil {
		fail(err)
	}

	if info, err := os.Stat(args.Output); err == nil {
		fmt.Printf("dataset file: %s (%s)\n", args.Output, humanize.Bytes(uint64(info.Size())))
	}
	fmt.Printf("training records: %s\n", humanize.Comma(int64(len(split.TrainingImages))))
	fmt.Printf("testing records:  %s\n", humanize.Comma(int64(len(split.TestingImages))))
	fmt.Printf("first training labels: %v\n", head(split.TrainingLabels, 5))
	fmt.Printf("first testing labels:  %v\n", head(split.TestingLabels, 5))
}

func head(labels []int, n int) []int {
	if len(labels) < n {
		n = len(labels)
	}
	return labels[:n]
}
