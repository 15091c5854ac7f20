package main

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/ideogram/encoding/readtable"
	"github.com/grailbio/ideogram/genome"
	"github.com/grailbio/ideogram/ideogram"
	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/plot/vg"
)

const (
	defaultChromChangesPath = "LP6005636-DNA_H02.chrom_changes.txt"
	defaultNoMatchPath      = "LP6005636-DNA_H02.no_match.sorted.txt"
)

// Collection of options set via cmdline flags
type ideogramFlags struct {
	chromChangesPath string
	noMatchPath      string
	chromSizesPath   string
	headerPath       string
	chroms           string
	opts             ideogram.Opts
}

// loadAssembly returns the chromosomes to draw, in row order.
func loadAssembly(ctx context.Context, f *ideogramFlags) (genome.Assembly, error) {
	var (
		a   genome.Assembly
		err error
	)
	switch {
	case f.headerPath != "":
		a, err = genome.ReadHeader(ctx, f.headerPath)
	case f.chromSizesPath != "":
		a, err = genome.ReadSizes(ctx, f.chromSizesPath)
	default:
		a = genome.HG19()
	}
	if err != nil {
		return genome.Assembly{}, err
	}
	if f.chroms != "" {
		return a.Select(strings.Split(f.chroms, ","))
	}
	return a, nil
}

// buildPanels loads the input tables and builds the no match and chrom
// changes panels, in that order.
func buildPanels(ctx context.Context, f *ideogramFlags) ([]*ideogram.Panel, error) {
	a, err := loadAssembly(ctx, f)
	if err != nil {
		return nil, err
	}
	changes, err := readtable.ReadChromChanges(ctx, f.chromChangesPath)
	if err != nil {
		return nil, err
	}
	noMatches, err := readtable.ReadNoMatches(ctx, f.noMatchPath)
	if err != nil {
		return nil, err
	}
	single := ideogram.SingleChromosome(noMatches, f.opts)
	multi, err := ideogram.ChromChanges(changes, a, f.opts)
	if err != nil {
		return nil, errors.E(err, f.chromChangesPath)
	}
	return []*ideogram.Panel{single, multi}, nil
}

// createOutput opens path for writing and passes the writer to write. The
// output is gzip-compressed if gz is set.
func createOutput(ctx context.Context, path string, gz bool, write func(w io.Writer) error) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	defer func() {
		if e := out.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	if !gz {
		return write(out.Writer(ctx))
	}
	zw := gzip.NewWriter(out.Writer(ctx))
	if err = write(zw); err != nil {
		return err
	}
	return zw.Close()
}

func plotFigure(ctx context.Context, f *ideogramFlags, outPath string, width, height vg.Length) error {
	format, err := ideogram.FormatFromPath(outPath)
	if err != nil {
		return err
	}
	panels, err := buildPanels(ctx, f)
	if err != nil {
		return err
	}
	err = createOutput(ctx, outPath, false, func(w io.Writer) error {
		return ideogram.WriteFigure(w, format, width, height, panels...)
	})
	if err == nil {
		log.Printf("wrote %s figure to %s", format, outPath)
	}
	return err
}

func writePoints(ctx context.Context, f *ideogramFlags, outPath string) error {
	panels, err := buildPanels(ctx, f)
	if err != nil {
		return err
	}
	err = createOutput(ctx, outPath, strings.HasSuffix(outPath, ".gz"), func(w io.Writer) error {
		return ideogram.WritePoints(w, panels...)
	})
	if err == nil {
		log.Printf("wrote %d+%d points to %s", len(panels[0].Points), len(panels[1].Points), outPath)
	}
	return err
}
