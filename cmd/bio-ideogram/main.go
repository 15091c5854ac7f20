package main

// See doc.go for documentation

import (
	"flag"
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/ideogram/ideogram"
	"gonum.org/v1/plot/vg"
	"v.io/x/lib/cmdline"
)

// registerInputFlags adds the flags shared by all subcommands.
func registerInputFlags(fs *flag.FlagSet) *ideogramFlags {
	f := &ideogramFlags{opts: ideogram.DefaultOpts}
	fs.StringVar(&f.chromChangesPath, "chrom-changes", defaultChromChangesPath, "Chrom changes table (9 tab-separated columns, no header)")
	fs.StringVar(&f.noMatchPath, "no-match", defaultNoMatchPath, "No match table (6 tab-separated columns, no header)")
	fs.StringVar(&f.chromSizesPath, "chrom-sizes", "", "UCSC chrom.sizes file or samtools .fai index with the chromosome lengths. By default, hg19 is used")
	fs.StringVar(&f.headerPath, "header", "", "SAM or BAM file whose header defines the chromosome lengths. Overrides --chrom-sizes")
	fs.StringVar(&f.chroms, "chroms", "", `Comma-separated chromosomes to draw, top row last.
If empty, all chromosomes of --header or --chrom-sizes are drawn in file order,
or chr1..chr22,chrX,chrM,chrY for the default hg19 lengths.`)
	fs.StringVar(&f.opts.SourceChrom, "source-chrom", f.opts.SourceChrom, "Chromosome the reads were first aligned to")
	fs.StringVar(&f.opts.SourceLabel, "source-label", "", `Y axis label of the source chromosome in the no match panel.
If empty, it is derived from --source-chrom, e.g. "Chr Y" for chrY`)
	fs.Float64Var(&f.opts.XMin, "xmin", f.opts.XMin, "Lower bound of the source chromosome window in the no match panel")
	fs.Float64Var(&f.opts.XMax, "xmax", f.opts.XMax, "Upper bound of the source chromosome window in the no match panel")
	fs.BoolVar(&f.opts.ConnectPairs, "connect", false, "Connect the two points of each chrom change with a line")
	return f
}

func newCmdPlot() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "plot",
		Short: "Draw the no match and chrom changes ideograms into a figure",
	}
	f := registerInputFlags(&cmd.Flags)
	output := cmd.Flags.String("output", "ideogram.png", "Figure path. The format (png, svg, pdf, eps, jpg, tiff) is chosen by the suffix")
	width := cmd.Flags.Float64("width", 10, "Figure width, in inches")
	height := cmd.Flags.Float64("height", 12, "Figure height, in inches")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("plot takes no arguments, but got %v", argv)
		}
		if *width <= 0 || *height <= 0 {
			return fmt.Errorf("figure size must be positive, but got %vx%v", *width, *height)
		}
		return plotFigure(vcontext.Background(), f, *output, vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch)
	})
	return cmd
}

func newCmdPoints() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "points",
		Short: "Write the points of both ideograms as TSV",
	}
	f := registerInputFlags(&cmd.Flags)
	output := cmd.Flags.String("output", "ideogram.points.tsv", "Output path. A .gz suffix compresses the output")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("points takes no arguments, but got %v", argv)
		}
		return writePoints(vcontext.Background(), f, *output)
	})
	return cmd
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-ideogram",
			Short:    "Draw ideograms of chrY reads that changed chromosome or found no match",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdPlot(),
				newCmdPoints(),
			},
		})
}
