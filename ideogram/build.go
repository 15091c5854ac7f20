package ideogram

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/ideogram/encoding/readtable"
	"github.com/grailbio/ideogram/genome"
)

// Panel names, as written to point tables.
const (
	SingleChromosomePanel = "no_match"
	ChromChangesPanel     = "chrom_changes"
)

// singleRow is the row of the single chromosome panel.
const singleRow = 1

// SingleChromosome builds the panel of no match reads on opts.SourceChrom:
// one point per distinct start position, on a single row labeled
// opts.SourceLabel (by default derived from opts.SourceChrom, as is the
// title). The x window is fixed by opts, not derived from the data.
func SingleChromosome(rows []readtable.NoMatch, opts Opts) *Panel {
	positions := UniquePositions(readtable.YPositions(rows))
	log.Printf("%s: %d distinct positions among %d reads", SingleChromosomePanel, len(positions), len(rows))
	p := &Panel{
		Name:   SingleChromosomePanel,
		Title:  fmt.Sprintf("An ideogram of read locations for chromosome %s ~ no matches file", opts.sourceSuffix()),
		XLabel: "Starting BP location of read",
		YLabel: "Chromosome",
		YTicks: []Tick{{0, ""}, {0.5, ""}, {singleRow, opts.sourceLabel()}, {1.5, ""}, {2, ""}},
		X:      Window{opts.XMin, opts.XMax},
		Y:      Window{0, 2},
		Points: make([]Point, len(positions)),
	}
	for i, pos := range positions {
		p.Points[i] = Point{Chrom: opts.SourceChrom, Row: singleRow, Pos: float64(pos)}
	}
	return p
}

// ChromChanges builds the panel of reads that moved from opts.SourceChrom to
// another chromosome. Every chromosome of the assembly is drawn as a track at
// its index row, and every row of the table yields two points: the source
// position on the source chromosome, and the new position on the ChangeTo
// chromosome. It returns an error if the source chromosome or any ChangeTo
// chromosome is not in the assembly.
func ChromChanges(rows []readtable.ChromChange, a genome.Assembly, opts Opts) (*Panel, error) {
	idx, err := a.Index()
	if err != nil {
		return nil, err
	}
	srcRow, err := idx.Row(opts.SourceChrom)
	if err != nil {
		return nil, errors.E(err, "source chromosome")
	}
	p := &Panel{
		Name:   ChromChangesPanel,
		Title:  "Ideogram for change chroms file",
		XLabel: "Starting Base Position",
		YLabel: "Chromosome",
		Y:      Window{0, float64(idx.Len() + 1)},
		Tracks: make([]Track, len(a.Chroms)),
		YTicks: make([]Tick, len(a.Chroms)),
		Points: make([]Point, 0, 2*len(rows)),
	}
	for i, c := range a.Chroms {
		p.Tracks[i] = Track{Chrom: c.Name, Row: i + 1, Length: c.Length}
		p.YTicks[i] = Tick{Value: float64(i + 1), Label: c.Name}
	}
	for _, r := range rows {
		dstRow, err := idx.Row(r.ChangeTo)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("read %s", r.ReadID))
		}
		from := len(p.Points)
		p.Points = append(p.Points,
			Point{ReadID: r.ReadID, Chrom: opts.SourceChrom, Row: float64(srcRow), Pos: float64(r.YStart)},
			Point{ReadID: r.ReadID, Chrom: r.ChangeTo, Row: float64(dstRow), Pos: float64(r.Start)})
		if opts.ConnectPairs {
			p.Links = append(p.Links, Link{From: from, To: from + 1})
		}
	}
	log.Printf("%s: %d points on %d chromosomes", ChromChangesPanel, len(p.Points), len(p.Tracks))
	return p, nil
}
