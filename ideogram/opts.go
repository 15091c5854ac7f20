package ideogram

import "strings"

// Opts controls how panels are built.
type Opts struct {
	// SourceChrom is the chromosome the reads were first aligned to. Single
	// chromosome points and the first point of each chrom change pair are
	// placed on its row.
	SourceChrom string
	// SourceLabel is the y tick label of the single chromosome panel. If
	// empty, it is derived from SourceChrom ("chrY" -> "Chr Y").
	SourceLabel string

	// XMin and XMax bound the x axis of the single chromosome panel. Points
	// outside the window are kept in the panel but are not visible.
	XMin, XMax float64

	// ConnectPairs draws a segment between the two points of each chrom
	// change.
	ConnectPairs bool
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	SourceChrom: "chrY",
	XMin:        0.25e7,
	XMax:        0.7e7,
}

// sourceSuffix returns the part of SourceChrom after a "chr" prefix, e.g. "Y"
// for "chrY".
func (o Opts) sourceSuffix() string {
	if len(o.SourceChrom) > 3 && strings.EqualFold(o.SourceChrom[:3], "chr") {
		return o.SourceChrom[3:]
	}
	return o.SourceChrom
}

// sourceLabel returns the y tick label of the source chromosome.
func (o Opts) sourceLabel() string {
	if o.SourceLabel != "" {
		return o.SourceLabel
	}
	return "Chr " + o.sourceSuffix()
}
