package ideogram

import (
	"io"

	"github.com/grailbio/base/tsv"
)

// WritePoints writes the points of the panels to w as TSV, one line per
// point, with a header line. Columns: panel, read_id, chrom, row, pos. Points
// without a read ID (e.g. deduplicated positions) have read_id ".".
func WritePoints(w io.Writer, panels ...*Panel) error {
	out := tsv.NewWriter(w)
	for _, col := range []string{"panel", "read_id", "chrom", "row", "pos"} {
		out.WriteString(col)
	}
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, p := range panels {
		for _, pt := range p.Points {
			readID := pt.ReadID
			if readID == "" {
				readID = "."
			}
			out.WriteString(p.Name)
			out.WriteString(readID)
			out.WriteString(pt.Chrom)
			out.WriteInt64(int64(pt.Row))
			out.WriteInt64(int64(pt.Pos))
			if err := out.EndLine(); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}
