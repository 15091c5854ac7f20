package readtable

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// ChromChangeColumns lists the columns of a chrom changes file, in order.
var ChromChangeColumns = []string{
	"Read ID", "chromosome", "Y Starting Base Position", "Percent Match", "Second Position",
	"ChangeTo", "Starting Base Position", "Percent Match2", "Second Position2",
}

// NoMatchColumns lists the columns of a no match file, in order.
var NoMatchColumns = []string{
	"Read ID", "chromosome", "Y Starting Base Position", "Percent Match", "Second position",
	"Genome w/out y",
}

// ChromChange is one row of a chrom changes file: a read that aligned to
// chrY in the first pass and to ChangeTo in the second.
//
// The percent match and second position columns are kept verbatim; they are
// not used for drawing. Positions are decimal; leading zeros are allowed and
// do not change the base.
type ChromChange struct {
	ReadID          string
	Chromosome      string
	YStart          int
	PercentMatch    string
	SecondPosition  string
	ChangeTo        string
	Start           int
	PercentMatch2   string
	SecondPosition2 string
}

// NoMatch is one row of a no match file: a read aligned on chrY that has no
// match in the genome without chrY. YStart is decimal, as in ChromChange.
type NoMatch struct {
	ReadID         string
	Chromosome     string
	YStart         int
	PercentMatch   string
	SecondPosition string
	GenomeWithoutY string
}

// chromChangeRow is a chrom changes line as read from the file. Positions are
// read as text, since tsv.Reader would parse "0100" as octal.
type chromChangeRow struct {
	ReadID          string `tsv:"Read ID"`
	Chromosome      string `tsv:"chromosome"`
	YStart          string `tsv:"Y Starting Base Position"`
	PercentMatch    string `tsv:"Percent Match"`
	SecondPosition  string `tsv:"Second Position"`
	ChangeTo        string `tsv:"ChangeTo"`
	Start           string `tsv:"Starting Base Position"`
	PercentMatch2   string `tsv:"Percent Match2"`
	SecondPosition2 string `tsv:"Second Position2"`
}

// noMatchRow is a no match line as read from the file.
type noMatchRow struct {
	ReadID         string `tsv:"Read ID"`
	Chromosome     string `tsv:"chromosome"`
	YStart         string `tsv:"Y Starting Base Position"`
	PercentMatch   string `tsv:"Percent Match"`
	SecondPosition string `tsv:"Second position"`
	GenomeWithoutY string `tsv:"Genome w/out y"`
}

// parsePos parses a decimal base position. nRow is 0-based.
func parsePos(s, name, column string, nRow int) (int, error) {
	pos, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.E(errors.Invalid,
			fmt.Sprintf("%s: row %d: column %q: invalid position %q", name, nRow+1, column, s))
	}
	return int(pos), nil
}

// newReader creates a TSV reader that rejects rows whose column count
// differs from len(columns).
func newReader(r io.Reader, columns []string) *tsv.Reader {
	tr := tsv.NewReader(bufio.NewReaderSize(r, 64<<10))
	tr.LazyQuotes = true
	tr.FieldsPerRecord = len(columns)
	return tr
}

// wrapReadErr annotates a row parse failure with the table name, and turns a
// column count mismatch into an Invalid error.
func wrapReadErr(err error, name string, columns []string, nRow int) error {
	if pe, ok := err.(*csv.ParseError); ok && pe.Err == csv.ErrFieldCount {
		return errors.E(errors.Invalid,
			fmt.Sprintf("%s:%d: expect %d columns (%v)", name, pe.Line, len(columns), columns))
	}
	return errors.E(errors.Invalid, err, fmt.Sprintf("%s: row %d", name, nRow+1))
}

// ParseChromChanges reads all rows of a chrom changes table from r. name is
// used in error messages.
func ParseChromChanges(r io.Reader, name string) ([]ChromChange, error) {
	tr := newReader(r, ChromChangeColumns)
	var rows []ChromChange
	for {
		var line chromChangeRow
		if err := tr.Read(&line); err != nil {
			if err == io.EOF {
				break
			}
			return nil, wrapReadErr(err, name, ChromChangeColumns, len(rows))
		}
		row := ChromChange{
			ReadID:          line.ReadID,
			Chromosome:      line.Chromosome,
			PercentMatch:    line.PercentMatch,
			SecondPosition:  line.SecondPosition,
			ChangeTo:        line.ChangeTo,
			PercentMatch2:   line.PercentMatch2,
			SecondPosition2: line.SecondPosition2,
		}
		var err error
		if row.YStart, err = parsePos(line.YStart, name, ChromChangeColumns[2], len(rows)); err != nil {
			return nil, err
		}
		if row.Start, err = parsePos(line.Start, name, ChromChangeColumns[6], len(rows)); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseNoMatches reads all rows of a no match table from r. name is used in
// error messages.
func ParseNoMatches(r io.Reader, name string) ([]NoMatch, error) {
	tr := newReader(r, NoMatchColumns)
	var rows []NoMatch
	for {
		var line noMatchRow
		if err := tr.Read(&line); err != nil {
			if err == io.EOF {
				break
			}
			return nil, wrapReadErr(err, name, NoMatchColumns, len(rows))
		}
		yStart, err := parsePos(line.YStart, name, NoMatchColumns[2], len(rows))
		if err != nil {
			return nil, err
		}
		rows = append(rows, NoMatch{
			ReadID:         line.ReadID,
			Chromosome:     line.Chromosome,
			YStart:         yStart,
			PercentMatch:   line.PercentMatch,
			SecondPosition: line.SecondPosition,
			GenomeWithoutY: line.GenomeWithoutY,
		})
	}
	return rows, nil
}

// readFile opens path, decompressing it if its suffix says so, and passes
// the contents to parse.
func readFile(ctx context.Context, path string, parse func(io.Reader) error) (err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return errors.E(err, "open", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		// Decompression errors such as a truncated gzip trailer surface in
		// Close.
		defer func() {
			if e := u.Close(); e != nil && err == nil {
				err = errors.E(e, "decompress", path)
			}
		}()
		r = u
	}
	return parse(r)
}

// ReadChromChanges reads a chrom changes file.
func ReadChromChanges(ctx context.Context, path string) (rows []ChromChange, err error) {
	err = readFile(ctx, path, func(r io.Reader) error {
		var e error
		rows, e = ParseChromChanges(r, path)
		return e
	})
	if err != nil {
		return nil, err
	}
	log.Printf("%s: read %d chrom change rows", path, len(rows))
	return rows, nil
}

// ReadNoMatches reads a no match file.
func ReadNoMatches(ctx context.Context, path string) (rows []NoMatch, err error) {
	err = readFile(ctx, path, func(r io.Reader) error {
		var e error
		rows, e = ParseNoMatches(r, path)
		return e
	})
	if err != nil {
		return nil, err
	}
	log.Printf("%s: read %d no match rows", path, len(rows))
	return rows, nil
}

// ByReadID indexes rows by read ID. Read IDs are expected to be unique; if
// they are not, the last row wins.
func ByReadID(rows []ChromChange) map[string]ChromChange {
	m := make(map[string]ChromChange, len(rows))
	for _, row := range rows {
		if _, ok := m[row.ReadID]; ok {
			log.Debug.Printf("duplicate read ID %s", row.ReadID)
		}
		m[row.ReadID] = row
	}
	return m
}

// YPositions returns the chrY start position of every row, in input order.
func YPositions(rows []NoMatch) []int {
	pos := make([]int, len(rows))
	for i, row := range rows {
		pos[i] = row.YStart
	}
	return pos
}
