package genome

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/base/errors"
)

// Index maps a chromosome name to its 1-based plot row. It is immutable once
// built.
type Index struct {
	names []string
	rows  map[string]int
}

// NewIndex builds an index over names. names[i] is assigned row i+1. Empty or
// repeated names are rejected.
func NewIndex(names []string) (*Index, error) {
	idx := &Index{
		names: append([]string(nil), names...),
		rows:  make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("chromosome index: empty name at position %d", i))
		}
		if prev, ok := idx.rows[name]; ok {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("chromosome index: %s listed at both row %d and row %d", name, prev, i+1))
		}
		idx.rows[name] = i + 1
	}
	return idx, nil
}

// Len returns the number of chromosomes in the index.
func (idx *Index) Len() int { return len(idx.names) }

// Names returns the chromosome names, ordered by row.
func (idx *Index) Names() []string { return append([]string(nil), idx.names...) }

// Name returns the chromosome at the given 1-based row.
func (idx *Index) Name(row int) (string, bool) {
	if row < 1 || row > len(idx.names) {
		return "", false
	}
	return idx.names[row-1], true
}

// Row returns the plot row of the chromosome. It returns an Invalid error if
// the name is not in the index.
func (idx *Index) Row(name string) (int, error) {
	if row, ok := idx.rows[name]; ok {
		return row, nil
	}
	msg := fmt.Sprintf("unknown chromosome %q", name)
	switch s := idx.suggest(name); len(s) {
	case 0:
	case 1:
		msg += fmt.Sprintf(" (did you mean %q?)", s[0])
	default:
		quoted := make([]string, len(s))
		for i, n := range s {
			quoted[i] = strconv.Quote(n)
		}
		msg += fmt.Sprintf(" (did you mean one of %s?)", strings.Join(quoted, ", "))
	}
	return 0, errors.E(errors.Invalid, msg)
}

// numericSuffix reports whether name ends in a digit, e.g. "chr7" as opposed
// to "chrX".
func numericSuffix(name string) bool {
	return name != "" && unicode.IsDigit(rune(name[len(name)-1]))
}

// suggest returns the indexed names with the smallest edit distance to name,
// in row order. Names farther than half of name's length are never returned.
// Among equally close names, those whose suffix is of the same kind as name's
// (numeric or not) are preferred.
func (idx *Index) suggest(name string) []string {
	limit := len(name)/2 + 1
	bestDist := limit
	var best []string
	for _, n := range idx.names {
		d := matchr.Levenshtein(name, n)
		if d < bestDist {
			best, bestDist = []string{n}, d
		} else if d == bestDist && d < limit {
			best = append(best, n)
		}
	}
	var sameKind []string
	for _, n := range best {
		if numericSuffix(n) == numericSuffix(name) {
			sameKind = append(sameKind, n)
		}
	}
	if len(sameKind) > 0 {
		return sameKind
	}
	return best
}
