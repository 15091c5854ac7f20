package genome

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// Chrom is a single reference sequence.
type Chrom struct {
	Name   string
	Length int
}

// Assembly is an ordered list of chromosomes. The order determines the plot
// rows: the i'th chromosome (0-based) is drawn at row i+1.
type Assembly struct {
	Name   string
	Chroms []Chrom
}

// hg19Lengths are from https://genome.ucsc.edu/goldenpath/help/hg19.chrom.sizes,
// listed in the order chr1-22, chrX, chrM, chrY.
var hg19Lengths = []int{
	249250621, 243199373, 198022430, 191154276, 180915260,
	171115067, 159138663, 146364022, 141213431,
	135534747, 135006516, 133851895, 115169878, 107349540,
	102531392, 90354753, 81195210, 78077248, 59128983,
	63025520, 48129895, 51304566, 155270560, 16571, 59373566,
}

// DefaultNames returns the default chromosome order: chr1..chr22, chrX, chrM,
// chrY.
func DefaultNames() []string {
	names := make([]string, 0, 25)
	for i := 1; i <= 22; i++ {
		names = append(names, fmt.Sprintf("chr%d", i))
	}
	return append(names, "chrX", "chrM", "chrY")
}

// HG19 returns the built-in hg19 assembly.
func HG19() Assembly {
	names := DefaultNames()
	a := Assembly{Name: "hg19", Chroms: make([]Chrom, len(names))}
	for i, name := range names {
		a.Chroms[i] = Chrom{Name: name, Length: hg19Lengths[i]}
	}
	return a
}

// Names returns the chromosome names in assembly order.
func (a Assembly) Names() []string {
	names := make([]string, len(a.Chroms))
	for i, c := range a.Chroms {
		names[i] = c.Name
	}
	return names
}

// Length returns the length of the named chromosome.
func (a Assembly) Length(name string) (int, bool) {
	for _, c := range a.Chroms {
		if c.Name == name {
			return c.Length, true
		}
	}
	return 0, false
}

// Select returns a new assembly that contains exactly the given chromosomes,
// in the given order. Every name must exist in a.
func (a Assembly) Select(names []string) (Assembly, error) {
	sel := Assembly{Name: a.Name, Chroms: make([]Chrom, 0, len(names))}
	var missing []string
	for _, name := range names {
		length, ok := a.Length(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		sel.Chroms = append(sel.Chroms, Chrom{Name: name, Length: length})
	}
	if len(missing) > 0 {
		return Assembly{}, errors.E(errors.Invalid,
			fmt.Sprintf("assembly %s: unknown chromosomes %s", a.Name, strings.Join(missing, ",")))
	}
	return sel, nil
}

// Index returns the name -> row mapping for the assembly.
func (a Assembly) Index() (*Index, error) {
	return NewIndex(a.Names())
}
