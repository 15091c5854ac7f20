package genome

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// AssemblyFromHeader builds an assembly from the reference dictionary (@SQ
// lines) of a SAM header, in header order.
func AssemblyFromHeader(h *sam.Header, name string) (Assembly, error) {
	refs := h.Refs()
	if len(refs) == 0 {
		return Assembly{}, errors.Errorf("%s: header has no reference sequences", name)
	}
	a := Assembly{Name: name, Chroms: make([]Chrom, len(refs))}
	for i, ref := range refs {
		a.Chroms[i] = Chrom{Name: ref.Name(), Length: ref.Len()}
	}
	return a, nil
}

// ParseHeader reads the header of a SAM (isBAM=false) or BAM (isBAM=true)
// stream and returns its assembly.
func ParseHeader(r io.Reader, name string, isBAM bool) (Assembly, error) {
	var h *sam.Header
	if isBAM {
		br, err := bam.NewReader(r, 1)
		if err != nil {
			return Assembly{}, errors.Wrapf(err, "%s: failed to read BAM header", name)
		}
		defer br.Close() // nolint: errcheck
		h = br.Header()
	} else {
		sr, err := sam.NewReader(r)
		if err != nil {
			return Assembly{}, errors.Wrapf(err, "%s: failed to read SAM header", name)
		}
		h = sr.Header()
	}
	return AssemblyFromHeader(h, name)
}

// ReadHeader reads the assembly from the header of a .sam or .bam file. The
// format is chosen by the file suffix.
func ReadHeader(ctx context.Context, path string) (a Assembly, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return Assembly{}, errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.Wrapf(e, "close %s", path)
		}
	}()
	a, err = ParseHeader(in.Reader(ctx), assemblyName(path), strings.HasSuffix(path, ".bam"))
	if err == nil {
		log.Printf("%s: read %d reference sequences from header", path, len(a.Chroms))
	}
	return a, err
}
