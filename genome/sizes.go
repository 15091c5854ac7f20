package genome

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// ParseSizes reads an assembly from a chrom.sizes file or a samtools .fai
// index. Only the first two columns (name, length) of each line are used, so
// both formats are accepted. Chromosomes keep the order of the file. Blank
// lines and lines starting with '#' are skipped.
func ParseSizes(r io.Reader, name string) (Assembly, error) {
	a := Assembly{Name: name}
	seen := map[string]int{}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return Assembly{}, errors.E(errors.Invalid,
				fmt.Sprintf("%s:%d: expect 'name length', but found %q", name, lineno, line))
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil || length <= 0 {
			return Assembly{}, errors.E(errors.Invalid,
				fmt.Sprintf("%s:%d: invalid length %q", name, lineno, fields[1]))
		}
		if prev, ok := seen[fields[0]]; ok {
			return Assembly{}, errors.E(errors.Invalid,
				fmt.Sprintf("%s:%d: chromosome %s already defined at line %d", name, lineno, fields[0], prev))
		}
		seen[fields[0]] = lineno
		a.Chroms = append(a.Chroms, Chrom{Name: fields[0], Length: length})
	}
	if err := scanner.Err(); err != nil {
		return Assembly{}, errors.E(err, name)
	}
	if len(a.Chroms) == 0 {
		return Assembly{}, errors.E(errors.Invalid, fmt.Sprintf("%s: no chromosomes found", name))
	}
	return a, nil
}

// ReadSizes reads a chrom.sizes or .fai file. Compressed files are
// decompressed based on their suffix.
func ReadSizes(ctx context.Context, path string) (a Assembly, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return Assembly{}, errors.E(err, "open chromosome sizes", path)
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
	a, err = ParseSizes(r, assemblyName(path))
	if err == nil {
		log.Printf("%s: read %d chromosome lengths", path, len(a.Chroms))
	}
	return a, err
}

// assemblyName derives a readable assembly name from a path, e.g.
// "/ref/hg38.chrom.sizes" -> "hg38".
func assemblyName(path string) string {
	base := filepath.Base(path)
	for _, suffix := range []string{".gz", ".fai", ".sizes", ".chrom", ".fa", ".fasta", ".bam", ".sam"} {
		base = strings.TrimSuffix(base, suffix)
	}
	return base
}
