package main

import (
	"bytes"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/ideogram/ideogram"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/klauspost/compress/gzip"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

const (
	testChromChanges = "" +
		"r1\tchrY\t2781479\t100\t=\tchr1\t1000000\t99\t=\n" +
		"r2\tchrY\t2790000\t100\t=\tchrX\t2000000\t98\t=\n"
	testNoMatch = "" +
		"n1\tchrY\t3000000\t100\t=\tnone\n" +
		"n2\tchrY\t3000000\t100\t=\tnone\n" +
		"n3\tchrY\t4000000\t100\t=\tnone\n"
)

// writeInputs writes the test tables into dir and returns flags that read
// them.
func writeInputs(t *testing.T, dir, changes, noMatch string) *ideogramFlags {
	f := &ideogramFlags{
		chromChangesPath: filepath.Join(dir, "test.chrom_changes.txt"),
		noMatchPath:      filepath.Join(dir, "test.no_match.sorted.txt"),
		opts:             ideogram.DefaultOpts,
	}
	require.NoError(t, ioutil.WriteFile(f.chromChangesPath, []byte(changes), 0644))
	require.NoError(t, ioutil.WriteFile(f.noMatchPath, []byte(noMatch), 0644))
	return f
}

func TestInputFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := registerInputFlags(fs)
	assert.EQ(t, f.chromChangesPath, defaultChromChangesPath)
	assert.EQ(t, f.noMatchPath, defaultNoMatchPath)
	assert.EQ(t, f.opts, ideogram.DefaultOpts)

	require.NoError(t, fs.Parse([]string{"-no-match=a.txt", "-source-chrom=chrX", "-source-label=Chr X (masked)", "-xmin=10", "-connect", "-chroms=chr1,chrX"}))
	assert.EQ(t, f.noMatchPath, "a.txt")
	assert.EQ(t, f.opts.SourceChrom, "chrX")
	assert.EQ(t, f.opts.SourceLabel, "Chr X (masked)")
	assert.EQ(t, f.opts.XMin, 10.0)
	assert.True(t, f.opts.ConnectPairs)
	assert.EQ(t, f.chroms, "chr1,chrX")
}

func TestLoadAssembly(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	a, err := loadAssembly(ctx, &ideogramFlags{})
	require.NoError(t, err)
	tassert.Equal(t, "hg19", a.Name)
	tassert.Len(t, a.Chroms, 25)

	sizesPath := filepath.Join(tempDir, "mini.chrom.sizes")
	require.NoError(t, ioutil.WriteFile(sizesPath, []byte("chrY\t500\nchr1\t1000\nchrX\t700\n"), 0644))
	a, err = loadAssembly(ctx, &ideogramFlags{chromSizesPath: sizesPath})
	require.NoError(t, err)
	tassert.Equal(t, []string{"chrY", "chr1", "chrX"}, a.Names())

	a, err = loadAssembly(ctx, &ideogramFlags{chromSizesPath: sizesPath, chroms: "chr1,chrY"})
	require.NoError(t, err)
	tassert.Equal(t, []string{"chr1", "chrY"}, a.Names())

	samPath := filepath.Join(tempDir, "mini.sam")
	require.NoError(t, ioutil.WriteFile(samPath, []byte("@SQ\tSN:chr1\tLN:1000\n@SQ\tSN:chrY\tLN:500\n"), 0644))
	a, err = loadAssembly(ctx, &ideogramFlags{chromSizesPath: sizesPath, headerPath: samPath})
	require.NoError(t, err)
	tassert.Equal(t, []string{"chr1", "chrY"}, a.Names())

	_, err = loadAssembly(ctx, &ideogramFlags{chroms: "chr1,chrZ"})
	tassert.Error(t, err)
}

func TestBuildPanels(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	f := writeInputs(t, tempDir, testChromChanges, testNoMatch)

	panels, err := buildPanels(ctx, f)
	require.NoError(t, err)
	require.Len(t, panels, 2)
	tassert.Equal(t, ideogram.SingleChromosomePanel, panels[0].Name)
	tassert.Len(t, panels[0].Points, 2)
	tassert.Equal(t, ideogram.ChromChangesPanel, panels[1].Name)
	tassert.Len(t, panels[1].Points, 4)
	tassert.Len(t, panels[1].PointsOnRow(25), 2)
}

func TestBuildPanelsErrors(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	f := writeInputs(t, tempDir, "r1\tchrY\t1\t100\t=\tchrZ\t5\t99\t=\n", testNoMatch)
	_, err := buildPanels(ctx, f)
	require.Error(t, err)
	tassert.Contains(t, err.Error(), "chrZ")

	// The two tables swapped.
	f = writeInputs(t, tempDir, testNoMatch, testChromChanges)
	_, err = buildPanels(ctx, f)
	require.Error(t, err)

	f = writeInputs(t, tempDir, testChromChanges, testNoMatch)
	f.noMatchPath = filepath.Join(tempDir, "missing.txt")
	_, err = buildPanels(ctx, f)
	require.Error(t, err)
	tassert.Contains(t, err.Error(), "missing.txt")
}

func TestPlotFigure(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	f := writeInputs(t, tempDir, testChromChanges, testNoMatch)
	f.opts.ConnectPairs = true

	outPath := filepath.Join(tempDir, "out.png")
	require.NoError(t, plotFigure(ctx, f, outPath, 6*vg.Inch, 8*vg.Inch))
	data, err := ioutil.ReadFile(outPath)
	require.NoError(t, err)
	tassert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	tassert.Error(t, plotFigure(ctx, f, filepath.Join(tempDir, "out.gif"), 6*vg.Inch, 8*vg.Inch))
}

func TestWritePoints(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	f := writeInputs(t, tempDir, testChromChanges, testNoMatch)

	outPath := filepath.Join(tempDir, "points.tsv.gz")
	require.NoError(t, writePoints(ctx, f, outPath))
	in, err := os.Open(outPath)
	require.NoError(t, err)
	defer in.Close() // nolint: errcheck
	zr, err := gzip.NewReader(in)
	require.NoError(t, err)
	data, err := ioutil.ReadAll(zr)
	require.NoError(t, err)
	tassert.Equal(t, "panel\tread_id\tchrom\trow\tpos\n"+
		"no_match\t.\tchrY\t1\t3000000\n"+
		"no_match\t.\tchrY\t1\t4000000\n"+
		"chrom_changes\tr1\tchrY\t25\t2781479\n"+
		"chrom_changes\tr1\tchr1\t1\t1000000\n"+
		"chrom_changes\tr2\tchrY\t25\t2790000\n"+
		"chrom_changes\tr2\tchrX\t23\t2000000\n", string(data))
}
