/*Command bio-ideogram draws ideograms of reads that were aligned to chrY in
  a first pass and then either found no match in the genome without chrY
  ("no match" table) or matched another chromosome ("chrom changes" table).

  The figure has two panels. The top panel shows the distinct chrY start
  positions of the no match reads, within a fixed window of chrY. The bottom
  panel draws every chromosome of the reference as a line and, for each chrom
  change read, one point at its chrY position and one point at its new
  position on the chromosome it changed to.

  Both input tables are tab-separated without a header row. The chrom changes
  table has 9 columns and the no match table has 6; rows with a different
  number of columns are rejected.

  Usage:

    bio-ideogram plot --chrom-changes=s.chrom_changes.txt --no-match=s.no_match.sorted.txt --output=s.png
    bio-ideogram points --chrom-changes=s.chrom_changes.txt --no-match=s.no_match.sorted.txt --output=s.points.tsv.gz

  Chromosome lengths default to hg19. Use --chrom-sizes (UCSC chrom.sizes or
  samtools .fai) or --header (SAM/BAM) for another reference, and --chroms to
  choose and order the chromosome rows.
*/
package main
