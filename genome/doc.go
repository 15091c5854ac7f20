/*Package genome describes reference assemblies for ideogram drawing: the
  ordered list of chromosome names, their lengths, and the mapping from a
  chromosome name to the row it occupies on a plot.

  The built-in assembly is hg19 restricted to chr1..chr22, chrX, chrM, chrY.
  Other assemblies can be read from a UCSC chrom.sizes file, a samtools .fai
  index, or the @SQ lines of a SAM/BAM header.
*/
package genome
