/*Package readtable reads the per-read alignment tables produced by the chrY
  remapping pipeline: the "chrom changes" table (reads whose best alignment
  moved from chrY to another chromosome) and the "no match" table (reads that
  found no match against the reference without chrY).

  Both tables are tab-separated with no header row. The column layout of each
  table is fixed, and every row must have exactly the declared number of
  columns; a row with too few or too many columns is an error, not a silent
  shift of values into the wrong fields.
*/
package readtable
