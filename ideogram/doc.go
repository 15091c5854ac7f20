/*Package ideogram builds and draws ideogram panels of read positions.

  A Panel is a plot-independent description of one subplot: a set of
  chromosome tracks (horizontal lines at integer rows), points placed on those
  rows, optional links between points, and the axis window. Panels are built
  from read tables by SingleChromosome and ChromChanges, and drawn with
  gonum/plot by Panel.Plot and WriteFigure.

  The points of a panel can be read back without rendering an image.
*/
package ideogram
