/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "io"
import   "log"
import   "os"
import   "sort"
import   "strconv"

import   "github.com/olekukonko/tablewriter"
import   "github.com/olekukonko/tablewriter/renderer"
import   "github.com/olekukonko/tablewriter/tw"
import   "github.com/pborman/getopt"
import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import . "github.com/pbenner/disambiseq"

/* -------------------------------------------------------------------------- */

type Config struct {
  Format   string
  Header   bool
  Names    bool
  Revcomp  bool
  Compress bool
  Verbose  int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importLibrary(config Config, filename string) *SequenceLibrary {
  library := EmptySequenceLibrary()
  if filename == "" {
    if err := library.Read(os.Stdin, config.Format); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Reading parent sequences from `%s'... ", filename)
    if err := library.Import(filename, config.Format); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  library.Upper()
  return library
}

func buildIndex(config Config, library *SequenceLibrary) *Disambiseq {
  PrintStderr(config, 1, "Indexing %d parent sequences... ", library.Length())
  r := NewDisambiseq()
  for _, name := range library.Names {
    if config.Revcomp {
      if err := r.InsertWithReverseComplement(library.Sequences[name]); err != nil {
        PrintStderr(config, 1, "failed\n")
        log.Fatalf("parent `%s': %v", name, err)
      }
    } else {
      r.Insert(library.Sequences[name])
    }
  }
  PrintStderr(config, 1, "done\n")
  PrintStderr(config, 2, "%v\n", r)
  return r
}

/* -------------------------------------------------------------------------- */

func aliasStatistics(dsq *Disambiseq) [][]string {
  counts := dsq.CountAliases()
  sorted := make([]int, len(counts))
  copy(sorted, counts)
  sort.Ints(sorted)

  orphans := 0
  for _, c := range sorted {
    if c == 0 {
      orphans++
    }
  }
  rows := [][]string{
    {"parents",                  strconv.Itoa(dsq.NParents())},
    {"unambiguous",              strconv.Itoa(dsq.NUnambiguous())},
    {"ambiguous",                strconv.Itoa(dsq.NAmbiguous())},
    {"parents without aliases",  strconv.Itoa(orphans)} }
  if n := len(sorted); n > 0 {
    rows = append(rows,
      []string{"min aliases per parent",    strconv.Itoa(sorted[0])},
      []string{"median aliases per parent", strconv.Itoa(sorted[n/2])},
      []string{"max aliases per parent",    strconv.Itoa(sorted[n-1])})
  }
  return rows
}

func writeStatistics(writer io.Writer, dsq *Disambiseq) {
  table := tablewriter.NewTable(writer,
    tablewriter.WithRenderer(renderer.NewMarkdown()),
    tablewriter.WithAlignment([]tw.Align{tw.AlignLeft, tw.AlignRight}),
    tablewriter.WithHeaderAutoFormat(tw.Off),
  )
  table.Header([]string{"statistic", "value"})
  for _, row := range aliasStatistics(dsq) {
    table.Append(row)
  }
  table.Render()
}

func saveAliasPlot(config Config, filename string, dsq *Disambiseq) {
  counts := dsq.CountAliases()
  sort.Sort(sort.Reverse(sort.IntSlice(counts)))

  xy := make(plotter.XYs, len(counts))
  for i := 0; i < len(counts); i++ {
    xy[i].X = float64(i+1)
    xy[i].Y = float64(counts[i])
  }
  p := plot.New()
  p.Title.Text   = "unambiguous aliases"
  p.X.Label.Text = "parent rank"
  p.Y.Label.Text = "aliases"

  if err := plotutil.AddLines(p, xy); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatalf("saving plot `%s' failed: %v", filename, err)
  }
  PrintStderr(config, 1, "Wrote alias plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func writeTable(config Config, dsq *Disambiseq, library *SequenceLibrary, filename string) {
  var names map[string]string
  if config.Names {
    names = library.NameMap()
  }
  if filename == "" {
    if err := dsq.WriteTable(os.Stdout, names, config.Header); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing table `%s'... ", filename)
    if err := dsq.ExportTable(filename, names, config.Header, config.Compress); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optFormat   := options. StringLong("format",   0 , "fasta", "input format: fasta or plain [default: fasta]")
  optRevcomp  := options.   BoolLong("revcomp",  0 ,          "also index reverse complements")
  optHeader   := options.   BoolLong("header",   0 ,          "print table header")
  optNames    := options.   BoolLong("names",    0 ,          "add a column with parent names")
  optCompress := options.   BoolLong("compress", 0 ,          "gzip output file")
  optStats    := options.   BoolLong("stats",    0 ,          "print summary statistics to stderr")
  optPlot     := options. StringLong("plot",     0 , "",      "save a plot of the number of aliases per parent")
  optVerbose  := options.CounterLong("verbose", 'v',          "verbose level [-v or -vv]")
  optHelp     := options.   BoolLong("help",    'h',          "print help")

  options.SetParameters("[<PARENTS> [OUTPUT.table]]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) > 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optFormat != "fasta" && *optFormat != "plain" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Format   = *optFormat
  config.Revcomp  = *optRevcomp
  config.Header   = *optHeader
  config.Names    = *optNames
  config.Compress = *optCompress
  config.Verbose  = *optVerbose

  filenameIn  := ""
  filenameOut := ""
  if len(options.Args()) >= 1 {
    filenameIn  = options.Args()[0]
  }
  if len(options.Args()) == 2 {
    filenameOut = options.Args()[1]
  }
  library := importLibrary(config, filenameIn)
  dsq     := buildIndex(config, library)

  writeTable(config, dsq, library, filenameOut)

  if *optStats {
    writeStatistics(os.Stderr, dsq)
  }
  if *optPlot != "" {
    saveAliasPlot(config, *optPlot, dsq)
  }
}
