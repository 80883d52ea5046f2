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

import   "bufio"
import   "bytes"
import   "fmt"
import   "io"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/disambiseq"
import   "github.com/pbenner/disambiseq/lib/progress"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Format       string
  FormatReads  string
  Header       bool
  Revcomp      bool
  Offset       int
  Length       int
  Threads      int
  Verbose      int
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
  PrintStderr(config, 1, "Reading parent sequences from `%s'... ", filename)
  if err := library.Import(filename, config.Format); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  library.Upper()
  return library
}

func importReads(config Config, filename string) ([]string, [][]byte) {
  names := []string{}
  reads := [][]byte{}
  f := func(name string, seq []byte) error {
    names = append(names, name)
    reads = append(reads, bytes.ToUpper(seq))
    return nil
  }
  if filename == "" {
    if err := ScanSequences(os.Stdin, config.FormatReads, f); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Reading reads from `%s'... ", filename)
    if err := ImportSequences(filename, config.FormatReads, f); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  return names, reads
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

type Assignment struct {
  Observed []byte
  Parent   []byte
  Status   MatchStatus
}

func assignRead(config Config, dsq *Disambiseq, read []byte) Assignment {
  window, ok := ReadWindow(read, config.Offset, config.Length)
  if !ok {
    return Assignment{Status: MatchNone}
  }
  parent, status := dsq.Match(window)
  return Assignment{Observed: window, Parent: parent, Status: status}
}

func assignReads(config Config, dsq *Disambiseq, reads [][]byte) []Assignment {
  pool := threadpool.New(config.Threads, 100*config.Threads)
  jg   := pool.NewJobGroup()

  result := make([]Assignment, len(reads))

  var p *progress.Progress
  if config.Verbose >= 1 {
    p = progress.New(os.Stderr, len(reads), 100)
  }
  // the index is not modified anymore, concurrent queries are safe
  if err := pool.AddRangeJob(0, len(reads), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    result[i] = assignRead(config, dsq, reads[i])
    if p != nil {
      p.Increment()
    }
    return nil
  }); err != nil {
    log.Fatal(err)
  }
  if err := pool.Wait(jg); err != nil {
    log.Fatal(err)
  }
  return result
}

/* -------------------------------------------------------------------------- */

func writeAssignments(config Config, writer io.Writer, names []string, assignments []Assignment, parentNames map[string]string) error {
  if config.Header {
    if _, err := fmt.Fprintf(writer, "read\tobserved\tparent\tname\tstatus\n"); err != nil {
      return err
    }
  }
  for i, a := range assignments {
    observed := "-"
    parent   := "-"
    name     := "-"
    if a.Observed != nil {
      observed = string(a.Observed)
    }
    if a.Parent != nil {
      parent = string(a.Parent)
      name   = parentNames[parent]
    }
    if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%v\n", names[i], observed, parent, name, a.Status); err != nil {
      return err
    }
  }
  return nil
}

func writeResult(config Config, names []string, assignments []Assignment, parentNames map[string]string, filename string) {
  if filename == "" {
    if err := writeAssignments(config, os.Stdout, names, assignments, parentNames); err != nil {
      log.Fatal(err)
    }
    return
  }
  f, err := os.Create(filename)
  if err != nil {
    log.Fatal(err)
  }
  buffer := bufio.NewWriter(f)
  if err := writeAssignments(config, buffer, names, assignments, parentNames); err != nil {
    log.Fatal(err)
  }
  if err := buffer.Flush(); err != nil {
    log.Fatalf("writing `%s' failed: %v", filename, err)
  }
  if err := f.Close(); err != nil {
    log.Fatalf("closing `%s' failed: %v", filename, err)
  }
}

func countStatus(assignments []Assignment) map[MatchStatus]int {
  r := make(map[MatchStatus]int)
  for _, a := range assignments {
    r[a.Status]++
  }
  return r
}

/* -------------------------------------------------------------------------- */

func assign(config Config, filenameParents, filenameReads, filenameOut string) {
  library := importLibrary(config, filenameParents)
  dsq     := buildIndex(config, library)

  names, reads := importReads(config, filenameReads)
  assignments  := assignReads(config, dsq, reads)

  writeResult(config, names, assignments, library.NameMap(), filenameOut)

  counts := countStatus(assignments)
  for _, s := range []MatchStatus{MatchExact, MatchAlias, MatchAmbiguous, MatchNone} {
    PrintStderr(config, 1, "%-10v %d\n", s, counts[s])
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optFormat      := options. StringLong("format",       0 , "fasta", "format of parent sequences: fasta or plain [default: fasta]")
  optFormatReads := options. StringLong("format-reads", 0 , "fasta", "format of reads: fasta or plain [default: fasta]")
  optRevcomp     := options.   BoolLong("revcomp",      0 ,          "also index reverse complements of parents")
  optOffset      := options.    IntLong("offset",       0 ,  0,      "position of the first matched base within each read [default: 0]")
  optLength      := options.    IntLong("length",       0 ,  0,      "number of matched bases, zero matches the remainder of the read [default: 0]")
  optHeader      := options.   BoolLong("header",       0 ,          "print table header")
  optThreads     := options.    IntLong("threads",      0 ,  1,      "number of threads [default: 1]")
  optVerbose     := options.CounterLong("verbose",     'v',          "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',          "print help")

  options.SetParameters("<PARENTS> [<READS> [OUTPUT.table]]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optOffset < 0 || *optLength < 0 || *optThreads < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Format      = *optFormat
  config.FormatReads = *optFormatReads
  config.Revcomp     = *optRevcomp
  config.Offset      = *optOffset
  config.Length      = *optLength
  config.Header      = *optHeader
  config.Threads     = *optThreads
  config.Verbose     = *optVerbose

  filenameParents := options.Args()[0]
  filenameReads   := ""
  filenameOut     := ""
  if len(options.Args()) >= 2 {
    filenameReads = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut   = options.Args()[2]
  }
  assign(config, filenameParents, filenameReads, filenameOut)
}
