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


package disambiseq

/* -------------------------------------------------------------------------- */

import "bufio"
import "bytes"
import "fmt"
import "io"
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Named parent sequences in input order.
type SequenceLibrary struct {
  Sequences map[string][]byte
  Names     []string
}

/* -------------------------------------------------------------------------- */

func NewSequenceLibrary(names []string, sequences [][]byte) (*SequenceLibrary, error) {
  if len(names) != len(sequences) {
    return nil, fmt.Errorf("NewSequenceLibrary(): invalid parameters")
  }
  r := EmptySequenceLibrary()
  for i := 0; i < len(names); i++ {
    if err := r.add(names[i], sequences[i]); err != nil {
      return nil, err
    }
  }
  return r, nil
}

func EmptySequenceLibrary() *SequenceLibrary {
  return &SequenceLibrary{Sequences: make(map[string][]byte)}
}

/* -------------------------------------------------------------------------- */

func (obj *SequenceLibrary) add(name string, seq []byte) error {
  if _, ok := obj.Sequences[name]; ok {
    return fmt.Errorf("sequence name `%s' occurred multiple times", name)
  }
  obj.Sequences[name] = seq
  obj.Names           = append(obj.Names, name)
  return nil
}

func (obj *SequenceLibrary) Length() int {
  return len(obj.Names)
}

// Sequences in input order.
func (obj *SequenceLibrary) List() [][]byte {
  r := make([][]byte, len(obj.Names))
  for i, name := range obj.Names {
    r[i] = obj.Sequences[name]
  }
  return r
}

// Converts all sequences to upper case.
func (obj *SequenceLibrary) Upper() {
  for _, name := range obj.Names {
    obj.Sequences[name] = bytes.ToUpper(obj.Sequences[name])
  }
}

// Map from sequence to name. If a sequence occurs multiple times the
// first name is used.
func (obj *SequenceLibrary) NameMap() map[string]string {
  r := make(map[string]string, len(obj.Names))
  for _, name := range obj.Names {
    seq := string(obj.Sequences[name])
    if _, ok := r[seq]; !ok {
      r[seq] = name
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func scanFasta(reader io.Reader, f func(name string, seq []byte) error) error {
  scanner := bufio.NewScanner(reader)

  // current sequence
  name := ""
  seq  := []byte{}

  for scanner.Scan() {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if name != "" {
        if err := f(name, seq); err != nil {
          return err
        }
      }
      // header
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      seq = append(seq, strings.TrimSpace(line)...)
    }
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  if name != "" {
    return f(name, seq)
  }
  return nil
}

func scanPlain(reader io.Reader, f func(name string, seq []byte) error) error {
  scanner := bufio.NewScanner(reader)

  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || fields[0][0] == '#' {
      continue
    }
    switch len(fields) {
    case 1:
      if err := f(fields[0], []byte(fields[0])); err != nil {
        return err
      }
    case 2:
      if err := f(fields[0], []byte(fields[1])); err != nil {
        return err
      }
    default:
      return fmt.Errorf("ReadPlain(): line %d has %d columns, expected one or two", i, len(fields))
    }
  }
  return scanner.Err()
}

// Calls f for every sequence in reader. The format is either `fasta' or
// `plain'. Plain files contain one sequence per line, optionally preceded
// by a name. Without a name the sequence itself is used as name. Empty
// lines and lines starting with `#' are skipped. Names need not be unique.
func ScanSequences(reader io.Reader, format string, f func(name string, seq []byte) error) error {
  switch format {
  case "fasta":
    return scanFasta(reader, f)
  case "plain":
    return scanPlain(reader, f)
  default:
    return fmt.Errorf("ScanSequences(): invalid format `%s'", format)
  }
}

/* -------------------------------------------------------------------------- */

func (obj *SequenceLibrary) ReadFasta(reader io.Reader) error {
  return scanFasta(reader, obj.add)
}

func (obj *SequenceLibrary) ReadPlain(reader io.Reader) error {
  return scanPlain(reader, obj.add)
}

func (obj *SequenceLibrary) Read(reader io.Reader, format string) error {
  return ScanSequences(reader, format, obj.add)
}

/* -------------------------------------------------------------------------- */

func (obj *SequenceLibrary) Import(filename, format string) error {
  return ImportSequences(filename, format, obj.add)
}

func (obj *SequenceLibrary) ImportFasta(filename string) error {
  return obj.Import(filename, "fasta")
}

func (obj *SequenceLibrary) ImportPlain(filename string) error {
  return obj.Import(filename, "plain")
}

// Same as ScanSequences() but reads from a possibly gzipped file.
func ImportSequences(filename, format string, f func(name string, seq []byte) error) error {
  r, err := openFile(filename)
  if err != nil {
    return err
  }
  defer r.Close()

  return ScanSequences(r, format, f)
}
