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
import "sort"

/* -------------------------------------------------------------------------- */

type tableRow struct {
  sequence []byte
  parent   []byte
  alias    bool
}

func (obj *Disambiseq) tableRows() []tableRow {
  r := make([]tableRow, 0, obj.NParents()+obj.NUnambiguous())
  for h, e := range obj.entries {
    switch {
    case e.isParent:
      r = append(r, tableRow{obj.arena.get(handle(h)), obj.arena.get(handle(h)), false})
    case e.resolvable():
      r = append(r, tableRow{obj.arena.get(handle(h)), obj.arena.get(e.parent), true})
    }
  }
  sort.Slice(r, func(i, j int) bool {
    return bytes.Compare(r[i].sequence, r[j].sequence) < 0
  })
  return r
}

/* -------------------------------------------------------------------------- */

// Writes the lookup table as tab separated columns: the observed sequence,
// its parent, whether it is the parent itself or an alias, and optionally
// the name of the parent. Rows are sorted by the observed sequence.
// Ambiguous sequences are not listed.
func (obj *Disambiseq) WriteTable(writer io.Writer, names map[string]string, header bool) error {
  if header {
    if _, err := fmt.Fprintf(writer, "sequence\tparent\ttype"); err != nil {
      return err
    }
    if names != nil {
      if _, err := fmt.Fprintf(writer, "\tname"); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(writer, "\n"); err != nil {
      return err
    }
  }
  for _, row := range obj.tableRows() {
    t := "parent"
    if row.alias {
      t = "alias"
    }
    if _, err := fmt.Fprintf(writer, "%s\t%s\t%s", row.sequence, row.parent, t); err != nil {
      return err
    }
    if names != nil {
      if _, err := fmt.Fprintf(writer, "\t%s", names[string(row.parent)]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(writer, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (obj *Disambiseq) ExportTable(filename string, names map[string]string, header, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteTable(writer, names, header); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
