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

import   "bytes"
import   "path/filepath"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestTable1(test *testing.T) {
  var buffer bytes.Buffer

  dsq := NewDisambiseqFromStrings([]string{"ACT", "AGT"})
  if err := dsq.WriteTable(&buffer, nil, true); err != nil {
    test.Fatal(err)
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  // header, two parents and twelve aliases
  if len(lines) != 15 {
    test.Fatalf("test failed: %d lines", len(lines))
  }
  if lines[0] != "sequence\tparent\ttype" {
    test.Error("test failed")
  }
  if lines[1] != "ACA\tACT\talias" {
    test.Error("test failed")
  }
  if lines[4] != "ACT\tACT\tparent" {
    test.Error("test failed")
  }
  if lines[14] != "TGT\tAGT\talias" {
    test.Error("test failed")
  }
  if strings.Contains(buffer.String(), "AAT") || strings.Contains(buffer.String(), "ATT") {
    test.Error("ambiguous sequences listed")
  }
}

func TestTable2(test *testing.T) {
  var buffer bytes.Buffer

  library, err := NewSequenceLibrary([]string{"bc1", "bc2"}, [][]byte{[]byte("ACT"), []byte("AGT")})
  if err != nil {
    test.Fatal(err)
  }
  dsq := NewDisambiseqFromSlice(library.List())
  if err := dsq.WriteTable(&buffer, library.NameMap(), false); err != nil {
    test.Fatal(err)
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if len(lines) != 14 || lines[0] != "ACA\tACT\talias\tbc1" {
    test.Error("test failed")
  }
  filename := filepath.Join(test.TempDir(), "table.gz")
  if err := dsq.ExportTable(filename, nil, false, true); err != nil {
    test.Fatal(err)
  }
  if !isGzip(filename) {
    test.Error("test failed")
  }
}
