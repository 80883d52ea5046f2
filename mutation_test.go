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
import   "testing"

/* -------------------------------------------------------------------------- */

func TestMutation1(test *testing.T) {
  r := MutatePosition([]byte("ACGT"), 0)
  e := []string{"CCGT", "GCGT", "TCGT"}
  if len(r) != len(e) {
    test.Fatal("test failed")
  }
  for i := 0; i < len(e); i++ {
    if string(r[i]) != e[i] {
      test.Errorf("test failed: expected `%s' but got `%s'", e[i], r[i])
    }
  }
}

func TestMutation2(test *testing.T) {
  r := MutateAllString("ACGT")
  e := []string{
    "CCGT", "GCGT", "TCGT", "AAGT", "AGGT", "ATGT", "ACAT", "ACCT", "ACTT", "ACGA",
    "ACGC", "ACGG" }
  if len(r) != len(e) {
    test.Fatal("test failed")
  }
  for i := 0; i < len(e); i++ {
    if r[i] != e[i] {
      test.Errorf("test failed: expected `%s' but got `%s'", e[i], r[i])
    }
  }
}

func TestMutation3(test *testing.T) {
  if r := MutateAll([]byte{}); len(r) != 0 {
    test.Error("test failed")
  }
  if r := MutateAll(nil); len(r) != 0 {
    test.Error("test failed")
  }
}

func TestMutation4(test *testing.T) {
  // all sequences of length 5
  letters := NucleotideAlphabet{}.Letters()
  seq     := make([]byte, 5)
  for i := 0; i < 1024; i++ {
    for j, k := 0, i; j < len(seq); j, k = j+1, k/4 {
      seq[j] = letters[k%4]
    }
    orig := string(seq)
    r    := MutateAll(seq)
    if len(r) != 3*len(seq) {
      test.Fatal("test failed")
    }
    m := make(map[string]struct{})
    for _, s := range r {
      if string(s) == orig {
        test.Fatal("test failed")
      }
      m[string(s)] = struct{}{}
    }
    if len(m) != len(r) {
      test.Fatal("test failed")
    }
    if string(seq) != orig {
      test.Fatal("argument was modified")
    }
  }
}

func TestMutation5(test *testing.T) {
  // unknown symbols are copied and substituted by all four letters
  r := MutateAll([]byte("NA"))
  if len(r) != 7 {
    test.Fatal("test failed")
  }
  if !bytes.Equal(r[0], []byte("AA")) || !bytes.Equal(r[3], []byte("TA")) {
    test.Error("test failed")
  }
  if !bytes.Equal(r[4], []byte("NC")) {
    test.Error("test failed")
  }
}

func TestMutation6(test *testing.T) {
  defer func() {
    if recover() == nil {
      test.Error("test failed")
    }
  }()
  MutatePosition([]byte("ACGT"), 4)
}
