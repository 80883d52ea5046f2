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

import "fmt"

/* single position substitutions
 * -------------------------------------------------------------------------- */

func mutatePosition(dst [][]byte, seq []byte, pos int, letters []byte) [][]byte {
  for _, c := range letters {
    if c == seq[pos] {
      continue
    }
    r := make([]byte, len(seq))
    copy(r, seq)
    r[pos] = c
    dst = append(dst, r)
  }
  return dst
}

// Returns all sequences that differ from seq only at position pos. The
// substituted letters are taken from the nucleotide alphabet in canonical
// order, skipping the letter currently at pos. The argument is not modified.
func MutatePosition(seq []byte, pos int) [][]byte {
  if pos < 0 || pos >= len(seq) {
    panic(fmt.Sprintf("MutatePosition(): position `%d' out of range", pos))
  }
  alphabet := NucleotideAlphabet{}
  return mutatePosition(make([][]byte, 0, alphabet.Length()-1), seq, pos, alphabet.Letters())
}

// Returns all single position substitutions of seq, ordered by position
// first and by alphabet second. For sequences over the nucleotide alphabet
// the result has exactly 3*len(seq) elements.
func MutateAll(seq []byte) [][]byte {
  alphabet := NucleotideAlphabet{}
  letters  := alphabet.Letters()
  r        := make([][]byte, 0, len(seq)*(alphabet.Length()-1))
  for i := 0; i < len(seq); i++ {
    r = mutatePosition(r, seq, i, letters)
  }
  return r
}

func MutateAllString(seq string) []string {
  m := MutateAll([]byte(seq))
  r := make([]string, len(m))
  for i := 0; i < len(m); i++ {
    r[i] = string(m[i])
  }
  return r
}
