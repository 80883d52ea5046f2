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

import "errors"
import "fmt"

/* -------------------------------------------------------------------------- */

// Error returned whenever a symbol cannot be complemented.
var ErrInvalidSymbol = errors.New("invalid symbol")

/* -------------------------------------------------------------------------- */

type Alphabet interface {
  Letters          ()       []byte
  Length           ()       int
  String           ()       string
}

type ComplementableAlphabet interface {
  Alphabet
  Complement       (i byte) (byte, error)
}

/* canonical alphabet used for substitutions
 * -------------------------------------------------------------------------- */

type NucleotideAlphabet struct {
}

// Letters in canonical order. Mutations are always generated in this order.
func (NucleotideAlphabet) Letters() []byte {
  return []byte{'A', 'C', 'G', 'T'}
}

func (NucleotideAlphabet) Length() int {
  return 4
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* canonical alphabet plus the pass-through symbol N
 * -------------------------------------------------------------------------- */

type GappedNucleotideAlphabet struct {
}

func (GappedNucleotideAlphabet) Letters() []byte {
  return []byte{'A', 'C', 'G', 'T', 'N'}
}

func (GappedNucleotideAlphabet) Length() int {
  return 5
}

func (GappedNucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': return 'T', nil
  case 'C': return 'G', nil
  case 'G': return 'C', nil
  case 'T': return 'A', nil
  case 'N': return 'N', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet: %w", i, ErrInvalidSymbol)
  }
}

func (GappedNucleotideAlphabet) String() string {
  return "gapped nucleotide alphabet"
}
