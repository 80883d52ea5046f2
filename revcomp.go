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

/* -------------------------------------------------------------------------- */

func reverseComplement(dest, src []byte, alphabet ComplementableAlphabet) error {
  n := len(src)
  for i := 0; i < n; i++ {
    if x, err := alphabet.Complement(src[i]); err != nil {
      return fmt.Errorf("ReverseComplement(): invalid symbol `%c' at position %d: %w", src[i], i, ErrInvalidSymbol)
    } else {
      dest[n-i-1] = x
    }
  }
  return nil
}

// Returns the reverse complement of seq. Valid symbols are A, C, G, T and
// N, where N is its own complement. Any other symbol results in an error
// wrapping ErrInvalidSymbol.
func ReverseComplement(seq []byte) ([]byte, error) {
  r := make([]byte, len(seq))
  if err := reverseComplement(r, seq, GappedNucleotideAlphabet{}); err != nil {
    return nil, err
  }
  return r, nil
}

func ReverseComplementString(seq string) (string, error) {
  if r, err := ReverseComplement([]byte(seq)); err != nil {
    return "", err
  } else {
    return string(r), nil
  }
}
