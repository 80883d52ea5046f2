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

import   "errors"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestReverseComplement1(test *testing.T) {
  for _, c := range [][2]string{
    {"ATCG", "CGAT"},
    {"ATNCG", "CGNAT"},
    {"", ""},
    {"AAAA", "TTTT"} } {
    if r, err := ReverseComplementString(c[0]); err != nil {
      test.Error(err)
    } else if r != c[1] {
      test.Errorf("test failed: expected `%s' but got `%s'", c[1], r)
    }
  }
}

func TestReverseComplement2(test *testing.T) {
  for _, s := range []string{"BBBB", "ACGU", "acgt", "AC-GT"} {
    if _, err := ReverseComplementString(s); err == nil {
      test.Errorf("test failed for `%s'", s)
    } else if !errors.Is(err, ErrInvalidSymbol) {
      test.Errorf("test failed: %v", err)
    }
  }
}

func TestReverseComplement3(test *testing.T) {
  for _, s := range []string{"A", "ACGTN", "GATTACA", "NNNACCCGT", "TTAGT"} {
    r1, err := ReverseComplementString(s)
    if err != nil {
      test.Fatal(err)
    }
    r2, err := ReverseComplementString(r1)
    if err != nil {
      test.Fatal(err)
    }
    if r2 != s {
      test.Errorf("test failed: `%s' became `%s'", s, r2)
    }
  }
}

func TestReverseComplement4(test *testing.T) {
  // argument must not be modified
  s := []byte("ACCT")
  if _, err := ReverseComplement(s); err != nil {
    test.Fatal(err)
  }
  if string(s) != "ACCT" {
    test.Error("test failed")
  }
}
