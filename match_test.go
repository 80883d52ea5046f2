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

import   "testing"

/* -------------------------------------------------------------------------- */

func TestMatch1(test *testing.T) {
  dsq := NewDisambiseqFromStrings([]string{"ACT", "AGT"})
  for _, c := range []struct {
    seq    string
    parent string
    status MatchStatus
  }{
    {"ACT", "ACT", MatchExact},
    {"TCT", "ACT", MatchAlias},
    {"ATT", "",    MatchAmbiguous},
    {"GGG", "",    MatchNone},
    {"",    "",    MatchNone} } {
    parent, status := dsq.Match([]byte(c.seq))
    if status != c.status || string(parent) != c.parent {
      test.Errorf("test failed for `%s'", c.seq)
    }
  }
  if MatchAmbiguous.String() != "ambiguous" || MatchNone.String() != "none" {
    test.Error("test failed")
  }
}

func TestReadWindow1(test *testing.T) {
  read := []byte("NNACTGGG")
  if r, ok := ReadWindow(read, 2, 3); !ok || string(r) != "ACT" {
    test.Error("test failed")
  }
  if r, ok := ReadWindow(read, 5, 0); !ok || string(r) != "GGG" {
    test.Error("test failed")
  }
  if _, ok := ReadWindow(read, 6, 3); ok {
    test.Error("test failed")
  }
  if _, ok := ReadWindow(read, 9, 0); ok {
    test.Error("test failed")
  }
}
