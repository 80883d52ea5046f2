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

// Outcome of resolving an observed sequence against the index.
type MatchStatus int

const (
  MatchNone MatchStatus = iota
  MatchExact
  MatchAlias
  MatchAmbiguous
)

func (obj MatchStatus) String() string {
  switch obj {
  case MatchExact:     return "exact"
  case MatchAlias:     return "alias"
  case MatchAmbiguous: return "ambiguous"
  default:             return "none"
  }
}

/* -------------------------------------------------------------------------- */

// Resolves seq like GetParent() but also reports why a sequence could
// not be resolved. Safe for concurrent use once all parents are inserted.
func (obj *Disambiseq) Match(seq []byte) ([]byte, MatchStatus) {
  h, ok := obj.arena.lookup(seq)
  if !ok {
    return nil, MatchNone
  }
  e := obj.entries[h]
  switch {
  case e.isParent:
    return obj.arena.get(h), MatchExact
  case e.resolvable():
    return obj.arena.get(e.parent), MatchAlias
  case e.state == ambiguous:
    return nil, MatchAmbiguous
  default:
    return nil, MatchNone
  }
}

/* -------------------------------------------------------------------------- */

// Returns the part of a read that is matched against the index, starting
// at offset with the given length. A length of zero selects the remainder
// of the read. The second return value is false if the read is too short.
func ReadWindow(read []byte, offset, length int) ([]byte, bool) {
  if offset < 0 || offset > len(read) {
    return nil, false
  }
  if length <= 0 {
    return read[offset:], true
  }
  if offset+length > len(read) {
    return nil, false
  }
  return read[offset:offset+length], true
}
