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

// Handle of an interned sequence.
type handle int32

/* -------------------------------------------------------------------------- */

// Arena of immutable sequences. Every distinct sequence is stored once
// and referenced by its handle, which is also its position in the
// insertion order.
type sequenceArena struct {
  sequences [][]byte
  handles     map[string]handle
}

/* -------------------------------------------------------------------------- */

func newSequenceArena() sequenceArena {
  return sequenceArena{handles: make(map[string]handle)}
}

/* -------------------------------------------------------------------------- */

func (obj *sequenceArena) lookup(seq []byte) (handle, bool) {
  h, ok := obj.handles[string(seq)]
  return h, ok
}

// Returns the handle of seq, copying seq into the arena if it is not
// already present.
func (obj *sequenceArena) intern(seq []byte) handle {
  if h, ok := obj.lookup(seq); ok {
    return h
  }
  s := make([]byte, len(seq))
  copy(s, seq)
  h := handle(len(obj.sequences))
  obj.sequences = append(obj.sequences, s)
  obj.handles[string(s)] = h
  return h
}

func (obj *sequenceArena) get(h handle) []byte {
  return obj.sequences[h]
}
