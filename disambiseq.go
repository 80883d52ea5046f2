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

/* classification of derived sequences
 * -------------------------------------------------------------------------- */

type aliasState byte

const (
  unassigned aliasState = iota
  unambiguous
  ambiguous
  // deliberately assigned to a parent, exempt from classification
  frozen
)

type entry struct {
  state    aliasState
  isParent bool
  parent   handle
}

func (obj entry) resolvable() bool {
  return obj.state == unambiguous || obj.state == frozen
}

/* -------------------------------------------------------------------------- */

// Index of all single position substitutions of a set of parent sequences.
// A substituted sequence is resolved to its parent only if exactly one
// parent generates it. The zero value is not usable, use NewDisambiseq().
//
// Insertions must not run concurrently with any other method. Once all
// parents are inserted, GetParent may be called from several goroutines.
type Disambiseq struct {
  arena        sequenceArena
  entries    []entry
  parents    []handle
  nResolvable  int
  nAmbiguous   int
}

/* -------------------------------------------------------------------------- */

func NewDisambiseq() *Disambiseq {
  return &Disambiseq{arena: newSequenceArena()}
}

// Inserts all sequences in the given order.
func NewDisambiseqFromSlice(sequences [][]byte) *Disambiseq {
  r := NewDisambiseq()
  for _, seq := range sequences {
    r.Insert(seq)
  }
  return r
}

func NewDisambiseqFromStrings(sequences []string) *Disambiseq {
  r := NewDisambiseq()
  for _, seq := range sequences {
    r.Insert([]byte(seq))
  }
  return r
}

// Inserts all sequences in the given order including reverse complements.
// The first sequence with an invalid symbol aborts construction.
func NewDisambiseqWithReverseComplement(sequences [][]byte) (*Disambiseq, error) {
  r := NewDisambiseq()
  for i, seq := range sequences {
    if err := r.InsertWithReverseComplement(seq); err != nil {
      return nil, fmt.Errorf("sequence %d: %w", i+1, err)
    }
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

func (obj *Disambiseq) intern(seq []byte) handle {
  h := obj.arena.intern(seq)
  if int(h) == len(obj.entries) {
    obj.entries = append(obj.entries, entry{})
  }
  return h
}

func (obj *Disambiseq) setState(h handle, state aliasState, parent handle) {
  e := &obj.entries[h]
  if e.resolvable() {
    obj.nResolvable--
  }
  if e.state == ambiguous {
    obj.nAmbiguous--
  }
  e.state  = state
  e.parent = parent
  if e.resolvable() {
    obj.nResolvable++
  }
  if e.state == ambiguous {
    obj.nAmbiguous++
  }
}

func (obj *Disambiseq) isParent(seq []byte) bool {
  if h, ok := obj.arena.lookup(seq); ok {
    return obj.entries[h].isParent
  }
  return false
}

// Registers seq as parent. A parent is never an alias of another parent,
// hence any previous classification of seq is dropped.
func (obj *Disambiseq) markParent(seq []byte) handle {
  h := obj.intern(seq)
  obj.setState(h, unassigned, 0)
  obj.entries[h].isParent = true
  obj.parents = append(obj.parents, h)
  return h
}

func (obj *Disambiseq) classify(seq []byte, parent handle) {
  if h, ok := obj.arena.lookup(seq); ok {
    e := obj.entries[h]
    switch {
    case e.isParent:
    case e.state == ambiguous:
    case e.state == frozen:
    case e.state == unambiguous:
      // seen before, either from another parent or along another path
      obj.setState(h, ambiguous, 0)
    default:
      obj.setState(h, unambiguous, parent)
    }
    return
  }
  obj.setState(obj.intern(seq), unambiguous, parent)
}

/* -------------------------------------------------------------------------- */

// Inserts a parent sequence and classifies all of its single position
// substitutions. Inserting the same parent twice has no effect.
func (obj *Disambiseq) Insert(parent []byte) {
  if obj.isParent(parent) {
    return
  }
  p := obj.markParent(parent)
  for _, m := range MutateAll(obj.arena.get(p)) {
    obj.classify(m, p)
  }
}

// Inserts a parent sequence and classifies all of its single position
// substitutions as well as their reverse complements. The reverse
// complement of the parent itself is assigned to the parent, replacing
// any previous assignment including an ambiguous one, and is exempt from
// further classification.
// If the parent contains a symbol other than A, C, G, T or N an error is
// returned and the index is left unchanged.
func (obj *Disambiseq) InsertWithReverseComplement(parent []byte) error {
  if obj.isParent(parent) {
    return nil
  }
  parentRevc, err := ReverseComplement(parent)
  if err != nil {
    return err
  }
  mutations := MutateAll(parent)
  mutationsRevc := make([][]byte, len(mutations))
  for i, m := range mutations {
    if mutationsRevc[i], err = ReverseComplement(m); err != nil {
      return err
    }
  }
  // all reverse complements are valid, start modifying the index
  p := obj.markParent(parent)

  r := obj.intern(parentRevc)
  switch e := obj.entries[r]; {
  case e.isParent:
    // palindromic parent or reverse complement of another parent
  default:
    // overrides unambiguous and ambiguous assignments
    obj.setState(r, frozen, p)
  }
  for i := range mutations {
    obj.classify(mutationsRevc[i], p)
    obj.classify(mutations    [i], p)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Returns the parent of seq. A parent is its own parent. The second return
// value is false if seq has no unique parent, i.e. it was never generated
// or it is ambiguous. The returned slice must not be modified.
func (obj *Disambiseq) GetParent(seq []byte) ([]byte, bool) {
  r, status := obj.Match(seq)
  return r, status == MatchExact || status == MatchAlias
}

func (obj *Disambiseq) GetParentString(seq string) (string, bool) {
  if r, ok := obj.GetParent([]byte(seq)); ok {
    return string(r), true
  }
  return "", false
}

func (obj *Disambiseq) IsParent(seq []byte) bool {
  return obj.isParent(seq)
}

func (obj *Disambiseq) IsAmbiguous(seq []byte) bool {
  if h, ok := obj.arena.lookup(seq); ok {
    return !obj.entries[h].isParent && obj.entries[h].state == ambiguous
  }
  return false
}

/* -------------------------------------------------------------------------- */

func (obj *Disambiseq) NParents() int {
  return len(obj.parents)
}

func (obj *Disambiseq) NAmbiguous() int {
  return obj.nAmbiguous
}

func (obj *Disambiseq) NUnambiguous() int {
  return obj.nResolvable
}

/* -------------------------------------------------------------------------- */

// Parent sequences in insertion order.
func (obj *Disambiseq) Parents() [][]byte {
  r := make([][]byte, len(obj.parents))
  for i, h := range obj.parents {
    r[i] = obj.arena.get(h)
  }
  return r
}

// Sequences with more than one parent, in the order they were first
// generated.
func (obj *Disambiseq) Ambiguous() [][]byte {
  r := make([][]byte, 0, obj.nAmbiguous)
  for h, e := range obj.entries {
    if e.state == ambiguous {
      r = append(r, obj.arena.get(handle(h)))
    }
  }
  return r
}

// Map from every sequence with a unique parent to that parent. Parents are
// not contained as keys.
func (obj *Disambiseq) Unambiguous() map[string][]byte {
  r := make(map[string][]byte, obj.nResolvable)
  for h, e := range obj.entries {
    if e.resolvable() {
      r[string(obj.arena.get(handle(h)))] = obj.arena.get(e.parent)
    }
  }
  return r
}

// Same as Unambiguous().
func (obj *Disambiseq) Mutations() map[string][]byte {
  return obj.Unambiguous()
}

// Number of unambiguous sequences resolving to each parent. The result is
// aligned with Parents().
func (obj *Disambiseq) CountAliases() []int {
  // position of each parent handle within obj.parents
  idx := make(map[handle]int, len(obj.parents))
  for i, h := range obj.parents {
    idx[h] = i
  }
  r := make([]int, len(obj.parents))
  for _, e := range obj.entries {
    if e.resolvable() {
      r[idx[e.parent]]++
    }
  }
  return r
}

func (obj *Disambiseq) String() string {
  return fmt.Sprintf("Disambiseq{parents: %d, unambiguous: %d, ambiguous: %d}",
    obj.NParents(), obj.NUnambiguous(), obj.NAmbiguous())
}
