// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/iajoiner/miniarrow-go/arrow/internal/debug"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

// UnionTypeCode is the discriminant stored in a union array to select the
// variant of each slot.
type UnionTypeCode = int8

// MaxUnionTypeCode is the largest type code a union may use.
const MaxUnionTypeCode UnionTypeCode = 127

// UnionFields is an immutable collection of (type code, field) pairs
// describing the variants of a union. Type codes are unique when built with
// NewUnionFields. Like Fields, copying a UnionFields value is O(1) and all
// copies share storage.
//
// The order in which pairs are stored and visited is not part of the
// contract.
type UnionFields struct {
	list *unionList
}

type unionList struct {
	entries []unionEntry
}

type unionEntry struct {
	code  UnionTypeCode
	field *Field
}

var emptyUnionList = &unionList{}

func EmptyUnionFields() UnionFields { return UnionFields{list: emptyUnionList} }

// NewUnionFields pairs codes with fields position by position, stopping at
// the shorter of the two. Each field is copied into its own shared handle.
//
// NewUnionFields panics if a type code repeats or is outside [0, 127].
func NewUnionFields(codes []UnionTypeCode, fields []Field) UnionFields {
	refs := make([]*Field, len(fields))
	for i := range fields {
		refs[i] = NewFieldRef(fields[i])
	}
	return NewUnionFieldsFromRefs(codes, refs)
}

// NewUnionFieldsFromRefs is like NewUnionFields but shares the given handles.
func NewUnionFieldsFromRefs(codes []UnionTypeCode, fields []*Field) UnionFields {
	var seen typeCodeSet
	for _, c := range codes {
		if !seen.add(c) {
			panic(fmt.Sprintf("arrow: duplicate type id: %d", c))
		}
	}

	n := min(len(codes), len(fields))
	if n == 0 {
		return EmptyUnionFields()
	}
	entries := make([]unionEntry, n)
	for i := range entries {
		debug.Assertf(fields[i] != nil, "arrow: nil field handle for type code %d", codes[i])
		entries[i] = unionEntry{code: codes[i], field: fields[i]}
	}
	return UnionFields{list: &unionList{entries: entries}}
}

// typeCodeSet is a presence mask with one bit per valid type code.
type typeCodeSet [2]uint64

// add records c and reports whether it was absent. It panics if c is
// negative.
func (s *typeCodeSet) add(c UnionTypeCode) bool {
	if c < 0 {
		panic(fmt.Sprintf("arrow: union type code %d out of range [0, %d]", c, MaxUnionTypeCode))
	}
	word, mask := c/64, uint64(1)<<uint(c%64)
	if s[word]&mask != 0 {
		return false
	}
	s[word] |= mask
	return true
}

func (u UnionFields) entries() []unionEntry {
	if u.list == nil {
		return nil
	}
	return u.list.entries
}

func (u UnionFields) sameStorage(o UnionFields) bool { return u.list == o.list }

func (u UnionFields) Len() int      { return len(u.entries()) }
func (u UnionFields) IsEmpty() bool { return u.Len() == 0 }

// At returns the i-th pair in storage order. The field must not be modified.
func (u UnionFields) At(i int) (UnionTypeCode, *Field) {
	e := u.entries()[i]
	return e.code, e.field
}

// Range calls fn for each pair until fn returns false.
func (u UnionFields) Range(fn func(code UnionTypeCode, f *Field) bool) {
	for _, e := range u.entries() {
		if !fn(e.code, e.field) {
			return
		}
	}
}

func (u UnionFields) TypeCodes() []UnionTypeCode {
	out := make([]UnionTypeCode, u.Len())
	for i, e := range u.entries() {
		out[i] = e.code
	}
	return out
}

// Fields returns the field handles in storage order.
func (u UnionFields) Fields() []*Field {
	out := make([]*Field, u.Len())
	for i, e := range u.entries() {
		out[i] = e.field
	}
	return out
}

// FieldByTypeCode returns the first variant using code.
func (u UnionFields) FieldByTypeCode(code UnionTypeCode) (*Field, bool) {
	entries := u.entries()
	i := slices.IndexFunc(entries, func(e unionEntry) bool { return e.code == code })
	if i < 0 {
		return nil, false
	}
	return entries[i].field, true
}

// Size returns an estimate of the bytes held by u: the size of every field
// plus one pair slot per variant.
func (u UnionFields) Size() int {
	var n int
	for _, e := range u.entries() {
		n += e.field.Size() + int(unsafe.Sizeof(e))
	}
	return n
}

// TryMerge folds the variants of other into u.
//
// Variants are matched by field equality, not by type code. A variant of
// other equal to one of u must carry the same type code, otherwise the
// union would be ambiguous and a schema error naming the field and both
// codes is returned. Variants of other with no equal field in u are
// appended with their own code. The codes are not re-validated afterwards,
// so an appended variant may reuse a code already taken by a different
// field; DuplicateTypeCodes detects that.
//
// On error u is left unchanged. TryMerge replaces u and must not race with
// other users of the same UnionFields variable.
func (u *UnionFields) TryMerge(other UnionFields) error {
	cur := u.entries()
	out := slices.Clone(cur)
	for _, theirs := range other.entries() {
		i := slices.IndexFunc(out, func(ours unionEntry) bool {
			return fieldEqual(ours.field, theirs.field, typeEqualsConfig{metadata: true})
		})
		if i < 0 {
			debug.Logf("arrow: union merge adds %q with type code %d", theirs.field.Name, theirs.code)
			out = append(out, theirs)
			continue
		}
		if out[i].code != theirs.code {
			return Errorf(KindSchema,
				"fail to merge schema field '%s' because the self type code = %d does not equal field type code = %d",
				out[i].field.Name, out[i].code, theirs.code)
		}
	}

	if len(out) == len(cur) {
		return nil
	}
	*u = UnionFields{list: &unionList{entries: out}}
	return nil
}

// DuplicateTypeCodes returns the type codes used by more than one variant,
// in order of first repetition. Only TryMerge can produce such a union.
func (u UnionFields) DuplicateTypeCodes() []UnionTypeCode {
	var seen, reported typeCodeSet
	var dups []UnionTypeCode
	for _, e := range u.entries() {
		if !seen.add(e.code) && reported.add(e.code) {
			dups = append(dups, e.code)
		}
	}
	return dups
}

// Contains reports whether every value of a union over other is also valid
// for a union over u: each variant of other must have a variant in u with
// the same type code that contains it.
func (u UnionFields) Contains(other UnionFields) bool {
	if u.sameStorage(other) {
		return true
	}
	ours := u.entries()
	for _, theirs := range other.entries() {
		found := slices.ContainsFunc(ours, func(e unionEntry) bool {
			return e.code == theirs.code && fieldContains(e.field, theirs.field)
		})
		if !found {
			return false
		}
	}
	return true
}

// Equal reports whether u and other hold equal pairs in the same storage
// order, metadata included.
func (u UnionFields) Equal(other UnionFields) bool {
	return unionFieldsEqual(u, other, typeEqualsConfig{metadata: true})
}

func (u UnionFields) Fingerprint() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, e := range u.entries() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(e.code)))
	}
	b.WriteString("]{")
	for _, e := range u.entries() {
		child := e.field.Fingerprint()
		if len(child) == 0 {
			return ""
		}
		b.WriteString(child)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// Hash returns a hash of u's fingerprint. Equal unions hash the same.
func (u UnionFields) Hash() uint64 { return xxh3.HashString(u.Fingerprint()) }

func (u UnionFields) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range u.entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d=%s: %s", e.code, e.field.Name, e.field.Type)
	}
	b.WriteByte(']')
	return b.String()
}
