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
	"strings"
	"unsafe"

	"github.com/iajoiner/miniarrow-go/arrow/internal/debug"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

// Fields is an immutable, ordered list of shared field handles, such as the
// columns of a schema or the children of a struct. Position is meaningful:
// two Fields line up element by element.
//
// A Fields value is a handle itself. Copying it is O(1) and every copy shares
// the same backing list, which is never modified after construction. The
// zero value is an empty list.
type Fields struct {
	list *fieldList
}

type fieldList struct {
	refs []*Field
}

var emptyFieldList = &fieldList{}

// EmptyFields returns the canonical empty Fields.
func EmptyFields() Fields { return Fields{list: emptyFieldList} }

// FieldsOf copies each field into its own shared handle.
func FieldsOf(fs ...Field) Fields {
	if len(fs) == 0 {
		return EmptyFields()
	}
	refs := make([]*Field, len(fs))
	for i := range fs {
		refs[i] = NewFieldRef(fs[i])
	}
	return newFields(refs)
}

// FieldsFromRefs takes ownership of refs without copying. The caller must
// not modify refs afterwards.
func FieldsFromRefs(refs []*Field) Fields {
	if len(refs) == 0 {
		return EmptyFields()
	}
	return newFields(refs)
}

// FieldsFromSlice copies the handles in refs into a new list; the fields
// themselves stay shared.
func FieldsFromSlice(refs []*Field) Fields {
	if len(refs) == 0 {
		return EmptyFields()
	}
	return newFields(slices.Clone(refs))
}

// FieldRefsOf builds a Fields from a fixed list of handles.
func FieldRefsOf(refs ...*Field) Fields { return FieldsFromSlice(refs) }

func newFields(refs []*Field) Fields {
	for i, f := range refs {
		debug.Assertf(f != nil, "arrow: nil field handle at index %d", i)
	}
	return Fields{list: &fieldList{refs: refs}}
}

func (f Fields) refs() []*Field {
	if f.list == nil {
		return nil
	}
	return f.list.refs
}

func (f Fields) sameStorage(o Fields) bool { return f.list == o.list }

func (f Fields) Len() int { return len(f.refs()) }

// At returns the i-th field handle. It must not be modified.
func (f Fields) At(i int) *Field { return f.refs()[i] }

// Refs returns a copy of the field handles.
func (f Fields) Refs() []*Field { return slices.Clone(f.refs()) }

func (f Fields) values() []Field {
	out := make([]Field, f.Len())
	for i, ref := range f.refs() {
		out[i] = *ref
	}
	return out
}

func (f Fields) Names() []string {
	out := make([]string, f.Len())
	for i, ref := range f.refs() {
		out[i] = ref.Name
	}
	return out
}

// Find returns the first field named name and its position. Names are
// compared exactly.
func (f Fields) Find(name string) (int, *Field, bool) {
	refs := f.refs()
	i := slices.IndexFunc(refs, func(ref *Field) bool { return ref.Name == name })
	if i < 0 {
		return -1, nil, false
	}
	return i, refs[i], true
}

// Size returns an estimate of the bytes held by f: the size of every field
// plus one handle per slot.
func (f Fields) Size() int {
	var n int
	for _, ref := range f.refs() {
		n += ref.Size() + int(unsafe.Sizeof(ref))
	}
	return n
}

// Contains reports whether f is a superset of other, that is whether any
// record conforming to other also conforms to f. Both must have the same
// number of fields and each field of f must contain the field of other at
// the same position. Lists sharing storage always contain each other.
//
// Contains is directional: a nullable field contains its non-nullable
// counterpart, but not the reverse.
func (f Fields) Contains(other Fields) bool {
	if f.sameStorage(other) {
		return true
	}
	if f.Len() != other.Len() {
		return false
	}
	orefs := other.refs()
	for i, ref := range f.refs() {
		if !fieldContains(ref, orefs[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether f and other hold structurally equal fields in the
// same order, metadata included.
func (f Fields) Equal(other Fields) bool {
	return fieldsEqual(f, other, typeEqualsConfig{metadata: true})
}

func (f Fields) Fingerprint() string {
	var b strings.Builder
	b.WriteByte('{')
	for _, ref := range f.refs() {
		child := ref.Fingerprint()
		if len(child) == 0 {
			return ""
		}
		b.WriteString(child)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// Hash returns a hash of f's fingerprint. Equal lists hash the same.
func (f Fields) Hash() uint64 { return xxh3.HashString(f.Fingerprint()) }

func (f Fields) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, ref := range f.refs() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ref.Name)
		b.WriteString(": ")
		b.WriteString(ref.Type.String())
		if ref.Nullable {
			b.WriteString(", nullable")
		}
	}
	b.WriteByte(']')
	return b.String()
}
