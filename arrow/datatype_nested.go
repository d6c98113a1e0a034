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
	"strings"
)

// ListType describes a nested type in which each array slot contains
// a variable-size sequence of values, all having the same relative type.
type ListType struct {
	elem *Field
}

func ListOfField(f Field) *ListType {
	if f.Type == nil {
		panic("arrow: nil type for list field")
	}
	return &ListType{elem: NewFieldRef(f)}
}

// ListOf returns the list type with element type t.
// For example, if t represents int32, ListOf(t) represents []int32.
//
// ListOf panics if t is nil or invalid. NullableElem defaults to true
func ListOf(t DataType) *ListType {
	if t == nil {
		panic("arrow: nil DataType")
	}
	return &ListType{elem: &Field{Name: "item", Type: t, Nullable: true}}
}

// ListOfNonNullable is like ListOf but NullableElem defaults to false, indicating
// that the child type should be marked as non-nullable.
func ListOfNonNullable(t DataType) *ListType {
	if t == nil {
		panic("arrow: nil DataType")
	}
	return &ListType{elem: &Field{Name: "item", Type: t, Nullable: false}}
}

func (*ListType) ID() Type     { return LIST }
func (*ListType) Name() string { return "list" }

func (t *ListType) String() string {
	if t.elem.Nullable {
		return fmt.Sprintf("list<%s: %s, nullable>", t.elem.Name, t.elem.Type)
	}
	return fmt.Sprintf("list<%s: %s>", t.elem.Name, t.elem.Type)
}

func (t *ListType) Fingerprint() string {
	child := t.elem.Fingerprint()
	if len(child) > 0 {
		return typeFingerprint(t) + "{" + child + "}"
	}
	return ""
}

// Elem returns the ListType's element type.
func (t *ListType) Elem() DataType { return t.elem.Type }

func (t *ListType) ElemField() Field { return *t.elem }

// ElemFieldRef returns the shared element field. It must not be modified.
func (t *ListType) ElemFieldRef() *Field { return t.elem }

func (t *ListType) Fields() []Field { return []Field{*t.elem} }
func (t *ListType) NumFields() int  { return 1 }

// LargeListType is like ListType but with 64-bit offsets.
type LargeListType struct {
	ListType
}

func LargeListOfField(f Field) *LargeListType {
	if f.Type == nil {
		panic("arrow: nil type for list field")
	}
	return &LargeListType{ListType{elem: NewFieldRef(f)}}
}

// LargeListOf returns the list type with element type t. NullableElem
// defaults to true.
func LargeListOf(t DataType) *LargeListType {
	if t == nil {
		panic("arrow: nil DataType")
	}
	return &LargeListType{ListType{elem: &Field{Name: "item", Type: t, Nullable: true}}}
}

func (*LargeListType) ID() Type     { return LARGE_LIST }
func (*LargeListType) Name() string { return "large_list" }

func (t *LargeListType) String() string {
	return "large_" + t.ListType.String()
}

func (t *LargeListType) Fingerprint() string {
	child := t.elem.Fingerprint()
	if len(child) > 0 {
		return typeFingerprint(t) + "{" + child + "}"
	}
	return ""
}

// FixedSizeListType describes a nested type in which each array slot contains
// a fixed-size sequence of values, all having the same relative type.
type FixedSizeListType struct {
	n    int32 // number of elements in the list
	elem *Field
}

func FixedSizeListOfField(n int32, f Field) *FixedSizeListType {
	if f.Type == nil {
		panic("arrow: nil DataType")
	}
	if n <= 0 {
		panic("arrow: invalid size")
	}
	return &FixedSizeListType{n: n, elem: NewFieldRef(f)}
}

// FixedSizeListOf returns the list type with element type t.
// For example, if t represents int32, FixedSizeListOf(10, t) represents [10]int32.
//
// FixedSizeListOf panics if t is nil or invalid.
// FixedSizeListOf panics if n is <= 0.
// NullableElem defaults to true
func FixedSizeListOf(n int32, t DataType) *FixedSizeListType {
	if t == nil {
		panic("arrow: nil DataType")
	}
	return FixedSizeListOfField(n, Field{Name: "item", Type: t, Nullable: true})
}

func (*FixedSizeListType) ID() Type     { return FIXED_SIZE_LIST }
func (*FixedSizeListType) Name() string { return "fixed_size_list" }
func (t *FixedSizeListType) String() string {
	if t.elem.Nullable {
		return fmt.Sprintf("fixed_size_list<%s: %s, nullable>[%d]", t.elem.Name, t.elem.Type, t.n)
	}
	return fmt.Sprintf("fixed_size_list<%s: %s>[%d]", t.elem.Name, t.elem.Type, t.n)
}

// Elem returns the FixedSizeListType's element type.
func (t *FixedSizeListType) Elem() DataType { return t.elem.Type }

// Len returns the FixedSizeListType's size.
func (t *FixedSizeListType) Len() int32 { return t.n }

func (t *FixedSizeListType) ElemField() Field     { return *t.elem }
func (t *FixedSizeListType) ElemFieldRef() *Field { return t.elem }
func (t *FixedSizeListType) Fields() []Field      { return []Field{*t.elem} }
func (t *FixedSizeListType) NumFields() int       { return 1 }

func (t *FixedSizeListType) Fingerprint() string {
	child := t.elem.Fingerprint()
	if len(child) > 0 {
		return fmt.Sprintf("%s[%d]{%s}", typeFingerprint(t), t.n, child)
	}
	return ""
}

// StructType describes a nested type parameterized by an ordered sequence
// of relative types, called its fields.
type StructType struct {
	fields Fields
	index  map[string]int
	meta   Metadata
}

// StructOf returns the struct type with fields fs.
//
// StructOf panics if there are duplicated fields.
// StructOf panics if there is a field with an invalid DataType.
func StructOf(fs ...Field) *StructType {
	return StructOfFields(FieldsOf(fs...))
}

// StructOfWithMetadata is like StructOf and attaches a copy of md to the
// type. The metadata takes part in TypeEqual only with CheckMetadata.
func StructOfWithMetadata(md Metadata, fs ...Field) *StructType {
	t := StructOf(fs...)
	t.meta = md.clone()
	return t
}

// StructOfFields is like StructOf but shares the field handles of fs.
func StructOfFields(fs Fields) *StructType {
	t := &StructType{fields: fs}
	if fs.Len() == 0 {
		return t
	}

	t.index = make(map[string]int, fs.Len())
	for i, f := range fs.refs() {
		if f.Type == nil {
			panic("arrow: field with nil DataType")
		}
		if _, dup := t.index[f.Name]; dup {
			panic(fmt.Errorf("arrow: duplicate field with name %q", f.Name))
		}
		t.index[f.Name] = i
	}
	return t
}

func (*StructType) ID() Type     { return STRUCT }
func (*StructType) Name() string { return "struct" }

func (t *StructType) String() string {
	o := new(strings.Builder)
	o.WriteString("struct<")
	for i, f := range t.fields.refs() {
		if i > 0 {
			o.WriteString(", ")
		}
		o.WriteString(fmt.Sprintf("%s: %v", f.Name, f.Type))
	}
	o.WriteString(">")
	return o.String()
}

func (t *StructType) Fields() []Field       { return t.fields.values() }
func (t *StructType) FieldList() Fields     { return t.fields }
func (t *StructType) NumFields() int        { return t.fields.Len() }
func (t *StructType) Field(i int) Field     { return *t.fields.At(i) }
func (t *StructType) Metadata() Metadata    { return t.meta }
func (t *StructType) FieldRef(i int) *Field { return t.fields.At(i) }

func (t *StructType) FieldByName(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return *t.fields.At(i), true
}

func (t *StructType) FieldIdx(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

func (t *StructType) Fingerprint() string {
	fields := t.fields.Fingerprint()
	if fields == "" && t.fields.Len() > 0 {
		return ""
	}
	return typeFingerprint(t) + fields
}

type MapType struct {
	entries    *Field
	KeysSorted bool
}

func MapOf(key, item DataType) *MapType {
	if key == nil || item == nil {
		panic("arrow: nil key or item type for MapType")
	}

	return &MapType{entries: &Field{
		Name: "entries",
		Type: StructOf(Field{Name: "key", Type: key}, Field{Name: "value", Type: item, Nullable: true}),
	}}
}

func (*MapType) ID() Type     { return MAP }
func (*MapType) Name() string { return "map" }

func (t *MapType) String() string {
	var o strings.Builder
	o.WriteString(fmt.Sprintf("map<%s, %s", t.KeyType(), t.ItemType()))
	if t.KeysSorted {
		o.WriteString(", keys_sorted")
	}
	o.WriteString(">")
	return o.String()
}

func (t *MapType) KeyField() Field        { return t.ValueType().Field(0) }
func (t *MapType) KeyType() DataType      { return t.KeyField().Type }
func (t *MapType) ItemField() Field       { return t.ValueType().Field(1) }
func (t *MapType) ItemType() DataType     { return t.ItemField().Type }
func (t *MapType) ValueType() *StructType { return t.entries.Type.(*StructType) }
func (t *MapType) ValueField() Field      { return *t.entries }
func (t *MapType) Fields() []Field        { return []Field{*t.entries} }
func (t *MapType) NumFields() int         { return 1 }

func (t *MapType) Fingerprint() string {
	keyFingerprint := t.KeyType().Fingerprint()
	itemFingerprint := t.ItemType().Fingerprint()
	if keyFingerprint == "" || itemFingerprint == "" {
		return ""
	}

	fingerprint := typeFingerprint(t)
	if t.KeysSorted {
		fingerprint += "s"
	}
	return fingerprint + "{" + keyFingerprint + itemFingerprint + "}"
}

// UnionMode selects the physical layout of a union: sparse unions carry one
// full length child per variant, dense unions carry offsets into their
// children.
type UnionMode int8

const (
	SparseMode UnionMode = iota
	DenseMode
)

func (m UnionMode) String() string {
	if m == DenseMode {
		return "dense"
	}
	return "sparse"
}

// UnionType is a tagged-variant type. Each value selects one of the variants
// in its UnionFields by type code.
type UnionType struct {
	mode   UnionMode
	fields UnionFields
}

func UnionOf(mode UnionMode, fields UnionFields) *UnionType {
	for _, e := range fields.entries() {
		if e.field.Type == nil {
			panic("arrow: union variant with nil DataType")
		}
	}
	return &UnionType{mode: mode, fields: fields}
}

func SparseUnionOf(fields UnionFields) *UnionType { return UnionOf(SparseMode, fields) }
func DenseUnionOf(fields UnionFields) *UnionType  { return UnionOf(DenseMode, fields) }

func (t *UnionType) ID() Type {
	if t.mode == DenseMode {
		return DENSE_UNION
	}
	return SPARSE_UNION
}

func (t *UnionType) Name() string               { return t.mode.String() + "_union" }
func (t *UnionType) Mode() UnionMode            { return t.mode }
func (t *UnionType) UnionFields() UnionFields   { return t.fields }
func (t *UnionType) TypeCodes() []UnionTypeCode { return t.fields.TypeCodes() }
func (t *UnionType) NumFields() int             { return t.fields.Len() }
func (t *UnionType) Fields() []Field {
	out := make([]Field, 0, t.fields.Len())
	for _, e := range t.fields.entries() {
		out = append(out, *e.field)
	}
	return out
}

func (t *UnionType) String() string {
	var b strings.Builder
	b.WriteString(t.Name())
	b.WriteByte('<')
	for i, e := range t.fields.entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s=%d", e.field.Name, e.field.Type, e.code)
	}
	b.WriteByte('>')
	return b.String()
}

func (t *UnionType) Fingerprint() string {
	fields := t.fields.Fingerprint()
	if fields == "" && t.fields.Len() > 0 {
		return ""
	}
	mode := "s"
	if t.mode == DenseMode {
		mode = "d"
	}
	return typeFingerprint(t) + mode + fields
}

// DictionaryType represents categorical or dictionary-encoded in-memory data.
type DictionaryType struct {
	IndexType DataType
	ValueType DataType
	Ordered   bool
}

func (*DictionaryType) ID() Type     { return DICTIONARY }
func (*DictionaryType) Name() string { return "dictionary" }

func (d *DictionaryType) String() string {
	return fmt.Sprintf("%s<values=%s, indices=%s, ordered=%t>",
		d.Name(), d.ValueType, d.IndexType, d.Ordered)
}

func (d *DictionaryType) Fingerprint() string {
	indexFingerprint := d.IndexType.Fingerprint()
	valueFingerprint := d.ValueType.Fingerprint()
	ordered := "1"
	if !d.Ordered {
		ordered = "0"
	}

	if len(valueFingerprint) > 0 {
		return typeFingerprint(d) + indexFingerprint + valueFingerprint + ordered
	}
	return ordered
}

var (
	_ NestedType = (*ListType)(nil)
	_ NestedType = (*LargeListType)(nil)
	_ NestedType = (*FixedSizeListType)(nil)
	_ NestedType = (*StructType)(nil)
	_ NestedType = (*MapType)(nil)
	_ NestedType = (*UnionType)(nil)
	_ DataType   = (*DictionaryType)(nil)
)
