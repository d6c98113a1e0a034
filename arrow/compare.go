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

import "reflect"

type typeEqualsConfig struct {
	metadata bool
}

// TypeEqualOption is a functional option type used for configuring type
// equality checks.
type TypeEqualOption func(*typeEqualsConfig)

// CheckMetadata is an option for TypeEqual that makes the comparison also
// require equal metadata on nested fields and struct types.
func CheckMetadata() TypeEqualOption {
	return func(cfg *typeEqualsConfig) {
		cfg.metadata = true
	}
}

// TypeEqual checks if two DataType are the same, optionally checking metadata
// equality for STRUCT types.
func TypeEqual(left, right DataType, opts ...TypeEqualOption) bool {
	var cfg typeEqualsConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return typeEqual(left, right, cfg)
}

func typeEqual(left, right DataType, cfg typeEqualsConfig) bool {
	switch {
	case left == nil || right == nil:
		return false
	case left == right:
		return true
	case left.ID() != right.ID():
		return false
	}

	switch l := left.(type) {
	case *ListType:
		return fieldEqual(l.elem, right.(*ListType).elem, cfg)
	case *LargeListType:
		return fieldEqual(l.elem, right.(*LargeListType).elem, cfg)
	case *FixedSizeListType:
		r := right.(*FixedSizeListType)
		return l.n == r.n && fieldEqual(l.elem, r.elem, cfg)
	case *MapType:
		r := right.(*MapType)
		return l.KeysSorted == r.KeysSorted && fieldEqual(l.entries, r.entries, cfg)
	case *StructType:
		r := right.(*StructType)
		if cfg.metadata && !l.meta.Equal(r.meta) {
			return false
		}
		return fieldsEqual(l.fields, r.fields, cfg)
	case *UnionType:
		r := right.(*UnionType)
		return l.mode == r.mode && unionFieldsEqual(l.fields, r.fields, cfg)
	case *DictionaryType:
		r := right.(*DictionaryType)
		return l.Ordered == r.Ordered &&
			typeEqual(l.IndexType, r.IndexType, cfg) &&
			typeEqual(l.ValueType, r.ValueType, cfg)
	default:
		return reflect.DeepEqual(left, right)
	}
}

func fieldEqual(l, r *Field, cfg typeEqualsConfig) bool {
	switch {
	case l == r:
		return true
	case l == nil || r == nil:
		return false
	case l.Name != r.Name:
		return false
	case l.Nullable != r.Nullable:
		return false
	case cfg.metadata && !l.Metadata.Equal(r.Metadata):
		return false
	}
	return typeEqual(l.Type, r.Type, cfg)
}

func fieldsEqual(l, r Fields, cfg typeEqualsConfig) bool {
	if l.sameStorage(r) {
		return true
	}
	if l.Len() != r.Len() {
		return false
	}
	rrefs := r.refs()
	for i, f := range l.refs() {
		if !fieldEqual(f, rrefs[i], cfg) {
			return false
		}
	}
	return true
}

func unionFieldsEqual(l, r UnionFields, cfg typeEqualsConfig) bool {
	if l.sameStorage(r) {
		return true
	}
	if l.Len() != r.Len() {
		return false
	}
	rentries := r.entries()
	for i, e := range l.entries() {
		if e.code != rentries[i].code || !fieldEqual(e.field, rentries[i].field, cfg) {
			return false
		}
	}
	return true
}

// TypeContains reports whether every value of type b is also a valid value of
// type a. Nested types compare their children with Field.Contains, so a
// nullable child in a contains a non-nullable child in b but not the other
// way around. All other types must be equal, metadata included.
func TypeContains(a, b DataType) bool {
	if a == nil || b == nil {
		return false
	}

	switch a := a.(type) {
	case *StructType:
		if b, ok := b.(*StructType); ok {
			return a.fields.Contains(b.fields)
		}
	case *ListType:
		if b, ok := b.(*ListType); ok {
			return fieldContains(a.elem, b.elem)
		}
	case *LargeListType:
		if b, ok := b.(*LargeListType); ok {
			return fieldContains(a.elem, b.elem)
		}
	case *FixedSizeListType:
		if b, ok := b.(*FixedSizeListType); ok {
			return a.n == b.n && fieldContains(a.elem, b.elem)
		}
	case *MapType:
		if b, ok := b.(*MapType); ok {
			return a.KeysSorted == b.KeysSorted && fieldContains(a.entries, b.entries)
		}
	case *UnionType:
		if b, ok := b.(*UnionType); ok {
			return a.mode == b.mode && a.fields.Contains(b.fields)
		}
	case *DictionaryType:
		if b, ok := b.(*DictionaryType); ok {
			return a.Ordered == b.Ordered &&
				TypeContains(a.IndexType, b.IndexType) &&
				TypeContains(a.ValueType, b.ValueType)
		}
	}
	return TypeEqual(a, b, CheckMetadata())
}

// fieldContains is Field.Contains with an identity short-circuit for shared
// handles.
func fieldContains(a, b *Field) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Contains(*b)
}
