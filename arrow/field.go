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
	"unsafe"

	"github.com/iajoiner/miniarrow-go/arrow/internal/debug"
)

type Field struct {
	Name     string   // Field name
	Type     DataType // The field's data type
	Nullable bool     // Fields can be nullable
	Metadata Metadata // The field's metadata, if any
}

// FieldRef is a shared handle to a Field. Containers such as Fields,
// UnionFields and the nested types hand out the same *Field to every holder,
// so the pointed-to value must be treated as immutable.
type FieldRef = *Field

// NewFieldRef copies f into a new shared handle.
func NewFieldRef(f Field) *Field {
	f.Metadata = f.Metadata.clone()
	return &f
}

func (f Field) Fingerprint() string {
	typeFingerprint := f.Type.Fingerprint()
	if typeFingerprint == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('F')
	if f.Nullable {
		b.WriteByte('n')
	} else {
		b.WriteByte('N')
	}
	b.WriteString(f.Name)
	b.WriteByte('{')
	b.WriteString(typeFingerprint)
	b.WriteByte('}')
	return b.String()
}

func (f Field) HasMetadata() bool { return f.Metadata.Len() != 0 }

func (f Field) Equal(o Field) bool {
	switch {
	case f.Name != o.Name:
		return false
	case f.Nullable != o.Nullable:
		return false
	case !TypeEqual(f.Type, o.Type, CheckMetadata()):
		return false
	case !f.Metadata.Equal(o.Metadata):
		return false
	}
	return true
}

// WithNullable returns a copy of f with the given nullability.
func (f Field) WithNullable(nullable bool) Field {
	f.Nullable = nullable
	return f
}

// WithMetadata returns a copy of f carrying md.
func (f Field) WithMetadata(md Metadata) Field {
	f.Metadata = md.clone()
	return f
}

// Contains reports whether f is a superset of o: any value that conforms to
// o also conforms to f. The names must match, f's type must contain o's
// type, f must be nullable if o is, and every metadata entry of o must be
// present in f with the same value.
func (f Field) Contains(o Field) bool {
	return f.Name == o.Name &&
		TypeContains(f.Type, o.Type) &&
		(f.Nullable || !o.Nullable) &&
		f.Metadata.contains(o.Metadata)
}

// Size returns an estimate of the bytes held by f, including its name,
// metadata and the children of nested types.
func (f Field) Size() int {
	return int(unsafe.Sizeof(f)) + len(f.Name) + f.Metadata.size() + dataTypeSize(f.Type)
}

// TryMerge merges from into f so that f describes the data of both.
//
// Metadata entries of from that f lacks are added; the same key with a
// different value is an error. A null typed field takes the type of from and
// becomes nullable. Struct children are merged by name, union variants with
// UnionFields.TryMerge, and list elements recursively. Any other type must be
// equal to from's type unless from is null. f ends up nullable if either
// side was.
//
// On error f is left unchanged. Nested types are rebuilt rather than
// modified, so types shared with other fields are never affected.
func (f *Field) TryMerge(from *Field) error {
	if f == from {
		return nil
	}

	merged := *f
	md, err := f.Metadata.merge(from.Metadata, func(key, ours, theirs string) error {
		return Errorf(KindSchema,
			"fail to merge field '%s' due to conflicting metadata data value for key %s. From value = %s does not match %s",
			f.Name, key, theirs, ours)
	})
	if err != nil {
		return err
	}
	merged.Metadata = md

	switch dt := f.Type.(type) {
	case *NullType:
		merged.Nullable = true
		merged.Type = from.Type
	case *StructType:
		other, ok := from.Type.(*StructType)
		if !ok {
			return f.typeMismatch(from, "a struct")
		}
		bldr := NewSchemaBuilderFromFields(dt.fields)
		for _, child := range other.fields.refs() {
			if err := bldr.TryMerge(child); err != nil {
				return err
			}
		}
		st := StructOfFields(bldr.fieldList())
		st.meta = dt.meta
		merged.Type = st
	case *UnionType:
		other, ok := from.Type.(*UnionType)
		if !ok {
			return f.typeMismatch(from, "a union")
		}
		variants := dt.fields
		if err := variants.TryMerge(other.fields); err != nil {
			return err
		}
		merged.Type = UnionOf(dt.mode, variants)
	case *ListType:
		other, ok := from.Type.(*ListType)
		if !ok {
			return f.typeMismatch(from, "a list")
		}
		elem := *dt.elem
		if err := elem.TryMerge(other.elem); err != nil {
			return err
		}
		merged.Type = &ListType{elem: &elem}
	case *LargeListType:
		other, ok := from.Type.(*LargeListType)
		if !ok {
			return f.typeMismatch(from, "a large list")
		}
		elem := *dt.elem
		if err := elem.TryMerge(other.elem); err != nil {
			return err
		}
		merged.Type = &LargeListType{ListType{elem: &elem}}
	default:
		switch {
		case from.Type != nil && from.Type.ID() == NULL:
			merged.Nullable = true
		case !TypeEqual(f.Type, from.Type, CheckMetadata()):
			return Errorf(KindSchema,
				"fail to merge schema field '%s' because the from data_type = %s does not equal %s",
				f.Name, from.Type, f.Type)
		}
	}

	merged.Nullable = merged.Nullable || from.Nullable
	debug.Logf("arrow: merged field %q into %v", from.Name, merged.Type)
	*f = merged
	return nil
}

func (f *Field) typeMismatch(from *Field, want string) error {
	return Errorf(KindSchema,
		"fail to merge schema field '%s' because the from data_type = %s is not %s",
		f.Name, from.Type, want)
}

func (f Field) String() string {
	o := new(strings.Builder)
	nullable := ""
	if f.Nullable {
		nullable = ", nullable"
	}
	fmt.Fprintf(o, "%s: type=%v%v", f.Name, f.Type, nullable)
	if f.HasMetadata() {
		fmt.Fprintf(o, "\n%*.smetadata: %v", len(f.Name)+2, "", f.Metadata)
	}
	return o.String()
}
