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

	"github.com/iajoiner/miniarrow-go/arrow/internal/debug"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

// Schema is a sequence of Field values, describing the columns of a table or
// a record batch, plus schema-level metadata.
type Schema struct {
	fields Fields
	index  map[string][]int
	meta   Metadata
}

// NewSchema returns a new Schema value from the slice of fields and metadata.
//
// NewSchema panics if there is a field with an invalid DataType.
func NewSchema(fields []Field, metadata *Metadata) *Schema {
	return NewSchemaFromFields(FieldsOf(fields...), metadata)
}

// NewSchemaFromFields is like NewSchema but shares the field handles of
// fields.
func NewSchemaFromFields(fields Fields, metadata *Metadata) *Schema {
	sc := &Schema{
		fields: fields,
		index:  make(map[string][]int, fields.Len()),
	}
	if metadata != nil {
		sc.meta = metadata.clone()
	}
	for i, f := range fields.refs() {
		if f.Type == nil {
			panic("arrow: field with nil DataType")
		}
		sc.index[f.Name] = append(sc.index[f.Name], i)
	}
	return sc
}

func (sc *Schema) Metadata() Metadata { return sc.meta }

// Fields returns a copy of the schema's fields.
func (sc *Schema) Fields() []Field { return sc.fields.values() }

// FieldList returns the schema's fields as a shared Fields handle.
func (sc *Schema) FieldList() Fields { return sc.fields }

func (sc *Schema) Field(i int) Field { return *sc.fields.At(i) }
func (sc *Schema) NumFields() int    { return sc.fields.Len() }

func (sc *Schema) FieldsByName(n string) ([]Field, bool) {
	indices, ok := sc.index[n]
	if !ok {
		return nil, ok
	}
	fields := make([]Field, 0, len(indices))
	for _, v := range indices {
		fields = append(fields, *sc.fields.At(v))
	}
	return fields, ok
}

// FieldIndices returns the indices of the named field or nil.
func (sc *Schema) FieldIndices(n string) []int {
	return sc.index[n]
}

func (sc *Schema) HasField(n string) bool { return len(sc.FieldIndices(n)) > 0 }
func (sc *Schema) HasMetadata() bool      { return len(sc.meta.keys) > 0 }

// AddField adds a field at the given index and returns a new schema.
func (sc *Schema) AddField(i int, field Field) (*Schema, error) {
	if i < 0 || i > sc.NumFields() {
		return nil, Errorf(KindInvalidArgument, "invalid field index %d", i)
	}

	refs := make([]*Field, 0, sc.NumFields()+1)
	refs = append(refs, sc.fields.refs()[:i]...)
	refs = append(refs, NewFieldRef(field))
	refs = append(refs, sc.fields.refs()[i:]...)
	return NewSchemaFromFields(FieldsFromRefs(refs), &sc.meta), nil
}

// Equal reports whether both schemas have equal fields in the same order.
// Schema-level metadata is not compared.
func (sc *Schema) Equal(o *Schema) bool {
	switch {
	case sc == o:
		return true
	case sc == nil || o == nil:
		return false
	}
	return sc.fields.Equal(o.fields)
}

// Contains reports whether sc is a superset of o: its fields contain o's
// fields position by position and every metadata entry of o is present in
// sc with the same value.
func (sc *Schema) Contains(o *Schema) bool {
	switch {
	case sc == o:
		return true
	case sc == nil || o == nil:
		return false
	}
	return sc.fields.Contains(o.fields) && sc.meta.contains(o.meta)
}

func (sc *Schema) String() string {
	o := new(strings.Builder)
	fmt.Fprintf(o, "schema:\n  fields: %d\n", sc.NumFields())
	for i, f := range sc.fields.refs() {
		if i > 0 {
			o.WriteString("\n")
		}
		fmt.Fprintf(o, "    - %v", *f)
	}
	if sc.meta.Len() > 0 {
		fmt.Fprintf(o, "\n  metadata: %v", sc.meta)
	}
	return o.String()
}

func (sc *Schema) Fingerprint() string {
	if sc == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("S{")
	for _, f := range sc.fields.refs() {
		fieldFingerprint := f.Fingerprint()
		if fieldFingerprint == "" {
			return ""
		}

		b.WriteString(fieldFingerprint)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// Hash returns a hash of the schema fingerprint.
func (sc *Schema) Hash() uint64 { return xxh3.HashString(sc.Fingerprint()) }

// TryMergeSchemas merges schemas, in order, into a single schema.
//
// Metadata is unioned; the same key with different values in two schemas is
// a schema error. Fields are matched by name: the first occurrence fixes the
// position and later occurrences are merged into it with Field.TryMerge.
// Fields with new names are appended. Nil schemas are skipped.
func TryMergeSchemas(schemas ...*Schema) (*Schema, error) {
	var (
		meta Metadata
		bldr = NewSchemaBuilder()
	)
	for _, sc := range schemas {
		if sc == nil {
			continue
		}
		merged, err := meta.merge(sc.meta, func(key, ours, theirs string) error {
			return Errorf(KindSchema,
				"fail to merge schema due to conflicting metadata. Key '%s' has different values '%s' and '%s'",
				key, ours, theirs)
		})
		if err != nil {
			return nil, err
		}
		meta = merged

		for _, f := range sc.fields.refs() {
			if err := bldr.TryMerge(f); err != nil {
				return nil, err
			}
		}
	}
	bldr.SetMetadata(meta)
	return bldr.Finish(), nil
}

// SchemaBuilder accumulates fields, merging fields by name, and produces a
// Schema. Fields already held by the builder are never modified in place:
// a merge replaces the handle with a merged copy.
type SchemaBuilder struct {
	refs []*Field
	meta Metadata
}

func NewSchemaBuilder() *SchemaBuilder { return &SchemaBuilder{} }

// NewSchemaBuilderFromFields starts a builder with the handles of fs.
func NewSchemaBuilderFromFields(fs Fields) *SchemaBuilder {
	return &SchemaBuilder{refs: fs.Refs()}
}

func (b *SchemaBuilder) Len() int                { return len(b.refs) }
func (b *SchemaBuilder) Field(i int) *Field      { return b.refs[i] }
func (b *SchemaBuilder) Metadata() Metadata      { return b.meta }
func (b *SchemaBuilder) SetMetadata(md Metadata) { b.meta = md.clone() }

// Push appends a copy of f without checking for duplicate names.
func (b *SchemaBuilder) Push(f Field) { b.refs = append(b.refs, NewFieldRef(f)) }

// PushRef appends the shared handle f without checking for duplicate names.
func (b *SchemaBuilder) PushRef(f *Field) { b.refs = append(b.refs, f) }

// Remove removes and returns the field at index i.
func (b *SchemaBuilder) Remove(i int) *Field {
	f := b.refs[i]
	b.refs = slices.Delete(b.refs, i, i+1)
	return f
}

// TryMerge merges f into the builder. If a field with the same name is
// present, f is merged into a copy of it that replaces the original;
// otherwise f is appended. Merging a handle with itself is a no-op.
func (b *SchemaBuilder) TryMerge(f *Field) error {
	i := slices.IndexFunc(b.refs, func(ref *Field) bool { return ref.Name == f.Name })
	switch {
	case i < 0:
		debug.Logf("arrow: schema builder appends field %q", f.Name)
		b.refs = append(b.refs, f)
		return nil
	case b.refs[i] == f:
		return nil
	}

	merged := *b.refs[i]
	if err := merged.TryMerge(f); err != nil {
		return err
	}
	b.refs[i] = &merged
	return nil
}

func (b *SchemaBuilder) fieldList() Fields { return FieldsFromSlice(b.refs) }

// Finish returns the built schema and resets the builder.
func (b *SchemaBuilder) Finish() *Schema {
	refs, meta := b.refs, b.meta
	b.refs, b.meta = nil, Metadata{}
	return NewSchemaFromFields(FieldsFromRefs(refs), &meta)
}
