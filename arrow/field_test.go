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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldEqual(t *testing.T) {
	md := MetadataFrom(map[string]string{"k": "v"})
	base := Field{Name: "f", Type: PrimitiveTypes.Int32, Nullable: true}

	for _, tc := range []struct {
		name  string
		other Field
		want  bool
	}{
		{"same", base, true},
		{"name", Field{Name: "g", Type: PrimitiveTypes.Int32, Nullable: true}, false},
		{"type", Field{Name: "f", Type: PrimitiveTypes.Int64, Nullable: true}, false},
		{"nullable", base.WithNullable(false), false},
		{"metadata", base.WithMetadata(md), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Equal(tc.other))
			assert.Equal(t, tc.want, tc.other.Equal(base))
			if tc.want {
				assert.Equal(t, base.Fingerprint(), tc.other.Fingerprint())
			}
		})
	}
}

func TestFieldWith(t *testing.T) {
	md := MetadataFrom(map[string]string{"k": "v"})
	f := Field{Name: "f", Type: PrimitiveTypes.Int32}

	g := f.WithNullable(true).WithMetadata(md)
	assert.False(t, f.Nullable)
	assert.False(t, f.HasMetadata())
	assert.True(t, g.Nullable)
	assert.True(t, g.HasMetadata())

	md.values[0] = "changed"
	v, _ := g.Metadata.GetValue("k")
	assert.Equal(t, "v", v, "WithMetadata must copy")
}

func TestFieldString(t *testing.T) {
	f := Field{Name: "f", Type: PrimitiveTypes.Int32, Nullable: true}
	assert.Equal(t, "f: type=int32, nullable", f.String())

	f = f.WithNullable(false).WithMetadata(MetadataFrom(map[string]string{"k": "v"}))
	assert.Equal(t, "f: type=int32\n   metadata: [\"k\": \"v\"]", f.String())
}

func TestNewFieldRef(t *testing.T) {
	md := MetadataFrom(map[string]string{"k": "v"})
	f := Field{Name: "f", Type: PrimitiveTypes.Int32, Metadata: md}
	ref := NewFieldRef(f)

	f.Name = "changed"
	md.values[0] = "changed"
	assert.Equal(t, "f", ref.Name)
	v, _ := ref.Metadata.GetValue("k")
	assert.Equal(t, "v", v)
}

func TestFieldContains(t *testing.T) {
	md := MetadataFrom(map[string]string{"k": "v"})
	mdMore := MetadataFrom(map[string]string{"k": "v", "x": "y"})

	for _, tc := range []struct {
		name string
		a, b Field
		ab   bool
		ba   bool
	}{
		{
			"equal",
			Field{Name: "f", Type: PrimitiveTypes.Int32},
			Field{Name: "f", Type: PrimitiveTypes.Int32},
			true, true,
		},
		{
			"nullable",
			Field{Name: "f", Type: PrimitiveTypes.Int32, Nullable: true},
			Field{Name: "f", Type: PrimitiveTypes.Int32},
			true, false,
		},
		{
			"name",
			Field{Name: "f", Type: PrimitiveTypes.Int32},
			Field{Name: "F", Type: PrimitiveTypes.Int32},
			false, false,
		},
		{
			"type",
			Field{Name: "f", Type: PrimitiveTypes.Int32},
			Field{Name: "f", Type: PrimitiveTypes.Int64},
			false, false,
		},
		{
			"metadata-superset",
			Field{Name: "f", Type: PrimitiveTypes.Int32, Metadata: mdMore},
			Field{Name: "f", Type: PrimitiveTypes.Int32, Metadata: md},
			true, false,
		},
		{
			"metadata-conflict",
			Field{Name: "f", Type: PrimitiveTypes.Int32, Metadata: md},
			Field{Name: "f", Type: PrimitiveTypes.Int32, Metadata: MetadataFrom(map[string]string{"k": "w"})},
			false, false,
		},
		{
			"nested",
			Field{Name: "f", Type: StructOf(Field{Name: "a", Type: PrimitiveTypes.Int8, Nullable: true})},
			Field{Name: "f", Type: StructOf(Field{Name: "a", Type: PrimitiveTypes.Int8})},
			true, false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ab, tc.a.Contains(tc.b))
			assert.Equal(t, tc.ba, tc.b.Contains(tc.a))
			assert.True(t, tc.a.Contains(tc.a))
		})
	}
}

func TestFieldSize(t *testing.T) {
	small := Field{Name: "f", Type: PrimitiveTypes.Int32}
	named := Field{Name: "a_much_longer_name", Type: PrimitiveTypes.Int32}
	assert.Equal(t, small.Size()+len(named.Name)-len(small.Name), named.Size())

	withMeta := small.WithMetadata(MetadataFrom(map[string]string{"k": "v"}))
	assert.Greater(t, withMeta.Size(), small.Size())

	nested := Field{Name: "f", Type: StructOf(small, named)}
	assert.Greater(t, nested.Size(), small.Size()+named.Size())
}

func TestFieldTryMerge(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		f := NewFieldRef(Field{Name: "f", Type: PrimitiveTypes.Int32})
		require.NoError(t, f.TryMerge(f))
		assert.True(t, f.Equal(Field{Name: "f", Type: PrimitiveTypes.Int32}))
	})

	t.Run("nullable", func(t *testing.T) {
		f := Field{Name: "f", Type: PrimitiveTypes.Int32}
		require.NoError(t, f.TryMerge(&Field{Name: "f", Type: PrimitiveTypes.Int32, Nullable: true}))
		assert.True(t, f.Nullable)

		require.NoError(t, f.TryMerge(&Field{Name: "f", Type: PrimitiveTypes.Int32}))
		assert.True(t, f.Nullable, "nullability is never dropped")
	})

	t.Run("metadata", func(t *testing.T) {
		f := Field{Name: "f", Type: PrimitiveTypes.Int32, Metadata: MetadataFrom(map[string]string{"a": "1"})}
		require.NoError(t, f.TryMerge(&Field{
			Name:     "f", Type: PrimitiveTypes.Int32,
			Metadata: MetadataFrom(map[string]string{"a": "1", "b": "2"}),
		}))
		assert.Equal(t, map[string]string{"a": "1", "b": "2"}, f.Metadata.ToMap())

		before := f
		err := f.TryMerge(&Field{
			Name:     "f", Type: PrimitiveTypes.Int32,
			Metadata: MetadataFrom(map[string]string{"a": "2"}),
		})
		assert.ErrorIs(t, err, ErrSchema)
		assert.EqualError(t, err, "schema error: fail to merge field 'f' due to conflicting metadata data value for key a. From value = 2 does not match 1")
		assert.True(t, f.Equal(before))
	})

	t.Run("null-adopts-type", func(t *testing.T) {
		f := Field{Name: "f", Type: Null}
		require.NoError(t, f.TryMerge(&Field{Name: "f", Type: BinaryTypes.String}))
		assert.True(t, f.Equal(Field{Name: "f", Type: BinaryTypes.String, Nullable: true}))
	})

	t.Run("from-null", func(t *testing.T) {
		f := Field{Name: "f", Type: PrimitiveTypes.Float64}
		require.NoError(t, f.TryMerge(&Field{Name: "f", Type: Null}))
		assert.True(t, f.Equal(Field{Name: "f", Type: PrimitiveTypes.Float64, Nullable: true}))
	})

	t.Run("type-mismatch", func(t *testing.T) {
		f := Field{Name: "f", Type: PrimitiveTypes.Int32}
		err := f.TryMerge(&Field{Name: "f", Type: PrimitiveTypes.Int64})
		assert.ErrorIs(t, err, ErrSchema)
		assert.EqualError(t, err, "schema error: fail to merge schema field 'f' because the from data_type = int64 does not equal int32")
		assert.Equal(t, PrimitiveTypes.Int32, f.Type)
	})

	t.Run("struct", func(t *testing.T) {
		shared := NewFieldRef(Field{Name: "a", Type: PrimitiveTypes.Int32})
		st := StructOfFields(FieldRefsOf(shared))
		f := Field{Name: "s", Type: st}

		err := f.TryMerge(&Field{Name: "s", Type: StructOf(
			Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true},
			Field{Name: "b", Type: BinaryTypes.String},
		)})
		require.NoError(t, err)

		want := StructOf(
			Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true},
			Field{Name: "b", Type: BinaryTypes.String},
		)
		assert.True(t, TypeEqual(f.Type, want, CheckMetadata()), "got=%v", f.Type)
		assert.False(t, shared.Nullable, "shared child must not be modified")
		assert.Equal(t, 1, st.NumFields(), "original struct must not be modified")

		idx, ok := f.Type.(*StructType).FieldIdx("b")
		assert.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("struct-metadata", func(t *testing.T) {
		md := NewMetadata([]string{"k"}, []string{"v"})
		f := Field{Name: "s", Type: StructOfWithMetadata(md, Field{Name: "a", Type: PrimitiveTypes.Int32})}

		err := f.TryMerge(&Field{Name: "s", Type: StructOf(Field{Name: "b", Type: BinaryTypes.String})})
		require.NoError(t, err)
		assert.Equal(t, 2, f.Type.(*StructType).NumFields())
		assert.True(t, md.Equal(f.Type.(*StructType).Metadata()))
	})

	t.Run("struct-mismatch", func(t *testing.T) {
		f := Field{Name: "s", Type: StructOf(Field{Name: "a", Type: PrimitiveTypes.Int32})}
		err := f.TryMerge(&Field{Name: "s", Type: PrimitiveTypes.Int32})
		assert.ErrorIs(t, err, ErrSchema)
		assert.EqualError(t, err, "schema error: fail to merge schema field 's' because the from data_type = int32 is not a struct")
	})

	t.Run("struct-child-conflict", func(t *testing.T) {
		f := Field{Name: "s", Type: StructOf(Field{Name: "a", Type: PrimitiveTypes.Int32})}
		before := f
		err := f.TryMerge(&Field{Name: "s", Type: StructOf(Field{Name: "a", Type: BinaryTypes.String})})
		assert.ErrorIs(t, err, ErrSchema)
		assert.Same(t, before.Type, f.Type)
	})

	t.Run("union", func(t *testing.T) {
		a := Field{Name: "a", Type: PrimitiveTypes.Int32}
		b := Field{Name: "b", Type: BinaryTypes.String}
		f := Field{Name: "u", Type: DenseUnionOf(NewUnionFields([]UnionTypeCode{0}, []Field{a}))}

		err := f.TryMerge(&Field{Name: "u", Type: DenseUnionOf(NewUnionFields([]UnionTypeCode{0, 1}, []Field{a, b}))})
		require.NoError(t, err)
		ut := f.Type.(*UnionType)
		assert.Equal(t, DenseMode, ut.Mode())
		assert.ElementsMatch(t, []UnionTypeCode{0, 1}, ut.TypeCodes())

		err = f.TryMerge(&Field{Name: "u", Type: DenseUnionOf(NewUnionFields([]UnionTypeCode{5}, []Field{a}))})
		assert.ErrorIs(t, err, ErrSchema)
		assert.Same(t, ut, f.Type)

		err = f.TryMerge(&Field{Name: "u", Type: PrimitiveTypes.Int32})
		assert.EqualError(t, err, "schema error: fail to merge schema field 'u' because the from data_type = int32 is not a union")
	})

	t.Run("list", func(t *testing.T) {
		f := Field{Name: "l", Type: ListOfNonNullable(StructOf(Field{Name: "a", Type: PrimitiveTypes.Int8}))}
		err := f.TryMerge(&Field{Name: "l", Type: ListOf(StructOf(Field{Name: "b", Type: PrimitiveTypes.Int16}))})
		require.NoError(t, err)

		want := ListOf(StructOf(
			Field{Name: "a", Type: PrimitiveTypes.Int8},
			Field{Name: "b", Type: PrimitiveTypes.Int16},
		))
		assert.True(t, TypeEqual(f.Type, want), "got=%v", f.Type)

		err = f.TryMerge(&Field{Name: "l", Type: LargeListOf(PrimitiveTypes.Int8)})
		assert.EqualError(t, err, "schema error: fail to merge schema field 'l' because the from data_type = large_list<item: int8, nullable> is not a list")
	})

	t.Run("large-list", func(t *testing.T) {
		f := Field{Name: "l", Type: LargeListOf(Null)}
		require.NoError(t, f.TryMerge(&Field{Name: "l", Type: LargeListOf(PrimitiveTypes.Int8)}))
		assert.True(t, TypeEqual(f.Type, LargeListOf(PrimitiveTypes.Int8)), "got=%v", f.Type)
	})
}
