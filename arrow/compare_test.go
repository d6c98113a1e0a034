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
)

func TestTypeEqual(t *testing.T) {
	md1 := MetadataFrom(map[string]string{"k1": "v1"})
	md2 := MetadataFrom(map[string]string{"k1": "v2"})

	tests := []struct {
		left, right   DataType
		want          bool
		checkMetadata bool
	}{
		{
			nil, nil, false, false,
		},
		{
			nil, PrimitiveTypes.Uint8, false, false,
		},
		{
			PrimitiveTypes.Float32, nil, false, false,
		},
		{
			PrimitiveTypes.Float64, PrimitiveTypes.Int32, false, false,
		},
		{
			Null, Null, true, false,
		},
		{
			&Time32Type{Unit: Second}, &Time32Type{Unit: Second}, true, false,
		},
		{
			&Time32Type{Unit: Millisecond}, &Time32Type{Unit: Second}, false, false,
		},
		{
			&Time64Type{Unit: Nanosecond}, &Time64Type{Unit: Nanosecond}, true, false,
		},
		{
			&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "UTC"}, true, false,
		},
		{
			&TimestampType{Unit: Microsecond, TimeZone: "UTC"}, &TimestampType{Unit: Millisecond, TimeZone: "UTC"}, false, false,
		},
		{
			&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "CET"}, false, false,
		},
		{
			ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint64), true, false,
		},
		{
			ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint32), false, false,
		},
		{
			ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint16)), true, false,
		},
		{
			ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint8)), false, false,
		},
		{
			ListOf(PrimitiveTypes.Int8), ListOfNonNullable(PrimitiveTypes.Int8), false, false,
		},
		{
			ListOf(PrimitiveTypes.Int8), LargeListOf(PrimitiveTypes.Int8), false, false,
		},
		{
			FixedSizeListOf(2, PrimitiveTypes.Int8), FixedSizeListOf(2, PrimitiveTypes.Int8), true, false,
		},
		{
			FixedSizeListOf(2, PrimitiveTypes.Int8), FixedSizeListOf(3, PrimitiveTypes.Int8), false, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			false, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: false}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			false, false,
		},
		{
			StructOf(Field{Name: "f0", Type: PrimitiveTypes.Uint32, Nullable: true}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			false, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
				Field{Name: "f2", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			false, false,
		},
		{
			StructOfWithMetadata(md1, Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			StructOfWithMetadata(md2, Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			true, false,
		},
		{
			StructOfWithMetadata(md1, Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			StructOfWithMetadata(md2, Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			false, true,
		},
		{
			StructOfWithMetadata(md1, Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			StructOfWithMetadata(md1, Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true}),
			true, true,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md1}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md2}),
			true, false,
		},
		{
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md1}),
			StructOf(Field{Name: "f1", Type: PrimitiveTypes.Uint32, Metadata: md2}),
			false, true,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
				Field{Name: "f2", Type: PrimitiveTypes.Float32, Nullable: false},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
				Field{Name: "f2", Type: PrimitiveTypes.Float32, Nullable: false},
			),
			true, true,
		},
		{
			MapOf(BinaryTypes.String, PrimitiveTypes.Int32), MapOf(BinaryTypes.String, PrimitiveTypes.Int32), true, false,
		},
		{
			MapOf(BinaryTypes.String, PrimitiveTypes.Int32), MapOf(BinaryTypes.String, PrimitiveTypes.Int64), false, false,
		},
		{
			SparseUnionOf(NewUnionFields([]UnionTypeCode{0, 1}, []Field{
				{Name: "a", Type: PrimitiveTypes.Int8}, {Name: "b", Type: BinaryTypes.String},
			})),
			SparseUnionOf(NewUnionFields([]UnionTypeCode{0, 1}, []Field{
				{Name: "a", Type: PrimitiveTypes.Int8}, {Name: "b", Type: BinaryTypes.String},
			})),
			true, true,
		},
		{
			SparseUnionOf(NewUnionFields([]UnionTypeCode{0, 1}, []Field{
				{Name: "a", Type: PrimitiveTypes.Int8}, {Name: "b", Type: BinaryTypes.String},
			})),
			SparseUnionOf(NewUnionFields([]UnionTypeCode{0, 2}, []Field{
				{Name: "a", Type: PrimitiveTypes.Int8}, {Name: "b", Type: BinaryTypes.String},
			})),
			false, false,
		},
		{
			&DictionaryType{IndexType: PrimitiveTypes.Int8, ValueType: BinaryTypes.String},
			&DictionaryType{IndexType: PrimitiveTypes.Int8, ValueType: BinaryTypes.String},
			true, false,
		},
		{
			&DictionaryType{IndexType: PrimitiveTypes.Int8, ValueType: BinaryTypes.String},
			&DictionaryType{IndexType: PrimitiveTypes.Int16, ValueType: BinaryTypes.String},
			false, false,
		},
	}

	for _, test := range tests {
		var opts []TypeEqualOption
		if test.checkMetadata {
			opts = append(opts, CheckMetadata())
		}
		got := TypeEqual(test.left, test.right, opts...)
		if got != test.want {
			t.Errorf("TypeEqual(%v, %v, metadata=%v): got=%v, want=%v", test.left, test.right, test.checkMetadata, got, test.want)
		}
	}
}

func TestTypeContains(t *testing.T) {
	nullableA := Field{Name: "a", Type: PrimitiveTypes.Int32, Nullable: true}
	requiredA := Field{Name: "a", Type: PrimitiveTypes.Int32}

	tests := []struct {
		name string
		a, b DataType
		ab   bool
		ba   bool
	}{
		{"nil", nil, nil, false, false},
		{"prim", PrimitiveTypes.Int32, PrimitiveTypes.Int32, true, true},
		{"prim-diff", PrimitiveTypes.Int32, PrimitiveTypes.Int64, false, false},
		{"struct-nullable", StructOf(nullableA), StructOf(requiredA), true, false},
		{
			"struct-len",
			StructOf(nullableA),
			StructOf(nullableA, Field{Name: "b", Type: PrimitiveTypes.Int8}),
			false, false,
		},
		{"list", ListOf(PrimitiveTypes.Int8), ListOfNonNullable(PrimitiveTypes.Int8), true, false},
		{"large-list", LargeListOfField(nullableA), LargeListOfField(requiredA), true, false},
		{"fixed-size-list", FixedSizeListOfField(2, nullableA), FixedSizeListOfField(2, requiredA), true, false},
		{"fixed-size-list-len", FixedSizeListOfField(2, nullableA), FixedSizeListOfField(3, requiredA), false, false},
		{"list-vs-large", ListOf(PrimitiveTypes.Int8), LargeListOf(PrimitiveTypes.Int8), false, false},
		{
			"map",
			MapOf(BinaryTypes.String, StructOf(nullableA)),
			MapOf(BinaryTypes.String, StructOf(requiredA)),
			true, false,
		},
		{
			"union",
			DenseUnionOf(NewUnionFields([]UnionTypeCode{0, 1}, []Field{nullableA, {Name: "b", Type: BinaryTypes.String}})),
			DenseUnionOf(NewUnionFields([]UnionTypeCode{0}, []Field{requiredA})),
			true, false,
		},
		{
			"union-mode",
			DenseUnionOf(NewUnionFields([]UnionTypeCode{0}, []Field{nullableA})),
			SparseUnionOf(NewUnionFields([]UnionTypeCode{0}, []Field{nullableA})),
			false, false,
		},
		{
			"dictionary",
			&DictionaryType{IndexType: PrimitiveTypes.Int8, ValueType: StructOf(nullableA)},
			&DictionaryType{IndexType: PrimitiveTypes.Int8, ValueType: StructOf(requiredA)},
			true, false,
		},
		{
			"nested",
			ListOf(StructOf(Field{Name: "s", Type: StructOf(nullableA)})),
			ListOf(StructOf(Field{Name: "s", Type: StructOf(requiredA)})),
			true, false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := TypeContains(test.a, test.b); got != test.ab {
				t.Fatalf("TypeContains(%v, %v): got=%v, want=%v", test.a, test.b, got, test.ab)
			}
			if got := TypeContains(test.b, test.a); got != test.ba {
				t.Fatalf("TypeContains(%v, %v): got=%v, want=%v", test.b, test.a, got, test.ba)
			}
		})
	}
}
