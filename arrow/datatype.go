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
	"hash/maphash"
	"reflect"
	"strconv"

	"github.com/iajoiner/miniarrow-go/arrow/internal/debug"
)

// Type is a logical type. They can be expressed as
// either a primitive physical type (bytes or bits of some fixed size), a
// nested type consisting of other data types, or another data type (e.g. a
// timestamp encoded as an int64)
type Type int

const (
	// NULL type having no physical storage
	NULL Type = iota

	// BOOL is a 1 bit, LSB bit-packed ordering
	BOOL

	// UINT8 is an Unsigned 8-bit little-endian integer
	UINT8

	// INT8 is a Signed 8-bit little-endian integer
	INT8

	// UINT16 is an Unsigned 16-bit little-endian integer
	UINT16

	// INT16 is a Signed 16-bit little-endian integer
	INT16

	// UINT32 is an Unsigned 32-bit little-endian integer
	UINT32

	// INT32 is a Signed 32-bit little-endian integer
	INT32

	// UINT64 is an Unsigned 64-bit little-endian integer
	UINT64

	// INT64 is a Signed 64-bit little-endian integer
	INT64

	// FLOAT16 is a 2-byte floating point value
	FLOAT16

	// FLOAT32 is a 4-byte floating point value
	FLOAT32

	// FLOAT64 is an 8-byte floating point value
	FLOAT64

	// STRING is a UTF8 variable-length string
	STRING

	// BINARY is a Variable-length byte type (no guarantee of UTF8-ness)
	BINARY

	// FIXED_SIZE_BINARY is a binary where each value occupies the same number of bytes
	FIXED_SIZE_BINARY

	// DATE32 is int32 days since the UNIX epoch
	DATE32

	// DATE64 is int64 milliseconds since the UNIX epoch
	DATE64

	// TIMESTAMP is an exact timestamp encoded with int64 since UNIX epoch
	TIMESTAMP

	// TIME32 is a signed 32-bit integer, representing either seconds or
	// milliseconds since midnight
	TIME32

	// TIME64 is a signed 64-bit integer, representing either microseconds or
	// nanoseconds since midnight
	TIME64

	// INTERVAL_MONTHS is YEAR_MONTH interval in SQL style
	INTERVAL_MONTHS

	// INTERVAL_DAY_TIME is DAY_TIME in SQL Style
	INTERVAL_DAY_TIME

	// DECIMAL128 is a precision- and scale-based decimal type. Storage type depends on the
	// parameters.
	DECIMAL128

	// DECIMAL256 is a precision and scale based decimal type, with 256 bit max.
	DECIMAL256

	// LIST is a list of some logical data type
	LIST

	// STRUCT of logical types
	STRUCT

	// SPARSE_UNION of logical types
	SPARSE_UNION

	// DENSE_UNION of logical types
	DENSE_UNION

	// DICTIONARY aka Category type
	DICTIONARY

	// MAP is a repeated struct logical type
	MAP

	// EXTENSION is reserved for user defined types; no type in this
	// package reports it.
	EXTENSION

	// Fixed size list of some logical type
	FIXED_SIZE_LIST

	// Measure of elapsed time in either seconds, milliseconds, microseconds
	// or nanoseconds.
	DURATION

	// like STRING, but 64-bit offsets
	LARGE_STRING

	// like BINARY but with 64-bit offsets
	LARGE_BINARY

	// like LIST but with 64-bit offsets
	LARGE_LIST

	// calendar interval with three fields
	INTERVAL_MONTH_DAY_NANO

	// Alias to ensure we do not break any consumers
	DECIMAL = DECIMAL128
)

var typeNames = [...]string{
	NULL:                    "NULL",
	BOOL:                    "BOOL",
	UINT8:                   "UINT8",
	INT8:                    "INT8",
	UINT16:                  "UINT16",
	INT16:                   "INT16",
	UINT32:                  "UINT32",
	INT32:                   "INT32",
	UINT64:                  "UINT64",
	INT64:                   "INT64",
	FLOAT16:                 "FLOAT16",
	FLOAT32:                 "FLOAT32",
	FLOAT64:                 "FLOAT64",
	STRING:                  "STRING",
	BINARY:                  "BINARY",
	FIXED_SIZE_BINARY:       "FIXED_SIZE_BINARY",
	DATE32:                  "DATE32",
	DATE64:                  "DATE64",
	TIMESTAMP:               "TIMESTAMP",
	TIME32:                  "TIME32",
	TIME64:                  "TIME64",
	INTERVAL_MONTHS:         "INTERVAL_MONTHS",
	INTERVAL_DAY_TIME:       "INTERVAL_DAY_TIME",
	DECIMAL128:              "DECIMAL128",
	DECIMAL256:              "DECIMAL256",
	LIST:                    "LIST",
	STRUCT:                  "STRUCT",
	SPARSE_UNION:            "SPARSE_UNION",
	DENSE_UNION:             "DENSE_UNION",
	DICTIONARY:              "DICTIONARY",
	MAP:                     "MAP",
	EXTENSION:               "EXTENSION",
	FIXED_SIZE_LIST:         "FIXED_SIZE_LIST",
	DURATION:                "DURATION",
	LARGE_STRING:            "LARGE_STRING",
	LARGE_BINARY:            "LARGE_BINARY",
	LARGE_LIST:              "LARGE_LIST",
	INTERVAL_MONTH_DAY_NANO: "INTERVAL_MONTH_DAY_NANO",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// DataType is the representation of an Arrow type.
type DataType interface {
	ID() Type
	// Name is name of the data type.
	Name() string
	Fingerprint() string
	String() string
}

// FixedWidthDataType is the representation of an Arrow type that
// requires a fixed number of bits in memory for each element.
type FixedWidthDataType interface {
	DataType
	// BitWidth returns the number of bits required to store a single element of this data type in memory.
	BitWidth() int
}

type BinaryDataType interface {
	DataType
	IsUtf8() bool
	binary()
}

// NestedType is a type with child fields.
type NestedType interface {
	DataType
	// Fields returns a copy of the child fields.
	Fields() []Field
	NumFields() int
}

func HashType(seed maphash.Seed, dt DataType) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(dt.Fingerprint())
	return h.Sum64()
}

func typeIDFingerprint(id Type) string {
	c := string(rune(int(id) + int('A')))
	return "@" + c
}

func typeFingerprint(typ DataType) string { return typeIDFingerprint(typ.ID()) }

func timeUnitFingerprint(unit TimeUnit) rune {
	switch unit {
	case Second:
		return 's'
	case Millisecond:
		return 'm'
	case Microsecond:
		return 'u'
	case Nanosecond:
		return 'n'
	default:
		debug.Assert(false, "unexpected time unit")
		return rune(0)
	}
}

// dataTypeSize estimates the bytes owned by dt, including the child fields
// of nested types.
func dataTypeSize(dt DataType) int {
	if dt == nil {
		return 0
	}

	var own int
	if rt := reflect.TypeOf(dt); rt.Kind() == reflect.Ptr {
		own = int(rt.Elem().Size())
	} else {
		own = int(rt.Size())
	}

	switch dt := dt.(type) {
	case *StructType:
		return own + dt.fields.Size()
	case *ListType:
		return own + dt.elem.Size()
	case *LargeListType:
		return own + dt.elem.Size()
	case *FixedSizeListType:
		return own + dt.elem.Size()
	case *MapType:
		return own + dt.entries.Size()
	case *UnionType:
		return own + dt.fields.Size()
	case *DictionaryType:
		return own + dataTypeSize(dt.IndexType) + dataTypeSize(dt.ValueType)
	case *TimestampType:
		return own + len(dt.TimeZone)
	}
	return own
}
