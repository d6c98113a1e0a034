/*
Package arrow provides the logical type and schema layer of Apache Arrow.

Apache Arrow is a cross-language development platform for in-memory data. It specifies a standardized
language-independent columnar memory format for flat and hierarchical data. This package describes the
shape of that data without holding any of it: data types, fields, schemas and the rules for comparing
and combining them.

Basics

A Field names a column and carries its DataType, its nullability and optional Metadata. Fields are
shared by reference: Fields, UnionFields and the nested types hold *Field handles that are never
modified once built, so the same handle may appear in many schemas and be read from many goroutines.

Containment and merging

Fields.Contains, Field.Contains and Schema.Contains answer whether every record conforming to one shape
also conforms to another. The relation is directional: a nullable column contains its non-nullable
counterpart but not the reverse.

Field.TryMerge, UnionFields.TryMerge and TryMergeSchemas fold two compatible shapes into one that
describes both. Incompatible input is reported as an *Error of kind KindSchema; malformed construction
input, such as a repeated union type code, panics.

Debugging

Building with the "assert" tag enables internal consistency checks and the "debug" tag traces merge
decisions to stderr.
*/
package arrow
