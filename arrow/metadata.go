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

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Metadata is an ordered list of string key/value pairs attached to fields,
// struct types and schemas.
type Metadata struct {
	keys   []string
	values []string
}

// NewMetadata builds metadata from parallel key and value slices. It panics
// when the slices have different lengths.
func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("arrow: len mismatch")
	}

	n := len(keys)
	if n == 0 {
		return Metadata{}
	}

	md := Metadata{
		keys:   make([]string, n),
		values: make([]string, n),
	}
	copy(md.keys, keys)
	copy(md.values, values)
	return md
}

// MetadataFrom builds metadata from a map. Keys are sorted so the result
// does not depend on map iteration order.
func MetadataFrom(kv map[string]string) Metadata {
	if len(kv) == 0 {
		return Metadata{}
	}

	md := Metadata{
		keys:   maps.Keys(kv),
		values: make([]string, 0, len(kv)),
	}
	slices.Sort(md.keys)
	for _, k := range md.keys {
		md.values = append(md.values, kv[k])
	}
	return md
}

// MetadataFromBytes builds metadata from raw key/value bytes, such as those
// decoded from a file footer, and rejects entries that are not valid UTF-8.
func MetadataFromBytes(keys, values [][]byte) (Metadata, error) {
	if len(keys) != len(values) {
		return Metadata{}, Errorf(KindInvalidArgument, "metadata has %d keys but %d values", len(keys), len(values))
	}
	if len(keys) == 0 {
		return Metadata{}, nil
	}

	md := Metadata{
		keys:   make([]string, len(keys)),
		values: make([]string, len(values)),
	}
	for i := range keys {
		k, err := StringFromUTF8(keys[i])
		if err != nil {
			return Metadata{}, fmt.Errorf("metadata key %d: %w", i, err)
		}
		v, err := StringFromUTF8(values[i])
		if err != nil {
			return Metadata{}, fmt.Errorf("metadata value for key %q: %w", k, err)
		}
		md.keys[i], md.values[i] = k, v
	}
	return md, nil
}

func (md Metadata) Len() int         { return len(md.keys) }
func (md Metadata) Keys() []string   { return md.keys }
func (md Metadata) Values() []string { return md.values }

func (md Metadata) ToMap() map[string]string {
	m := make(map[string]string, len(md.keys))
	for i := range md.keys {
		m[md.keys[i]] = md.values[i]
	}
	return m
}

func (md Metadata) String() string {
	o := new(strings.Builder)
	fmt.Fprintf(o, "[")
	for i := range md.keys {
		if i > 0 {
			fmt.Fprintf(o, ", ")
		}
		fmt.Fprintf(o, "%q: %q", md.keys[i], md.values[i])
	}
	fmt.Fprintf(o, "]")
	return o.String()
}

// FindKey returns the index of the key-value pair with the provided key name,
// or -1 if such a key does not exist.
func (md Metadata) FindKey(k string) int {
	return slices.Index(md.keys, k)
}

// GetValue returns the value associated with the provided key name.
// If the key does not exist, the second return value is false.
func (md Metadata) GetValue(k string) (string, bool) {
	i := md.FindKey(k)
	if i < 0 {
		return "", false
	}
	return md.values[i], true
}

func (md Metadata) clone() Metadata {
	if len(md.keys) == 0 {
		return Metadata{}
	}

	o := Metadata{
		keys:   make([]string, len(md.keys)),
		values: make([]string, len(md.values)),
	}
	copy(o.keys, md.keys)
	copy(o.values, md.values)

	return o
}

// Equal reports whether md and other hold the same pairs, in any order.
func (md Metadata) Equal(other Metadata) bool {
	if md.Len() != other.Len() {
		return false
	}

	// keys may repeat, so pairs are compared as multisets.
	pairs := make(map[[2]string]int, md.Len())
	for i, k := range md.keys {
		pairs[[2]string{k, md.values[i]}]++
	}
	for i, k := range other.keys {
		p := [2]string{k, other.values[i]}
		if pairs[p] == 0 {
			return false
		}
		pairs[p]--
	}
	return true
}

// contains reports whether every pair of other is present in md with the
// same value.
func (md Metadata) contains(other Metadata) bool {
	for i, k := range other.keys {
		v, ok := md.GetValue(k)
		if !ok || v != other.values[i] {
			return false
		}
	}
	return true
}

// merge returns md extended with the pairs of other that md lacks. A key
// present in both with different values is reported through conflict.
func (md Metadata) merge(other Metadata, conflict func(key, ours, theirs string) error) (Metadata, error) {
	switch {
	case other.Len() == 0:
		return md, nil
	case md.Len() == 0:
		return other.clone(), nil
	}

	out := md.clone()
	for i, k := range other.keys {
		v := other.values[i]
		if ours, ok := md.GetValue(k); ok {
			if ours != v {
				return Metadata{}, conflict(k, ours, v)
			}
			continue
		}
		out.keys = append(out.keys, k)
		out.values = append(out.values, v)
	}
	return out, nil
}

func (md Metadata) size() int {
	n := 2 * len(md.keys) * int(unsafe.Sizeof(""))
	for i := range md.keys {
		n += len(md.keys[i]) + len(md.values[i])
	}
	return n
}
