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

import "fmt"

// SortOptions describes how a single column is ordered.
type SortOptions struct {
	Descending bool
	NullsFirst bool
}

// DefaultSortOptions is ascending with nulls first, matching Spark.
func DefaultSortOptions() SortOptions {
	return SortOptions{Descending: false, NullsFirst: true}
}

// Inverted returns the options with both the direction and the null
// placement flipped.
func (o SortOptions) Inverted() SortOptions {
	return SortOptions{Descending: !o.Descending, NullsFirst: !o.NullsFirst}
}

func (o SortOptions) String() string {
	dir, nulls := "asc", "nulls_last"
	if o.Descending {
		dir = "desc"
	}
	if o.NullsFirst {
		nulls = "nulls_first"
	}
	return fmt.Sprintf("sort_options<%s, %s>", dir, nulls)
}
