// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package avrocount

import (
	"fmt"
	"strings"
)

// Count is the result of counting one value: either a leaf holding the
// number of bytes the value occupied, or a structured node mapping keys
// to sub-counts in production order (record field order, or the fixed
// structural keys of unions, arrays and maps).
type Count struct {
	bytes      int
	entries    []CountEntry
	structured bool
}

// CountEntry is one key of a structured Count.
type CountEntry struct {
	Key  string
	Node Count
}

// Leaf returns a leaf count of n bytes.
func Leaf(n int) Count {
	return Count{bytes: n}
}

// Structured returns a structured count over the given entries. Keys
// must be unique; order is preserved.
func Structured(entries ...CountEntry) Count {
	return Count{entries: entries, structured: true}
}

// Entry pairs a key with a sub-count.
func Entry(key string, node Count) CountEntry {
	return CountEntry{Key: key, Node: node}
}

// IsLeaf reports whether c is a plain byte count.
func (c Count) IsLeaf() bool {
	return !c.structured
}

// Bytes returns the byte count of a leaf, or 0 for a structured node.
func (c Count) Bytes() int {
	return c.bytes
}

// Entries returns the sub-counts of a structured node in key order.
// The returned slice must not be mutated.
func (c Count) Entries() []CountEntry {
	return c.entries
}

// Get returns the sub-count stored under key.
func (c Count) Get(key string) (Count, bool) {
	for _, e := range c.entries {
		if e.Key == key {
			return e.Node, true
		}
	}
	return Count{}, false
}

// Total sums every leaf reachable from c. For a count produced by
// ByteCounter this equals the number of bytes the decoder advanced
// through the buffer.
func (c Count) Total() int {
	if !c.structured {
		return c.bytes
	}
	total := 0
	for _, e := range c.entries {
		total += e.Node.Total()
	}
	return total
}

// String renders the count in a compact debug form, e.g.
// {userName: 7, favoriteNumber: {union_branch: 1, value: 2}}.
func (c Count) String() string {
	if !c.structured {
		return fmt.Sprintf("%d", c.bytes)
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Key)
		sb.WriteString(": ")
		sb.WriteString(e.Node.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// MergeCounts folds a sequence of structurally identical counts into
// one by recursive elementwise summation. All items of a schema-driven
// collection share one schema, so their counts always have the same
// shape; a mismatch means a counter defect and fails fast. An empty
// sequence yields the empty structured node.
func MergeCounts(counts []Count) (Count, error) {
	if len(counts) == 0 {
		return Structured(), nil
	}
	first := counts[0]
	if first.IsLeaf() {
		total := 0
		for _, c := range counts {
			if !c.IsLeaf() {
				return Count{}, ShapeMismatchError("cannot merge structured count into leaf")
			}
			total += c.Bytes()
		}
		return Leaf(total), nil
	}
	merged := make([]CountEntry, 0, len(first.entries))
	for _, e := range first.entries {
		children := make([]Count, 0, len(counts))
		for _, c := range counts {
			if c.IsLeaf() {
				return Count{}, ShapeMismatchError("cannot merge leaf count into structured")
			}
			if len(c.entries) != len(first.entries) {
				return Count{}, ShapeMismatchErrorf("cannot merge counts with %d and %d keys", len(first.entries), len(c.entries))
			}
			child, ok := c.Get(e.Key)
			if !ok {
				return Count{}, ShapeMismatchErrorf("key %q missing from count being merged", e.Key)
			}
			children = append(children, child)
		}
		node, err := MergeCounts(children)
		if err != nil {
			return Count{}, err
		}
		merged = append(merged, Entry(e.Key, node))
	}
	return Structured(merged...), nil
}
