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

// FlameDelimiter joins path segments in flame graph rows.
const FlameDelimiter = ";"

// FlameRow is one leaf of a count tree addressed by its path, in the
// collapsed-stack format flame graph renderers consume.
type FlameRow struct {
	Path  string
	Bytes int
}

// String renders the row as "path;to;leaf bytes".
func (r FlameRow) String() string {
	return fmt.Sprintf("%s %d", r.Path, r.Bytes)
}

// FlameRows flattens the count into one row per leaf, depth-first in
// key order. Structured nodes contribute path segments, never rows.
// A leaf root produces a single row with an empty path.
func (c Count) FlameRows() []FlameRow {
	var rows []FlameRow
	c.appendFlameRows(nil, &rows)
	return rows
}

func (c Count) appendFlameRows(path []string, rows *[]FlameRow) {
	if c.IsLeaf() {
		*rows = append(*rows, FlameRow{
			Path:  strings.Join(path, FlameDelimiter),
			Bytes: c.Bytes(),
		})
		return
	}
	for _, e := range c.entries {
		e.Node.appendFlameRows(append(path, e.Key), rows)
	}
}
