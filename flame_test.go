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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlameRows(t *testing.T) {
	count := Structured(
		Entry("A", Structured(
			Entry("B", Leaf(1)),
			Entry("C", Leaf(2)),
		)),
		Entry("D", Leaf(3)),
	)
	require.Equal(t, []FlameRow{
		{Path: "A;B", Bytes: 1},
		{Path: "A;C", Bytes: 2},
		{Path: "D", Bytes: 3},
	}, count.FlameRows())
}

func TestFlameRowsLeafRoot(t *testing.T) {
	require.Equal(t, []FlameRow{{Path: "", Bytes: 9}}, Leaf(9).FlameRows())
}

func TestFlameRowsEmptyStructured(t *testing.T) {
	require.Empty(t, Structured().FlameRows())
}

func TestFlameRowString(t *testing.T) {
	assert.Equal(t, "interests;values 20", FlameRow{Path: "interests;values", Bytes: 20}.String())
}

func TestFlameRowsFromCountedDatum(t *testing.T) {
	schema := RecordSchema(
		Field{Name: "userName", Type: PrimitiveSchema(STRING)},
		Field{Name: "favoriteNumber", Type: UnionSchema(PrimitiveSchema(NULL), PrimitiveSchema(LONG))},
		Field{Name: "interests", Type: ArraySchema(PrimitiveSchema(STRING))},
	)
	buf := NewByteBuffer(nil)
	buf.WriteString("Martin")
	buf.WriteVarint64(1)
	buf.WriteVarint64(1337)
	buf.WriteVarint64(2)
	buf.WriteString("hacking")
	buf.WriteString("daydreaming")
	buf.WriteVarint64(0)

	count, err := CountBytes(schema, buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []FlameRow{
		{Path: "userName", Bytes: 7},
		{Path: "favoriteNumber;union_branch", Bytes: 1},
		{Path: "favoriteNumber;value", Bytes: 2},
		{Path: "interests;array_overhead", Bytes: 2},
		{Path: "interests;values", Bytes: 20},
	}, count.FlameRows())
}
