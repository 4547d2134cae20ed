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

package schemajson

import (
	"testing"

	"github.com/stretchr/testify/require"

	avrocount "github.com/bluesheeptoken/avro-byte-counter"
)

func TestParsePersonSchema(t *testing.T) {
	schema, err := Parse([]byte(`{
		"type": "record",
		"name": "Person",
		"fields": [
			{"name": "userName", "type": "string"},
			{"name": "favoriteNumber", "type": ["null", "long"], "default": null},
			{"name": "interests", "type": {"type": "array", "items": "string"}}
		]
	}`))
	require.NoError(t, err)
	require.Equal(t, avrocount.RecordSchema(
		avrocount.Field{Name: "userName", Type: avrocount.PrimitiveSchema(avrocount.STRING)},
		avrocount.Field{Name: "favoriteNumber", Type: avrocount.UnionSchema(
			avrocount.PrimitiveSchema(avrocount.NULL),
			avrocount.PrimitiveSchema(avrocount.LONG),
		)},
		avrocount.Field{Name: "interests", Type: avrocount.ArraySchema(
			avrocount.PrimitiveSchema(avrocount.STRING),
		)},
	), schema)
}

func TestParsePrimitiveName(t *testing.T) {
	schema, err := Parse([]byte(`"long"`))
	require.NoError(t, err)
	require.Equal(t, avrocount.PrimitiveSchema(avrocount.LONG), schema)
}

func TestParseTypeObjectWrapper(t *testing.T) {
	schema, err := Parse([]byte(`{"type": "string"}`))
	require.NoError(t, err)
	require.Equal(t, avrocount.PrimitiveSchema(avrocount.STRING), schema)
}

func TestParseEnum(t *testing.T) {
	schema, err := Parse([]byte(`{"type": "enum", "name": "Suit", "symbols": ["SPADES", "HEARTS"]}`))
	require.NoError(t, err)
	require.Equal(t, avrocount.EnumSchema("SPADES", "HEARTS"), schema)
}

func TestParseFixed(t *testing.T) {
	schema, err := Parse([]byte(`{"type": "fixed", "name": "md5", "size": 16}`))
	require.NoError(t, err)
	require.Equal(t, avrocount.FixedSchema(16), schema)
}

func TestParseMap(t *testing.T) {
	schema, err := Parse([]byte(`{"type": "map", "values": {"type": "record", "name": "v", "fields": [{"name": "n", "type": "int"}]}}`))
	require.NoError(t, err)
	require.Equal(t, avrocount.MapSchema(avrocount.RecordSchema(
		avrocount.Field{Name: "n", Type: avrocount.PrimitiveSchema(avrocount.INT)},
	)), schema)
}

func TestParseNestedArrayInField(t *testing.T) {
	schema, err := Parse([]byte(`{
		"type": "record",
		"name": "test",
		"fields": [{"name": "xs", "type": {"type": "array", "items": {"type": "fixed", "name": "f4", "size": 4}}}]
	}`))
	require.NoError(t, err)
	require.Equal(t, avrocount.RecordSchema(
		avrocount.Field{Name: "xs", Type: avrocount.ArraySchema(avrocount.FixedSchema(4))},
	), schema)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{"type": `},
		{"unresolved name", `"com.example.SomeRecord"`},
		{"record without fields", `{"type": "record", "name": "x"}`},
		{"enum without symbols", `{"type": "enum", "name": "x"}`},
		{"fixed without size", `{"type": "fixed", "name": "x"}`},
		{"empty union", `[]`},
		{"field without name", `{"type": "record", "name": "x", "fields": [{"type": "int"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			require.Error(t, err)
		})
	}
}

func TestParsedSchemaCountsData(t *testing.T) {
	schema, err := Parse([]byte(`{
		"type": "record",
		"name": "Test",
		"fields": [{"name": "value", "type": "long"}]
	}`))
	require.NoError(t, err)

	count, err := avrocount.CountBytes(schema, []byte{0x0A}) // long 5
	require.NoError(t, err)
	total, ok := count.Get("value")
	require.True(t, ok)
	require.Equal(t, 1, total.Bytes())
}
