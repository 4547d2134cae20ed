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

/*
Package avrocount measures how many bytes of an Avro-encoded datum are
attributable to each part of its schema.

A ByteCounter walks a binary datum exactly as an Avro decoder would,
but instead of materializing values it records the number of bytes each
field, union branch, collection block and length prefix occupied. The
result is a Count tree mirroring the schema's shape, useful when
investigating serialization overhead and per-field cost.

# Quick Start

	schema := avrocount.RecordSchema(
		avrocount.Field{Name: "userName", Type: avrocount.PrimitiveSchema(avrocount.STRING)},
		avrocount.Field{Name: "favoriteNumber", Type: avrocount.UnionSchema(
			avrocount.PrimitiveSchema(avrocount.NULL),
			avrocount.PrimitiveSchema(avrocount.LONG),
		)},
	)

	count, err := avrocount.CountBytes(schema, datum)
	if err != nil {
		panic(err)
	}
	for _, row := range count.FlameRows() {
		fmt.Println(row) // e.g. "favoriteNumber;value 2"
	}

The flame rows are collapsed-stack lines ready for a flame graph
renderer; Count.Total reports the full encoded size of the value.

Counting a datum against a schema it was not written with yields
either an error or meaningless numbers; schema resolution is not
performed. A ByteCounter must not be shared across goroutines, but
independent counters over independent buffers need no synchronization.
*/
package avrocount
