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

// Type identifies one of the closed set of Avro schema kinds.
type Type int16

const (
	// NULL is written as zero bytes
	NULL Type = iota
	// BOOLEAN is written as a single byte, 0 (false) or 1 (true)
	BOOLEAN
	// INT is a 32-bit signed integer using variable-length zig-zag coding
	INT
	// LONG is a 64-bit signed integer using variable-length zig-zag coding
	LONG
	// FLOAT is 4 bytes of IEEE 754 single precision
	FLOAT
	// DOUBLE is 8 bytes of IEEE 754 double precision
	DOUBLE
	// BYTES is a long length prefix followed by that many bytes of data
	BYTES
	// STRING is a long length prefix followed by that many bytes of UTF-8
	STRING
	// FIXED is exactly the number of bytes declared in the schema
	FIXED
	// ENUM is an int holding the zero-based position of the symbol
	ENUM
	// ARRAY is a series of counted blocks terminated by a zero-count block
	ARRAY
	// MAP is a series of counted blocks of string key / value pairs
	MAP
	// RECORD is the concatenation of its field encodings in declared order
	RECORD
	// UNION is a long branch index followed by the encoding of that branch
	UNION
)

var typeNames = [...]string{
	NULL:    "null",
	BOOLEAN: "boolean",
	INT:     "int",
	LONG:    "long",
	FLOAT:   "float",
	DOUBLE:  "double",
	BYTES:   "bytes",
	STRING:  "string",
	FIXED:   "fixed",
	ENUM:    "enum",
	ARRAY:   "array",
	MAP:     "map",
	RECORD:  "record",
	UNION:   "union",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// IsPrimitive reports whether values of this type always count as a
// single plain byte total. Collections of primitive items fold their
// item counts into one sum instead of merging per-key. FIXED and ENUM
// produce plain totals too but Avro does not class them as primitive;
// they go through MergeCounts like the composite kinds.
func (t Type) IsPrimitive() bool {
	switch t {
	case NULL, BOOLEAN, INT, LONG, FLOAT, DOUBLE, BYTES, STRING:
		return true
	default:
		return false
	}
}

// Field is one named member of a record schema.
type Field struct {
	Name string
	Type *Schema
}

// Schema is one node of a validated Avro schema tree. Only the members
// relevant to the node's Type are set; the counter never mutates it.
type Schema struct {
	Type Type

	// Size is the declared byte width of a FIXED schema.
	Size int
	// Symbols holds the named values of an ENUM schema.
	Symbols []string
	// Items is the element schema of an ARRAY.
	Items *Schema
	// Values is the value schema of a MAP; keys are always strings.
	Values *Schema
	// Fields lists a RECORD's members in declared order.
	Fields []Field
	// Branches lists a UNION's alternatives in declared order.
	Branches []*Schema
}

// PrimitiveSchema returns a schema node for one of the primitive kinds.
func PrimitiveSchema(t Type) *Schema {
	return &Schema{Type: t}
}

// FixedSchema returns a FIXED schema of the given byte width.
func FixedSchema(size int) *Schema {
	return &Schema{Type: FIXED, Size: size}
}

// EnumSchema returns an ENUM schema over the given symbols.
func EnumSchema(symbols ...string) *Schema {
	return &Schema{Type: ENUM, Symbols: symbols}
}

// ArraySchema returns an ARRAY schema with the given item schema.
func ArraySchema(items *Schema) *Schema {
	return &Schema{Type: ARRAY, Items: items}
}

// MapSchema returns a MAP schema with the given value schema.
func MapSchema(values *Schema) *Schema {
	return &Schema{Type: MAP, Values: values}
}

// RecordSchema returns a RECORD schema with the given fields, kept in
// declared order.
func RecordSchema(fields ...Field) *Schema {
	return &Schema{Type: RECORD, Fields: fields}
}

// UnionSchema returns a UNION schema over the given branches, kept in
// declared order.
func UnionSchema(branches ...*Schema) *Schema {
	return &Schema{Type: UNION, Branches: branches}
}
