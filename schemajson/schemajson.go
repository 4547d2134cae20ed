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

// Package schemajson parses Avro schema declarations (.avsc JSON) into
// the avrocount schema model. It covers the schema forms needed to
// count data: primitive names, type-object wrappers, records, enums,
// fixed, arrays, maps and unions. References to previously declared
// named types are not resolved and fail parsing.
package schemajson

import (
	"fmt"

	"github.com/tidwall/gjson"

	avrocount "github.com/bluesheeptoken/avro-byte-counter"
)

var primitives = map[string]avrocount.Type{
	"null":    avrocount.NULL,
	"boolean": avrocount.BOOLEAN,
	"int":     avrocount.INT,
	"long":    avrocount.LONG,
	"float":   avrocount.FLOAT,
	"double":  avrocount.DOUBLE,
	"bytes":   avrocount.BYTES,
	"string":  avrocount.STRING,
}

// Parse converts one Avro schema declaration into a schema tree.
func Parse(data []byte) (*avrocount.Schema, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("schema is not valid JSON")
	}
	return parse(gjson.ParseBytes(data))
}

func parse(r gjson.Result) (*avrocount.Schema, error) {
	switch {
	case r.IsArray():
		return parseUnion(r)
	case r.Type == gjson.String:
		return parseName(r.String())
	case r.IsObject():
		return parseObject(r)
	default:
		return nil, fmt.Errorf("unexpected schema form: %s", r.Raw)
	}
}

func parseName(name string) (*avrocount.Schema, error) {
	if t, ok := primitives[name]; ok {
		return avrocount.PrimitiveSchema(t), nil
	}
	return nil, fmt.Errorf("unresolved type name %q (named type references are not supported)", name)
}

func parseObject(r gjson.Result) (*avrocount.Schema, error) {
	t := r.Get("type")
	if !t.Exists() {
		return nil, fmt.Errorf("schema object missing \"type\": %s", r.Raw)
	}
	// a type may itself be a full schema, e.g. {"type": {"type": "array", ...}}
	if t.IsObject() || t.IsArray() {
		return parse(t)
	}
	switch name := t.String(); name {
	case "record", "error":
		return parseRecord(r)
	case "enum":
		return parseEnum(r)
	case "fixed":
		size := r.Get("size")
		if !size.Exists() {
			return nil, fmt.Errorf("fixed schema missing \"size\": %s", r.Raw)
		}
		return avrocount.FixedSchema(int(size.Int())), nil
	case "array":
		items, err := parse(r.Get("items"))
		if err != nil {
			return nil, err
		}
		return avrocount.ArraySchema(items), nil
	case "map":
		values, err := parse(r.Get("values"))
		if err != nil {
			return nil, err
		}
		return avrocount.MapSchema(values), nil
	default:
		return parseName(name)
	}
}

func parseRecord(r gjson.Result) (*avrocount.Schema, error) {
	fieldList := r.Get("fields")
	if !fieldList.IsArray() {
		return nil, fmt.Errorf("record schema missing \"fields\": %s", r.Raw)
	}
	var fields []avrocount.Field
	for _, f := range fieldList.Array() {
		name := f.Get("name")
		if !name.Exists() {
			return nil, fmt.Errorf("record field missing \"name\": %s", f.Raw)
		}
		fieldSchema, err := parse(f.Get("type"))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name.String(), err)
		}
		fields = append(fields, avrocount.Field{Name: name.String(), Type: fieldSchema})
	}
	return avrocount.RecordSchema(fields...), nil
}

func parseEnum(r gjson.Result) (*avrocount.Schema, error) {
	symbolList := r.Get("symbols")
	if !symbolList.IsArray() {
		return nil, fmt.Errorf("enum schema missing \"symbols\": %s", r.Raw)
	}
	var symbols []string
	for _, s := range symbolList.Array() {
		symbols = append(symbols, s.String())
	}
	return avrocount.EnumSchema(symbols...), nil
}

func parseUnion(r gjson.Result) (*avrocount.Schema, error) {
	var branches []*avrocount.Schema
	for _, b := range r.Array() {
		branch, err := parse(b)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if len(branches) == 0 {
		return nil, fmt.Errorf("union schema has no branches")
	}
	return avrocount.UnionSchema(branches...), nil
}
