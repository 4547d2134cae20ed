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

import "fmt"

// ErrorKind categorizes counting failures for fast dispatch.
type ErrorKind uint8

const (
	// ErrKindOK indicates no error occurred
	ErrKindOK ErrorKind = iota
	// ErrKindBufferOutOfBound indicates a read beyond buffer bounds,
	// meaning the datum is truncated or malformed
	ErrKindBufferOutOfBound
	// ErrKindUnsupportedSchema indicates a schema node outside the closed
	// Avro type set; the schema model is invalid, not the data
	ErrKindUnsupportedSchema
	// ErrKindShapeMismatch indicates MergeCounts was fed counts of
	// different shapes; schema-driven collections cannot produce this,
	// so it signals a counter defect
	ErrKindShapeMismatch
	// ErrKindMalformedVarint indicates a varint whose continuation bytes
	// exceed 64 bits of magnitude
	ErrKindMalformedVarint
	// ErrKindInvalidUnionBranch indicates a union index pointing outside
	// the schema's branch list; like a truncation, this is a data problem
	ErrKindInvalidUnionBranch
	// ErrKindInvalidBlockCount indicates a collection block count that
	// cannot be negated into an item count
	ErrKindInvalidBlockCount
)

// Error is a lightweight error value that avoids allocating until
// Error() is called. The counting hot path threads a *Error through
// every read instead of returning error at each step.
type Error struct {
	kind    ErrorKind
	message string
	// buffer out of bound details
	offset int
	need   int
	size   int
}

// Ok returns true if no error occurred
func (e Error) Ok() bool {
	return e.kind == ErrKindOK
}

// HasError returns true if an error occurred
func (e Error) HasError() bool {
	return e.kind != ErrKindOK
}

// Kind returns the error kind for fast dispatch
func (e Error) Kind() ErrorKind {
	return e.kind
}

// Error implements the error interface with lazy formatting
func (e Error) Error() string {
	switch e.kind {
	case ErrKindOK:
		return ""
	case ErrKindBufferOutOfBound:
		if e.message != "" {
			return e.message
		}
		return fmt.Sprintf("buffer out of bound: offset=%d, need=%d, size=%d", e.offset, e.need, e.size)
	default:
		if e.message != "" {
			return e.message
		}
		return fmt.Sprintf("avrocount error: kind=%d", e.kind)
	}
}

// BufferOutOfBoundError creates a buffer out of bound error
func BufferOutOfBoundError(offset, need, size int) Error {
	return Error{
		kind:   ErrKindBufferOutOfBound,
		offset: offset,
		need:   need,
		size:   size,
	}
}

// UnsupportedSchemaError creates an unsupported schema type error
func UnsupportedSchemaError(t Type) Error {
	return Error{
		kind:    ErrKindUnsupportedSchema,
		message: fmt.Sprintf("unsupported schema type: %d", int16(t)),
	}
}

// ShapeMismatchError creates a shape mismatch error
func ShapeMismatchError(msg string) Error {
	return Error{
		kind:    ErrKindShapeMismatch,
		message: msg,
	}
}

// ShapeMismatchErrorf creates a formatted shape mismatch error
func ShapeMismatchErrorf(format string, args ...any) Error {
	return Error{
		kind:    ErrKindShapeMismatch,
		message: fmt.Sprintf(format, args...),
	}
}

// MalformedVarintError creates a malformed varint error
func MalformedVarintError(offset int) Error {
	return Error{
		kind:    ErrKindMalformedVarint,
		message: fmt.Sprintf("varint overflows 64 bits at offset %d", offset),
	}
}

// InvalidBlockCountError creates an invalid block count error
func InvalidBlockCountError(count int64) Error {
	return Error{
		kind:    ErrKindInvalidBlockCount,
		message: fmt.Sprintf("block count %d cannot be negated to an item count", count),
	}
}

// InvalidUnionBranchError creates an invalid union branch error
func InvalidUnionBranchError(index int64, branches int) Error {
	return Error{
		kind:    ErrKindInvalidUnionBranch,
		message: fmt.Sprintf("union branch index %d out of range, union has %d branches", index, branches),
	}
}

// SetError sets the error if no error has occurred yet (first-error-wins)
func (e *Error) SetError(err error) {
	if e == nil || e.kind != ErrKindOK {
		return
	}
	if ae, ok := err.(Error); ok {
		*e = ae
	} else if err != nil {
		*e = Error{
			kind:    ErrKindShapeMismatch,
			message: err.Error(),
		}
	}
}

// TakeError returns the error and clears it
func (e *Error) TakeError() error {
	if e == nil || e.kind == ErrKindOK {
		return nil
	}
	result := *e
	*e = Error{kind: ErrKindOK}
	return result
}

// CheckError returns the error if one occurred, nil otherwise
func (e *Error) CheckError() error {
	if e == nil || e.kind == ErrKindOK {
		return nil
	}
	return *e
}
