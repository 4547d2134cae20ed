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
	"encoding/binary"
	"math"
)

// ByteBuffer owns a position into one byte slice. The read side is the
// cursor the counter advances through a datum; the write side produces
// Avro-encoded data and exists mainly for building fixtures. A buffer
// must not be shared across concurrent decodes.
type ByteBuffer struct {
	writerIndex int
	readerIndex int
	data        []byte
}

func NewByteBuffer(data []byte) *ByteBuffer {
	return &ByteBuffer{data: data}
}

func (b *ByteBuffer) grow(n int) {
	l := b.writerIndex
	if l+n < len(b.data) {
		return
	}
	if l+n < cap(b.data) {
		b.data = b.data[:cap(b.data)]
	} else {
		newBuf := make([]byte, 2*(l+n))
		copy(newBuf, b.data)
		b.data = newBuf
	}
}

// WriteBoolean writes a single 0/1 byte.
func (b *ByteBuffer) WriteBoolean(value bool) {
	b.grow(1)
	if value {
		b.data[b.writerIndex] = 1
	} else {
		b.data[b.writerIndex] = 0
	}
	b.writerIndex++
}

// WriteVarint64 writes a zig-zag encoded varint and returns the number
// of bytes written. Avro int and long share this encoding.
func (b *ByteBuffer) WriteVarint64(value int64) int {
	u := uint64((value << 1) ^ (value >> 63))
	return b.WriteVaruint64(u)
}

// WriteVaruint64 writes an unsigned varint (up to 10 bytes), 7 bits per
// byte little-endian with the high bit as continuation marker.
func (b *ByteBuffer) WriteVaruint64(value uint64) int {
	b.grow(10)
	i := 0
	for value >= 0x80 {
		b.data[b.writerIndex+i] = byte(value&0x7F) | 0x80
		value >>= 7
		i++
	}
	b.data[b.writerIndex+i] = byte(value)
	i++
	b.writerIndex += i
	return i
}

// WriteFloat writes 4 bytes of IEEE 754 single precision, little-endian.
func (b *ByteBuffer) WriteFloat(value float32) {
	b.grow(4)
	binary.LittleEndian.PutUint32(b.data[b.writerIndex:], math.Float32bits(value))
	b.writerIndex += 4
}

// WriteDouble writes 8 bytes of IEEE 754 double precision, little-endian.
func (b *ByteBuffer) WriteDouble(value float64) {
	b.grow(8)
	binary.LittleEndian.PutUint64(b.data[b.writerIndex:], math.Float64bits(value))
	b.writerIndex += 8
}

// WriteBinary writes p as-is, with no length prefix. FIXED values use
// this directly.
func (b *ByteBuffer) WriteBinary(p []byte) {
	b.grow(len(p))
	copy(b.data[b.writerIndex:], p)
	b.writerIndex += len(p)
}

// WriteBytes writes a long length prefix followed by the payload.
func (b *ByteBuffer) WriteBytes(p []byte) {
	b.WriteVarint64(int64(len(p)))
	b.WriteBinary(p)
}

// WriteString writes value as a length-prefixed UTF-8 byte sequence.
func (b *ByteBuffer) WriteString(value string) {
	b.WriteBytes([]byte(value))
}

// ReadVarint64 reads a zig-zag encoded varint and sets the error on a
// truncated or overlong encoding.
func (b *ByteBuffer) ReadVarint64(err *Error) int64 {
	u := b.ReadVaruint64(err)
	v := int64(u >> 1)
	if u&1 != 0 {
		v = ^v
	}
	return v
}

// ReadVaruint64 reads an unsigned varint byte by byte.
func (b *ByteBuffer) ReadVaruint64(err *Error) uint64 {
	var result uint64
	var shift uint
	for {
		if b.readerIndex >= len(b.data) {
			*err = BufferOutOfBoundError(b.readerIndex, 1, len(b.data))
			return 0
		}
		byteVal := b.data[b.readerIndex]
		b.readerIndex++
		result |= (uint64(byteVal) & 0x7F) << shift
		// the 10th byte only has room for bit 63; higher payload bits
		// would be shifted out silently
		if shift == 63 && byteVal > 1 {
			*err = MalformedVarintError(b.readerIndex)
			return 0
		}
		if byteVal < 0x80 {
			break
		}
		shift += 7
		if shift >= 64 {
			*err = MalformedVarintError(b.readerIndex)
			return 0
		}
	}
	return result
}

// ReadBinary reads n bytes and sets error on bounds violation.
// The check compares against the remaining length so that an absurd n
// from a corrupt length prefix cannot overflow the addition.
func (b *ByteBuffer) ReadBinary(n int, err *Error) []byte {
	if n < 0 || n > len(b.data)-b.readerIndex {
		*err = BufferOutOfBoundError(b.readerIndex, n, len(b.data))
		return nil
	}
	v := b.data[b.readerIndex : b.readerIndex+n]
	b.readerIndex += n
	return v
}

// Skip advances past n bytes without inspecting them and sets error on
// bounds violation
func (b *ByteBuffer) Skip(n int, err *Error) {
	if n < 0 || n > len(b.data)-b.readerIndex {
		*err = BufferOutOfBoundError(b.readerIndex, n, len(b.data))
		return
	}
	b.readerIndex += n
}

func (b *ByteBuffer) remaining() int {
	return len(b.data) - b.readerIndex
}

func (b *ByteBuffer) ReaderIndex() int {
	return b.readerIndex
}

func (b *ByteBuffer) WriterIndex() int {
	return b.writerIndex
}

// Bytes returns all written bytes from the buffer (from 0 to writerIndex).
func (b *ByteBuffer) Bytes() []byte {
	return b.data[0:b.writerIndex]
}

func (b *ByteBuffer) Reset() {
	b.readerIndex = 0
	b.writerIndex = 0
	b.data = nil
}
