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

// Structural keys of the counts produced for unions, arrays and maps.
const (
	KeyUnionBranch   = "union_branch"
	KeyUnionValue    = "value"
	KeyArrayOverhead = "array_overhead"
	KeyArrayValues   = "values"
	KeyMapOverhead   = "overhead"
	KeyMapKeys       = "keys"
	KeyMapItems      = "items"
)

// ByteCounter walks a datum the way a real decoder would, but instead
// of materializing values it returns the number of bytes each schema
// node occupied. One counter owns one buffer; counters are cheap and
// must not be shared across goroutines, but independent counters over
// independent buffers may run in parallel.
type ByteCounter struct {
	buf *ByteBuffer
}

// NewByteCounter creates a counter positioned at the start of datum.
// The datum must begin at a value boundary matching the schema it will
// be counted against; trailing bytes after that value are tolerated.
func NewByteCounter(datum []byte) *ByteCounter {
	return &ByteCounter{buf: NewByteBuffer(datum)}
}

// CountBytes counts one datum against schema in a single call.
func CountBytes(schema *Schema, datum []byte) (Count, error) {
	return NewByteCounter(datum).Count(schema)
}

// Count consumes one value of the given schema from the buffer and
// returns its per-field byte attribution. A failed count yields no
// partial result, only the error.
func (c *ByteCounter) Count(schema *Schema) (Count, error) {
	err := &Error{}
	count := c.count(schema, err)
	if e := err.TakeError(); e != nil {
		return Count{}, e
	}
	return count, nil
}

// BytesRead returns how far the counter has advanced into the buffer.
// After a successful Count this equals the count's Total.
func (c *ByteCounter) BytesRead() int {
	return c.buf.ReaderIndex()
}

// count dispatches on the schema kind. Errors are reported through err;
// on error the returned count is meaningless and must be discarded.
func (c *ByteCounter) count(schema *Schema, err *Error) Count {
	switch schema.Type {
	case NULL:
		// null is written as zero bytes
		return Leaf(0)
	case BOOLEAN:
		c.buf.Skip(1, err)
		return Leaf(1)
	case INT, LONG, ENUM:
		// an enum is encoded as an int holding the symbol position,
		// so all three cost exactly one varint
		n, _ := c.countVarint(err)
		return Leaf(n)
	case FLOAT:
		c.buf.Skip(4, err)
		return Leaf(4)
	case DOUBLE:
		c.buf.Skip(8, err)
		return Leaf(8)
	case BYTES, STRING:
		return Leaf(c.countLengthPrefixed(err))
	case FIXED:
		c.buf.Skip(schema.Size, err)
		return Leaf(schema.Size)
	case UNION:
		return c.countUnion(schema, err)
	case RECORD:
		return c.countRecord(schema, err)
	case ARRAY:
		return c.countArray(schema, err)
	case MAP:
		return c.countMap(schema, err)
	default:
		*err = UnsupportedSchemaError(schema.Type)
		return Count{}
	}
}

// countVarint consumes one zig-zag varint and returns the number of
// bytes it occupied together with its decoded value.
func (c *ByteCounter) countVarint(err *Error) (int, int64) {
	start := c.buf.ReaderIndex()
	value := c.buf.ReadVarint64(err)
	return c.buf.ReaderIndex() - start, value
}

// countLengthPrefixed consumes a long length prefix plus that many
// payload bytes. Shared by bytes, string and map keys.
func (c *ByteCounter) countLengthPrefixed(err *Error) int {
	n, length := c.countVarint(err)
	if err.HasError() {
		return 0
	}
	// a negative length can only come from a corrupt datum; report it
	// as a bounds violation rather than walking the cursor backward
	if length < 0 {
		*err = BufferOutOfBoundError(c.buf.ReaderIndex(), int(length), c.buf.ReaderIndex()+c.buf.remaining())
		return 0
	}
	c.buf.Skip(int(length), err)
	return n + int(length)
}

// countUnion consumes the branch index varint, then the value encoded
// per the selected branch.
func (c *ByteCounter) countUnion(schema *Schema, err *Error) Count {
	n, index := c.countVarint(err)
	if err.HasError() {
		return Count{}
	}
	if index < 0 || index >= int64(len(schema.Branches)) {
		*err = InvalidUnionBranchError(index, len(schema.Branches))
		return Count{}
	}
	value := c.count(schema.Branches[index], err)
	if err.HasError() {
		return Count{}
	}
	return Structured(
		Entry(KeyUnionBranch, Leaf(n)),
		Entry(KeyUnionValue, value),
	)
}

// countRecord consumes each field in declared order. A record is just
// the concatenation of its field encodings; there is no terminator, so
// no synthetic key is emitted and the entry sums stay equal to the
// bytes consumed.
func (c *ByteCounter) countRecord(schema *Schema, err *Error) Count {
	entries := make([]CountEntry, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		count := c.count(field.Type, err)
		if err.HasError() {
			return Count{}
		}
		entries = append(entries, Entry(field.Name, count))
	}
	return Structured(entries...)
}

// countArray walks the block framing and attributes every block-count
// and block-size varint, including the terminating zero block, to
// array_overhead. Item bytes aggregate under values.
func (c *ByteCounter) countArray(schema *Schema, err *Error) Count {
	var collected []Count
	overhead := c.countBlocks(err, func() bool {
		item := c.count(schema.Items, err)
		if err.HasError() {
			return false
		}
		collected = append(collected, item)
		return true
	})
	if err.HasError() {
		return Count{}
	}
	values := c.aggregate(schema.Items, collected, err)
	if err.HasError() {
		return Count{}
	}
	return Structured(
		Entry(KeyArrayOverhead, Leaf(overhead)),
		Entry(KeyArrayValues, values),
	)
}

// countMap walks the same block framing as arrays; each entry is a
// string key followed by a value. Key bytes accumulate into one keys
// total, value bytes aggregate under items.
func (c *ByteCounter) countMap(schema *Schema, err *Error) Count {
	keys := 0
	var collected []Count
	overhead := c.countBlocks(err, func() bool {
		keys += c.countLengthPrefixed(err)
		if err.HasError() {
			return false
		}
		value := c.count(schema.Values, err)
		if err.HasError() {
			return false
		}
		collected = append(collected, value)
		return true
	})
	if err.HasError() {
		return Count{}
	}
	items := c.aggregate(schema.Values, collected, err)
	if err.HasError() {
		return Count{}
	}
	return Structured(
		Entry(KeyMapOverhead, Leaf(overhead)),
		Entry(KeyMapKeys, Leaf(keys)),
		Entry(KeyMapItems, items),
	)
}

// countBlocks drives the shared block framing of arrays and maps:
// a block-count varint, that many items, repeated until a zero count.
// A negative count is negated and followed by a block-size varint that
// only hints at the block's byte length. Returns the overhead byte
// total, which includes the terminating zero block.
func (c *ByteCounter) countBlocks(err *Error, consumeItem func() bool) int {
	overhead := 0
	n, blockCount := c.countVarint(err)
	if err.HasError() {
		return 0
	}
	overhead += n
	for blockCount != 0 {
		if blockCount < 0 {
			blockCount = -blockCount
			// MinInt64 survives negation; no real encoder emits it
			if blockCount < 0 {
				*err = InvalidBlockCountError(blockCount)
				return 0
			}
			// the block size value is only a skip hint; its byte
			// length still counts as overhead
			n, _ = c.countVarint(err)
			if err.HasError() {
				return 0
			}
			overhead += n
		}
		for i := int64(0); i < blockCount; i++ {
			if !consumeItem() {
				return 0
			}
		}
		n, blockCount = c.countVarint(err)
		if err.HasError() {
			return 0
		}
		overhead += n
	}
	return overhead
}

// aggregate folds the collected item counts into one node. Primitive
// item schemas always yield leaves, which sum directly; everything else
// merges elementwise so per-key attribution survives aggregation. An
// empty collection yields Leaf(0) or the empty structured node.
func (c *ByteCounter) aggregate(itemSchema *Schema, collected []Count, err *Error) Count {
	if itemSchema.Type.IsPrimitive() {
		total := 0
		for _, item := range collected {
			total += item.Bytes()
		}
		return Leaf(total)
	}
	merged, mergeErr := MergeCounts(collected)
	if mergeErr != nil {
		err.SetError(mergeErr)
		return Count{}
	}
	return merged
}
