// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// AppendUint64 - append a Varint64 value
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a count prefixed byte slice
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a count prefixed string
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// ReadUint64 - read a Varint64 at offset n
//
// returns the value and the new offset, or ok == false if truncated
func ReadUint64(buffer []byte, n int) (uint64, int, bool) {
	if n >= len(buffer) {
		return 0, n, false
	}
	value, count := FromVarint64(buffer[n:])
	if 0 == count {
		return 0, n, false
	}
	return value, n + count, true
}

// ReadBytes - read a count prefixed byte slice at offset n
//
// the result is a copy and its length is limited to maximum
func ReadBytes(buffer []byte, n int, maximum int) ([]byte, int, bool) {
	if n >= len(buffer) {
		return nil, n, false
	}
	length, count := ClippedVarint64(buffer[n:], 0, maximum)
	if 0 == count {
		return nil, n, false
	}
	n += count
	if n+length > len(buffer) {
		return nil, n, false
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, n + length, true
}

// ReadString - read a count prefixed string at offset n
func ReadString(buffer []byte, n int, maximum int) (string, int, bool) {
	data, n, ok := ReadBytes(buffer, n, maximum)
	return string(data), n, ok
}
