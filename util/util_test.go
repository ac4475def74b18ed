// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: wrong encoding", i)

		buffer := append(append([]byte{}, item.encoded...), 0xff, 0x97)
		value, count := util.FromVarint64(buffer)
		assert.Equal(t, item.value, value, "%d: wrong value", i)
		assert.Equal(t, len(item.encoded), count, "%d: wrong count", i)
	}

	for i, truncated := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		value, count := util.FromVarint64(truncated)
		assert.Equal(t, uint64(0), value, "%d: truncated value", i)
		assert.Equal(t, 0, count, "%d: truncated count", i)
	}
}

func TestRecord(t *testing.T) {
	buffer := util.AppendUint64(nil, 300)
	buffer = util.AppendString(buffer, "karma")
	buffer = util.AppendBytes(buffer, []byte{})

	value, n, ok := util.ReadUint64(buffer, 0)
	assert.True(t, ok, "uint64 not read")
	assert.Equal(t, uint64(300), value, "wrong uint64")

	s, n, ok := util.ReadString(buffer, n, 64)
	assert.True(t, ok, "string not read")
	assert.Equal(t, "karma", s, "wrong string")

	b, n, ok := util.ReadBytes(buffer, n, 64)
	assert.True(t, ok, "bytes not read")
	assert.Equal(t, 0, len(b), "wrong bytes")
	assert.Equal(t, len(buffer), n, "buffer not consumed")

	_, _, ok = util.ReadString(buffer[:3], 2, 64)
	assert.False(t, ok, "truncated string accepted")

	_, _, ok = util.ReadString(util.AppendString(nil, "toolong"), 0, 3)
	assert.False(t, ok, "over long string accepted")
}

func TestCanonical(t *testing.T) {
	valid := map[string]string{
		"127.0.0.1:1234":  "127.0.0.1:1234",
		" 127.0.0.1:1 ":   "127.0.0.1:1",
		"*:2130":          "0.0.0.0:2130",
		"[::1]:1234":      "[::1]:1234",
		"[0:0::0:0]:1234": "[::]:1234",
		"0.0.0.0:65535":   "0.0.0.0:65535",
	}
	for in, expected := range valid {
		c, err := util.CanonicalIPandPort(in)
		assert.Nil(t, err, "error for: %q", in)
		assert.Equal(t, expected, c, "wrong canonical form for: %q", in)
	}

	invalidIP := []string{"127.1:1234", "256.0.0.0:1234", "[]:1234", "no-port"}
	for _, in := range invalidIP {
		_, err := util.CanonicalIPandPort(in)
		assert.Equal(t, fault.InvalidIPAddress, err, "accepted: %q", in)
	}

	invalidPort := []string{"127.0.0.1:0", "127.0.0.1:65536", "127.0.0.1:-1"}
	for _, in := range invalidPort {
		_, err := util.CanonicalIPandPort(in)
		assert.Equal(t, fault.InvalidPortNumber, err, "accepted: %q", in)
	}
}
