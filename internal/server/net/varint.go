package net

import (
	"errors"
	"fmt"
	"io"
)

// ErrVarIntTooLong is returned when a VarInt carries more than 5 continuation groups.
var ErrVarIntTooLong = errors.New("VarInt too long")

// ErrVarLongTooLong is returned when a VarLong carries more than 10 continuation groups.
var ErrVarLongTooLong = errors.New("VarLong too long")

// ReadVarInt reads a variable-length 32-bit integer: 7 payload bits per byte,
// least-significant group first, high bit set while more groups follow.
// Bytes are read one at a time, so the whole value need not be buffered yet.
func ReadVarInt(r io.Reader) (int32, int, error) {
	var result uint32
	var numRead int
	buf := make([]byte, 1)

	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, numRead, fmt.Errorf("read VarInt byte %d: %w", numRead, err)
		}
		numRead++

		result |= uint32(buf[0]&0x7F) << (7 * (numRead - 1))

		if buf[0]&0x80 == 0 {
			break
		}

		if numRead >= 5 {
			return 0, numRead, ErrVarIntTooLong
		}
	}

	return int32(result), numRead, nil
}

func WriteVarInt(w io.Writer, value int32) (int, error) {
	var buf [5]byte
	n := PutVarInt(buf[:], value)
	return w.Write(buf[:n])
}

// PutVarInt encodes value into buf, which must hold at least 5 bytes,
// and returns the number of bytes written.
func PutVarInt(buf []byte, value int32) int {
	val := uint32(value)
	n := 0
	for {
		b := byte(val & 0x7F)
		val >>= 7
		if val != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if val == 0 {
			break
		}
	}
	return n
}

// VarIntSize returns the encoded byte length of value.
func VarIntSize(value int32) int {
	val := uint32(value)
	size := 0
	for {
		size++
		val >>= 7
		if val == 0 {
			break
		}
	}
	return size
}

// ReadVarLong reads a variable-length 64-bit integer, up to 10 groups.
func ReadVarLong(r io.Reader) (int64, int, error) {
	var result uint64
	var numRead int
	buf := make([]byte, 1)

	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, numRead, fmt.Errorf("read VarLong byte %d: %w", numRead, err)
		}
		numRead++

		result |= uint64(buf[0]&0x7F) << (7 * (numRead - 1))

		if buf[0]&0x80 == 0 {
			break
		}

		if numRead >= 10 {
			return 0, numRead, ErrVarLongTooLong
		}
	}

	return int64(result), numRead, nil
}

func WriteVarLong(w io.Writer, value int64) (int, error) {
	var buf [10]byte
	n := PutVarLong(buf[:], value)
	return w.Write(buf[:n])
}

// PutVarLong encodes value into buf, which must hold at least 10 bytes,
// and returns the number of bytes written.
func PutVarLong(buf []byte, value int64) int {
	val := uint64(value)
	n := 0
	for {
		b := byte(val & 0x7F)
		val >>= 7
		if val != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if val == 0 {
			break
		}
	}
	return n
}

// VarLongSize returns the encoded byte length of value.
func VarLongSize(value int64) int {
	val := uint64(value)
	size := 0
	for {
		size++
		val >>= 7
		if val == 0 {
			break
		}
	}
	return size
}
