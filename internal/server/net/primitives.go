package net

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a string payload is not valid UTF-8.
// The declared byte length has already been consumed from the stream by then.
var ErrInvalidUTF8 = errors.New("string is not valid UTF-8")

// Maximum string payload the protocol allows: 32767 UTF-16 code units,
// up to 4 bytes each in UTF-8.
const maxStringBytes = 32767 * 4

// Fixed-width scalar reads. Every value on the wire is big-endian, and a
// short read surfaces as io.ErrUnexpectedEOF (or io.EOF on a clean close)
// wrapped by binary.Read / io.ReadFull.

func ReadBool(r io.Reader) (bool, error) {
	b, err := ReadU8(r)
	return b != 0, err
}

func ReadI8(r io.Reader) (int8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func ReadI16(r io.Reader) (int16, error) {
	var val int16
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func ReadU16(r io.Reader) (uint16, error) {
	var val uint16
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func ReadI32(r io.Reader) (int32, error) {
	var val int32
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func ReadU32(r io.Reader) (uint32, error) {
	var val uint32
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func ReadI64(r io.Reader) (int64, error) {
	var val int64
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func ReadU64(r io.Reader) (uint64, error) {
	var val uint64
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func ReadF32(r io.Reader) (float32, error) {
	var val float32
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func ReadF64(r io.Reader) (float64, error) {
	var val float64
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, err
	}
	return val, nil
}

func WriteBool(w io.Writer, v bool) error {
	if v {
		return WriteU8(w, 1)
	}
	return WriteU8(w, 0)
}

func WriteI8(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func WriteI16(w io.Writer, v int16) error {
	return binary.Write(w, binary.BigEndian, v)
}

func WriteU16(w io.Writer, v uint16) error {
	return binary.Write(w, binary.BigEndian, v)
}

func WriteI32(w io.Writer, v int32) error {
	return binary.Write(w, binary.BigEndian, v)
}

func WriteU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.BigEndian, v)
}

func WriteI64(w io.Writer, v int64) error {
	return binary.Write(w, binary.BigEndian, v)
}

func WriteU64(w io.Writer, v uint64) error {
	return binary.Write(w, binary.BigEndian, v)
}

func WriteF32(w io.Writer, v float32) error {
	return binary.Write(w, binary.BigEndian, v)
}

func WriteF64(w io.Writer, v float64) error {
	return binary.Write(w, binary.BigEndian, v)
}

// ReadString reads a VarInt byte-length prefix followed by exactly that many
// bytes, then validates them as UTF-8. A payload that fails validation still
// consumes the declared length from the stream.
func ReadString(r io.Reader) (string, error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}
	if length < 0 || length > maxStringBytes {
		return "", fmt.Errorf("string length out of range: %d", length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read string data: %w", err)
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

func WriteString(w io.Writer, s string) (int, error) {
	n1, err := WriteVarInt(w, int32(len(s)))
	if err != nil {
		return n1, err
	}
	n2, err := w.Write([]byte(s))
	return n1 + n2, err
}

// ReadByteArray reads a VarInt length prefix followed by that many raw bytes.
func ReadByteArray(r io.Reader) ([]byte, error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read byte array length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("negative byte array length: %d", length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read byte array data: %w", err)
	}
	return buf, nil
}

func WriteByteArray(w io.Writer, data []byte) (int, error) {
	n1, err := WriteVarInt(w, int32(len(data)))
	if err != nil {
		return n1, err
	}
	n2, err := w.Write(data)
	return n1 + n2, err
}
