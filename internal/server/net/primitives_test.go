package net

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	t.Run("bool", func(t *testing.T) {
		for _, v := range []bool{true, false} {
			buf.Reset()
			if err := WriteBool(&buf, v); err != nil {
				t.Fatalf("WriteBool(%v): %v", v, err)
			}
			got, err := ReadBool(&buf)
			if err != nil || got != v {
				t.Errorf("ReadBool = %v, %v; want %v", got, err, v)
			}
		}
	})

	t.Run("i8", func(t *testing.T) {
		for _, v := range []int8{0, -1, 127, -128} {
			buf.Reset()
			if err := WriteI8(&buf, v); err != nil {
				t.Fatalf("WriteI8(%d): %v", v, err)
			}
			got, err := ReadI8(&buf)
			if err != nil || got != v {
				t.Errorf("ReadI8 = %d, %v; want %d", got, err, v)
			}
		}
	})

	t.Run("i16", func(t *testing.T) {
		for _, v := range []int16{0, -1, 32767, -32768} {
			buf.Reset()
			if err := WriteI16(&buf, v); err != nil {
				t.Fatalf("WriteI16(%d): %v", v, err)
			}
			got, err := ReadI16(&buf)
			if err != nil || got != v {
				t.Errorf("ReadI16 = %d, %v; want %d", got, err, v)
			}
		}
	})

	t.Run("u16", func(t *testing.T) {
		for _, v := range []uint16{0, 1, 65535} {
			buf.Reset()
			if err := WriteU16(&buf, v); err != nil {
				t.Fatalf("WriteU16(%d): %v", v, err)
			}
			got, err := ReadU16(&buf)
			if err != nil || got != v {
				t.Errorf("ReadU16 = %d, %v; want %d", got, err, v)
			}
		}
	})

	t.Run("i32", func(t *testing.T) {
		for _, v := range []int32{0, -1, math.MaxInt32, math.MinInt32} {
			buf.Reset()
			if err := WriteI32(&buf, v); err != nil {
				t.Fatalf("WriteI32(%d): %v", v, err)
			}
			got, err := ReadI32(&buf)
			if err != nil || got != v {
				t.Errorf("ReadI32 = %d, %v; want %d", got, err, v)
			}
		}
	})

	t.Run("i64", func(t *testing.T) {
		for _, v := range []int64{0, -1, math.MaxInt64, math.MinInt64} {
			buf.Reset()
			if err := WriteI64(&buf, v); err != nil {
				t.Fatalf("WriteI64(%d): %v", v, err)
			}
			got, err := ReadI64(&buf)
			if err != nil || got != v {
				t.Errorf("ReadI64 = %d, %v; want %d", got, err, v)
			}
		}
	})

	t.Run("u64", func(t *testing.T) {
		for _, v := range []uint64{0, 1, math.MaxUint64} {
			buf.Reset()
			if err := WriteU64(&buf, v); err != nil {
				t.Fatalf("WriteU64(%d): %v", v, err)
			}
			got, err := ReadU64(&buf)
			if err != nil || got != v {
				t.Errorf("ReadU64 = %d, %v; want %d", got, err, v)
			}
		}
	})

	t.Run("f32", func(t *testing.T) {
		for _, v := range []float32{0, -1, math.MaxFloat32, math.SmallestNonzeroFloat32} {
			buf.Reset()
			if err := WriteF32(&buf, v); err != nil {
				t.Fatalf("WriteF32(%g): %v", v, err)
			}
			got, err := ReadF32(&buf)
			if err != nil || got != v {
				t.Errorf("ReadF32 = %g, %v; want %g", got, err, v)
			}
		}
	})

	t.Run("f64", func(t *testing.T) {
		for _, v := range []float64{0, -1, math.MaxFloat64, math.SmallestNonzeroFloat64} {
			buf.Reset()
			if err := WriteF64(&buf, v); err != nil {
				t.Fatalf("WriteF64(%g): %v", v, err)
			}
			got, err := ReadF64(&buf)
			if err != nil || got != v {
				t.Errorf("ReadF64 = %g, %v; want %g", got, err, v)
			}
		}
	})
}

func TestScalarShortRead(t *testing.T) {
	// Only two bytes where four are needed.
	_, err := ReadI32(bytes.NewReader([]byte{0x01, 0x02}))
	if err == nil {
		t.Fatal("ReadI32 on truncated stream should fail")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadI32 = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"ascii", "localhost"},
		{"multibyte", "ダイヤモンド"},
		{"mixed", "château §7gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := WriteString(&buf, tt.value); err != nil {
				t.Fatalf("WriteString(%q): %v", tt.value, err)
			}
			got, err := ReadString(&buf)
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if got != tt.value {
				t.Errorf("ReadString = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestReadStringInvalidUTF8(t *testing.T) {
	// Length prefix 3, then an invalid sequence.
	payload := []byte{0x03, 0xFF, 0xFE, 0xFD}
	trailer := []byte{0xAA}
	r := bytes.NewReader(append(payload, trailer...))

	_, err := ReadString(r)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("ReadString = %v, want ErrInvalidUTF8", err)
	}

	// The declared length must have been consumed exactly, no more.
	if r.Len() != len(trailer) {
		t.Errorf("stream has %d bytes left, want %d", r.Len(), len(trailer))
	}
}

func TestReadStringShortPayload(t *testing.T) {
	// Declares 10 bytes but only 2 follow.
	r := bytes.NewReader([]byte{0x0A, 'h', 'i'})
	if _, err := ReadString(r); err == nil {
		t.Fatal("ReadString on truncated payload should fail")
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if _, err := WriteByteArray(&buf, data); err != nil {
		t.Fatalf("WriteByteArray: %v", err)
	}
	got, err := ReadByteArray(&buf)
	if err != nil {
		t.Fatalf("ReadByteArray: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadByteArray = %x, want %x", got, data)
	}
}
