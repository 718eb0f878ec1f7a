package net

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
)

const tagName = "mc"

// Marshal encodes a packet struct into its wire body using mc struct tags.
// Fields without a tag (or tagged "-") are skipped.
func Marshal(p Packet) ([]byte, error) {
	v := reflect.ValueOf(p)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal: expected struct, got %s", v.Kind())
	}

	var buf bytes.Buffer
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}

		if err := WriteField(&buf, tag, v.Field(i).Interface()); err != nil {
			return nil, fmt.Errorf("marshal field %s: %w", field.Name, err)
		}
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a wire body into a packet struct using mc struct tags.
// Packets that implement Unmarshaler decode themselves.
func Unmarshal(data []byte, p Packet) error {
	if u, ok := p.(Unmarshaler); ok {
		return u.UnmarshalPacket(data)
	}

	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("unmarshal: expected non-nil pointer, got %T", p)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal: expected pointer to struct, got pointer to %s", v.Kind())
	}

	r := bytes.NewReader(data)
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}

		val, err := ReadField(r, tag)
		if err != nil {
			return fmt.Errorf("unmarshal field %s: %w", field.Name, err)
		}

		fv := v.Field(i)
		rv := reflect.ValueOf(val)
		if !rv.Type().AssignableTo(fv.Type()) {
			return fmt.Errorf("unmarshal field %s: cannot assign %s to %s", field.Name, rv.Type(), fv.Type())
		}
		fv.Set(rv)
	}

	return nil
}

// WriteField encodes a single tagged value to w.
func WriteField(w io.Writer, tag string, val any) error {
	switch tag {
	case "varint":
		_, err := WriteVarInt(w, val.(int32))
		return err
	case "varlong":
		_, err := WriteVarLong(w, val.(int64))
		return err
	case "bool":
		return WriteBool(w, val.(bool))
	case "i8":
		return WriteI8(w, val.(int8))
	case "u8":
		return WriteU8(w, val.(uint8))
	case "i16":
		return WriteI16(w, val.(int16))
	case "u16":
		return WriteU16(w, val.(uint16))
	case "i32":
		return WriteI32(w, val.(int32))
	case "u32":
		return WriteU32(w, val.(uint32))
	case "i64":
		return WriteI64(w, val.(int64))
	case "u64":
		return WriteU64(w, val.(uint64))
	case "f32":
		return WriteF32(w, val.(float32))
	case "f64":
		return WriteF64(w, val.(float64))
	case "string":
		_, err := WriteString(w, val.(string))
		return err
	case "uuid":
		uuid := val.([16]byte)
		_, err := w.Write(uuid[:])
		return err
	case "bytearray":
		_, err := WriteByteArray(w, val.([]byte))
		return err
	case "rest":
		_, err := w.Write(val.([]byte))
		return err
	default:
		return fmt.Errorf("unknown field tag: %q", tag)
	}
}

// ReadField decodes a single tagged value from r.
func ReadField(r io.Reader, tag string) (any, error) {
	switch tag {
	case "varint":
		v, _, err := ReadVarInt(r)
		return v, err
	case "varlong":
		v, _, err := ReadVarLong(r)
		return v, err
	case "bool":
		return ReadBool(r)
	case "i8":
		return ReadI8(r)
	case "u8":
		return ReadU8(r)
	case "i16":
		return ReadI16(r)
	case "u16":
		return ReadU16(r)
	case "i32":
		return ReadI32(r)
	case "u32":
		return ReadU32(r)
	case "i64":
		return ReadI64(r)
	case "u64":
		return ReadU64(r)
	case "f32":
		return ReadF32(r)
	case "f64":
		return ReadF64(r)
	case "string":
		return ReadString(r)
	case "uuid":
		var uuid [16]byte
		if _, err := io.ReadFull(r, uuid[:]); err != nil {
			return nil, err
		}
		return uuid, nil
	case "bytearray":
		return ReadByteArray(r)
	case "rest":
		return io.ReadAll(r)
	default:
		return nil, fmt.Errorf("unknown field tag: %q", tag)
	}
}
