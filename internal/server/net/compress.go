package net

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compressed frame layout, used once the connection negotiates a threshold:
//
//	VarInt packet length   (size of everything after this field)
//	VarInt data length     (uncompressed size of ID+body, or 0 if sent raw)
//	ID + body              (zlib-deflated when data length > 0)
//
// Bodies at or above the threshold are deflated; smaller ones are sent raw
// with a 0 data length.

// WriteCompressedRawPacket writes packetID+data as one compressed frame.
func WriteCompressedRawPacket(w io.Writer, threshold int, packetID int32, data []byte) error {
	var body bytes.Buffer
	if _, err := WriteVarInt(&body, packetID); err != nil {
		return fmt.Errorf("write packet ID: %w", err)
	}
	body.Write(data)

	var frame bytes.Buffer
	if body.Len() < threshold {
		if _, err := WriteVarInt(&frame, 0); err != nil {
			return err
		}
		frame.Write(body.Bytes())
	} else {
		if _, err := WriteVarInt(&frame, int32(body.Len())); err != nil {
			return err
		}
		zw := zlib.NewWriter(&frame)
		if _, err := zw.Write(body.Bytes()); err != nil {
			return fmt.Errorf("deflate packet: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("finish deflate: %w", err)
		}
	}

	var out bytes.Buffer
	out.Grow(VarIntSize(int32(frame.Len())) + frame.Len())
	if _, err := WriteVarInt(&out, int32(frame.Len())); err != nil {
		return fmt.Errorf("write packet length: %w", err)
	}
	out.Write(frame.Bytes())

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("flush packet: %w", err)
	}
	return nil
}

// ReadCompressedRawPacket reads one compressed frame and returns the packet
// ID and the inflated body.
func ReadCompressedRawPacket(r io.Reader) (packetID int32, data []byte, err error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet length: %w", err)
	}
	if length < 1 || length > maxPacketLen {
		return 0, nil, fmt.Errorf("packet length out of range: %d", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("read packet payload: %w", err)
	}

	buf := bytes.NewReader(payload)
	dataLen, _, err := ReadVarInt(buf)
	if err != nil {
		return 0, nil, fmt.Errorf("read data length: %w", err)
	}

	var body []byte
	if dataLen == 0 {
		body = make([]byte, buf.Len())
		if _, err := io.ReadFull(buf, body); err != nil {
			return 0, nil, fmt.Errorf("read packet data: %w", err)
		}
	} else {
		if dataLen < 0 || dataLen > maxPacketLen {
			return 0, nil, fmt.Errorf("uncompressed length out of range: %d", dataLen)
		}
		zr, err := zlib.NewReader(buf)
		if err != nil {
			return 0, nil, fmt.Errorf("open deflate stream: %w", err)
		}
		body = make([]byte, dataLen)
		if _, err := io.ReadFull(zr, body); err != nil {
			return 0, nil, fmt.Errorf("inflate packet: %w", err)
		}
		zr.Close()
	}

	idBuf := bytes.NewReader(body)
	packetID, idLen, err := ReadVarInt(idBuf)
	if err != nil {
		return 0, nil, fmt.Errorf("read packet ID: %w", err)
	}
	return packetID, body[idLen:], nil
}
