package nodeid

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Encoding bytes of the binary NodeId form. The upper two bits are
// reserved for ExpandedNodeId flags and are not accepted here.
const (
	EncodingTwoByte    byte = 0x00
	EncodingFourByte   byte = 0x01
	EncodingNumeric    byte = 0x02
	EncodingString     byte = 0x03
	EncodingGUID       byte = 0x04
	EncodingByteString byte = 0x05

	expandedFlags byte = 0xC0
)

// Encode returns the binary wire form of n.
func Encode(n NodeID) []byte {
	return n.AppendBinary(make([]byte, 0, n.binarySize()))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n NodeID) MarshalBinary() ([]byte, error) {
	return Encode(n), nil
}

// AppendBinary appends the binary wire form of n to b and returns the
// extended buffer. Numeric identifiers use the shortest encoding that can
// hold them: TwoByte for namespace 0 and values up to 255, FourByte for
// namespaces up to 255 and values up to 65535.
//
// String and opaque payloads longer than math.MaxInt32 bytes cannot be
// represented on the wire; AppendBinary panics for them.
func (n NodeID) AppendBinary(b []byte) []byte {
	le := binary.LittleEndian
	switch n.id.typ {
	case TypeNumeric:
		switch {
		case n.ns == 0 && n.id.num <= math.MaxUint8:
			return append(b, EncodingTwoByte, byte(n.id.num))
		case n.ns <= math.MaxUint8 && n.id.num <= math.MaxUint16:
			b = append(b, EncodingFourByte, byte(n.ns))
			return le.AppendUint16(b, uint16(n.id.num))
		default:
			b = append(b, EncodingNumeric)
			b = le.AppendUint16(b, n.ns)
			return le.AppendUint32(b, n.id.num)
		}
	case TypeString:
		b = append(b, EncodingString)
		b = le.AppendUint16(b, n.ns)
		return appendLengthPrefixed(b, n.id.str)
	case TypeGUID:
		b = append(b, EncodingGUID)
		b = le.AppendUint16(b, n.ns)
		return appendGUID(b, n.id.guid)
	default:
		b = append(b, EncodingByteString)
		b = le.AppendUint16(b, n.ns)
		return appendLengthPrefixed(b, n.id.str)
	}
}

func (n NodeID) binarySize() int {
	switch n.id.typ {
	case TypeNumeric:
		switch {
		case n.ns == 0 && n.id.num <= math.MaxUint8:
			return 2
		case n.ns <= math.MaxUint8 && n.id.num <= math.MaxUint16:
			return 4
		}
		return 7
	case TypeGUID:
		return 3 + 16
	}
	return 3 + 4 + len(n.id.str)
}

func appendLengthPrefixed(b []byte, s string) []byte {
	if len(s) > math.MaxInt32 {
		panic(fmt.Sprintf("nodeid: payload of %d bytes exceeds the wire limit", len(s)))
	}
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}

// appendGUID writes g in the wire layout: Data1, Data2 and Data3 little
// endian followed by the 8 bytes of Data4. uuid.UUID holds the big-endian
// RFC 4122 layout.
func appendGUID(b []byte, g uuid.UUID) []byte {
	le, be := binary.LittleEndian, binary.BigEndian
	b = le.AppendUint32(b, be.Uint32(g[0:4]))
	b = le.AppendUint16(b, be.Uint16(g[4:6]))
	b = le.AppendUint16(b, be.Uint16(g[6:8]))
	return append(b, g[8:16]...)
}

func readGUID(b []byte) uuid.UUID {
	le, be := binary.LittleEndian, binary.BigEndian
	var g uuid.UUID
	be.PutUint32(g[0:4], le.Uint32(b[0:4]))
	be.PutUint16(g[4:6], le.Uint16(b[4:6]))
	be.PutUint16(g[6:8], le.Uint16(b[6:8]))
	copy(g[8:16], b[8:16])
	return g
}

// Decode reads one binary NodeID from the start of b and returns it together
// with the number of bytes consumed. Trailing bytes are left to the caller.
// The returned error is always a *DecodeError.
func Decode(b []byte) (NodeID, int, error) {
	if len(b) == 0 {
		return Null, 0, decodeErr("binary", 0, ErrTruncated)
	}
	enc := b[0]
	if enc&expandedFlags != 0 {
		return Null, 0, decodeErr("binary", 0, fmt.Errorf("%w: expanded node id flags 0x%02x", ErrUnknownEncoding, enc&expandedFlags))
	}
	le := binary.LittleEndian
	switch enc {
	case EncodingTwoByte:
		if len(b) < 2 {
			return Null, 0, decodeErr("binary", len(b), ErrTruncated)
		}
		return NewNumeric(0, uint32(b[1])), 2, nil
	case EncodingFourByte:
		if len(b) < 4 {
			return Null, 0, decodeErr("binary", len(b), ErrTruncated)
		}
		return NewNumeric(uint16(b[1]), uint32(le.Uint16(b[2:4]))), 4, nil
	}

	if len(b) < 3 {
		return Null, 0, decodeErr("binary", len(b), ErrTruncated)
	}
	ns := le.Uint16(b[1:3])
	switch enc {
	case EncodingNumeric:
		if len(b) < 7 {
			return Null, 0, decodeErr("binary", len(b), ErrTruncated)
		}
		return NewNumeric(ns, le.Uint32(b[3:7])), 7, nil
	case EncodingGUID:
		if len(b) < 3+16 {
			return Null, 0, decodeErr("binary", len(b), ErrTruncated)
		}
		return NewGUID(ns, readGUID(b[3:19])), 3 + 16, nil
	case EncodingString, EncodingByteString:
		payload, n, err := readLengthPrefixed(b, 3)
		if err != nil {
			return Null, 0, err
		}
		if enc == EncodingString {
			return New(ns, Text(string(payload))), n, nil
		}
		return New(ns, Opaque(payload)), n, nil
	}
	return Null, 0, decodeErr("binary", 0, fmt.Errorf("%w: 0x%02x", ErrUnknownEncoding, enc))
}

// readLengthPrefixed reads an int32 length prefixed byte string at offset
// off. A length of -1 is the protocol's null string and yields an empty
// payload.
func readLengthPrefixed(b []byte, off int) ([]byte, int, error) {
	if len(b) < off+4 {
		return nil, 0, decodeErr("binary", len(b), ErrTruncated)
	}
	l := int32(binary.LittleEndian.Uint32(b[off : off+4]))
	off += 4
	switch {
	case l == -1:
		return nil, off, nil
	case l < 0:
		return nil, 0, decodeErr("binary", off-4, fmt.Errorf("%w: %d", ErrInvalidLength, l))
	case int64(len(b)-off) < int64(l):
		return nil, 0, decodeErr("binary", len(b), fmt.Errorf("%w: need %d payload bytes, have %d", ErrTruncated, l, len(b)-off))
	}
	end := off + int(l)
	return b[off:end], end, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unlike Decode it
// requires data to hold exactly one NodeID.
func (n *NodeID) UnmarshalBinary(data []byte) error {
	v, read, err := Decode(data)
	if err != nil {
		return err
	}
	if read != len(data) {
		return decodeErr("binary", read, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(data)-read))
	}
	*n = v
	return nil
}
