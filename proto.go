package nodeid

import (
	"fmt"
	"math"

	"github.com/gogo/protobuf/proto"
)

// Protobuf field numbers of the NodeID message form. A message without any
// of the identifier fields is the numeric identifier 0.
const (
	protoFieldNamespace = 1
	protoFieldNumeric   = 2
	protoFieldString    = 3
	protoFieldGUID      = 4
	protoFieldOpaque    = 5
)

func protoKey(field int, wire int) uint64 {
	return uint64(field)<<3 | uint64(wire)
}

// Size returns the length of the protobuf message form of n.
func (n NodeID) Size() int {
	size := 0
	if n.ns != 0 {
		size += proto.SizeVarint(protoKey(protoFieldNamespace, proto.WireVarint)) + proto.SizeVarint(uint64(n.ns))
	}
	switch n.id.typ {
	case TypeNumeric:
		if n.id.num != 0 {
			size += proto.SizeVarint(protoKey(protoFieldNumeric, proto.WireVarint)) + proto.SizeVarint(uint64(n.id.num))
		}
	case TypeGUID:
		size += proto.SizeVarint(protoKey(protoFieldGUID, proto.WireBytes)) + proto.SizeVarint(16) + 16
	default:
		field := protoFieldString
		if n.id.typ == TypeOpaque {
			field = protoFieldOpaque
		}
		l := uint64(len(n.id.str))
		size += proto.SizeVarint(protoKey(field, proto.WireBytes)) + proto.SizeVarint(l) + len(n.id.str)
	}
	return size
}

// Marshal returns the protobuf message form of n. Together with MarshalTo,
// Unmarshal, Size and the JSON methods it lets NodeID be used as a
// gogoproto customtype for bytes fields.
func (n NodeID) Marshal() ([]byte, error) {
	return n.appendProto(make([]byte, 0, n.Size())), nil
}

// MarshalTo writes the protobuf message form of n into data, which must be at
// least Size() bytes long.
func (n NodeID) MarshalTo(data []byte) (int, error) {
	size := n.Size()
	if len(data) < size {
		return 0, fmt.Errorf("nodeid: marshal buffer too small: %d < %d", len(data), size)
	}
	return copy(data, n.appendProto(data[:0])), nil
}

func (n NodeID) appendProto(b []byte) []byte {
	if n.ns != 0 {
		b = append(b, proto.EncodeVarint(protoKey(protoFieldNamespace, proto.WireVarint))...)
		b = append(b, proto.EncodeVarint(uint64(n.ns))...)
	}
	switch n.id.typ {
	case TypeNumeric:
		if n.id.num != 0 {
			b = append(b, proto.EncodeVarint(protoKey(protoFieldNumeric, proto.WireVarint))...)
			b = append(b, proto.EncodeVarint(uint64(n.id.num))...)
		}
	case TypeGUID:
		b = append(b, proto.EncodeVarint(protoKey(protoFieldGUID, proto.WireBytes))...)
		b = append(b, proto.EncodeVarint(16)...)
		b = append(b, n.id.guid[:]...)
	default:
		field := protoFieldString
		if n.id.typ == TypeOpaque {
			field = protoFieldOpaque
		}
		b = append(b, proto.EncodeVarint(protoKey(field, proto.WireBytes))...)
		b = append(b, proto.EncodeVarint(uint64(len(n.id.str)))...)
		b = append(b, n.id.str...)
	}
	return b
}

// Unmarshal decodes the protobuf message form of a NodeID into n. Unknown
// varint and length-delimited fields are skipped. The returned error is
// always a *DecodeError.
func (n *NodeID) Unmarshal(data []byte) error {
	var (
		ns      uint16
		id      Identifier
		seenID  bool
		off     int
		malform = func(format string, args ...any) error {
			return decodeErr("proto", off, fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...))
		}
	)
	for off < len(data) {
		key, kn := proto.DecodeVarint(data[off:])
		if kn == 0 {
			return decodeErr("proto", off, ErrTruncated)
		}
		field, wire := int(key>>3), int(key&7)
		valueOff := off + kn

		switch wire {
		case proto.WireVarint:
			v, vn := proto.DecodeVarint(data[valueOff:])
			if vn == 0 {
				return decodeErr("proto", valueOff, ErrTruncated)
			}
			switch field {
			case protoFieldNamespace:
				if v > math.MaxUint16 {
					return malform("namespace %d out of range", v)
				}
				ns = uint16(v)
			case protoFieldNumeric:
				if v > math.MaxUint32 {
					return malform("numeric identifier %d out of range", v)
				}
				if seenID {
					return malform("more than one identifier field")
				}
				id, seenID = Numeric(uint32(v)), true
			}
			off = valueOff + vn
		case proto.WireBytes:
			l, ln := proto.DecodeVarint(data[valueOff:])
			if ln == 0 {
				return decodeErr("proto", valueOff, ErrTruncated)
			}
			start := valueOff + ln
			if l > uint64(len(data)-start) {
				return decodeErr("proto", start, ErrTruncated)
			}
			payload := data[start : start+int(l)]
			switch field {
			case protoFieldString, protoFieldGUID, protoFieldOpaque:
				if seenID {
					return malform("more than one identifier field")
				}
				seenID = true
			}
			switch field {
			case protoFieldString:
				id = Text(string(payload))
			case protoFieldOpaque:
				id = Opaque(payload)
			case protoFieldGUID:
				if len(payload) != 16 {
					return decodeErr("proto", start, fmt.Errorf("%w: guid of %d bytes", ErrInvalidLength, len(payload)))
				}
				var g [16]byte
				copy(g[:], payload)
				id = GUID(g)
			}
			off = start + int(l)
		default:
			return malform("unsupported wire type %d for field %d", wire, field)
		}
	}
	*n = New(ns, id)
	return nil
}
