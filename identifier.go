package nodeid

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/google/uuid"
)

// Type is the identifier variant of a NodeID. The numeric order of the
// constants is the variant precedence used by Compare.
type Type uint8

const (
	TypeNumeric Type = iota
	TypeString
	TypeGUID
	TypeOpaque
)

// Tag returns the single letter used for the type in the canonical string form.
func (t Type) Tag() byte {
	switch t {
	case TypeNumeric:
		return 'i'
	case TypeString:
		return 's'
	case TypeGUID:
		return 'g'
	case TypeOpaque:
		return 'b'
	}
	return '?'
}

func (t Type) String() string {
	switch t {
	case TypeNumeric:
		return "Numeric"
	case TypeString:
		return "String"
	case TypeGUID:
		return "Guid"
	case TypeOpaque:
		return "Opaque"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

func typeFromTag(tag byte) (Type, bool) {
	switch tag {
	case 'i':
		return TypeNumeric, true
	case 's':
		return TypeString, true
	case 'g':
		return TypeGUID, true
	case 'b':
		return TypeOpaque, true
	}
	return 0, false
}

// Identifier is the variant payload of a NodeID: exactly one of a numeric,
// string, GUID or opaque value. The zero value is Numeric(0).
//
// Identifier is comparable; fields not belonging to the active variant are
// always zero so that == matches the per-variant equality. Opaque payloads
// are held as a string to keep the value immutable.
type Identifier struct {
	typ  Type
	num  uint32
	str  string // String and Opaque payloads
	guid uuid.UUID
}

// Numeric returns a numeric identifier.
func Numeric(v uint32) Identifier {
	return Identifier{typ: TypeNumeric, num: v}
}

// Text returns a string identifier. The empty string is a valid identifier.
func Text(s string) Identifier {
	return Identifier{typ: TypeString, str: s}
}

// GUID returns a GUID identifier.
func GUID(g uuid.UUID) Identifier {
	return Identifier{typ: TypeGUID, guid: g}
}

// Opaque returns an opaque identifier holding a copy of b. A nil slice and an
// empty slice produce the same identifier.
func Opaque(b []byte) Identifier {
	return Identifier{typ: TypeOpaque, str: string(b)}
}

// Type returns the variant of the identifier.
func (id Identifier) Type() Type {
	return id.typ
}

// Uint32 returns the numeric payload and true if id is numeric.
func (id Identifier) Uint32() (uint32, bool) {
	return id.num, id.typ == TypeNumeric
}

// Text returns the string payload and true if id is a string identifier.
func (id Identifier) Text() (string, bool) {
	if id.typ != TypeString {
		return "", false
	}
	return id.str, true
}

// GUID returns the GUID payload and true if id is a GUID identifier.
func (id Identifier) GUID() (uuid.UUID, bool) {
	return id.guid, id.typ == TypeGUID
}

// Bytes returns a copy of the opaque payload and true if id is opaque.
func (id Identifier) Bytes() ([]byte, bool) {
	if id.typ != TypeOpaque {
		return nil, false
	}
	return []byte(id.str), true
}

// compare orders identifiers by variant precedence first and by the natural
// order of the payload second.
func (id Identifier) compare(other Identifier) int {
	if c := cmp.Compare(id.typ, other.typ); c != 0 {
		return c
	}
	switch id.typ {
	case TypeNumeric:
		return cmp.Compare(id.num, other.num)
	case TypeGUID:
		return bytes.Compare(id.guid[:], other.guid[:])
	default:
		return cmp.Compare(id.str, other.str)
	}
}
