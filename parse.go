package nodeid

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// guidTextLen is the length of the 8-4-4-4-12 GUID text form.
const guidTextLen = 36

var errNotDecimal = errors.New("not a decimal number")

// Parse parses the canonical string form produced by NodeID.String:
//
//	[ns=<uint16>;]<i|s|g|b>=<payload>
//
// Parsing is strict. Whitespace, upper case prefixes and alternate GUID
// spellings (braces, urn:uuid:) are rejected rather than normalized. The
// returned error is always a *ParseError.
func Parse(s string) (NodeID, error) {
	var ns uint16
	rest := s
	if strings.HasPrefix(rest, "ns=") {
		end := strings.IndexByte(rest, ';')
		if end < 0 {
			return Null, &ParseError{Kind: MalformedNamespace, Input: s, Err: errors.New("missing ';' after namespace")}
		}
		v, err := parseDecimal(rest[len("ns="):end], 16)
		if err != nil {
			return Null, &ParseError{Kind: MalformedNamespace, Input: s, Err: err}
		}
		ns = uint16(v)
		rest = rest[end+1:]
	}

	if len(rest) < 2 || rest[1] != '=' {
		return Null, &ParseError{Kind: UnknownTypeTag, Input: s}
	}
	typ, ok := typeFromTag(rest[0])
	if !ok {
		return Null, &ParseError{Kind: UnknownTypeTag, Input: s}
	}

	id, err := parsePayload(typ, rest[2:])
	if err != nil {
		return Null, &ParseError{Kind: InvalidPayload, Input: s, Err: err}
	}
	return New(ns, id), nil
}

// MustParse is like Parse but panics if s cannot be parsed. It is meant for
// constants in tests and static tables.
func MustParse(s string) NodeID {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (n *NodeID) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func parsePayload(typ Type, payload string) (Identifier, error) {
	switch typ {
	case TypeNumeric:
		v, err := parseDecimal(payload, 32)
		if err != nil {
			return Identifier{}, err
		}
		return Numeric(uint32(v)), nil
	case TypeString:
		return Text(payload), nil
	case TypeGUID:
		// uuid.Parse also accepts the braced, urn and undashed spellings.
		if len(payload) != guidTextLen {
			return Identifier{}, fmt.Errorf("invalid GUID length %d", len(payload))
		}
		g, err := uuid.Parse(payload)
		if err != nil {
			return Identifier{}, err
		}
		return GUID(g), nil
	default:
		// the decoder silently skips line breaks
		if strings.ContainsAny(payload, "\r\n") {
			return Identifier{}, errors.New("line break in base64 payload")
		}
		b, err := base64.StdEncoding.Strict().DecodeString(payload)
		if err != nil {
			return Identifier{}, err
		}
		return Opaque(b), nil
	}
}

// parseDecimal accepts ASCII digits only, leading zeros included.
func parseDecimal(s string, bitSize int) (uint64, error) {
	if s == "" {
		return 0, errNotDecimal
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errNotDecimal
		}
	}
	return strconv.ParseUint(s, 10, bitSize)
}
