package nodeid

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// jsonNodeID is the reversible JSON encoding of a NodeId. IdType and
// Namespace are omitted when zero.
type jsonNodeID struct {
	IDType    Type   `json:"IdType,omitempty"`
	ID        any    `json:"Id"`
	Namespace uint16 `json:"Namespace,omitempty"`
}

// MarshalJSON implements json.Marshaler using the protocol's JSON object
// form, e.g. {"Id":2253} or {"IdType":1,"Id":"Motor1","Namespace":2}.
func (n NodeID) MarshalJSON() ([]byte, error) {
	v := jsonNodeID{IDType: n.id.typ, Namespace: n.ns}
	switch n.id.typ {
	case TypeNumeric:
		v.ID = n.id.num
	case TypeString:
		v.ID = n.id.str
	case TypeGUID:
		v.ID = n.id.guid.String()
	case TypeOpaque:
		v.ID = base64.StdEncoding.EncodeToString([]byte(n.id.str))
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler for the form written by
// MarshalJSON. The returned error is always a *DecodeError.
func (n *NodeID) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// DecodeJSON parses the JSON object form of a NodeID.
func DecodeJSON(data []byte) (NodeID, error) {
	if !gjson.ValidBytes(data) {
		return Null, decodeErr("json", -1, fmt.Errorf("%w: invalid JSON", ErrMalformed))
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return Null, decodeErr("json", -1, fmt.Errorf("%w: expected an object, got %s", ErrMalformed, obj.Type))
	}
	fields := obj.Map()

	typ := TypeNumeric
	if f, ok := fields["IdType"]; ok {
		v, err := jsonUint(f, math.MaxUint8)
		if err != nil || v > uint64(TypeOpaque) {
			return Null, decodeErr("json", -1, fmt.Errorf("%w: IdType %s", ErrMalformed, f.Raw))
		}
		typ = Type(v)
	}

	var ns uint16
	if f, ok := fields["Namespace"]; ok {
		v, err := jsonUint(f, math.MaxUint16)
		if err != nil {
			return Null, decodeErr("json", -1, fmt.Errorf("%w: Namespace %s", ErrMalformed, f.Raw))
		}
		ns = uint16(v)
	}

	f, ok := fields["Id"]
	if !ok {
		return Null, decodeErr("json", -1, fmt.Errorf("%w: missing Id", ErrMalformed))
	}
	if typ == TypeNumeric {
		v, err := jsonUint(f, math.MaxUint32)
		if err != nil {
			return Null, decodeErr("json", -1, fmt.Errorf("%w: numeric Id %s", ErrMalformed, f.Raw))
		}
		return NewNumeric(ns, uint32(v)), nil
	}
	if f.Type != gjson.String {
		return Null, decodeErr("json", -1, fmt.Errorf("%w: %s Id must be a string", ErrMalformed, typ))
	}
	id, err := parsePayload(typ, f.Str)
	if err != nil {
		return Null, decodeErr("json", -1, fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	return New(ns, id), nil
}

// jsonUint accepts JSON numbers that are non-negative integers not larger
// than limit. Fractions and exponents are rejected.
func jsonUint(r gjson.Result, limit uint64) (uint64, error) {
	if r.Type != gjson.Number {
		return 0, ErrMalformed
	}
	v, err := strconv.ParseUint(r.Raw, 10, 64)
	if err != nil || v > limit {
		return 0, ErrMalformed
	}
	return v, nil
}
