package nodeid

import (
	"encoding/base64"
	"strconv"

	"github.com/uastack/nodeid/namespace"
)

// String returns the canonical string form of the NodeID, e.g. "i=85",
// "ns=2;s=Motor1", "ns=1;g=09087e75-8e5e-499b-954f-f2a9603db28a" or "ns=1;b=AQID".
// The "ns=" prefix is omitted for namespace 0. String payloads are written
// verbatim; reserved characters are not escaped.
func (n NodeID) String() string {
	return string(n.appendText(make([]byte, 0, 16)))
}

// MarshalText implements encoding.TextMarshaler using the canonical string form.
func (n NodeID) MarshalText() ([]byte, error) {
	return n.appendText(nil), nil
}

func (n NodeID) appendText(b []byte) []byte {
	if n.ns != 0 {
		b = append(b, "ns="...)
		b = strconv.AppendUint(b, uint64(n.ns), 10)
		b = append(b, ';')
	}
	return n.id.appendText(b)
}

func (id Identifier) appendText(b []byte) []byte {
	b = append(b, id.typ.Tag(), '=')
	switch id.typ {
	case TypeNumeric:
		b = strconv.AppendUint(b, uint64(id.num), 10)
	case TypeString:
		b = append(b, id.str...)
	case TypeGUID:
		b = append(b, id.guid.String()...)
	case TypeOpaque:
		b = base64.StdEncoding.AppendEncode(b, []byte(id.str))
	}
	return b
}

// String returns the canonical form of the identifier without namespace,
// e.g. "i=2253".
func (id Identifier) String() string {
	return string(id.appendText(nil))
}

// Describe renders n for diagnostics. If n lives in a non-zero namespace that
// t knows, the namespace URI is inserted after the index:
//
//	ns=2 (http://example.org/UA);s=Motor1
//
// Otherwise the canonical form is returned. The result is not parseable.
func Describe(n NodeID, t namespace.Table) string {
	if n.ns == 0 || t == nil {
		return n.String()
	}
	uri, ok := t.URIOf(n.ns)
	if !ok {
		return n.String()
	}
	b := make([]byte, 0, 32+len(uri))
	b = append(b, "ns="...)
	b = strconv.AppendUint(b, uint64(n.ns), 10)
	b = append(b, " ("...)
	b = append(b, uri...)
	b = append(b, ");"...)
	return string(n.id.appendText(b))
}
