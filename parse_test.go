package nodeid

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uastack/nodeid/namespace"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want NodeID
	}{
		{"i=9000", NewNumeric(0, 9000)},
		{"i=0", Null},
		{"ns=0;i=85", NewNumeric(0, 85)},
		{"ns=1;i=4294967295", NewNumeric(1, 4294967295)},
		{"ns=65535;i=1", NewNumeric(65535, 1)},
		{"ns=007;i=0042", NewNumeric(7, 42)},
		{"ns=2;s=Motor1", NewString(2, "Motor1")},
		{"s=", NewString(0, "")},
		{"ns=3;s=a;b=c=d", NewString(3, "a;b=c=d")},
		{"s= padded ", NewString(0, " padded ")},
		{"s=Ünïcödé", NewString(0, "Ünïcödé")},
		{"ns=1;g=72962b91-fa75-4ae6-8d28-b404dc7daf63", NewGUID(1, testGUID)},
		{"ns=1;g=72962B91-FA75-4AE6-8D28-B404DC7DAF63", NewGUID(1, testGUID)},
		{"b=AQID", NewOpaque(0, []byte{1, 2, 3})},
		{"ns=4;b=", NewOpaque(4, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in   string
		kind ParseErrorKind
	}{
		{"ns=abc;i=5", MalformedNamespace},
		{"ns=;i=5", MalformedNamespace},
		{"ns=65536;i=5", MalformedNamespace},
		{"ns=-1;i=5", MalformedNamespace},
		{"ns=+1;i=5", MalformedNamespace},
		{"ns= 1;i=5", MalformedNamespace},
		{"ns=1i=5", MalformedNamespace},
		{"x=5", UnknownTypeTag},
		{"", UnknownTypeTag},
		{"i", UnknownTypeTag},
		{"I=5", UnknownTypeTag},
		{"ns=1;", UnknownTypeTag},
		{"ns=1;x=5", UnknownTypeTag},
		{"NS=1;i=5", UnknownTypeTag},
		{" i=5", UnknownTypeTag},
		{"i:5", UnknownTypeTag},
		{"g=not-a-guid", InvalidPayload},
		{"g={72962b91-fa75-4ae6-8d28-b404dc7daf63}", InvalidPayload},
		{"g=urn:uuid:72962b91-fa75-4ae6-8d28-b404dc7daf63", InvalidPayload},
		{"g=72962b91fa754ae68d28b404dc7daf63", InvalidPayload},
		{"g=72962b91-fa75-4ae6-8d28-b404dc7daf6z", InvalidPayload},
		{"i=", InvalidPayload},
		{"i=-1", InvalidPayload},
		{"i=1.5", InvalidPayload},
		{"i=4294967296", InvalidPayload},
		{"i=5 ", InvalidPayload},
		{"i=0x10", InvalidPayload},
		{"b=AQI", InvalidPayload},
		{"b=AQ==\n", InvalidPayload},
		{"b=AQ\r\nID", InvalidPayload},
		{"b=AR==", InvalidPayload},
		{"b=AQ-_", InvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.Error(t, err)
			assert.Equal(t, Null, got)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.kind, pe.Kind, err.Error())
			assert.Equal(t, tt.in, pe.Input)
			assert.ErrorIs(t, err, tt.kind.sentinel())
		})
	}
}

func TestParseError_Is(t *testing.T) {
	_, err := Parse("ns=abc;i=5")
	assert.ErrorIs(t, err, ErrMalformedNamespace)
	assert.NotErrorIs(t, err, ErrUnknownTypeTag)
	assert.NotErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "malformed namespace")
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, NewNumeric(0, 2253), MustParse("i=2253"))
	assert.Panics(t, func() { MustParse("i=server") })
}

func TestNodeID_String(t *testing.T) {
	tests := []struct {
		n    NodeID
		want string
	}{
		{NewNumeric(0, 9000), "i=9000"},
		{Null, "i=0"},
		{NewNumeric(1, 5), "ns=1;i=5"},
		{NewString(2, "Motor1"), "ns=2;s=Motor1"},
		{NewString(0, ""), "s="},
		{NewGUID(1, testGUID), "ns=1;g=72962b91-fa75-4ae6-8d28-b404dc7daf63"},
		{NewGUID(0, uuid.Nil), "g=00000000-0000-0000-0000-000000000000"},
		{NewOpaque(1, []byte{1, 2, 3}), "ns=1;b=AQID"},
		{NewOpaque(0, []byte{0xfb, 0xff}), "b=+/8="},
		{NewOpaque(0, nil), "b="},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.String())
			text, err := tt.n.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(text))

			var back NodeID
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, tt.n, back)
		})
	}
}

func TestNodeID_UnmarshalTextKeepsValueOnError(t *testing.T) {
	n := NewNumeric(3, 3)
	require.Error(t, n.UnmarshalText([]byte("x=1")))
	assert.Equal(t, NewNumeric(3, 3), n)
}

func TestIdentifier_String(t *testing.T) {
	assert.Equal(t, "i=2253", Numeric(2253).String())
	assert.Equal(t, "s=Motor1", Text("Motor1").String())
	assert.Equal(t, "b=AQID", Opaque([]byte{1, 2, 3}).String())
}

func TestDescribe(t *testing.T) {
	table, err := namespace.NewArray(namespace.StandardURI, "urn:plant", "http://example.org/UA")
	require.NoError(t, err)

	tests := []struct {
		name  string
		n     NodeID
		table namespace.Table
		want  string
	}{
		{"known namespace", NewString(2, "Motor1"), table, "ns=2 (http://example.org/UA);s=Motor1"},
		{"standard namespace", NewNumeric(0, 85), table, "i=85"},
		{"unknown namespace", NewNumeric(7, 1), table, "ns=7;i=1"},
		{"no table", NewString(2, "Motor1"), nil, "ns=2;s=Motor1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.n, tt.table))
		})
	}
}
