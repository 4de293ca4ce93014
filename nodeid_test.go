package nodeid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGUID = uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63")

func TestNodeID_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b NodeID
		want bool
	}{
		{"same numeric", NewNumeric(0, 5), NewNumeric(0, 5), true},
		{"namespace differs", NewNumeric(0, 5), NewNumeric(1, 5), false},
		{"numeric vs string", NewNumeric(0, 5), NewString(0, "5"), false},
		{"string vs opaque", NewString(2, "AQID"), NewOpaque(2, []byte{1, 2, 3}), false},
		{"string vs opaque same bytes", NewString(2, "abc"), NewOpaque(2, []byte("abc")), false},
		{"same guid", NewGUID(3, testGUID), NewGUID(3, testGUID), true},
		{"nil and empty opaque", NewOpaque(1, nil), NewOpaque(1, []byte{}), true},
		{"empty string vs null", NewString(0, ""), Null, false},
		{"numeric zero is null", NewNumeric(0, 0), Null, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.a == tt.b)
			assert.Equal(t, tt.want, Compare(tt.a, tt.b) == 0)
			if tt.want {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestNodeID_MapKey(t *testing.T) {
	m := map[NodeID]string{
		NewNumeric(0, 5):             "numeric",
		NewNumeric(1, 5):             "other namespace",
		NewString(0, "5"):            "string",
		NewOpaque(0, []byte{5}):      "opaque",
		MustParse("ns=1;i=5"):        "parsed",
		NewGUID(0, testGUID):         "guid",
		NewGUID(0, uuid.UUID{15: 5}): "other guid",
	}
	assert.Len(t, m, 6)
	assert.Equal(t, "parsed", m[NewNumeric(1, 5)])
}

func TestNodeID_IsNull(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.True(t, NodeID{}.IsNull())
	assert.False(t, NewNumeric(1, 0).IsNull())
	assert.False(t, NewString(0, "").IsNull())
	assert.False(t, NewGUID(0, uuid.Nil).IsNull())
}

func TestNodeID_Accessors(t *testing.T) {
	n := NewOpaque(7, []byte{0xde, 0xad})
	assert.Equal(t, uint16(7), n.Namespace())
	assert.Equal(t, TypeOpaque, n.Type())

	b, ok := n.Identifier().Bytes()
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad}, b)
	b[0] = 0
	again, _ := n.Identifier().Bytes()
	assert.Equal(t, []byte{0xde, 0xad}, again, "Bytes must return a copy")

	_, ok = n.Identifier().Uint32()
	assert.False(t, ok)
	_, ok = n.Identifier().Text()
	assert.False(t, ok)
	_, ok = n.Identifier().GUID()
	assert.False(t, ok)

	g, ok := NewGUID(0, testGUID).Identifier().GUID()
	require.True(t, ok)
	assert.Equal(t, testGUID, g)

	s, ok := NewString(0, "").Identifier().Text()
	require.True(t, ok)
	assert.Equal(t, "", s)
}

func TestNodeID_OpaqueInputIsCopied(t *testing.T) {
	raw := []byte{1, 2, 3}
	n := NewOpaque(0, raw)
	raw[0] = 9
	assert.Equal(t, NewOpaque(0, []byte{1, 2, 3}), n)
}

func TestCompare(t *testing.T) {
	ordered := []NodeID{
		NewNumeric(0, 0),
		NewNumeric(0, 1),
		NewNumeric(0, 4_000_000_000),
		NewString(0, ""),
		NewString(0, "A"),
		NewString(0, "a"),
		NewGUID(0, uuid.Nil),
		NewGUID(0, testGUID),
		NewOpaque(0, nil),
		NewOpaque(0, []byte{0}),
		NewNumeric(1, 0),
		NewString(1, "5"),
		NewNumeric(65535, 0),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Negative(t, got, "%v < %v", ordered[i], ordered[j])
				assert.True(t, ordered[i].Less(ordered[j]))
			case i > j:
				assert.Positive(t, got, "%v > %v", ordered[i], ordered[j])
			default:
				assert.Zero(t, got)
			}
		}
	}

	shuffled := []NodeID{ordered[7], ordered[12], ordered[0], ordered[3], ordered[10], ordered[9],
		ordered[1], ordered[11], ordered[5], ordered[2], ordered[8], ordered[4], ordered[6]}
	Sort(shuffled)
	assert.Equal(t, ordered, shuffled)
}

func TestNodeID_Hash(t *testing.T) {
	a := MustParse("ns=2;s=Motor1")
	b := NewString(2, "Motor1")
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, NewNumeric(0, 5).Hash(), NewNumeric(1, 5).Hash())
	assert.NotEqual(t, NewNumeric(0, 5).Hash(), NewString(0, "5").Hash())
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		tag  byte
		name string
	}{
		{TypeNumeric, 'i', "Numeric"},
		{TypeString, 's', "String"},
		{TypeGUID, 'g', "Guid"},
		{TypeOpaque, 'b', "Opaque"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.typ.Tag())
			assert.Equal(t, tt.name, tt.typ.String())
		})
	}
}
