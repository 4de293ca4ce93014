package nodeid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeID_Marshal(t *testing.T) {
	tests := []struct {
		name string
		n    NodeID
		want []byte
	}{
		{"null", Null, []byte{}},
		{"numeric", NewNumeric(2, 5), []byte{0x08, 0x02, 0x10, 0x05}},
		{"numeric zero in namespace", NewNumeric(1, 0), []byte{0x08, 0x01}},
		{"large numeric", NewNumeric(0, 300), []byte{0x10, 0xac, 0x02}},
		{"string", NewString(0, "ab"), []byte{0x1a, 0x02, 'a', 'b'}},
		{"empty string", NewString(0, ""), []byte{0x1a, 0x00}},
		{"opaque", NewOpaque(0, []byte{0xff}), []byte{0x2a, 0x01, 0xff}},
		{
			"guid",
			NewGUID(0, testGUID),
			append([]byte{0x22, 0x10}, testGUID[:]...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.n.Marshal()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), tt.n.Size())

			buf := make([]byte, tt.n.Size()+2)
			written, err := tt.n.MarshalTo(buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf[:written])

			var back NodeID
			require.NoError(t, back.Unmarshal(got))
			assert.Equal(t, tt.n, back)
		})
	}
}

func TestNodeID_MarshalToShortBuffer(t *testing.T) {
	n := NewString(0, "Motor1")
	_, err := n.MarshalTo(make([]byte, n.Size()-1))
	assert.Error(t, err)
}

func TestNodeID_UnmarshalSkipsUnknownFields(t *testing.T) {
	data := []byte{
		0x48, 0x07, // field 9 varint
		0x08, 0x02, // namespace 2
		0x52, 0x01, 'z', // field 10 bytes
		0x1a, 0x01, 'm', // string "m"
	}
	var n NodeID
	require.NoError(t, n.Unmarshal(data))
	assert.Equal(t, NewString(2, "m"), n)
}

func TestNodeID_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		wantErr error
	}{
		{"truncated key", []byte{0x80}, ErrTruncated},
		{"truncated varint", []byte{0x08}, ErrTruncated},
		{"truncated length", []byte{0x1a}, ErrTruncated},
		{"truncated payload", []byte{0x1a, 0x05, 'a'}, ErrTruncated},
		{"namespace out of range", []byte{0x08, 0x80, 0x80, 0x04}, ErrMalformed},
		{"numeric out of range", []byte{0x10, 0x80, 0x80, 0x80, 0x80, 0x10}, ErrMalformed},
		{"two identifiers", []byte{0x10, 0x01, 0x1a, 0x01, 'a'}, ErrMalformed},
		{"two strings", []byte{0x1a, 0x01, 'a', 0x1a, 0x01, 'b'}, ErrMalformed},
		{"short guid", []byte{0x22, 0x02, 0x01, 0x02}, ErrInvalidLength},
		{"fixed64 wire type", []byte{0x09, 0, 0, 0, 0, 0, 0, 0, 0}, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNumeric(4, 4)
			err := n.Unmarshal(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "proto", de.Format)
			assert.Equal(t, NewNumeric(4, 4), n)
		})
	}
}
