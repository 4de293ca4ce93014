package nodeid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		n    NodeID
		want []byte
	}{
		{"two byte", NewNumeric(0, 5), []byte{0x00, 0x05}},
		{"two byte max", NewNumeric(0, 255), []byte{0x00, 0xff}},
		{"four byte", NewNumeric(5, 1025), []byte{0x01, 0x05, 0x01, 0x04}},
		{"four byte for ns 0", NewNumeric(0, 256), []byte{0x01, 0x00, 0x00, 0x01}},
		{"numeric large value", NewNumeric(0, 70000), []byte{0x02, 0x00, 0x00, 0x70, 0x11, 0x01, 0x00}},
		{"numeric large namespace", NewNumeric(256, 1), []byte{0x02, 0x00, 0x01, 0x01, 0x00, 0x00, 0x00}},
		{"string", NewString(1, "Hot"), []byte{0x03, 0x01, 0x00, 0x03, 0x00, 0x00, 0x00, 'H', 'o', 't'}},
		{"empty string", NewString(0, ""), []byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{
			"guid",
			NewGUID(1, testGUID),
			[]byte{
				0x04, 0x01, 0x00,
				0x91, 0x2b, 0x96, 0x72, 0x75, 0xfa, 0xe6, 0x4a,
				0x8d, 0x28, 0xb4, 0x04, 0xdc, 0x7d, 0xaf, 0x63,
			},
		},
		{"opaque", NewOpaque(0, []byte{1, 2, 3}), []byte{0x05, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), tt.n.binarySize())

			mb, err := tt.n.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, tt.want, mb)

			prefix := []byte{0xaa}
			assert.Equal(t, append([]byte{0xaa}, tt.want...), tt.n.AppendBinary(prefix))

			back, read, err := Decode(got)
			require.NoError(t, err)
			assert.Equal(t, len(got), read)
			assert.Equal(t, tt.n, back)
		})
	}
}

func TestDecode_NonCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want NodeID
	}{
		{"numeric encoding of a small value", []byte{0x02, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00}, NewNumeric(0, 5)},
		{"four byte in namespace 0", []byte{0x01, 0x00, 0x05, 0x00}, NewNumeric(0, 5)},
		{"null string", []byte{0x03, 0x02, 0x00, 0xff, 0xff, 0xff, 0xff}, NewString(2, "")},
		{"null byte string", []byte{0x05, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff}, NewOpaque(0, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, read, err := Decode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, len(tt.in), read)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		wantErr error
		offset  int
	}{
		{"empty", nil, ErrTruncated, 0},
		{"two byte truncated", []byte{0x00}, ErrTruncated, 1},
		{"four byte truncated", []byte{0x01, 0x00, 0x05}, ErrTruncated, 3},
		{"numeric truncated", []byte{0x02, 0x00, 0x00, 0x05}, ErrTruncated, 4},
		{"namespace truncated", []byte{0x03, 0x00}, ErrTruncated, 2},
		{"guid truncated", []byte{0x04, 0x00, 0x00, 0x01, 0x02}, ErrTruncated, 5},
		{"length truncated", []byte{0x03, 0x00, 0x00, 0x01}, ErrTruncated, 4},
		{"payload truncated", []byte{0x03, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 'a'}, ErrTruncated, 8},
		{"negative length", []byte{0x05, 0x00, 0x00, 0xfe, 0xff, 0xff, 0xff}, ErrInvalidLength, 3},
		{"unknown encoding", []byte{0x06, 0x00, 0x00}, ErrUnknownEncoding, 0},
		{"expanded namespace uri flag", []byte{0x80, 0x05}, ErrUnknownEncoding, 0},
		{"expanded server index flag", []byte{0x40, 0x05}, ErrUnknownEncoding, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, read, err := Decode(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Null, got)
			assert.Zero(t, read)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "binary", de.Format)
			assert.Equal(t, tt.offset, de.Offset)
		})
	}
}

func TestDecode_LeavesTrailingBytes(t *testing.T) {
	buf := Encode(NewString(1, "a"))
	buf = NewNumeric(0, 7).AppendBinary(buf)

	first, n, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, NewString(1, "a"), first)

	second, m, err := Decode(buf[n:])
	require.NoError(t, err)
	assert.Equal(t, NewNumeric(0, 7), second)
	assert.Equal(t, len(buf), n+m)
}

func TestNodeID_UnmarshalBinary(t *testing.T) {
	var n NodeID
	require.NoError(t, n.UnmarshalBinary([]byte{0x01, 0x02, 0x03, 0x00}))
	assert.Equal(t, NewNumeric(2, 3), n)

	err := n.UnmarshalBinary([]byte{0x00, 0x05, 0x00})
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, NewNumeric(2, 3), n)

	err = n.UnmarshalBinary(nil)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecode_PayloadIsCopied(t *testing.T) {
	buf := Encode(NewOpaque(0, []byte{1, 2}))
	n, _, err := Decode(buf)
	require.NoError(t, err)
	buf[len(buf)-1] = 9
	assert.Equal(t, NewOpaque(0, []byte{1, 2}), n)
}
