package namespace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray(t *testing.T) {
	tests := []struct {
		name    string
		uris    []string
		wantLen int
		wantErr error
	}{
		{"no uris", nil, 1, nil},
		{"standard only", []string{StandardURI}, 1, nil},
		{"standard and vendor", []string{StandardURI, "urn:a", "urn:b"}, 3, nil},
		{"missing standard", []string{"urn:a"}, 0, ErrNotStandardFirst},
		{"duplicate", []string{StandardURI, "urn:a", "urn:a"}, 0, ErrDuplicateURI},
		{"standard twice", []string{StandardURI, StandardURI}, 0, ErrDuplicateURI},
		{"empty uri", []string{StandardURI, ""}, 0, ErrEmptyURI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArray(tt.uris...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, a.Len())
		})
	}
}

func TestArray_Lookup(t *testing.T) {
	a, err := NewArray(StandardURI, "http://example.org/UA", "urn:plant")
	require.NoError(t, err)

	uri, ok := a.URIOf(Standard)
	require.True(t, ok)
	assert.Equal(t, StandardURI, uri)

	uri, ok = a.URIOf(2)
	require.True(t, ok)
	assert.Equal(t, "urn:plant", uri)

	_, ok = a.URIOf(3)
	assert.False(t, ok)

	idx, ok := a.IndexOf("http://example.org/UA")
	require.True(t, ok)
	assert.Equal(t, uint16(1), idx)

	_, ok = a.IndexOf("urn:unknown")
	assert.False(t, ok)
}

func TestArray_URIsIsACopy(t *testing.T) {
	a, err := NewArray(StandardURI, "urn:a")
	require.NoError(t, err)
	uris := a.URIs()
	uris[1] = "urn:changed"
	uri, _ := a.URIOf(1)
	assert.Equal(t, "urn:a", uri)
}

func TestLoadYAML(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []string
		wantErr bool
	}{
		{
			"standard listed",
			"namespaces:\n  - http://opcfoundation.org/UA/\n  - urn:plant\n",
			[]string{StandardURI, "urn:plant"},
			false,
		},
		{
			"standard prepended",
			"namespaces:\n  - urn:plant\n  - urn:line\n",
			[]string{StandardURI, "urn:plant", "urn:line"},
			false,
		},
		{"empty document", "", []string{StandardURI}, false},
		{"unknown field", "uris: [urn:a]\n", nil, true},
		{"duplicate", "namespaces: [urn:a, urn:a]\n", nil, true},
		{"not a list", "namespaces: urn:a\n", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := LoadYAML(strings.NewReader(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.URIs())
		})
	}
}
