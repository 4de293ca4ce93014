package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uastack/nodeid"
)

func TestInMemoryNodeStore_Put(t *testing.T) {
	tests := []struct {
		name    string
		puts    []string
		ids     []nodeid.NodeID
		wantErr error
	}{
		{
			"distinct",
			[]string{"Boolean", "SByte"},
			[]nodeid.NodeID{nodeid.NewNumeric(0, 1), nodeid.NewNumeric(0, 2)},
			nil,
		},
		{
			"duplicate name",
			[]string{"Boolean", "Boolean"},
			[]nodeid.NodeID{nodeid.NewNumeric(0, 1), nodeid.NewNumeric(0, 2)},
			ErrDuplicateName,
		},
		{
			"duplicate id",
			[]string{"Boolean", "Bool"},
			[]nodeid.NodeID{nodeid.NewNumeric(0, 1), nodeid.NewNumeric(0, 1)},
			ErrDuplicateID,
		},
		{
			"same payload different variant",
			[]string{"Five", "FiveString"},
			[]nodeid.NodeID{nodeid.NewNumeric(0, 5), nodeid.NewString(0, "5")},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInMemoryNodeStore(len(tt.puts))
			var err error
			for i := range tt.puts {
				if err = s.Put(tt.puts[i], tt.ids[i]); err != nil {
					break
				}
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				// the rejected pair must not be half stored
				assert.Equal(t, 1, s.Count())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.puts), s.Count())
		})
	}
}

func TestInMemoryNodeStore_Get(t *testing.T) {
	s := NewInMemoryNodeStore(0)
	server := nodeid.NewNumeric(0, 2253)
	require.NoError(t, s.Put("Server", server))
	require.NoError(t, s.Put("ObjectsFolder", nodeid.NewNumeric(0, 85)))

	id, ok := s.GetByName("Server")
	require.True(t, ok)
	assert.Equal(t, server, id)

	name, ok := s.GetByID(nodeid.NewNumeric(0, 85))
	require.True(t, ok)
	assert.Equal(t, "ObjectsFolder", name)

	_, ok = s.GetByName("server")
	assert.False(t, ok)
	_, ok = s.GetByID(nodeid.NewNumeric(1, 85))
	assert.False(t, ok)

	assert.Equal(t, []string{"Server", "ObjectsFolder"}, s.Keys())
}
