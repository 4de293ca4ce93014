package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uastack/nodeid"
	"github.com/uastack/nodeid/ids"
)

func TestDefault_AlarmConditionEnabledState(t *testing.T) {
	id, ok := ByName("AlarmConditionType_EnabledState")
	require.True(t, ok)
	assert.Equal(t, uint16(0), id.Namespace())
	v, isNumeric := id.Identifier().Uint32()
	require.True(t, isNumeric)
	assert.Equal(t, uint32(9118), v)

	name, ok := NameOf(id)
	require.True(t, ok)
	assert.Equal(t, "AlarmConditionType_EnabledState", name)
}

func TestDefault_Bijection(t *testing.T) {
	r := Default()
	names := make(map[string]bool, r.Len())
	values := make(map[nodeid.NodeID]bool, r.Len())
	for name, id := range r.All() {
		require.False(t, names[name], "duplicate name %q", name)
		require.False(t, values[id], "duplicate id %v", id)
		names[name] = true
		values[id] = true

		got, ok := r.ByName(name)
		require.True(t, ok)
		assert.Equal(t, id, got)
		gotName, ok := r.NameOf(id)
		require.True(t, ok)
		assert.Equal(t, name, gotName)
	}
	assert.Len(t, names, r.Len())
	assert.Equal(t, r.Len(), Len())
}

func TestDefault_Absent(t *testing.T) {
	tests := []struct {
		name string
		id   nodeid.NodeID
	}{
		{"other namespace", nodeid.NewNumeric(1, ids.Boolean)},
		{"string variant", nodeid.NewString(0, "1")},
		{"unassigned number", nodeid.NewNumeric(0, 4_000_000_000)},
		{"null", nodeid.Null},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NameOf(tt.id)
			assert.False(t, ok)
		})
	}
	_, ok := ByName("NoSuchNode")
	assert.False(t, ok)
	_, ok = ByName("boolean")
	assert.False(t, ok)
}

func TestDefault_ConstantsMatch(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		class NodeClass
	}{
		{"Boolean", ids.Boolean, NodeClassDataType},
		{"HasComponent", ids.HasComponent, NodeClassReferenceType},
		{"BaseObjectType", ids.BaseObjectType, NodeClassObjectType},
		{"PropertyType", ids.PropertyType, NodeClassVariableType},
		{"Server", ids.Server, NodeClassObject},
		{"Server_NamespaceArray", ids.Server_NamespaceArray, NodeClassVariable},
		{"ConditionType_Enable", ids.ConditionType_Enable, NodeClassMethod},
		{"ReadRequest_Encoding_DefaultBinary", ids.ReadRequest_Encoding_DefaultBinary, NodeClassObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Default().Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, nodeid.NewNumeric(0, tt.value), e.ID)
			assert.Equal(t, tt.class, e.Class)
		})
	}
	assert.Equal(t, uint32(631), uint32(ids.ReadRequest_Encoding_DefaultBinary))
}

func TestNew_Integrity(t *testing.T) {
	a := Entry{"A", nodeid.NewNumeric(0, 1), NodeClassObject}
	tests := []struct {
		name     string
		segments [][]Entry
		wantErr  error
	}{
		{
			"duplicate name across segments",
			[][]Entry{{a}, {{"A", nodeid.NewNumeric(0, 2), NodeClassObject}}},
			ErrDuplicateName,
		},
		{
			"duplicate value",
			[][]Entry{{a, {"B", nodeid.NewNumeric(0, 1), NodeClassVariable}}},
			ErrDuplicateID,
		},
		{
			"foreign namespace",
			[][]Entry{{{"C", nodeid.NewNumeric(3, 1), NodeClassObject}}},
			ErrForeignNamespace,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.segments...)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.wantErr)
			var ie *IntegrityError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

func TestNew_SegmentsAreInvisible(t *testing.T) {
	entries := []Entry{
		{"A", nodeid.NewNumeric(0, 10), NodeClassObject},
		{"B", nodeid.NewString(0, "b"), NodeClassVariable},
		{"C", nodeid.NewNumeric(0, 2), NodeClassMethod},
	}
	flat, err := New(entries)
	require.NoError(t, err)
	split, err := New(entries[:1], entries[1:2], nil, entries[2:])
	require.NoError(t, err)

	assert.Equal(t, flat.Len(), split.Len())
	assert.Equal(t, flat.Digest(), split.Digest())
	assert.Equal(t, flat.Sorted(), split.Sorted())
}

func TestRegistry_AllIsRestartable(t *testing.T) {
	r := Default()
	collect := func() []string {
		var names []string
		for name := range r.All() {
			names = append(names, name)
		}
		return names
	}
	first := collect()
	assert.Len(t, first, r.Len())
	assert.Equal(t, first, collect())

	// stopping early must not break later iterations
	n := 0
	for range r.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, first, collect())
}

func TestRegistry_Sorted(t *testing.T) {
	sorted := Default().Sorted()
	require.Len(t, sorted, Default().Len())
	for i := 1; i < len(sorted); i++ {
		assert.Negative(t, nodeid.Compare(sorted[i-1].ID, sorted[i].ID))
	}
	assert.Equal(t, "Boolean", sorted[0].Name)
}

func TestRegistry_Digest(t *testing.T) {
	r1, err := NewStandard()
	require.NoError(t, err)
	assert.Equal(t, Default().Digest(), r1.Digest())

	extra := []Entry{{"Vendor_Extra", nodeid.NewNumeric(0, 4_000_000_000), NodeClassObject}}
	r2, err := New(append(segments(), extra)...)
	require.NoError(t, err)
	assert.NotEqual(t, r1.Digest(), r2.Digest())

	renamed := []Entry{{"X", nodeid.NewNumeric(0, 1), NodeClassObject}}
	a, err := New(renamed)
	require.NoError(t, err)
	renamed[0].Name = "Y"
	b, err := New(renamed)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), b.Digest())
}

func TestDefault_Concurrent(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup
	got := make([]*Registry, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Default()
			_, ok := ByName("Server")
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	for _, r := range got {
		assert.Same(t, got[0], r)
	}
}

func TestNodeClass_String(t *testing.T) {
	assert.Equal(t, "ReferenceType", NodeClassReferenceType.String())
	assert.Equal(t, "NodeClass(3)", NodeClass(3).String())
	text, err := NodeClassView.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "View", string(text))
}

func TestRegistry_Prove(t *testing.T) {
	r := Default()
	root := r.Digest()
	for _, name := range []string{"Boolean", "Server", "AlarmConditionType_EnabledState", "ReadRequest_Encoding_DefaultBinary"} {
		t.Run(name, func(t *testing.T) {
			p, ok := r.Prove(name)
			require.True(t, ok)
			e, ok := r.Lookup(name)
			require.True(t, ok)
			assert.True(t, VerifyEntry(root, e, p))

			renumbered := e
			renumbered.ID = nodeid.NewNumeric(0, 4_000_000_000)
			assert.False(t, VerifyEntry(root, renumbered, p))

			renamed := e
			renamed.Name += "_"
			assert.False(t, VerifyEntry(root, renamed, p))
		})
	}

	_, ok := r.Prove("NoSuchNode")
	assert.False(t, ok)
}
