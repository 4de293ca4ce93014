package nodeid

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeID_MarshalJSON(t *testing.T) {
	tests := []struct {
		n    NodeID
		want string
	}{
		{NewNumeric(0, 2253), `{"Id":2253}`},
		{Null, `{"Id":0}`},
		{NewNumeric(3, 1), `{"Id":1,"Namespace":3}`},
		{NewString(2, "Motor1"), `{"IdType":1,"Id":"Motor1","Namespace":2}`},
		{NewGUID(0, testGUID), `{"IdType":2,"Id":"72962b91-fa75-4ae6-8d28-b404dc7daf63"}`},
		{NewOpaque(1, []byte{1, 2, 3}), `{"IdType":3,"Id":"AQID","Namespace":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := json.Marshal(tt.n)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))

			back, err := DecodeJSON(got)
			require.NoError(t, err)
			assert.Equal(t, tt.n, back)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		in   string
		want NodeID
	}{
		{`{"Id":85}`, NewNumeric(0, 85)},
		{`{"IdType":0,"Id":85,"Namespace":0}`, NewNumeric(0, 85)},
		{` { "Namespace" : 2 , "Id" : "Motor1" , "IdType" : 1 } `, NewString(2, "Motor1")},
		{`{"IdType":2,"Id":"72962B91-FA75-4AE6-8D28-B404DC7DAF63"}`, NewGUID(0, testGUID)},
		{`{"IdType":3,"Id":""}`, NewOpaque(0, nil)},
		{`{"IdType":1,"Id":"café"}`, NewString(0, "café")},
		{`{"Id":1,"Extra":[1,2]}`, NewNumeric(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`[1]`,
		`"i=5"`,
		`{}`,
		`{"Id":-1}`,
		`{"Id":1.5}`,
		`{"Id":1e3}`,
		`{"Id":4294967296}`,
		`{"Id":"5"}`,
		`{"IdType":1,"Id":5}`,
		`{"IdType":4,"Id":"x"}`,
		`{"IdType":"1","Id":"x"}`,
		`{"IdType":2,"Id":"not-a-guid"}`,
		`{"IdType":3,"Id":"AQI"}`,
		`{"Id":1,"Namespace":65536}`,
		`{"Id":1,"Namespace":null}`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := DecodeJSON([]byte(in))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "json", de.Format)
		})
	}
}

func TestNodeID_JSONField(t *testing.T) {
	type event struct {
		Source NodeID   `json:"source"`
		Nodes  []NodeID `json:"nodes"`
	}
	in := event{
		Source: NewString(2, "Motor1"),
		Nodes:  []NodeID{NewNumeric(0, 2253), NewOpaque(1, []byte("x"))},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out event
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"source":{"IdType":9,"Id":1}}`), &out)
	assert.ErrorIs(t, err, ErrMalformed)
}
