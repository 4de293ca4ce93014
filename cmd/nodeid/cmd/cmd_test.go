package cmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/uastack/nodeid/registry"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose = false
	dumpFormat, dumpSorted = "text", false
	parseNamespaces = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"by name", "AlarmConditionType_EnabledState", "AlarmConditionType_EnabledState\ti=9118\tVariable\n", false},
		{"by node id", "i=2253", "Server\ti=2253\tObject\n", false},
		{"unknown name", "NoSuchNode", "", true},
		{"unknown node id", "ns=1;i=2253", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "lookup", tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	nsFile := filepath.Join(dir, "ns.yaml")
	require.NoError(t, os.WriteFile(nsFile, []byte("namespaces:\n  - urn:plant\n  - http://example.org/UA\n"), 0o600))

	out, err := run(t, "parse", "--namespaces", nsFile, "ns=2;s=Motor1", "i=85")
	require.NoError(t, err)
	assert.Contains(t, out, "canonical: ns=2;s=Motor1\n")
	assert.Contains(t, out, "describe:  ns=2 (http://example.org/UA);s=Motor1\n")
	assert.Contains(t, out, "binary:    03 02 00 06 00 00 00 4d 6f 74 6f 72 31\n")
	assert.Contains(t, out, `json:      {"IdType":1,"Id":"Motor1","Namespace":2}`)
	assert.Contains(t, out, "binary:    00 55\n")
	assert.Contains(t, out, "name:      ObjectsFolder\n")

	_, err = run(t, "parse", "ns=abc;i=5")
	assert.Error(t, err)

	_, err = run(t, "parse", "--namespaces", filepath.Join(dir, "missing.yaml"), "i=1")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", "--sorted")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, registry.Len())
	assert.Equal(t, []string{"Boolean", "i=1", "DataType"}, strings.Fields(lines[0]))

	out, err = run(t, "dump", "--format", "json")
	require.NoError(t, err)
	var entries []struct {
		Name  string          `json:"name"`
		ID    json.RawMessage `json:"id"`
		Class string          `json:"class"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, registry.Len())

	out, err = run(t, "dump", "--format", "yaml", "--sorted")
	require.NoError(t, err)
	var docs []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, registry.Len())
	assert.Equal(t, map[string]string{"name": "Boolean", "id": "i=1", "class": "DataType"}, docs[0])

	_, err = run(t, "dump", "--format", "xml")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify")
	require.NoError(t, err)
	digest := registry.Default().Digest()
	assert.Contains(t, out, fmt.Sprintf("verified %d entries\n", registry.Len()))
	assert.Contains(t, out, "digest: "+hex.EncodeToString(digest[:])+"\n")
}
