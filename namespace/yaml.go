package namespace

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML layout read by LoadYAML:
//
//	namespaces:
//	  - http://opcfoundation.org/UA/
//	  - urn:example:plant
type document struct {
	Namespaces []string `yaml:"namespaces"`
}

// LoadYAML reads a namespace array from a YAML document. The standard
// namespace URI is prepended if the document does not list it first.
func LoadYAML(r io.Reader) (*Array, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("namespace: decode yaml: %w", err)
	}
	uris := doc.Namespaces
	if len(uris) == 0 || uris[0] != StandardURI {
		uris = append([]string{StandardURI}, uris...)
	}
	return NewArray(uris...)
}
