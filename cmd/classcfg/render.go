package main

import (
	"bytes"
	"fmt"

	"github.com/rota-app/classcfg"
	"gopkg.in/yaml.v3"
)

// renderYAML encodes the record the way it is written to .classcfg.yaml.
func renderYAML(config classcfg.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
