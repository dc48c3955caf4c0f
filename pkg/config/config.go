package config

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// FromFile reads a YAML config file, renders it as a text/template with the
// process environment as data, and unmarshals the result into cfg.
func FromFile(filePath string, cfg interface{}) error {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		envMap[pair[0]] = pair[1]
	}

	t, err := template.ParseFiles(filePath)
	if err != nil {
		return fmt.Errorf("parse config template: %w", err)
	}
	strWriter := &strings.Builder{}
	if err := t.Execute(strWriter, envMap); err != nil {
		return fmt.Errorf("render config template: %w", err)
	}

	content := os.ExpandEnv(strWriter.String())
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}
