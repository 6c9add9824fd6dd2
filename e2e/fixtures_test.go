//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// twoBoxLayout has one pre-checked item so startup adoption is visible
const twoBoxLayout = `title = "E2E picks"

[[nodes]]
kind = "section"
id = "pair"
label = "Pair"

  [[nodes.children]]
  kind = "checkbox"
  id = "left"
  label = "Left"
  checked = true

  [[nodes.children]]
  kind = "checkbox"
  id = "right"
  label = "Right"
`

// CreateTestWorkspace creates the directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.workspace = tf.t.TempDir()
	return tf.workspace, nil
}

// WriteFile writes a file relative to the workspace
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}
