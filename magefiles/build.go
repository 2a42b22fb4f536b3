//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

const binDir = "bin"

// Builds the desktop binary into bin/paintbox.
func (Build) Host() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-ldflags", ldflags(), "-o", filepath.Join(binDir, "paintbox"), "."), withStream())
	return err
}

// Builds the offscreen exporter into bin/sceneshot.
func (Build) Sceneshot() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", filepath.Join(binDir, "sceneshot"), "./cmd/sceneshot"), withStream())
	return err
}

// Builds bin/web with the wasm binary and the Go wasm loader.
func (Build) Wasm() error {
	out := filepath.Join(binDir, "web")
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	if _, err := executeCmd("go",
		withArgs("build", "-ldflags", ldflags(), "-o", filepath.Join(out, "paintbox.wasm"), "."),
		withEnv("GOOS=js", "GOARCH=wasm"),
		withStream(),
	); err != nil {
		return err
	}
	goroot, err := executeCmd("go", withArgs("env", "GOROOT"))
	if err != nil {
		return err
	}
	src := filepath.Join(strings.TrimSpace(goroot), "lib", "wasm", "wasm_exec.js")
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading wasm loader: %w", err)
	}
	return os.WriteFile(filepath.Join(out, "wasm_exec.js"), data, 0o644)
}

// Builds every target.
func (Build) All() {
	mg.SerialDeps(Build.Host, Build.Sceneshot)
}
