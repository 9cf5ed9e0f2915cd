//go:build mage

// Package main provides build targets for gomaze using Mage.
//
// Usage:
//
//	mage build    Compile the gomaze binary to bin/
//	mage test     Run all tests
//	mage cover    Run tests with a coverage profile
//	mage lint     Run golangci-lint
//	mage solve    Build, then solve the sample mazes
//	mage clean    Remove build artifacts
//	mage install  Install gomaze to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "gomaze"
	binaryDir  = "bin"
	cmdDir     = "./cmd/gomaze"
	versionPkg = "github.com/dbsmedya/gomaze/cmd/gomaze/cmd"
	coverFile  = "coverage.out"
)

// Default target when mage runs without arguments.
var Default = Build

// ldflags stamps version and commit into the binary.
func ldflags() string {
	version := os.Getenv("GOMAZE_VERSION")
	if version == "" {
		version = "0.0.1-dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("-X %s.Version=%s -X %s.Commit=%s", versionPkg, version, versionPkg, strings.TrimSpace(commit))
}

// Build compiles the gomaze binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests and writes a coverage profile.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverFile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// sampleMazes are the mazes configured in gomaze.yaml.
var sampleMazes = []string{"open", "winding", "walled", "spiral"}

// Solve builds the binary, validates gomaze.yaml and compares DFS and BFS on
// every sample maze.
func Solve() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	if err := sh.RunV(bin, "--config", "gomaze.yaml", "validate"); err != nil {
		return err
	}
	for _, name := range sampleMazes {
		if err := sh.RunV(bin, "--config", "gomaze.yaml", "compare", "--maze", name); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.Remove(coverFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), filepath.Join(binaryDir, binaryName))
}
