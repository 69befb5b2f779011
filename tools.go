//go:build tools

package tools

// This file tracks the CLI tools used by go:generate and operations.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: mocks_test.go files next to each consumer interface
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration work; cmd/carectl migrate covers the usual cases
