//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq@v0.5.3 (mocks, see the //go:generate directives)
// - github.com/pressly/goose/v3/cmd/goose@v3.26.0 (migrations/)
