//go:build tools

package main

// cmd/gendoc builds man pages with cobra/doc; it is excluded from the main
// build, so the import is pinned here.
import (
	_ "github.com/spf13/cobra/doc"
)
