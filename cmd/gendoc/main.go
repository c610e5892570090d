//go:build ignore

// Generates commitx reference pages:
//
//	go run ./cmd/gendoc [-format man|markdown] [dir]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/samzong/commitx/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	format := flag.String("format", "man", "output format: man or markdown")
	flag.Parse()

	dir := "./docs/" + *format
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	root := cmd.RootCmd()
	root.DisableAutoGenTag = true

	var err error
	switch *format {
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "COMMITX",
			Section: "1",
			Source:  "commitx " + cmd.Version,
			Manual:  "commitx Manual",
		}, dir)
	case "markdown":
		err = doc.GenMarkdownTree(root, dir)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating docs: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s pages generated in %s\n", *format, dir)
}
