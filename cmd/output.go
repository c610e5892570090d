package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samzong/commitx/internal/ui"
	"github.com/samzong/commitx/internal/workflow"
)

// ErrFault marks an unexpected failure that has already been printed.
var ErrFault = errors.New("unexpected failure")

var outWriterFunc = func() io.Writer { return os.Stdout }

func init() {
	outWriterFunc = func() io.Writer { return rootCmd.OutOrStdout() }
}

func outWriter() io.Writer {
	return outWriterFunc()
}

func reportFault(p *ui.Printer, err error) error {
	workflow.ReportFault(p, err)
	return fmt.Errorf("%w: %w", ErrFault, err)
}
