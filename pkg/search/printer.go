package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// commentWidth leaves room for the two leading tabs of the verbose layout.
const commentWidth = 78

// Printer writes one matched field.
type Printer func(w io.Writer, f Field) error

// PrinterFor returns the verbose or brief printer.
func PrinterFor(verbose bool) Printer {
	if verbose {
		return PrintVerbose
	}
	return PrintBrief
}

// PrintBrief writes "name [specifier]".
func PrintBrief(w io.Writer, f Field) error {
	_, err := fmt.Fprintf(w, "%s [%s]\n", f.Name, f.Specifier)
	return err
}

// PrintVerbose writes the field with its type, source and wrapped comment.
func PrintVerbose(w io.Writer, f Field) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s :\n", f.Name)
	fmt.Fprintf(&b, "\ttype: %s\n", f.Specifier)
	fmt.Fprintf(&b, "\tsource: %s\n", f.Source)
	b.WriteString("\tcomment:\n")
	if comment := strings.TrimSpace(f.Comment); comment != "" {
		for i, line := range strings.Split(wordwrap.WrapString(comment, commentWidth), "\n") {
			if i == 0 {
				b.WriteString("\t\t")
			} else {
				b.WriteString("\t")
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
