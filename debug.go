package dlist

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/dlist/geom"
)

const minIndent = 4

// PrintItems writes a dump of the list to w: one line per item with its kind
// and bounds, then each child stacking context indented one level further.
// An empty indentation defaults to "####"; a shorter one is grown to four
// characters by repeating its first character.
//
// The format is for humans and may change.
func (d *DisplayList) PrintItems(w io.Writer, indentation string) {
	if indentation == "" {
		indentation = "####"
	}
	if n := utf8.RuneCountInString(indentation); n < minIndent {
		first, _ := utf8.DecodeRuneInString(indentation)
		indentation += strings.Repeat(string(first), minIndent-n)
	}

	for _, item := range d.AllDisplayItems() {
		fmt.Fprintf(w, "%s %s. %s\n", indentation, item.Kind(), geom.FormatRect(item.Base().Bounds))
	}
	fmt.Fprintln(w)

	if n := d.Children.Len(); n != 0 {
		fmt.Fprintf(w, "%s Children stacking contexts list length: %d\n", indentation, n)
		step := string([]rune(indentation)[:minIndent])
		for child := range d.Children.All() {
			child.DisplayList.PrintItems(w, indentation+step)
		}
	}
}

// DebugWithLevel writes Describe(item) to w, indented for the given tree
// depth.
func DebugWithLevel(w io.Writer, item DisplayItem, level int) {
	fmt.Fprintf(w, "%s+ %s\n", strings.Repeat("| ", level), Describe(item))
}
