package reporters

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/assoc/lattice"
)

// Formatter writes one itemset or rule per line.
type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".items"
}

func (f Formatter) ItemsetName(i *lattice.Itemset) string {
	return "[" + strings.Join(i.Items, " ") + "]"
}

func (f Formatter) RuleName(r *lattice.Rule) string {
	return strings.Join(r.Condition, " ") + " -> " + strings.Join(r.Prediction, " ")
}

func (f Formatter) FormatItemset(w io.Writer, i *lattice.Itemset) error {
	_, err := fmt.Fprintf(w, "count: %d, itemset: %v\n", i.Count, f.ItemsetName(i))
	return err
}

func (f Formatter) FormatRule(w io.Writer, r *lattice.Rule) error {
	_, err := fmt.Fprintf(w, "confidence: %.4f, rule: %v\n", r.Confidence, f.RuleName(r))
	return err
}
