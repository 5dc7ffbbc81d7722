package lattice

import (
	"fmt"
	"io"
	"strings"
)

type Input func() (reader io.Reader, closer func())

type Loader interface {
	Load(input Input) ([][]string, error)
}

// An Itemset is a decoded frequent itemset. Items are listed in the
// canonical (ascending item code) order of the encoder that produced it.
type Itemset struct {
	Items []string
	Count int
}

func (i *Itemset) Size() int {
	return len(i.Items)
}

func (i *Itemset) String() string {
	return fmt.Sprintf("<Itemset {%v} %d>", strings.Join(i.Items, ", "), i.Count)
}

type Rule struct {
	Condition  []string
	Prediction []string
	Confidence float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("<Rule {%v} -> {%v} %.4f>",
		strings.Join(r.Condition, ", "), strings.Join(r.Prediction, ", "), r.Confidence)
}

type Formatter interface {
	FileExt() string
	ItemsetName(*Itemset) string
	RuleName(*Rule) string
	FormatItemset(io.Writer, *Itemset) error
	FormatRule(io.Writer, *Rule) error
}
