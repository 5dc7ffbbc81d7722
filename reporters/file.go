package reporters

import (
	"io"
	"os"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/lattice"
)

type File struct {
	config   *config.Config
	fmt      lattice.Formatter
	itemsets io.WriteCloser
	rules    io.WriteCloser
}

func NewFile(c *config.Config, fmt lattice.Formatter, itemsetsFilename, rulesFilename string) (*File, error) {
	itemsets, err := os.Create(c.OutputFile(itemsetsFilename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	rules, err := os.Create(c.OutputFile(rulesFilename + fmt.FileExt()))
	if err != nil {
		itemsets.Close()
		return nil, err
	}
	r := &File{
		config:   c,
		fmt:      fmt,
		itemsets: itemsets,
		rules:    rules,
	}
	return r, nil
}

func (r *File) ReportItemset(i *lattice.Itemset) error {
	return r.fmt.FormatItemset(r.itemsets, i)
}

func (r *File) ReportRule(rule *lattice.Rule) error {
	return r.fmt.FormatRule(r.rules, rule)
}

func (r *File) Close() error {
	err := r.itemsets.Close()
	if err != nil {
		return err
	}
	err = r.rules.Close()
	if err != nil {
		return err
	}
	return nil
}
