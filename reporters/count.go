package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/lattice"
)

type Count struct {
	config   *config.Config
	itemsets int
	rules    int
	filename string
}

func NewCount(c *config.Config, filename string) (*Count, error) {
	r := &Count{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Count) ReportItemset(*lattice.Itemset) error {
	r.itemsets++
	return nil
}

func (r *Count) ReportRule(*lattice.Rule) error {
	r.rules++
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "itemsets %v\nrules %v\n", r.itemsets, r.rules)
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	return nil
}
