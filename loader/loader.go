package loader

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/stats"
)

// JsonLoader reads a single JSON array of transactions, each an array of
// item labels. Numeric items are kept as written.
type JsonLoader struct{}

func NewJsonLoader() lattice.Loader {
	return &JsonLoader{}
}

func (l *JsonLoader) Load(input lattice.Input) ([][]string, error) {
	in, closer := input()
	defer closer()
	dec := json.NewDecoder(in)
	dec.UseNumber()
	var raw [][]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Errorf("could not decode transactions: %v", err)
	}
	txs := make([][]string, 0, len(raw))
	for i, rtx := range raw {
		tx := make([]string, 0, len(rtx))
		for _, item := range rtx {
			switch v := item.(type) {
			case string:
				tx = append(tx, v)
			case json.Number:
				tx = append(tx, v.String())
			default:
				return nil, errors.Errorf("transaction %d has item %v of type %T, expected a string or number", i, item, item)
			}
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// LinesLoader reads one transaction per line with the items separated by
// white space. Blank lines are empty transactions unless skipped.
type LinesLoader struct {
	SkipBlank bool
}

func NewLinesLoader(skipBlank bool) lattice.Loader {
	return &LinesLoader{SkipBlank: skipBlank}
}

func (l *LinesLoader) Load(input lattice.Input) ([][]string, error) {
	in, closer := input()
	defer closer()
	txs := make([][]string, 0, 100)
	err := processLines(in, func(line string) error {
		tx := strings.Fields(line)
		if len(tx) == 0 && l.SkipBlank {
			return nil
		}
		txs = append(txs, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// IBMLoader reads the output of the IBM Quest synthetic data generator:
// one "<tx-id> <customer-id> <item>" line per item. Consecutive lines with
// the same transaction id make up one transaction.
type IBMLoader struct{}

func NewIBMLoader() lattice.Loader {
	return &IBMLoader{}
}

func (l *IBMLoader) Load(input lattice.Input) ([][]string, error) {
	in, closer := input()
	defer closer()
	txs := make([][]string, 0, 100)
	cur := ""
	lineno := 0
	err := processLines(in, func(line string) error {
		lineno++
		cols := strings.Fields(line)
		if len(cols) == 0 {
			return nil
		} else if len(cols) != 3 {
			return errors.Errorf("line %d: expected 3 columns got %d", lineno, len(cols))
		}
		if len(txs) == 0 || cols[0] != cur {
			cur = cols[0]
			txs = append(txs, make([]string, 0, 10))
		}
		txs[len(txs)-1] = append(txs[len(txs)-1], cols[2])
		return nil
	})
	if err != nil {
		return nil, err
	}
	errors.Logf("DEBUG", "ibm loader read %d lines into %d transactions", lineno, len(txs))
	return txs, nil
}

// Sample keeps a uniform random sample of size transactions, in their
// input order. All of txs is kept when size <= 0 or size >= len(txs).
func Sample(txs [][]string, size int) [][]string {
	if size <= 0 || size >= len(txs) {
		return txs
	}
	sample := make([][]string, 0, size)
	for _, i := range stats.Sample(size, len(txs)) {
		sample = append(sample, txs[i])
	}
	return sample
}

func processLines(in io.Reader, process func(string) error) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := process(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
