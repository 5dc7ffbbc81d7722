package mine

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"golang.org/x/sync/errgroup"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/miners/apriori"
	"github.com/timtadh/assoc/miners/brute"
	"github.com/timtadh/assoc/miners/fpgrowth"
	"github.com/timtadh/assoc/rules"
	"github.com/timtadh/assoc/support"
)

type MakeMiner func(*support.Evaluator) miners.Miner

var Algorithms map[string]MakeMiner = map[string]MakeMiner{
	"brute": func(ev *support.Evaluator) miners.Miner {
		return brute.NewMiner(ev)
	},
	"apriori": func(ev *support.Evaluator) miners.Miner {
		return apriori.NewMiner(ev)
	},
	"fpgrowth": func(ev *support.Evaluator) miners.Miner {
		return fpgrowth.NewMiner(ev)
	},
}

// Engine answers frequent itemset, rule and support queries about one
// transaction database with one algorithm. The minimum support, minimum
// confidence and max k are fixed when the engine is made.
type Engine struct {
	Algorithm string
	Ev        *support.Evaluator
	Miner     miners.Miner
	gen       *rules.Generator
}

func New(conf *config.Config, transactions [][]string, algorithm string) (*Engine, error) {
	makeMiner, has := Algorithms[algorithm]
	if !has {
		return nil, errors.Errorf("unknown algorithm '%v'", algorithm)
	}
	ev, err := support.New(conf, transactions)
	if err != nil {
		return nil, err
	}
	m := makeMiner(ev)
	return &Engine{
		Algorithm: algorithm,
		Ev:        ev,
		Miner:     m,
		gen:       rules.New(m),
	}, nil
}

func (e *Engine) MaxK() int {
	return e.Miner.MaxK()
}

func (e *Engine) FrequentK(k int) ([]*lattice.Itemset, error) {
	itemsets, err := e.Miner.FrequentK(k)
	if err != nil {
		return nil, err
	}
	decoded, err := e.decode(itemsets)
	if err != nil {
		return nil, err
	}
	lattice.Sort(decoded)
	return decoded, nil
}

// Frequent is every frequent itemset, longest first.
func (e *Engine) Frequent() ([]*lattice.Itemset, error) {
	itemsets, err := e.Miner.All()
	if err != nil {
		return nil, err
	}
	return e.decode(itemsets)
}

func (e *Engine) decode(itemsets [][]int32) ([]*lattice.Itemset, error) {
	decoded := make([]*lattice.Itemset, 0, len(itemsets))
	for _, items := range itemsets {
		labels, err := e.Ev.Decode(items)
		if err != nil {
			return nil, err
		}
		count, err := e.Ev.Count(items)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, &lattice.Itemset{Items: labels, Count: count})
	}
	return decoded, nil
}

func (e *Engine) Rules() ([]*lattice.Rule, error) {
	return e.gen.Rules()
}

func (e *Engine) SupportCount(labels []string) (int, error) {
	return e.Ev.SupportCount(labels)
}

func (e *Engine) Support(labels []string) (float64, error) {
	return e.Ev.Support(labels)
}

func (e *Engine) Confidence(condition, prediction []string) (float64, error) {
	return e.Ev.Confidence(condition, prediction)
}

// Report sends every frequent itemset and then every rule to the
// reporter. The reporter is not closed.
func (e *Engine) Report(rptr miners.Reporter) error {
	itemsets, err := e.Frequent()
	if err != nil {
		return err
	}
	errors.Logf("INFO", "%v found %d frequent itemsets (max k %d, %d scans)", e.Algorithm, len(itemsets), e.MaxK(), e.Ev.Scans())
	for _, i := range itemsets {
		if err := rptr.ReportItemset(i); err != nil {
			return err
		}
	}
	rs, err := e.Rules()
	if err != nil {
		return err
	}
	errors.Logf("INFO", "%v found %d rules", e.Algorithm, len(rs))
	for _, r := range rs {
		if err := rptr.ReportRule(r); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) Close() error {
	return e.Ev.Close()
}

// Summary is what an engine found, rendered so that two engines over the
// same transactions can be compared with ==.
type Summary struct {
	Algorithm string
	Itemsets  []string
	Rules     []string
}

func (e *Engine) Summarize() (*Summary, error) {
	itemsets, err := e.Frequent()
	if err != nil {
		return nil, err
	}
	rs, err := e.Rules()
	if err != nil {
		return nil, err
	}
	s := &Summary{
		Algorithm: e.Algorithm,
		Itemsets:  make([]string, 0, len(itemsets)),
		Rules:     make([]string, 0, len(rs)),
	}
	for _, i := range itemsets {
		s.Itemsets = append(s.Itemsets, fmt.Sprintf("%v:%d", setKey(i.Items), i.Count))
	}
	for _, r := range rs {
		s.Rules = append(s.Rules, fmt.Sprintf("%v->%v:%.9f", setKey(r.Condition), setKey(r.Prediction), r.Confidence))
	}
	sort.Strings(s.Itemsets)
	sort.Strings(s.Rules)
	return s, nil
}

func setKey(labels []string) string {
	sorted := append([]string{}, labels...)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ",") + "}"
}

// Compare mines the transactions with each of the named algorithms, each
// with its own evaluator, and fails if any of them disagree with the first
// on the frequent itemsets (with counts) or the rules (with confidences).
func Compare(ctx context.Context, conf *config.Config, transactions [][]string, algorithms ...string) ([]*Summary, error) {
	if len(algorithms) == 0 {
		for name := range Algorithms {
			algorithms = append(algorithms, name)
		}
		sort.Strings(algorithms)
	}
	summaries := make([]*Summary, len(algorithms))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(conf.Workers())
	for i, name := range algorithms {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := New(conf, transactions, name)
			if err != nil {
				return err
			}
			defer e.Close()
			s, err := e.Summarize()
			if err != nil {
				return err
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	first := summaries[0]
	for _, s := range summaries[1:] {
		if d := diff(first.Itemsets, s.Itemsets); d != "" {
			return summaries, errors.Errorf("%v and %v found different itemsets: %v", first.Algorithm, s.Algorithm, d)
		}
		if d := diff(first.Rules, s.Rules); d != "" {
			return summaries, errors.Errorf("%v and %v found different rules: %v", first.Algorithm, s.Algorithm, d)
		}
	}
	return summaries, nil
}

func diff(a, b []string) string {
	in := make(map[string]int)
	for _, x := range a {
		in[x]++
	}
	for _, x := range b {
		in[x]--
	}
	parts := make([]string, 0, 10)
	for x, c := range in {
		if c > 0 {
			parts = append(parts, "-"+x)
		} else if c < 0 {
			parts = append(parts, "+"+x)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
