package mine

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/reporters"
)

var txs = [][]string{
	{"a", "b"},
	{"a", "b", "c"},
	{"b", "c"},
	{"a", "c"},
	{"a", "b", "c"},
}

var groceries = [][]string{
	{"milk", "bread", "eggs"},
	{"milk", "bread"},
	{"bread", "butter"},
	{"milk", "eggs", "butter", "jam"},
	{"bread", "eggs", "milk", "butter"},
	{"jam"},
	{"bread", "bread", "milk"},
	{"eggs", "butter"},
	{},
	{"milk", "bread", "butter", "eggs", "jam"},
}

func random(seed int64, n, items, maxLen int) [][]string {
	r := rand.New(rand.NewSource(seed))
	txs := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		tx := make([]string, 0, maxLen)
		for j := r.Intn(maxLen) + 1; j > 0; j-- {
			tx = append(tx, fmt.Sprintf("i%d", r.Intn(items)))
		}
		txs = append(txs, tx)
	}
	return txs
}

func engine(t *assert.Assertions, conf *config.Config, txs [][]string, alg string) *Engine {
	e, err := New(conf, txs, alg)
	t.Nil(err)
	return e
}

func conf(minSup, minCof float64, maxK int, index bool) *config.Config {
	c := config.Default()
	c.Support = minSup
	c.Confidence = minCof
	c.MaxK = maxK
	c.Index = index
	return c
}

func names(itemsets []*lattice.Itemset) []string {
	found := make([]string, 0, len(itemsets))
	for _, i := range itemsets {
		found = append(found, strings.Join(i.Items, ","))
	}
	return found
}

func TestUnknownAlgorithm(x *testing.T) {
	t := assert.New(x)
	_, err := New(config.Default(), txs, "eclat")
	t.NotNil(err)
}

func TestScenario(x *testing.T) {
	t := assert.New(x)
	for alg := range Algorithms {
		e := engine(t, conf(.4, .7, 0, false), txs, alg)
		count, err := e.SupportCount([]string{"a", "b"})
		t.Nil(err)
		t.Equal(3, count)
		s, err := e.Support([]string{"a", "b"})
		t.Nil(err)
		t.InDelta(.6, s, 1e-9)
		c, err := e.Confidence([]string{"a"}, []string{"b"})
		t.Nil(err)
		t.InDelta(.75, c, 1e-9)

		one, err := e.FrequentK(1)
		t.Nil(err)
		t.Equal([]string{"a", "b", "c"}, names(one), alg)
		two, err := e.FrequentK(2)
		t.Nil(err)
		t.Equal([]string{"a,b", "a,c", "b,c"}, names(two), alg)
		three, err := e.FrequentK(3)
		t.Nil(err)
		t.Equal([]string{"a,b,c"}, names(three), alg)
		t.Equal(2, three[0].Count)

		all, err := e.Frequent()
		t.Nil(err)
		t.Equal([]string{"a,b,c", "a,b", "a,c", "b,c", "a", "b", "c"}, names(all), alg)

		rules, err := e.Rules()
		t.Nil(err)
		t.Equal(6, len(rules), alg)
		for _, r := range rules {
			t.True(r.Confidence >= .7)
		}
		t.Nil(e.Close())
	}
}

func TestOutOfRange(x *testing.T) {
	t := assert.New(x)
	for alg := range Algorithms {
		e := engine(t, conf(.4, .7, 0, false), txs, alg)
		for _, k := range []int{0, 4} {
			_, err := e.FrequentK(k)
			_, ok := err.(*lattice.OutOfRange)
			t.True(ok, "%v k=%d expected *lattice.OutOfRange got %T", alg, k, err)
		}
		t.Nil(e.Close())
	}
}

func TestConfidenceZeroSupport(x *testing.T) {
	t := assert.New(x)
	e := engine(t, conf(.4, .7, 0, false), txs, "apriori")
	defer e.Close()
	_, err := e.Confidence([]string{"z"}, []string{"a"})
	_, ok := err.(*lattice.ZeroSupport)
	t.True(ok, "expected *lattice.ZeroSupport got %T", err)
}

func TestEmptyDatabase(x *testing.T) {
	t := assert.New(x)
	for alg := range Algorithms {
		e := engine(t, conf(.4, .7, 0, false), [][]string{}, alg)
		_, err := e.Support([]string{"a"})
		_, ok := err.(*lattice.NoTransactions)
		t.True(ok, "expected *lattice.NoTransactions got %T", err)
		count, err := e.SupportCount([]string{"a"})
		t.Nil(err)
		t.Equal(0, count)
		all, err := e.Frequent()
		t.Nil(err)
		t.Equal(0, len(all))
		rules, err := e.Rules()
		t.Nil(err)
		t.Equal(0, len(rules))
		t.Nil(e.Close())
	}
}

func TestReport(x *testing.T) {
	t := assert.New(x)
	e := engine(t, conf(.4, .7, 0, false), txs, "fpgrowth")
	defer e.Close()
	c := &reporters.Collector{}
	t.Nil(e.Report(c))
	t.Equal(7, len(c.Itemsets))
	t.Equal(6, len(c.Rules))
	t.Equal([]string{"a", "b", "c"}, c.Itemsets[0].Items)
}

func TestAlgorithmsAgree(x *testing.T) {
	t := assert.New(x)
	datasets := map[string][][]string{
		"scenario":  txs,
		"groceries": groceries,
		"random-1":  random(1, 60, 8, 6),
		"random-2":  random(2, 100, 12, 7),
	}
	for name, data := range datasets {
		for _, minSup := range []float64{.05, .2, .4} {
			for _, index := range []bool{false, true} {
				for _, maxK := range []int{0, 2} {
					summaries, err := Compare(context.Background(), conf(minSup, .3, maxK, index), data)
					t.Nil(err, "%v sup=%v index=%v maxK=%d", name, minSup, index, maxK)
					t.Equal(3, len(summaries))
				}
			}
		}
	}
}

func TestCompareParallel(x *testing.T) {
	t := assert.New(x)
	c := conf(.1, .5, 0, true)
	c.Parallelism = 3
	summaries, err := Compare(context.Background(), c, groceries, "brute", "apriori", "fpgrowth")
	t.Nil(err)
	t.Equal(3, len(summaries))
	t.Equal("brute", summaries[0].Algorithm)
	for _, s := range summaries {
		t.Contains(s.Itemsets, "{bread,milk}:5", s.Algorithm)
		t.Contains(s.Rules, "{milk}->{bread}:0.833333333", s.Algorithm)
		t.Contains(s.Rules, "{bread}->{milk}:0.833333333", s.Algorithm)
	}
}

func TestCompareCancelled(x *testing.T) {
	t := assert.New(x)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Compare(ctx, conf(.4, .7, 0, false), txs)
	t.NotNil(err)
}

func TestDiff(x *testing.T) {
	t := assert.New(x)
	t.Equal("", diff([]string{"a", "b"}, []string{"b", "a"}))
	t.Equal("+c -a", diff([]string{"a", "b"}, []string{"b", "c"}))
}
