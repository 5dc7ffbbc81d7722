package brute

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"sort"
	"strings"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/support"
)

var txs = [][]string{
	{"a", "b"},
	{"a", "b", "c"},
	{"b", "c"},
	{"a", "c"},
	{"a", "b", "c"},
}

func miner(t *assert.Assertions, minSup float64, maxK int, txs [][]string) *Miner {
	c := config.Default()
	c.Support = minSup
	c.MaxK = maxK
	ev, err := support.New(c, txs)
	t.Nil(err)
	return NewMiner(ev)
}

func level(t *assert.Assertions, m *Miner, k int) []string {
	itemsets, err := m.FrequentK(k)
	t.Nil(err)
	found := make([]string, 0, len(itemsets))
	for _, items := range itemsets {
		labels, err := m.Ev.Decode(items)
		t.Nil(err)
		sort.Strings(labels)
		found = append(found, strings.Join(labels, ","))
	}
	sort.Strings(found)
	return found
}

func TestLevels(x *testing.T) {
	t := assert.New(x)
	m := miner(t, .4, 0, txs)
	defer m.Ev.Close()
	t.Equal(3, m.MaxK())
	t.Equal([]string{"a", "b", "c"}, level(t, m, 1))
	t.Equal([]string{"a,b", "a,c", "b,c"}, level(t, m, 2))
	t.Equal([]string{"a,b,c"}, level(t, m, 3))
}

func TestHighSupport(x *testing.T) {
	t := assert.New(x)
	m := miner(t, .7, 0, txs)
	defer m.Ev.Close()
	t.Equal([]string{"a", "b", "c"}, level(t, m, 1))
	t.Equal([]string{}, level(t, m, 2))
	t.Equal([]string{}, level(t, m, 3))
}

func TestOutOfRange(x *testing.T) {
	t := assert.New(x)
	m := miner(t, .4, 0, txs)
	defer m.Ev.Close()
	for _, k := range []int{0, -2, 4} {
		_, err := m.FrequentK(k)
		t.NotNil(err)
		_, ok := err.(*lattice.OutOfRange)
		t.True(ok, "expected *lattice.OutOfRange got %T", err)
	}
}

func TestMaxKBound(x *testing.T) {
	t := assert.New(x)
	m := miner(t, .4, 2, txs)
	defer m.Ev.Close()
	t.Equal([]string{"a,b", "a,c", "b,c"}, level(t, m, 2))
	_, err := m.FrequentK(3)
	t.NotNil(err)
	all, err := m.All()
	t.Nil(err)
	t.Equal(6, len(all))
}

func TestFrequentCountsMeetThreshold(x *testing.T) {
	t := assert.New(x)
	m := miner(t, .4, 0, txs)
	defer m.Ev.Close()
	all, err := m.All()
	t.Nil(err)
	t.Equal(7, len(all))
	t.Equal(3, len(all[0]))
	for _, items := range all {
		count, err := m.Ev.Count(items)
		t.Nil(err)
		t.True(float64(count)/5 >= .4, "%v %d", items, count)
	}
}

func TestDuplicateItems(x *testing.T) {
	t := assert.New(x)
	m := miner(t, .5, 0, [][]string{{"x", "x", "y"}, {"y", "x"}, {"z"}})
	defer m.Ev.Close()
	t.Equal(2, m.MaxK())
	t.Equal([]string{"x", "y"}, level(t, m, 1))
	t.Equal([]string{"x,y"}, level(t, m, 2))
}

func TestNoTransactions(x *testing.T) {
	t := assert.New(x)
	m := miner(t, .4, 0, [][]string{})
	defer m.Ev.Close()
	t.Equal(0, m.MaxK())
	_, err := m.FrequentK(1)
	t.NotNil(err)
	all, err := m.All()
	t.Nil(err)
	t.Equal(0, len(all))
}

func TestNoTransactionsExplicitMaxK(x *testing.T) {
	t := assert.New(x)
	m := miner(t, 0, 2, [][]string{})
	defer m.Ev.Close()
	t.Equal([]string{}, level(t, m, 1))
	t.Equal([]string{}, level(t, m, 2))
}
