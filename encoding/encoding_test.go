package encoding

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/assoc/lattice"
)

func TestItemsFirstSeenOrder(x *testing.T) {
	t := assert.New(x)
	e := NewItems()
	t.Equal(int32(0), e.Encode("milk"))
	t.Equal(int32(1), e.Encode("bread"))
	t.Equal(int32(0), e.Encode("milk"))
	t.Equal(int32(2), e.Encode("eggs"))
	t.Equal(3, e.Len())
	label, err := e.Decode(1)
	t.Nil(err)
	t.Equal("bread", label)
}

func TestItemsUnknownCode(x *testing.T) {
	t := assert.New(x)
	e := NewItems()
	e.Encode("a")
	_, err := e.Decode(7)
	t.NotNil(err)
	_, ok := err.(*lattice.UnknownCode)
	t.True(ok, "expected *lattice.UnknownCode got %T", err)
	_, err = e.Decode(-1)
	t.NotNil(err)
}

func TestItemsLookupDoesNotAssign(x *testing.T) {
	t := assert.New(x)
	e := NewItems()
	_, has := e.Lookup("a")
	t.False(has)
	t.Equal(0, e.Len())
	e.Encode("a")
	code, has := e.Lookup("a")
	t.True(has)
	t.Equal(int32(0), code)
}

func TestEncodeLabelsIsOrderIndependent(x *testing.T) {
	t := assert.New(x)
	e := NewItems()
	a := e.EncodeLabels([]string{"c", "a", "b"})
	b := e.EncodeLabels([]string{"b", "c", "a"})
	t.Equal([]int32{0, 1, 2}, a)
	t.Equal(a, b)
}

func TestEncodeLabelsDropsDuplicates(x *testing.T) {
	t := assert.New(x)
	e := NewItems()
	t.Equal([]int32{0, 1}, e.EncodeLabels([]string{"a", "b", "a", "b"}))
}

func TestItemsRoundTrip(x *testing.T) {
	t := assert.New(x)
	e := NewItems()
	txs := [][]string{
		{"a", "b"},
		{"a", "b", "c"},
		{"b", "c"},
		{"d"},
	}
	encoded := e.EncodeTransactions(txs)
	decoded, err := e.DecodeTransactions(encoded)
	t.Nil(err)
	t.Equal(txs, decoded)
	_, err = e.DecodeLabels([]int32{0, 42})
	t.NotNil(err)
}

func TestSetsKeys(x *testing.T) {
	t := assert.New(x)
	s := NewSets()
	ab := s.Encode([]int32{0, 1})
	abc := s.Encode([]int32{0, 1, 2})
	a := s.Encode([]int32{0})
	t.Equal(int32(0), ab)
	t.Equal(int32(1), abc)
	t.Equal(int32(2), a)
	t.Equal(ab, s.Encode([]int32{0, 1}))
	items, err := s.Decode(abc)
	t.Nil(err)
	t.Equal([]int32{0, 1, 2}, items)
	_, err = s.Decode(3)
	t.NotNil(err)
}

func TestSetsNoCollisions(x *testing.T) {
	t := assert.New(x)
	s := NewSets()
	// these would collide under a naive digit concatenation
	k1 := s.Encode([]int32{1, 12})
	k2 := s.Encode([]int32{11, 2})
	k3 := s.Encode([]int32{112})
	t.NotEqual(k1, k2)
	t.NotEqual(k2, k3)
	t.NotEqual(k1, k3)
}

func TestSetsDecodeIsACopy(x *testing.T) {
	t := assert.New(x)
	s := NewSets()
	items := []int32{3, 4}
	key := s.Encode(items)
	items[0] = 9
	got, err := s.Decode(key)
	t.Nil(err)
	t.Equal([]int32{3, 4}, got)
	got[1] = 9
	again, _ := s.Decode(key)
	t.Equal([]int32{3, 4}, again)
}

func TestSerialize(x *testing.T) {
	t := assert.New(x)
	list := []int32{5, 0, 1 << 20}
	t.Equal(list, Deserialize(Serialize(list)))
	t.Equal([]int32{}, Deserialize(Serialize(nil)))
}
