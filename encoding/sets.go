package encoding

import (
	"encoding/binary"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/assoc/lattice"
)

// Sets maps canonical (sorted) code lists to single integer keys. The key
// of a list is found through its serialized bytes so two different lists
// can never share a key.
type Sets struct {
	keys *hashtable.LinearHash // types.ByteSlice -> int32
	sets [][]int32
}

func NewSets() *Sets {
	return &Sets{
		keys: hashtable.NewLinearHash(),
		sets: make([][]int32, 0, 100),
	}
}

func (s *Sets) Len() int {
	return len(s.sets)
}

// Encode expects items in canonical order. It does not sort them: the
// caller decides what canonical means.
func (s *Sets) Encode(items []int32) int32 {
	label := types.ByteSlice(Serialize(items))
	if key, err := s.keys.Get(label); err == nil {
		return key.(int32)
	}
	key := int32(len(s.sets))
	s.sets = append(s.sets, copyInt32s(items))
	s.keys.Put(label, key)
	return key
}

func (s *Sets) Lookup(items []int32) (int32, bool) {
	key, err := s.keys.Get(types.ByteSlice(Serialize(items)))
	if err != nil {
		return -1, false
	}
	return key.(int32), true
}

func (s *Sets) Decode(key int32) ([]int32, error) {
	if key < 0 || int(key) >= len(s.sets) {
		return nil, &lattice.UnknownCode{Table: "itemset", Code: key}
	}
	return copyInt32s(s.sets[key]), nil
}

func Serialize(list []int32) []byte {
	bytes := make([]byte, 4*(1+len(list)))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(list)))
	s := 4
	e := s + 4
	for _, i := range list {
		binary.BigEndian.PutUint32(bytes[s:e], uint32(i))
		s += 4
		e = s + 4
	}
	return bytes
}

func Deserialize(bytes []byte) []int32 {
	lenList := int(binary.BigEndian.Uint32(bytes[0:4]))
	list := make([]int32, 0, lenList)
	s := 4
	e := s + 4
	for x := 0; x < lenList; x++ {
		list = append(list, int32(binary.BigEndian.Uint32(bytes[s:e])))
		s += 4
		e = s + 4
	}
	return list
}

func copyInt32s(list []int32) []int32 {
	c := make([]int32, len(list))
	copy(c, list)
	return c
}
