package counts

import (
	"encoding/binary"
	"sync"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

// Store maps itemset keys to their support counts. Entries are only ever
// added: a count, once stored, is the count for the life of the store.
type Store interface {
	Has(key int32) (bool, error)
	Get(key int32) (count int, has bool, err error)
	Put(key int32, count int) error
	Iterate() (Iterator, error)
	Size() int
	Close() error
	Delete() error
}

type Iterator func() (key int32, count int, err error, _ Iterator)

func Do(run func() (Iterator, error), do func(key int32, count int) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var key int32
	var count int
	for key, count, err, it = it(); it != nil; key, count, err, it = it() {
		e := do(key, count)
		if e != nil {
			return e
		}
	}
	return err
}

type BpTree struct {
	bf    *fmap.BlockFile
	bpt   *bptree.BpTree
	mutex sync.Mutex
}

func AnonBpTree() (*BpTree, error) {
	bf, err := fmap.Anonymous(fmap.BLOCKSIZE)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func NewBpTree(path string) (*BpTree, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func newBpTree(bf *fmap.BlockFile) (*BpTree, error) {
	bpt, err := bptree.New(bf, 4, 4)
	if err != nil {
		return nil, err
	}
	return &BpTree{bf: bf, bpt: bpt}, nil
}

func (b *BpTree) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bf.Close()
}

// Delete closes the store and removes its backing file, if it has one.
func (b *BpTree) Delete() error {
	err := b.Close()
	if err != nil {
		return err
	}
	if b.bf.Path() != "" {
		return b.bf.Remove()
	}
	return nil
}

func (b *BpTree) Size() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Size()
}

func (b *BpTree) Has(key int32) (bool, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Has(serialize(key))
}

func (b *BpTree) Get(key int32) (count int, has bool, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	kvi, err := b.bpt.Find(serialize(key))
	if err != nil {
		return 0, false, err
	}
	_, v, err, kvi := kvi()
	if err != nil {
		return 0, false, err
	}
	if kvi == nil {
		return 0, false, nil
	}
	return int(deserialize(v)), true, nil
}

func (b *BpTree) Put(key int32, count int) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if has, err := b.bpt.Has(serialize(key)); err != nil {
		return err
	} else if has {
		return errors.Errorf("count for itemset %d is already stored", key)
	}
	return b.bpt.Add(serialize(key), serialize(int32(count)))
}

func (b *BpTree) Iterate() (it Iterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	kvi, err := b.bpt.Iterate()
	if err != nil {
		return nil, err
	}
	it = func() (key int32, count int, err error, _ Iterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k, v []byte
		k, v, err, kvi = kvi()
		if err != nil {
			return 0, 0, err, nil
		}
		if kvi == nil {
			return 0, 0, nil, nil
		}
		return deserialize(k), int(deserialize(v)), nil, it
	}
	return it, nil
}

func serialize(i int32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(i))
	return bytes
}

func deserialize(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes))
}
