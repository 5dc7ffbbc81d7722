package config

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"os"
	"path/filepath"
)

func TestCopy(x *testing.T) {
	t := assert.New(x)
	c := Default()
	c.MaxK = 3
	c.Index = true
	d := c.Copy()
	t.Equal(c, d)
	d.Support = .5
	t.Equal(DefaultSupport, c.Support)
}

func TestWorkers(x *testing.T) {
	t := assert.New(x)
	c := &Config{}
	t.Equal(1, c.Workers())
	c.Parallelism = 4
	t.Equal(4, c.Workers())
	c.Parallelism = -1
	t.True(c.Workers() >= 1)
}

func TestCountStoreInCacheDir(x *testing.T) {
	t := assert.New(x)
	dir, err := os.MkdirTemp("", "assoc-config")
	t.Nil(err)
	defer os.RemoveAll(dir)
	c := &Config{Cache: dir}
	s, err := c.CountStore("support")
	t.Nil(err)
	t.Nil(s.Put(1, 2))
	matches, err := filepath.Glob(filepath.Join(dir, "support-*.bptree"))
	t.Nil(err)
	t.Len(matches, 1)
	t.Nil(s.Delete())
	matches, _ = filepath.Glob(filepath.Join(dir, "support-*.bptree"))
	t.Len(matches, 0)
}
