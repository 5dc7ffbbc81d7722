package config

import (
	"math/rand"
	"path/filepath"
	"runtime"
)

import (
	"github.com/timtadh/assoc/stores/counts"
)

const (
	DefaultSupport    = 0.1
	DefaultConfidence = 0.1
)

type Config struct {
	Cache       string
	Output      string
	Support     float64
	Confidence  float64
	MaxK        int
	Index       bool
	Parallelism int
	Sample      int
}

func Default() *Config {
	return &Config{
		Support:    DefaultSupport,
		Confidence: DefaultConfidence,
	}
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:       c.Cache,
		Output:      c.Output,
		Support:     c.Support,
		Confidence:  c.Confidence,
		MaxK:        c.MaxK,
		Index:       c.Index,
		Parallelism: c.Parallelism,
		Sample:      c.Sample,
	}
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism == -1 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

// CountStore makes the store behind a support cache. Without a cache
// directory the store lives in anonymous memory.
func (c *Config) CountStore(name string) (counts.Store, error) {
	if c.Cache == "" {
		return counts.AnonBpTree()
	} else {
		return counts.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
