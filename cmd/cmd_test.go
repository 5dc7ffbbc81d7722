package cmd

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

import (
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const data = "milk bread\neggs jam\n"

func compress(t *assert.Assertions, ext string) []byte {
	var buf bytes.Buffer
	var w io.WriteCloser
	switch ext {
	case ".gz":
		w = gzip.NewWriter(&buf)
	case ".zst":
		z, err := zstd.NewWriter(&buf)
		t.Nil(err)
		w = z
	case ".lz4":
		w = lz4.NewWriter(&buf)
	}
	_, err := w.Write([]byte(data))
	t.Nil(err)
	t.Nil(w.Close())
	return buf.Bytes()
}

func TestDecompress(x *testing.T) {
	t := assert.New(x)
	for _, ext := range []string{".gz", ".zst", ".lz4"} {
		r, closer, err := Decompress("transactions"+ext, bytes.NewReader(compress(t, ext)))
		t.Nil(err, ext)
		got, err := ioutil.ReadAll(r)
		t.Nil(err, ext)
		t.Equal(data, string(got), ext)
		closer()
	}
}

func TestDecompressPlain(x *testing.T) {
	t := assert.New(x)
	r, closer, err := Decompress("transactions.txt", bytes.NewReader([]byte(data)))
	t.Nil(err)
	defer closer()
	got, err := ioutil.ReadAll(r)
	t.Nil(err)
	t.Equal(data, string(got))
}

func TestDecompressBadGzip(x *testing.T) {
	t := assert.New(x)
	_, _, err := Decompress("transactions.gz", bytes.NewReader([]byte(data)))
	t.NotNil(err)
}

func TestOpenInputFile(x *testing.T) {
	t := assert.New(x)
	dir := x.TempDir()
	name := filepath.Join(dir, "transactions.zst")
	t.Nil(os.WriteFile(name, compress(t, ".zst"), 0644))
	r, closeall, err := OpenInput(name)
	t.Nil(err)
	defer closeall()
	got, err := ioutil.ReadAll(r)
	t.Nil(err)
	t.Equal(data, string(got))
}

func TestOpenInputDir(x *testing.T) {
	t := assert.New(x)
	dir := x.TempDir()
	t.Nil(os.WriteFile(filepath.Join(dir, "a.gz"), compress(t, ".gz"), 0644))
	t.Nil(os.WriteFile(filepath.Join(dir, "b.txt"), []byte(data), 0644))
	t.Nil(os.Mkdir(filepath.Join(dir, "nested"), 0775))
	r, closeall, err := OpenInput(dir)
	t.Nil(err)
	defer closeall()
	got, err := ioutil.ReadAll(r)
	t.Nil(err)
	t.Equal(data+data, string(got))
}

func TestOpenInputErrors(x *testing.T) {
	t := assert.New(x)
	dir := x.TempDir()
	_, _, err := OpenInput(filepath.Join(dir, "missing"))
	t.NotNil(err)
	bad := filepath.Join(dir, "bad.gz")
	t.Nil(os.WriteFile(bad, []byte(data), 0644))
	_, _, err = OpenInput(bad)
	t.NotNil(err)
}

func TestResetDir(x *testing.T) {
	t := assert.New(x)
	dir := filepath.Join(x.TempDir(), "out")
	t.Nil(os.MkdirAll(filepath.Join(dir, "old"), 0775))
	t.Nil(os.WriteFile(filepath.Join(dir, "old", "f"), []byte(data), 0644))
	got, err := ResetDir(dir + "/")
	t.Nil(err)
	t.Equal(dir, got)
	entries, err := os.ReadDir(dir)
	t.Nil(err)
	t.Empty(entries)
}
