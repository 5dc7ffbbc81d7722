package cmd

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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

import (
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/loader"
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/reporters"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"version":  2,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"baddir":   6,
	"badfile":  7,
}

var UsageMessage string
var ExtendedMessage string

// Usage prints the usage message and exits. A zero code also prints the
// extended help to stdout.
func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

// fail reports a bad command line value and exits with the named code.
func fail(code string, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	Usage(ErrorCodes[code])
}

// Input opens the transactions at inputPath for a loader. It panics when
// the path cannot be read: the path was checked by AssertInput already.
func Input(inputPath string) (reader io.Reader, closeall func()) {
	reader, closeall, err := OpenInput(inputPath)
	if err != nil {
		panic(err)
	}
	return reader, closeall
}

// OpenInput opens a file, or every regular file of a directory in name
// order as one stream. Files ending in .gz, .zst or .lz4 are decompressed
// on the fly.
func OpenInput(inputPath string) (reader io.Reader, closeall func(), err error) {
	stat, err := os.Stat(inputPath)
	if err != nil {
		return nil, nil, err
	}
	paths := []string{inputPath}
	if stat.IsDir() {
		entries, err := os.ReadDir(inputPath)
		if err != nil {
			return nil, nil, err
		}
		paths = paths[:0]
		for _, entry := range entries {
			if !entry.IsDir() {
				paths = append(paths, filepath.Join(inputPath, entry.Name()))
			}
		}
	}
	readers := make([]io.Reader, 0, len(paths))
	closers := make([]func(), 0, len(paths))
	closeall = func() {
		for _, closer := range closers {
			closer()
		}
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeall()
			return nil, nil, err
		}
		r, closer, err := Decompress(p, f)
		if err != nil {
			f.Close()
			closeall()
			return nil, nil, errors.Errorf("could not read %v: %v", p, err)
		}
		readers = append(readers, r)
		closers = append(closers, func() {
			closer()
			f.Close()
		})
	}
	return io.MultiReader(readers...), closeall, nil
}

func Decompress(name string, in io.Reader) (reader io.Reader, closer func(), err error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		greader, err := gzip.NewReader(in)
		if err != nil {
			return nil, nil, err
		}
		return greader, func() { greader.Close() }, nil
	case strings.HasSuffix(name, ".zst"):
		zreader, err := zstd.NewReader(in)
		if err != nil {
			return nil, nil, err
		}
		return zreader, zreader.Close, nil
	case strings.HasSuffix(name, ".lz4"):
		return lz4.NewReader(in), func() {}, nil
	}
	return in, func() {}, nil
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fail("badint", "Error parsing '%v' expected an int", str)
	}
	return i
}

// ParseFraction parses a float which must lie in [0, 1].
func ParseFraction(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fail("badfloat", "Error parsing '%v' expected a float", str)
	} else if f < 0 || f > 1 {
		fail("badfloat", "Expected a value between 0 and 1, got %v", f)
	}
	return f
}

// ResetDir makes dir an empty directory, removing whatever was there.
func ResetDir(dir string) (string, error) {
	dir = filepath.Clean(dir)
	if err := os.RemoveAll(dir); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0775); err != nil {
		return "", err
	}
	return dir, nil
}

func EmptyDir(dir string) string {
	dir, err := ResetDir(dir)
	if err != nil {
		fail("baddir", "Could not make an empty directory at %v: %v", dir, err)
	}
	return dir
}

// AssertInput exits unless fname exists.
func AssertInput(fname string) string {
	fname = filepath.Clean(fname)
	if _, err := os.Stat(fname); os.IsNotExist(err) {
		fail("badfile", "File '%s' does not exist!", fname)
	} else if err != nil {
		fail("badfile", "%v", err)
	}
	return fname
}

// AssertFile exits if fname exists and is a directory.
func AssertFile(fname string) string {
	fname = filepath.Clean(fname)
	if fi, err := os.Stat(fname); os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fail("badfile", "%v", err)
	} else if fi.IsDir() {
		fail("badfile", "Passed in file was a directory, %s", fname)
	}
	return fname
}

type Loader func([]string, *config.Config) (lattice.Loader, []string)

// NoOpts parses the options of a command which only takes -h.
func NoOpts(name string, argv []string) []string {
	args, optargs, err := getopt.GetOpt(argv, "h", []string{"help"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v' for %v\n", oa.Opt(), name)
			Usage(ErrorCodes["opts"])
		}
	}
	return args
}

func jsonLoader(argv []string, conf *config.Config) (lattice.Loader, []string) {
	return loader.NewJsonLoader(), NoOpts("json", argv)
}

func ibmLoader(argv []string, conf *config.Config) (lattice.Loader, []string) {
	return loader.NewIBMLoader(), NoOpts("ibm", argv)
}

func linesLoader(argv []string, conf *config.Config) (lattice.Loader, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hs", []string{"help", "skip-blank"},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	skipBlank := false
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-s", "--skip-blank":
			skipBlank = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return loader.NewLinesLoader(skipBlank), args
}

type Reporter func(map[string]Reporter, []string, lattice.Formatter, *config.Config) (miners.Reporter, []string)

func logReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(fmtr, level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hi:r:",
		[]string{
			"help",
			"itemsets=",
			"rules=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	itemsets := "itemsets"
	rules := "rules"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-i", "--itemsets":
			itemsets = oa.Arg()
		case "-r", "--rules":
			rules = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(conf, fmtr, itemsets, rules)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return fr, args
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "count"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	r, err := reporters.NewCount(conf, filename)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		os.Exit(1)
	}
	return r, args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args := NoOpts("chain", argv)
	rptrs := make([]miners.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		if _, has := reports[args[0]]; !has {
			errors.Logf("ERROR", "Unknown reporter '%v'\n", args[0])
			listReporters(reports)
			Usage(ErrorCodes["opts"])
		}
		var rptr miners.Reporter
		rptr, args = reports[args[0]](reports, args[1:], fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

// inner builds the reporter a wrapping reporter (unique, max, skip) passes
// its output on to.
func inner(name string, reports map[string]Reporter, args []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "You must supply an inner reporter to %v\n", name)
		fmt.Fprintf(os.Stderr, "try: %v file\n", name)
		Usage(ErrorCodes["opts"])
	} else if _, has := reports[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", args[0])
		listReporters(reports)
		Usage(ErrorCodes["opts"])
	}
	return reports[args[0]](reports, args[1:], fmtr, conf)
}

func uniqueReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	rptr, args := inner("unique", reports, NoOpts("unique", argv), fmtr, conf)
	uniq, err := reporters.NewUnique(fmtr, rptr)
	if err != nil {
		errors.Logf("ERROR", "Error creating unique reporter '%v'\n", err)
		Usage(ErrorCodes["opts"])
	}
	return uniq, args
}

func maxReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	rptr, args := inner("max", reports, NoOpts("max", argv), fmtr, conf)
	m, err := reporters.NewMax(rptr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating max reporter '%v'\n", err)
		Usage(ErrorCodes["opts"])
	}
	return m, args
}

func skipReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"every=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	every := 1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--every":
			every = ParseInt(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if every <= 0 {
		fmt.Fprintf(os.Stderr, "skip --every must be > 0\n")
		Usage(ErrorCodes["opts"])
	}
	rptr, args := inner("skip", reports, args, fmtr, conf)
	return reporters.NewSkip(every, rptr), args
}

func listReporters(reports map[string]Reporter) {
	fmt.Fprintln(os.Stderr, "Reporters:")
	for k := range reports {
		fmt.Fprintln(os.Stderr, "  ", k)
	}
}

var Loaders map[string]Loader = map[string]Loader{
	"json":  jsonLoader,
	"lines": linesLoader,
	"ibm":   ibmLoader,
}

var Reporters map[string]Reporter = map[string]Reporter{
	"log":    logReporter,
	"file":   fileReporter,
	"count":  countReporter,
	"chain":  chainReporter,
	"unique": uniqueReporter,
	"max":    maxReporter,
	"skip":   skipReporter,
}

// Run mines the loaded transactions, sending what it finds to the reporter.
type Run func(transactions [][]string, rptr miners.Reporter) error

type Mode func(argv []string, conf *config.Config) (Run, []string)

func Main(args []string, conf *config.Config, modes map[string]Mode) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a loader and a mode\n")
		Usage(ErrorCodes["opts"])
	} else if _, has := Loaders[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown loader '%v'\n", args[0])
		fmt.Fprintln(os.Stderr, "Loaders:")
		for k := range Loaders {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}
	ldr, args := Loaders[args[0]](args[1:], conf)

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly an input path\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		Usage(ErrorCodes["opts"])
	}
	inputPath := AssertInput(args[0])
	args = args[1:]

	getInput := func() (io.Reader, func()) {
		return Input(inputPath)
	}

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a mode\n")
		Usage(ErrorCodes["opts"])
	} else if _, has := modes[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown mining mode '%v'\n", args[0])
		fmt.Fprintln(os.Stderr, "Modes:")
		for k := range modes {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}
	run, args := modes[args[0]](args[1:], conf)

	var fmtr lattice.Formatter = reporters.Formatter{}
	var rptr miners.Reporter
	if len(args) == 0 {
		rptr, _ = Reporters["chain"](Reporters, []string{"log", "file"}, fmtr, conf)
	} else if _, has := Reporters[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", args[0])
		listReporters(Reporters)
		Usage(ErrorCodes["opts"])
	} else {
		rptr, args = Reporters[args[0]](Reporters, args[1:], fmtr, conf)
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unconsumed commandline options: '%v'\n", strings.Join(args, " "))
		Usage(ErrorCodes["opts"])
	}

	errors.Logf("INFO", "Got configuration about to load dataset")
	txs, err := ldr.Load(getInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if conf.Sample > 0 {
		txs = loader.Sample(txs, conf.Sample)
		errors.Logf("INFO", "sampled %d transactions", len(txs))
	}

	errors.Logf("INFO", "loaded %d transactions, about to start mining", len(txs))
	mineErr := run(txs, rptr)

	code := 0
	if e := rptr.Close(); e != nil {
		errors.Logf("ERROR", "error closing %v", e)
		code++
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		code++
	} else {
		errors.Logf("INFO", "Done!")
	}
	return code
}
