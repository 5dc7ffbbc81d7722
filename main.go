package main

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
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/assoc/cmd"
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/mine"
	"github.com/timtadh/assoc/miners"
)

func init() {
	cmd.UsageMessage = "assoc --help"
	cmd.ExtendedMessage = `
assoc - frequent itemsets and association rules

$ assoc -o <path> [Global Options] \
    <loader> [Loader Options] <input-path> \
    <mode> [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [<loader> [Loader Options]] then
      <input-path> then [<mode> [Mode Options]]. Changes in ordering are not
      supported.

Note: The <input-path> may be a regular file, a directory of files or a
      compressed file. Compressed files must end in '.gz', '.zst' or '.lz4'.

Note: If you don't supply a reporter by default it will use 'chain log file'.


Global Options
    -h, --help                view this message
    --loaders                 show the available loaders
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --ouput=<path>        path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional). the support
                              counts are kept in a b+tree file here instead
                              of in memory.
                              NB: will overwrite contents of dir
    -s, --support=<float>     minimum support, a fraction of the transactions
                              (default .1)
    --confidence=<float>      minimum confidence of a rule (default .1)
    -k, --max-k=<int>         largest itemset to look for (default: the size
                              of the longest transaction)
    --index                   count support with a bitmap inverted index
                              instead of scanning the transactions
    -p, --parallelism=<int>   how many algorithms compare may run at once
                              (default 1, -1 for one per cpu)
    --sample=<int>            mine a uniform random sample of this many
                              transactions instead of all of them
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Loaders
    json                      a json array of transactions, each an array of
                              item labels
    lines                     one transaction per line, items separated by
                              white space
    ibm                       IBM Quest generator output. each line is
                              <tx-id> <customer-id> <item>

    lines Options
        -s, skip-blank        don't treat blank lines as empty transactions

    json Example file:
        [["milk", "bread"], ["bread", "eggs", "jam"]]

    ibm Example file:
        1 1 12
        1 1 55
        2 1 12

Modes
    brute                     enumerate every subset of every transaction
    apriori                   level wise candidate generation and pruning
    fpgrowth                  count subsets of prefix tree paths
    compare                   mine with several algorithms and fail if they
                              disagree

    compare Options
        -a, algorithm=<name>  include this algorithm (may be repeated,
                              default all)

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the itemsets and rules
    file                      write the itemsets and rules to files in the
                              output dir
    count                     write the number of itemsets and rules found
    unique                    takes an "inner reporter" but only passes the
                              unique itemsets and rules to it
    max                       takes an "inner reporter" but only passes the
                              maximal itemsets to it
    skip                      takes an "inner reporter" but only passes every
                              n-th itemset and rule to it

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -i, itemsets=<name>   the prefix of the name of the file in the output
                              directory to write the itemsets
        -r, rules=<name>      the prefix of the name of the file in the output
                              directory to write the rules

    count Options
        -f, filename=<name>   the name of the file in the output directory

    skip Options
        -n, every=<int>       pass on every n-th item

    Examples

        $ assoc -o /tmp/assoc --support=.4 --confidence=.7 \
            json ./data/transactions.json \
            apriori

        $ assoc -o /tmp/assoc --support=.01 --index \
            ibm ./data/IBM.txt.gz \
            fpgrowth \
            chain log max file -i max-itemsets endchain count

        $ assoc -o /tmp/assoc -p -1 --support=.05 \
            lines ./data/retail.dat.zst \
            compare
`
}

func algorithmMode(algorithm string) cmd.Mode {
	return func(argv []string, conf *config.Config) (cmd.Run, []string) {
		args := cmd.NoOpts(algorithm, argv)
		run := func(txs [][]string, rptr miners.Reporter) error {
			e, err := mine.New(conf, txs, algorithm)
			if err != nil {
				return err
			}
			defer e.Close()
			return e.Report(rptr)
		}
		return run, args
	}
}

func compareMode(argv []string, conf *config.Config) (cmd.Run, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"ha:",
		[]string{
			"help",
			"algorithm=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	algorithms := make([]string, 0, len(mine.Algorithms))
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-a", "--algorithm":
			if _, has := mine.Algorithms[oa.Arg()]; !has {
				fmt.Fprintf(os.Stderr, "Unknown algorithm: %v\n", oa.Arg())
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
			algorithms = append(algorithms, oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	run := func(txs [][]string, rptr miners.Reporter) error {
		summaries, err := mine.Compare(context.Background(), conf, txs, algorithms...)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			errors.Logf("INFO", "%v: %d itemsets %d rules", s.Algorithm, len(s.Itemsets), len(s.Rules))
		}
		// every algorithm agreed so any of them can report
		e, err := mine.New(conf, txs, summaries[0].Algorithm)
		if err != nil {
			return err
		}
		defer e.Close()
		return e.Report(rptr)
	}
	return run, args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"compare": compareMode,
	}
	for name := range mine.Algorithms {
		modes[name] = algorithmMode(name)
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:s:k:p:",
		[]string{
			"help",
			"output=", "cache=",
			"modes", "loaders", "reporters",
			"support=",
			"confidence=",
			"max-k=",
			"index",
			"parallelism=",
			"sample=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v %v apriori\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := config.Default()
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			conf.Output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			conf.Cache = cmd.EmptyDir(oa.Arg())
		case "-s", "--support":
			conf.Support = cmd.ParseFraction(oa.Arg())
		case "--confidence":
			conf.Confidence = cmd.ParseFraction(oa.Arg())
		case "-k", "--max-k":
			conf.MaxK = cmd.ParseInt(oa.Arg())
		case "--index":
			conf.Index = true
		case "-p", "--parallelism":
			conf.Parallelism = cmd.ParseInt(oa.Arg())
		case "--sample":
			conf.Sample = cmd.ParseInt(oa.Arg())
		case "--loaders":
			fmt.Fprintln(os.Stderr, "Loaders:")
			for k := range cmd.Loaders {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if conf.Output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if conf.Parallelism < -1 {
		fmt.Fprintf(os.Stderr, "Parallelism must be -1 or >= 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	return cmd.Main(args, conf, modes)
}
