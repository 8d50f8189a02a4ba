package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/wordcheck/src/lib/checker"
	"gitlab.com/pnathan/wordcheck/src/lib/log"
	"gitlab.com/pnathan/wordcheck/src/lib/words"
)

func Moan(complaint error) {
	log.Fatal("", zap.Error(complaint))
	os.Exit(1)
}

func main() {
	parser := argparse.NewParser("spellcheck",
		"checks the words of an input file against a dictionary file and reports the words not found")

	input := parser.StringPositional(&argparse.Options{
		Help: "file that you intend to compare against the dictionary"})
	dictionary := parser.StringPositional(&argparse.Options{
		Help: "file that you intend to use as the dictionary, one word per line"})
	output := parser.String("o", "output",
		&argparse.Options{Required: false, Help: "file to write incorrect words to; stdout if absent"})
	keepCase := parser.Flag("", "keep-case",
		&argparse.Options{Required: false, Help: "compare words case-sensitively"})
	keepDigits := parser.Flag("", "keep-digits",
		&argparse.Options{Required: false, Help: "do not discard words opening with a digit"})

	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}

	if *input == "" || *dictionary == "" {
		fmt.Print(parser.Usage(fmt.Errorf("an input file and a dictionary file are both required")))
		os.Exit(1)
	}

	policy := words.DefaultPolicy()
	if *keepCase {
		policy.FoldCase = false
	}
	if *keepDigits {
		policy.DropDigits = false
	}

	dictionaryWords, err := policy.ReadDictionary(*dictionary)
	if err != nil {
		if errors.Is(err, words.ErrMalformed) {
			fmt.Fprintf(os.Stderr, "%v: please format your dictionary one word per line\n", err)
			os.Exit(1)
		}
		Moan(err)
	}

	inputWords, err := policy.ReadWords(*input)
	if err != nil {
		Moan(err)
	}

	buildStart := time.Now()
	c := checker.Build(dictionaryWords)
	log.Info("dictionary built",
		zap.Int("words", c.Size()),
		zap.Duration("took", time.Since(buildStart)))

	checkStart := time.Now()
	incorrect := c.Check(inputWords)
	log.Info("spellcheck done",
		zap.Int("checked", len(inputWords)),
		zap.Int("incorrect", len(incorrect)),
		zap.Duration("took", time.Since(checkStart)))

	sink := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			Moan(err)
		}
		defer f.Close()
		sink = f
	}

	w := bufio.NewWriter(sink)
	for _, word := range incorrect {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		Moan(err)
	}
	log.Sync()
}
