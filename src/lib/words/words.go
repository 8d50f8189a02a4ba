// Package words turns raw files into the word sequences the checker
// consumes. The trie and checker never see a file; they get finite,
// already-normalized string slices from here.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ErrMalformed reports a dictionary file that is not one word per line.
var ErrMalformed = fmt.Errorf("dictionary file malformed")

// wordRE matches runs of word characters; punctuation and whitespace
// never survive tokenization.
var wordRE = regexp.MustCompile(`\w+`)

var digitRE = regexp.MustCompile(`^\d`)

// Policy is the caller's choice on the normalization questions the core
// deliberately does not answer: case folding, whitespace trimming, and
// what to do with tokens that open with a digit.
type Policy struct {
	FoldCase   bool `yaml:"fold_case"`
	TrimSpace  bool `yaml:"trim_space"`
	DropDigits bool `yaml:"drop_digits"`
}

// DefaultPolicy matches the historical behavior: everything lowercased,
// digit-led tokens discarded.
func DefaultPolicy() Policy {
	return Policy{FoldCase: true, TrimSpace: true, DropDigits: true}
}

// Normalize applies the policy to a single word.
func (p Policy) Normalize(w string) string {
	if p.TrimSpace {
		w = strings.TrimSpace(w)
	}
	if p.FoldCase {
		w = strings.ToLower(w)
	}
	return w
}

// Keep reports whether the policy retains w at all.
func (p Policy) Keep(w string) bool {
	if w == "" {
		return false
	}
	if p.DropDigits && digitRE.MatchString(w) {
		return false
	}
	return true
}

// Tokenize scans the whole of r for words, in order, normalized per the
// policy. Duplicates are preserved: if a word appears three times in the
// content it appears three times in the result.
func (p Policy) Tokenize(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, raw := range wordRE.FindAllString(string(content), -1) {
		w := p.Normalize(raw)
		if !p.Keep(w) {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}

// ReadWords reads the input file into an ordered word sequence.
func (p Policy) ReadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Tokenize(f)
}

// ReadDictionary reads the dictionary file, insisting on one word per
// line. Blank lines and multi-word lines make it ErrMalformed; nothing
// gets handed to a trie from a file that fails this.
func (p Policy) ReadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := []string{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) != 1 {
			return nil, fmt.Errorf("%w: line %d has %d words", ErrMalformed, line, len(fields))
		}
		w := p.Normalize(fields[0])
		if !p.Keep(w) {
			continue
		}
		result = append(result, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
