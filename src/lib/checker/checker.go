// Package checker builds a dictionary trie and filters input words
// through it. Build runs fully before any Check; the trie is read-only
// afterwards, so any number of Checks may run concurrently.
package checker

import (
	"golang.org/x/crypto/sha3"
	"golang.org/x/exp/slices"

	"gitlab.com/pnathan/wordcheck/src/lib/trie"
	"gitlab.com/pnathan/wordcheck/src/lib/utility"
)

type Checker struct {
	t *trie.Trie
}

// Build installs every dictionary word. Insertion order is irrelevant to
// the result and duplicates are harmless.
func Build(dictionary []string) *Checker {
	return &Checker{t: trie.New(dictionary)}
}

// Check returns the input words absent from the dictionary, in input
// order. No dedup: a word missing three times is reported three times.
func (c *Checker) Check(input []string) []string {
	incorrect := []string{}
	for _, w := range input {
		if !c.t.Exist(w) {
			incorrect = append(incorrect, w)
		}
	}
	return incorrect
}

// Known reports whether a single word is in the dictionary.
func (c *Checker) Known(w string) bool {
	return c.t.Exist(w)
}

// Size is the count of distinct dictionary words held.
func (c *Checker) Size() int {
	return c.t.Size()
}

// Fingerprint is a 64-byte SHAKE-256 digest of the word multiset's
// distinct members. Words are sorted and length-prefixed first, so any
// permutation of the same dictionary digests identically.
func Fingerprint(dictionary []string) []byte {
	sorted := slices.Clone(dictionary)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	buf := []byte{}
	for _, w := range sorted {
		buf = utility.Concat(buf, utility.UintToBytes(uint64(len(w))), []byte(w))
	}
	h := make([]byte, 64)
	sha3.ShakeSum256(h, buf)
	return h
}
