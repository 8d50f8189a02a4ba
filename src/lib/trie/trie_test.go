package trie

import (
	"testing"
)

func TestTrie(t *testing.T) {
	type args struct {
		n *node
		s string
	}
	tests := []struct {
		name string
		args args
	}{
		{
			name: "one",
			args: args{
				newNode(),
				"x",
			},
		},
		{
			name: "two",
			args: args{
				newNode(),
				"xo",
			},
		},
		{
			name: "three",
			args: args{
				newNode(),
				"xox",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if exists(tt.args.n, []byte(tt.args.s)) {
				t.Fatal("found inappropriately")
			}
			insert(tt.args.n, []byte(tt.args.s))
			if !exists(tt.args.n, []byte(tt.args.s)) {
				t.Fatal("could not find")
			}

			insert(tt.args.n, []byte(tt.args.s))
			if !exists(tt.args.n, []byte(tt.args.s)) {
				t.Fatal("could not find")
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "misc",
			args: []string{"XoXoXo", "XUXoXo"},
		},
		{
			name: "misc more",
			args: []string{"XoXoX1", "XoXoX2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.args)
			for _, e := range tt.args {
				if !got.Exist(e) {
					t.Errorf("%v: %v", e, got)
				}
			}
		})
	}
}

func TestExactCases(t *testing.T) {
	trie := New([]string{
		"XoXoX",
		"XoXoX1",
		"XoXoX2",
		"YoXoX",
	})
	if trie.Exist("") {
		t.Errorf("found empty string")
	}

	if trie.Exist("o") {
		t.Error("character wrongly installed")
	}

	if trie.Exist("XoXoX2-AND") {
		t.Error("too long string detected")
	}

	// interior prefixes are not words in their own right.
	prefixes := []string{
		"X",
		"Y",
		"Xo",
		"Yo",
		"XoXo",
		"YoXo",
	}
	for _, s := range prefixes {
		if trie.Exist(s) {
			t.Errorf("prefix %q wrongly counted as a word", s)
		}
	}

	words := []string{
		"XoXoX",
		"XoXoX1",
		"XoXoX2",
		"YoXoX",
	}
	for _, s := range words {
		if !trie.Exist(s) {
			t.Errorf("word %q not installed", s)
		}
	}
}

func TestPrefixWords(t *testing.T) {
	trie := New([]string{"cat", "cats"})
	if trie.Exist("ca") {
		t.Error("ca is not a word")
	}
	if !trie.Exist("cat") {
		t.Error("cat should exist")
	}
	if !trie.Exist("cats") {
		t.Error("cats should exist")
	}
	if trie.Exist("catsup") {
		t.Error("catsup was never installed")
	}
}

func TestIdempotentPut(t *testing.T) {
	trie := New([]string{})
	for i := 0; i < 3; i++ {
		trie.Put("echo")
	}
	if !trie.Exist("echo") {
		t.Error("could not find")
	}
	if trie.Exist("ech") {
		t.Error("prefix leaked in")
	}
	if trie.Size() != 1 {
		t.Errorf("size = %d, want 1", trie.Size())
	}
}

func TestOrderIndependence(t *testing.T) {
	a := New([]string{"ant", "bee", "beet", "be"})
	b := New([]string{"be", "beet", "bee", "ant"})
	checks := []string{"", "a", "an", "ant", "b", "be", "bee", "beet", "beets", "z"}
	for _, s := range checks {
		if a.Exist(s) != b.Exist(s) {
			t.Errorf("order dependence on %q", s)
		}
	}
}

func TestEmptyString(t *testing.T) {
	trie := New(nil)
	if trie.Exist("") {
		t.Error("empty string exists in empty trie")
	}
	trie.Put("")
	if !trie.Exist("") {
		t.Error("empty string was put but does not exist")
	}
	if trie.Exist("a") {
		t.Error("phantom word")
	}
}
