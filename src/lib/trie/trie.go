package trie

// node is one position in the character-path space. Each node owns its
// children outright; there are no back pointers and no deletion.
type node struct {
	children map[byte]*node
	// end is set when some inserted word terminates exactly here. A node
	// reached on a path that merely prefixes longer words keeps end false.
	end bool
}

func newNode() *node {
	return &node{children: map[byte]*node{}}
}

type Trie struct {
	root  *node
	words int
}

func New(ss []string) *Trie {
	result := &Trie{root: newNode()}
	for _, s := range ss {
		result.Put(s)
	}
	return result
}

// Put installs s. Re-putting an existing word changes nothing.
func (t *Trie) Put(s string) {
	if insert(t.root, []byte(s)) {
		t.words++
	}
}

// Exist reports whether s was put in as a complete word. A strict prefix
// of an installed word does not Exist on its own. The empty string exists
// only if it was explicitly Put.
func (t *Trie) Exist(s string) bool {
	return exists(t.root, []byte(s))
}

// Size is the count of distinct words held.
func (t *Trie) Size() int {
	return t.words
}

func insert(n *node, s []byte) bool {
	temp := n
	for _, c := range s {
		val, ok := temp.children[c]
		if !ok {
			val = newNode()
			temp.children[c] = val
		}
		temp = val
	}
	fresh := !temp.end
	temp.end = true
	return fresh
}

func exists(n *node, s []byte) bool {
	temp := n
	for _, c := range s {
		val, ok := temp.children[c]
		if !ok {
			return false
		}
		temp = val
	}
	return temp.end
}
