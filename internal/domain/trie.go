package domain

import (
	"sort"
	"strings"
)

// Trie is a prefix tree mapping string keys to ordered contact lists.
// Repeated inserts under the same key accumulate; nothing is ever replaced
// or deduplicated. Prefix scans yield keys in lexicographic order.
type Trie struct {
	root *trieNode
	size int // number of distinct keys
}

type trieNode struct {
	children map[byte]*trieNode
	contacts []*Contact // non-empty only on terminal nodes
}

// TrieEntry is one (key, contacts) pair returned by a prefix scan.
type TrieEntry struct {
	Key      string
	Contacts []*Contact
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: &trieNode{}}
}

// Insert appends contact to the list stored under key.
func (t *Trie) Insert(key string, contact *Contact) {
	node := t.root
	for i := 0; i < len(key); i++ {
		if node.children == nil {
			node.children = make(map[byte]*trieNode)
		}
		child, ok := node.children[key[i]]
		if !ok {
			child = &trieNode{}
			node.children[key[i]] = child
		}
		node = child
	}
	if len(node.contacts) == 0 {
		t.size++
	}
	node.contacts = append(node.contacts, contact)
}

// Get returns the contact list stored under exactly key.
func (t *Trie) Get(key string) []*Contact {
	node := t.root
	for i := 0; i < len(key); i++ {
		child, ok := node.children[key[i]]
		if !ok {
			return nil
		}
		node = child
	}
	return node.contacts
}

// Len returns the number of distinct keys.
func (t *Trie) Len() int {
	return t.size
}

// SearchPrefix returns every (key, contacts) pair whose key starts with
// prefix, in lexicographic key order. An empty prefix matches every key.
func (t *Trie) SearchPrefix(prefix string) []TrieEntry {
	node := t.root
	for i := 0; i < len(prefix); i++ {
		child, ok := node.children[prefix[i]]
		if !ok {
			return nil
		}
		node = child
	}
	var out []TrieEntry
	collect(node, prefix, &out)
	return out
}

func collect(node *trieNode, key string, out *[]TrieEntry) {
	if len(node.contacts) > 0 {
		*out = append(*out, TrieEntry{Key: key, Contacts: node.contacts})
	}
	if len(node.children) == 0 {
		return
	}
	bytes := make([]byte, 0, len(node.children))
	for b := range node.children {
		bytes = append(bytes, b)
	}
	sort.Slice(bytes, func(i, j int) bool { return bytes[i] < bytes[j] })
	for _, b := range bytes {
		collect(node.children[b], key+string(b), out)
	}
}

// PrefixIndex bundles the three tries the search engine needs: first name
// and last name (keys lowercased) and phone number (keys verbatim).
type PrefixIndex struct {
	firstName *Trie
	lastName  *Trie
	phone     *Trie
}

// NewPrefixIndex creates an empty index.
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{
		firstName: NewTrie(),
		lastName:  NewTrie(),
		phone:     NewTrie(),
	}
}

// InsertContact registers a contact under all three of its keys.
func (x *PrefixIndex) InsertContact(c *Contact) {
	x.InsertFirstName(c.FirstName, c)
	x.InsertLastName(c.LastName, c)
	x.InsertPhone(c.Phone, c)
}

// InsertFirstName registers a contact under a lowercased first-name key.
func (x *PrefixIndex) InsertFirstName(name string, c *Contact) {
	x.firstName.Insert(strings.ToLower(name), c)
}

// InsertLastName registers a contact under a lowercased last-name key.
func (x *PrefixIndex) InsertLastName(name string, c *Contact) {
	x.lastName.Insert(strings.ToLower(name), c)
}

// InsertPhone registers a contact under its normalized number.
func (x *PrefixIndex) InsertPhone(phone string, c *Contact) {
	x.phone.Insert(phone, c)
}

// SearchFirstName returns first-name entries matching prefix.
func (x *PrefixIndex) SearchFirstName(prefix string) []TrieEntry {
	return x.firstName.SearchPrefix(strings.ToLower(prefix))
}

// SearchLastName returns last-name entries matching prefix.
func (x *PrefixIndex) SearchLastName(prefix string) []TrieEntry {
	return x.lastName.SearchPrefix(strings.ToLower(prefix))
}

// SearchPhone returns phone entries matching prefix. The prefix must
// already be normalized.
func (x *PrefixIndex) SearchPhone(prefix string) []TrieEntry {
	return x.phone.SearchPrefix(prefix)
}
