package matching

import (
	"github.com/nihei9/smerge/model"
	"github.com/nihei9/smerge/unorderedpair"
)

// Matching is one endpoint's view of a matching entry: the partner node on
// the other tree plus the pair's entry.
type Matching struct {
	MatchingNode   model.CSTNode
	Score          int
	IsPerfectMatch bool
}

type matchingRecord struct {
	left  model.CSTNode
	right model.CSTNode
	entry MatchingEntry
}

// Matchings is a symmetric mapping from node pairs to matching entries. Pairs
// are keyed by the nodes' identities, canonicalized so that lookups do not
// depend on which side is "left". A per-node index makes partner lookup O(1);
// when a node has several positive partners the highest-scoring one wins.
//
// Entries with score zero are never stored: absence of a pair is the zero
// entry.
type Matchings struct {
	entries  map[unorderedpair.UnorderedPair[string]]matchingRecord
	partners map[string]Matching
}

func NewMatchings() *Matchings {
	return &Matchings{
		entries:  map[unorderedpair.UnorderedPair[string]]matchingRecord{},
		partners: map[string]Matching{},
	}
}

// FromSingle builds a Matchings holding one entry.
func FromSingle(left, right model.CSTNode, entry MatchingEntry) *Matchings {
	m := NewMatchings()
	m.Put(left, right, entry)
	return m
}

// Put records an entry for a pair. Score-zero entries are dropped.
func (m *Matchings) Put(left, right model.CSTNode, entry MatchingEntry) {
	if entry.Score == 0 {
		return
	}
	key := unorderedpair.New(left.ID(), right.ID())
	m.entries[key] = matchingRecord{left: left, right: right, entry: entry}
	m.index(left.ID(), right, entry)
	m.index(right.ID(), left, entry)
}

func (m *Matchings) index(id string, partner model.CSTNode, entry MatchingEntry) {
	if existing, ok := m.partners[id]; ok && existing.Score >= entry.Score {
		return
	}
	m.partners[id] = Matching{
		MatchingNode:   partner,
		Score:          entry.Score,
		IsPerfectMatch: entry.IsPerfectMatch,
	}
}

// Extend unions another Matchings into this one.
func (m *Matchings) Extend(other *Matchings) {
	for _, record := range other.entries {
		m.Put(record.left, record.right, record.entry)
	}
}

// EntryFor looks up the entry for a pair; the zero entry is returned when the
// pair was never matched.
func (m *Matchings) EntryFor(left, right model.CSTNode) (MatchingEntry, bool) {
	record, ok := m.entries[unorderedpair.New(left.ID(), right.ID())]
	if !ok {
		return MatchingEntry{}, false
	}
	return record.entry, true
}

// MatchingFor returns the partner recorded for a node on the other tree.
func (m *Matchings) MatchingFor(node model.CSTNode) (Matching, bool) {
	matching, ok := m.partners[node.ID()]
	return matching, ok
}

// HasBidirectionalMatching reports whether both nodes have some partner.
func (m *Matchings) HasBidirectionalMatching(left, right model.CSTNode) bool {
	_, okLeft := m.MatchingFor(left)
	_, okRight := m.MatchingFor(right)
	return okLeft && okRight
}

// Len is the number of stored pairs.
func (m *Matchings) Len() int {
	return len(m.entries)
}
