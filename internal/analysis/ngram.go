package analysis

import (
	"sort"

	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence locates one instance of a repeated sequence.
type NGramOccurrence struct {
	StartIndex int `json:"start_index"`
	MoveIndex  int `json:"move_index"`
}

// NGramReport contains the results of n-gram mining, keyed by n.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// RollingHash implements a Rabin-Karp rolling hash over move tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Add appends a token while the window is still filling.
func (rh *RollingHash) Add(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
	}
}

// Roll removes the oldest token and adds a new one.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.Add(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Ready returns true once the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// ngramEntry tracks one candidate sequence during mining.
type ngramEntry struct {
	start       int // index of the first occurrence
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent n-grams for each n in
// [minN, maxN]. Only sequences seen at least twice are reported.
func MineNGrams(rows []journal.MoveRow, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	if len(rows) < minN {
		return report
	}

	tokens := make([]uint8, len(rows))
	for i, row := range rows {
		tokens[i] = moveToken(row)
	}

	for n := minN; n <= maxN && n <= len(rows); n++ {
		ngrams := mineNGramsForN(tokens, rows, n, topK)
		if len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

// mineNGramsForN mines n-grams of a specific length.
func mineNGramsForN(tokens []uint8, rows []journal.MoveRow, n, topK int) []NGram {
	if n < 1 || len(tokens) < n {
		return nil
	}

	counts := make(map[uint64]*ngramEntry)
	rh := NewRollingHash(n)

	for i := 0; i < n-1; i++ {
		rh.Add(tokens[i])
	}

	for i := n - 1; i < len(tokens); i++ {
		rh.Roll(tokens[i])
		if !rh.Ready() {
			continue
		}

		hash := rh.Hash()
		startIdx := i - n + 1

		if entry, exists := counts[hash]; exists {
			// Tokens fold rows into bytes, so confirm the rows
			// themselves match before counting a repeat.
			if sameWindow(rows, entry.start, startIdx, n) {
				entry.count++
				if len(entry.occurrences) < maxOccurrences {
					entry.occurrences = append(entry.occurrences, occurrenceAt(rows, startIdx))
				}
			}
		} else {
			counts[hash] = &ngramEntry{
				start:       startIdx,
				count:       1,
				occurrences: []NGramOccurrence{occurrenceAt(rows, startIdx)},
			}
		}
	}

	entries := make([]*ngramEntry, 0, len(counts))
	for _, entry := range counts {
		if entry.count >= 2 {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].start < entries[j].start
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		sequence := make([]string, n)
		for j := range sequence {
			sequence[j] = rows[entry.start+j].Notation
		}

		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}

	return result
}

// maxOccurrences caps how many instance locations each n-gram keeps.
const maxOccurrences = 10

func occurrenceAt(rows []journal.MoveRow, start int) NGramOccurrence {
	return NGramOccurrence{
		StartIndex: start,
		MoveIndex:  rows[start].MoveIndex,
	}
}

// sameWindow reports whether two length-n windows hold the same moves.
func sameWindow(rows []journal.MoveRow, a, b, n int) bool {
	for k := 0; k < n; k++ {
		if !sameMove(rows[a+k], rows[b+k]) {
			return false
		}
	}
	return true
}
