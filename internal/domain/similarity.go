package domain

import "sort"

// SimilarityRatio computes the Ratcliff/Obershelp similarity of two
// strings: twice the number of matched characters over the total length,
// where matches are found by recursing around the longest common block.
// The result is in [0, 1]; 1 means identical.
func SimilarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	matched := matchingBlocks(a, b)
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

// matchingBlocks returns the total length of matched blocks between a and b.
func matchingBlocks(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlocks(a[:ai], b[:bi])
	total += matchingBlocks(a[ai+size:], b[bi+size:])
	return total
}

// longestMatch finds the longest common substring of a and b, preferring
// the earliest occurrence in a, then in b.
func longestMatch(a, b string) (ai, bi, size int) {
	// lengths[j] holds the match length ending at b[j-1] for the previous
	// row of the dynamic program.
	lengths := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		prev := 0
		for j := 0; j < len(b); j++ {
			cur := lengths[j+1]
			if a[i] == b[j] {
				lengths[j+1] = prev + 1
				if lengths[j+1] > size {
					size = lengths[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				lengths[j+1] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}

// CloseMatch is one candidate returned by ClosestMatches.
type CloseMatch struct {
	Value string
	Ratio float64
}

// ClosestMatches returns up to n candidates whose similarity to target is
// at least cutoff, ordered by similarity descending. Equal ratios break
// ties by ascending candidate value.
func ClosestMatches(target string, candidates []string, n int, cutoff float64) []CloseMatch {
	var out []CloseMatch
	for _, cand := range candidates {
		if ratio := SimilarityRatio(target, cand); ratio >= cutoff {
			out = append(out, CloseMatch{Value: cand, Ratio: ratio})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ratio != out[j].Ratio {
			return out[i].Ratio > out[j].Ratio
		}
		return out[i].Value < out[j].Value
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
