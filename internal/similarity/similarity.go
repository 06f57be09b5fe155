// Package similarity scores how alike two OCR text dumps are.
//
// The score drives the idle heuristic: a near-identical screen under an
// unchanged window means the user is not interacting. The ratio is the
// classic Ratcliff/Obershelp measure, 2*M/(len(a)+len(b)) where M is the
// total length of the longest matching blocks, computed over runes so CJK
// text is weighted the same as ASCII.
package similarity

// maxCompareRunes bounds the comparison cost on large OCR dumps; only the
// leading runes of each side are considered.
const maxCompareRunes = 2000

// Ratio returns a similarity score in [0,1]. Empty input on either side
// scores 0.
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	ra := truncateRunes(a, maxCompareRunes)
	rb := truncateRunes(b, maxCompareRunes)

	matches := matchingTotal(ra, rb)
	return 2 * float64(matches) / float64(len(ra)+len(rb))
}

func truncateRunes(s string, n int) []rune {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return r
}

// matchingTotal sums the lengths of the longest matching blocks between a
// and b, found by recursively splitting around the longest common block
// (Ratcliff/Obershelp).
func matchingTotal(a, b []rune) int {
	// Index rune -> positions in b, rebuilt per call region via offsets
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	type region struct{ alo, ahi, blo, bhi int }
	total := 0
	queue := []region{{0, len(a), 0, len(b)}}

	for len(queue) > 0 {
		reg := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		besti, bestj, bestsize := longestMatch(a, b2j, reg.alo, reg.ahi, reg.blo, reg.bhi)
		if bestsize == 0 {
			continue
		}
		total += bestsize
		queue = append(queue,
			region{reg.alo, besti, reg.blo, bestj},
			region{besti + bestsize, reg.ahi, bestj + bestsize, reg.bhi},
		)
	}
	return total
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] inside the given
// window, preferring the earliest block on ties (as difflib does).
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] = length of longest match ending at a[i-1], b[j-1]
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
