package synthesis

import "encoding/json"

// OutputSimilarity scores how closely got reproduces want, as a ratio in
// [0, 1]. Both values are rendered to canonical JSON (object keys sorted by
// encoding/json) and compared with the Ratcliff/Obershelp algorithm, so a
// result that differs in one field still scores high instead of zero.
func OutputSimilarity(want, got any) float64 {
	a := canonicalJSON(want)
	b := canonicalJSON(got)
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	m := matchedChars(a, b)
	return float64(2*m) / float64(len(a)+len(b))
}

func canonicalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// matchedChars sums the lengths of recursively matched common substrings.
func matchedChars(a, b string) int {
	type span struct {
		a, b string
	}
	total := 0
	stack := []span{{a, b}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.a == "" || s.b == "" {
			continue
		}
		ai, bi, n := longestCommonSubstring(s.a, s.b)
		if n == 0 {
			continue
		}
		total += n
		stack = append(stack,
			span{s.a[:ai], s.b[:bi]},
			span{s.a[ai+n:], s.b[bi+n:]},
		)
	}
	return total
}

func longestCommonSubstring(a, b string) (ai, bi, n int) {
	// One row of the classic DP table at a time.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > n {
					n = cur[j]
					ai = i - n
					bi = j - n
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, n
}
