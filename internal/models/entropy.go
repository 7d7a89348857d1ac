package models

import "math"

// Entropy returns the Shannon entropy, in bits, of a label vector over the
// classes it holds. Pure and empty vectors have entropy 0. Labels outside
// {0,1} count as classes of their own rather than failing.
func Entropy(y []int) float64 {
	counts := map[int]int{}
	for _, v := range y {
		counts[v]++
	}
	h := 0.0
	for _, c := range counts {
		h -= term(c, len(y))
	}
	return h
}

// entropyOf is Entropy over the rows idx of an already validated label vector.
func entropyOf(y []int, idx []int) float64 {
	var counts [2]int
	for _, i := range idx {
		counts[y[i]]++
	}
	return -term(counts[0], len(idx)) - term(counts[1], len(idx))
}

// term is p*log2(p) for p = c/n, and 0 for an absent class.
func term(c, n int) float64 {
	if c == 0 {
		return 0
	}
	p := float64(c) / float64(n)
	return p * math.Log2(p)
}
