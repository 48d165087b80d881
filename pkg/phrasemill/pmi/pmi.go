package pmi

import "math"

// Calculator scores n-gram association strength from raw corpus
// frequencies.
type Calculator struct {
	epsilon float64 // denominator smoothing constant
}

// NewCalculator creates a PMI calculator with the given epsilon.
func NewCalculator(epsilon float64) *Calculator {
	if epsilon <= 0 {
		epsilon = 1.0
	}
	return &Calculator{epsilon: epsilon}
}

// Pairwise calculates a PMI-like association score for a word pair
//
//	score = log2((freq * N) / (f1 * f2 + ε))
//
// Where:
//   - freq = occurrence count of the pair (or of the gram containing it)
//   - f1, f2 = unigram frequencies of the two words
//   - N = total token count across the corpus
//   - ε = smoothing constant (default 1.0)
//
// This is a proxy for co-occurrence above chance, not a probability:
// positive means the words appear together more often than independence
// would predict.
func (c *Calculator) Pairwise(freq, f1, f2, total int64) float64 {
	if total == 0 || freq == 0 {
		return 0
	}

	denominator := float64(f1)*float64(f2) + c.epsilon
	if denominator == 0 {
		return 0
	}

	return math.Log2(float64(freq) * float64(total) / denominator)
}

// Gram scores an n-gram of arbitrary length. For two words it is Pairwise;
// for longer grams the pairwise score of every adjacent word pair is
// averaged, using the gram's own frequency for each pair.
func (c *Calculator) Gram(freq int64, wordFreqs []int64, total int64) float64 {
	if len(wordFreqs) < 2 {
		return 0
	}
	if len(wordFreqs) == 2 {
		return c.Pairwise(freq, wordFreqs[0], wordFreqs[1], total)
	}

	sum := 0.0
	pairs := 0
	for i := 0; i+1 < len(wordFreqs); i++ {
		sum += c.Pairwise(freq, wordFreqs[i], wordFreqs[i+1], total)
		pairs++
	}
	return sum / float64(pairs)
}
