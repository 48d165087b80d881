package pmi

// Counts maintains unigram frequencies for PMI calculation.
type Counts struct {
	total int64
	freq  map[string]int64
}

// NewCounts creates an empty unigram frequency table.
func NewCounts() *Counts {
	return &Counts{freq: make(map[string]int64)}
}

// Add updates counts for a tokenized sentence.
func (c *Counts) Add(tokens []string) {
	for _, t := range tokens {
		c.freq[t]++
	}
	c.total += int64(len(tokens))
}

// Freq returns the corpus frequency of a token.
func (c *Counts) Freq(token string) int64 {
	return c.freq[token]
}

// Freqs returns the corpus frequencies of a token sequence.
func (c *Counts) Freqs(tokens []string) []int64 {
	out := make([]int64, len(tokens))
	for i, t := range tokens {
		out[i] = c.freq[t]
	}
	return out
}

// Total returns the total token count across the corpus.
func (c *Counts) Total() int64 {
	return c.total
}

// Unique returns the number of distinct tokens seen.
func (c *Counts) Unique() int {
	return len(c.freq)
}
