// Package scorer rates how well a rewritten resume matches a job description.
package scorer

import (
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TFIDF scores two texts by the cosine similarity of their TF-IDF vectors,
// fitted on just those two documents. English stop words are ignored, idf is
// smoothed as ln((1+n)/(1+df))+1 and each vector is L2-normalised.
type TFIDF struct{}

func NewTFIDF() *TFIDF { return &TFIDF{} }

// Score returns the similarity as a percentage in [0, 100], rounded to two
// decimals. Texts with no usable terms score 0.
func (TFIDF) Score(candidate, reference string) float64 {
	docs := [2]map[string]float64{termCounts(candidate), termCounts(reference)}

	df := make(map[string]int)
	for _, d := range docs {
		for term := range d {
			df[term]++
		}
	}
	if len(df) == 0 {
		return 0
	}

	const n = float64(len(docs))
	for _, d := range docs {
		for term, tf := range d {
			d[term] = tf * (math.Log((1+n)/(1+float64(df[term]))) + 1)
		}
		normalize(d)
	}

	var dot float64
	for term, w := range docs[0] {
		dot += w * docs[1][term]
	}

	score := math.Round(dot*100*100) / 100
	return math.Max(0, math.Min(100, score))
}

func termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}
	return counts
}

func normalize(v map[string]float64) {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term, w := range v {
		v[term] = w / norm
	}
}
