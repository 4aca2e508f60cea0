package analyzer

import (
	"sort"

	"github.com/kljensen/snowball"
)

// polarityLexicon is an AFINN-style word-to-polarity table with values
// in [-5, 5]. It is intentionally small; sentiment here is a coarse
// three-way label, not a calibrated score.
var polarityLexicon = map[string]int{
	// positive
	"amazing": 4, "awesome": 4, "fantastic": 4, "wonderful": 4,
	"outstanding": 5, "superb": 5, "breathtaking": 5,
	"brilliant": 4, "excellent": 3, "incredible": 4, "perfect": 3,
	"great": 3, "love": 3, "loved": 3, "loves": 3, "lovely": 3,
	"beautiful": 3, "best": 3, "delighted": 3, "delightful": 3,
	"happy": 3, "joy": 3, "joyful": 3, "thrilled": 4, "adore": 3,
	"stunning": 4, "spectacular": 4, "magnificent": 4, "glorious": 4,
	"good": 3, "nice": 3, "enjoy": 2, "enjoyed": 2, "enjoyable": 2,
	"fun": 2, "funny": 2, "cool": 1, "like": 2, "liked": 2,
	"likes": 2, "pleasant": 2, "pleased": 2, "glad": 2, "grateful": 3,
	"thankful": 2, "thanks": 2, "win": 2, "winner": 2, "winning": 2,
	"success": 2, "successful": 3, "impressive": 3, "inspiring": 2,
	"inspired": 2, "exciting": 3, "excited": 3, "fabulous": 4,
	"favorite": 2, "fresh": 1, "friendly": 2, "helpful": 2,
	"hope": 2, "hopeful": 2, "interesting": 2, "positive": 2,
	"recommend": 2, "recommended": 2, "satisfying": 2, "satisfied": 2,
	"smooth": 1, "solid": 2, "strong": 2, "super": 3, "sweet": 2,
	"top": 2, "useful": 2, "valuable": 2, "worth": 2, "wow": 4,
	"yay": 3, "easy": 1, "better": 2, "charming": 3, "comfortable": 2,
	"creative": 2, "effective": 2, "elegant": 2, "encouraging": 2,

	// negative
	"terrible": -3, "awful": -3, "horrible": -3, "hate": -3,
	"hated": -3, "hates": -3, "worst": -3, "bad": -3, "worse": -3,
	"disgusting": -3, "dreadful": -3, "atrocious": -4, "appalling": -4,
	"abysmal": -4, "miserable": -3, "pathetic": -3, "useless": -2,
	"ugly": -3, "annoying": -2, "annoyed": -2, "angry": -3,
	"boring": -3, "bored": -2, "broken": -1, "confusing": -2,
	"confused": -2, "cheap": -1, "crappy": -3, "disappointing": -2,
	"disappointed": -2, "disappointment": -2, "dirty": -2,
	"disaster": -2, "dislike": -2, "disliked": -2, "dull": -2,
	"fail": -2, "failed": -2, "failure": -2, "fake": -3, "fear": -2,
	"frustrating": -2, "frustrated": -2, "garbage": -3, "gross": -2,
	"hurt": -2, "hurts": -2, "lame": -2, "lousy": -2, "mess": -2,
	"nasty": -3, "negative": -2, "painful": -2, "poor": -2,
	"problem": -2, "problems": -2, "regret": -2, "sad": -2,
	"scam": -2, "shame": -2, "sick": -2, "slow": -1, "sorry": -1,
	"stupid": -2, "suck": -3, "sucks": -3, "trash": -2, "unhappy": -2,
	"upset": -2, "waste": -1, "wasted": -2, "weak": -2, "wrong": -2,
	"cry": -1, "crying": -2, "damage": -3, "damaged": -3, "dead": -3,
	"difficult": -1, "error": -2, "errors": -2, "evil": -3,
}

// stemmedLexicon indexes the polarity table by Snowball stem so
// inflected forms resolve to a base entry. Keys are inserted in sorted
// order so stem collisions are assigned deterministically.
var stemmedLexicon = buildStemmedLexicon()

func buildStemmedLexicon() map[string]int {
	words := make([]string, 0, len(polarityLexicon))
	for w := range polarityLexicon {
		words = append(words, w)
	}
	sort.Strings(words)

	idx := make(map[string]int, len(words))
	for _, w := range words {
		stem, err := snowball.Stem(w, "english", true)
		if err != nil || stem == "" {
			continue
		}
		if _, ok := idx[stem]; !ok {
			idx[stem] = polarityLexicon[w]
		}
	}
	return idx
}

// polarity resolves a token's polarity: exact lexicon hit first, then
// a lookup of its stemmed form. Unknown words contribute zero.
func polarity(word string) float64 {
	if v, ok := polarityLexicon[word]; ok {
		return float64(v)
	}
	stem, err := snowball.Stem(word, "english", true)
	if err != nil {
		return 0
	}
	if v, ok := stemmedLexicon[stem]; ok {
		return float64(v)
	}
	return 0
}
