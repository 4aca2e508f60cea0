package analyzer

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// stripMarkup removes HTML tags from a description. Vlog descriptions
// arrive from the web layer and may carry markup; analysis only cares
// about the visible text. On parse failure the raw input is returned.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}

// normalizeText lowercases the input, replaces every non-alphanumeric
// rune with a space and collapses repeated whitespace.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// contentTokens filters word tokens down to the ones worth counting:
// longer than two runes and not a stopword. With dropNumeric set,
// tokens made up entirely of digits are discarded as well.
func contentTokens(words []string, dropNumeric bool) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) <= 2 {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		if dropNumeric && isAllDigits(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// topByFrequency ranks distinct words by descending count. Ties keep
// first-occurrence order: the candidate slice is built in encounter
// order and the sort is stable, so equal counts never reorder.
func topByFrequency(words []string, limit int) []string {
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// overlapsAny reports whether s contains, or is contained by, any of
// the candidate strings.
func overlapsAny(s string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(s, c) || strings.Contains(c, s) {
			return true
		}
	}
	return false
}
