package analyzer

// Static vocabulary tables. These are loaded once and never mutated,
// which keeps every Engine method safe for concurrent callers.

// category pairs a taxonomy name with its associated keywords. The
// table is a slice rather than a map so scoring ties in
// SuggestCategories resolve in the fixed table order.
type category struct {
	Name     string
	Keywords []string
}

// fallbackCategory is used when a caller supplies a category name
// outside the fixed taxonomy.
const fallbackCategory = "other"

var categoryTable = []category{
	{"technology", []string{"tech", "software", "coding", "programming", "computer", "gadget", "app", "review", "tutorial", "unboxing"}},
	{"travel", []string{"travel", "trip", "adventure", "destination", "journey", "explore", "vacation", "tour", "backpacking"}},
	{"lifestyle", []string{"lifestyle", "daily", "routine", "morning", "minimalism", "habits", "organization", "home", "family"}},
	{"food", []string{"food", "recipe", "cooking", "baking", "restaurant", "meal", "kitchen", "foodie", "delicious"}},
	{"fashion", []string{"fashion", "style", "outfit", "clothing", "haul", "trend", "wardrobe", "accessories", "streetwear", "lookbook"}},
	{"fitness", []string{"fitness", "workout", "gym", "exercise", "training", "muscle", "cardio", "yoga", "strength"}},
	{"music", []string{"music", "song", "cover", "instrumental", "concert", "band", "guitar", "piano", "singing", "playlist"}},
	{"art", []string{"art", "drawing", "painting", "sketch", "illustration", "design", "creative", "artist", "craft", "gallery"}},
	{"business", []string{"business", "entrepreneur", "startup", "marketing", "money", "finance", "investing", "career", "productivity"}},
	{"education", []string{"education", "learning", "study", "school", "lecture", "course", "lesson", "teacher", "exam", "knowledge"}},
	{"entertainment", []string{"entertainment", "funny", "comedy", "reaction", "prank", "challenge", "movie", "series", "celebrity", "drama"}},
	{"gaming", []string{"gaming", "gameplay", "game", "gamer", "stream", "esports", "walkthrough", "console", "multiplayer", "speedrun"}},
	{"sports", []string{"sports", "football", "basketball", "soccer", "tennis", "match", "highlights", "league", "athlete", "championship"}},
	{"health", []string{"health", "wellness", "nutrition", "diet", "mental", "meditation", "sleep", "healing", "therapy", "mindfulness"}},
	{"science", []string{"science", "experiment", "physics", "chemistry", "biology", "space", "research", "discovery", "theory", "lab"}},
	{"photography", []string{"photography", "photo", "camera", "lens", "portrait", "landscape", "editing", "lightroom", "exposure"}},
	{"diy", []string{"diy", "crafts", "handmade", "woodworking", "build", "project", "repair", "upcycle", "tools", "homemade"}},
	{fallbackCategory, []string{"vlog", "video", "content", "update", "story", "share", "episode", "channel", "community"}},
}

// keywordsFor returns the keyword list for a taxonomy category,
// falling back to the "other" list for unknown names.
func keywordsFor(name string) []string {
	for _, c := range categoryTable {
		if c.Name == name {
			return c.Keywords
		}
	}
	return keywordsFor(fallbackCategory)
}

// CategoryNames returns the fixed taxonomy in table order.
func CategoryNames() []string {
	names := make([]string, len(categoryTable))
	for i, c := range categoryTable {
		names[i] = c.Name
	}
	return names
}

// commonTags is a generic lifestyle/content vocabulary. Frequency
// tokens that overlap one of these entries, and entries appearing
// literally in the text, are eligible tag candidates.
var commonTags = []string{
	"vlog", "travel", "tutorial", "review", "daily", "lifestyle",
	"food", "fitness", "music", "gaming", "fashion", "tech", "diy",
	"art", "beauty", "comedy", "nature", "family", "workout",
	"recipe", "adventure", "photography", "unboxing", "haul",
	"challenge", "reaction", "motivation", "wellness", "study",
	"behind the scenes",
}

// stopwords are excluded from frequency analysis and phrase windows.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can",
		"her", "was", "one", "our", "out", "day", "get", "has", "him",
		"his", "how", "man", "new", "now", "old", "see", "two", "way",
		"who", "its", "did", "why", "let", "she", "too", "use", "that",
		"this", "with", "have", "from", "they", "been", "will", "what",
		"when", "where", "which", "your", "their", "there", "then",
		"them", "these", "than", "were", "would", "could", "should",
		"about", "after", "again", "also", "any", "because", "before",
		"being", "between", "both", "each", "few", "had", "here",
		"into", "just", "like", "more", "most", "only", "other",
		"over", "same", "some", "such", "very", "while", "does",
		"doing", "down", "during", "even", "every", "himself",
		"herself", "itself", "myself", "off", "once", "onto", "ours",
		"own", "says", "since", "still", "those", "through", "under",
		"until", "upon", "via", "want", "well", "went", "yes", "yet",
		"don", "didn", "isn", "aren", "won", "wasn", "couldn",
	} {
		stopwords[w] = struct{}{}
	}
}
