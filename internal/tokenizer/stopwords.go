package tokenizer

var stopWords = map[string][]string{
	"english":   englishStopWords,
	"porter":    englishStopWords,
	"danish":    danishStopWords,
	"dutch":     dutchStopWords,
	"norwegian": norwegianStopWords,
	"swedish":   swedishStopWords,
}

var englishStopWords = []string{
	// Articles
	"a", "an", "the",

	// Pronouns
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",

	// Prepositions
	"of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below",
	"to", "from", "up", "down", "in", "out", "on", "off", "over", "under",

	// Conjunctions
	"and", "or", "but", "if", "while", "because", "as", "until",
	"than", "so", "nor", "yet",

	// Common verbs
	"is", "am", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having",
	"do", "does", "did", "doing",
	"will", "would", "should", "could", "can", "may", "might", "must",

	// Other common words
	"this", "that", "these", "those",
	"what", "which", "who", "whom", "whose", "when", "where", "why", "how",
	"all", "each", "every", "both", "few", "more", "most", "other", "some", "such",
	"no", "not", "only", "own", "same", "then", "there", "too", "very",
}

var danishStopWords = []string{
	"og", "i", "jeg", "det", "at", "en", "den", "til", "er", "som", "på",
	"de", "med", "han", "af", "for", "ikke", "der", "var", "mig", "sig",
	"men", "et", "har", "om", "vi", "min", "havde", "ham", "hun", "nu", "over",
}

var dutchStopWords = []string{
	"de", "en", "van", "ik", "te", "dat", "die", "in", "een", "hij", "het",
	"niet", "zijn", "is", "was", "op", "aan", "met", "als", "voor", "had",
	"er", "maar", "om", "hem", "dan", "zou", "of", "wat", "mijn", "men", "dit", "zo",
}

var norwegianStopWords = []string{
	"og", "i", "jeg", "det", "at", "en", "et", "den", "til", "er", "som",
	"på", "de", "med", "han", "av", "ikke", "der", "så", "var", "meg", "seg",
	"men", "ett", "har", "om", "vi", "min", "mitt", "ha", "hadde", "hun", "nå",
}

var swedishStopWords = []string{
	"och", "det", "att", "i", "en", "jag", "hon", "som", "han", "på", "den",
	"med", "var", "sig", "för", "så", "till", "är", "men", "ett", "om",
	"hade", "de", "av", "icke", "mig", "du", "henne", "då", "sin", "nu",
	"har", "inte", "hans", "honom",
}
