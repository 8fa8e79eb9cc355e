package category

import (
	"sort"
	"strings"
)

const (
	// DefaultCategory is returned when no keyword matches the input.
	DefaultCategory = "Unknown"
	// MinConfidence is the confidence reported for the default category.
	MinConfidence = 0.0

	exactMatchWeight = 3

	// partialMatchMinLen is the shortest token allowed to score by occurring
	// inside a keyword; below it, fragments like "m" sit inside half the
	// keyword table and inflate unrelated categories.
	partialMatchMinLen = 3
)

// categoryOrder fixes the tie-break priority between categories.
var categoryOrder = []string{
	"Food",
	"Medicine",
	"Clothing",
	"Hygiene",
	"Stationery",
	"Electronics",
}

var categoryKeywords = map[string][]string{
	"Food": {
		"rice", "wheat", "flour", "grain", "cereal", "bread", "pasta",
		"beans", "lentils", "milk", "cheese", "yogurt", "butter",
		"egg", "meat", "chicken", "fish", "vegetable", "fruit",
		"oil", "sugar", "salt", "spice", "snack", "candy", "chocolate",
		"juice", "water", "beverage", "canned", "frozen", "fresh",
	},
	"Medicine": {
		"tablet", "capsule", "syrup", "medicine", "drug", "pharmaceutical",
		"antibiotic", "painkiller", "paracetamol", "aspirin", "ibuprofen",
		"vitamin", "supplement", "injection", "vaccine", "bandage",
		"antiseptic", "ointment", "prescription", "medical", "treatment",
	},
	"Clothing": {
		"shirt", "pant", "trouser", "dress", "skirt", "jacket", "coat",
		"sweater", "t-shirt", "jeans", "shorts", "underwear",
		"sock", "shoe", "sandal", "boot", "hat", "cap", "scarf",
		"fabric", "textile", "garment", "apparel", "clothing", "wear",
	},
	"Hygiene": {
		"soap", "shampoo", "toothpaste", "toothbrush", "sanitizer",
		"detergent", "tissue", "towel", "napkin", "diaper", "pad",
		"razor", "deodorant", "lotion", "cream", "wash", "cleaning",
		"disinfectant", "hygiene", "sanitary",
	},
	"Stationery": {
		"pen", "pencil", "notebook", "paper", "eraser", "sharpener",
		"ruler", "marker", "crayon", "book", "folder", "file",
		"stapler", "glue", "scissors", "chalk", "board", "stationery",
	},
	"Electronics": {
		"phone", "charger", "cable", "battery", "laptop", "computer",
		"radio", "torch", "flashlight", "lamp", "bulb", "fan",
		"adapter", "headphone", "speaker", "electronic", "device",
	},
}

type Classifier interface {
	Predict(text string) (string, float64)
	Suggest(text string, topN int) []Suggestion
	Categories() []string
}

type Suggestion struct {
	Category   string
	Confidence float64
}

type classifier struct{}

func NewClassifier() Classifier {
	return &classifier{}
}

func (c *classifier) Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Predict scores each category by keyword hits in the input text and returns
// the best category with a confidence in [0,1]. Blank input or zero hits
// yields the default category at minimum confidence; neither is an error.
func (c *classifier) Predict(text string) (string, float64) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return DefaultCategory, MinConfidence
	}

	best := ""
	bestScore := 0
	for _, cat := range categoryOrder {
		score := scoreCategory(tokens, categoryKeywords[cat])
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}

	if bestScore == 0 {
		return DefaultCategory, MinConfidence
	}
	return best, confidence(bestScore, len(categoryKeywords[best]))
}

// Suggest returns up to topN categories with a non-zero score, best first.
func (c *classifier) Suggest(text string, topN int) []Suggestion {
	tokens := tokenize(text)
	if len(tokens) == 0 || topN <= 0 {
		return nil
	}

	var suggestions []Suggestion
	for _, cat := range categoryOrder {
		score := scoreCategory(tokens, categoryKeywords[cat])
		if score == 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Category:   cat,
			Confidence: confidence(score, len(categoryKeywords[cat])),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions
}

func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return ' '
	}, lowered)

	fields := strings.Fields(cleaned)
	seen := make(map[string]struct{}, len(fields))
	var tokens []string
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// scoreCategory weighs exact token hits above partial substring hits so that
// "medicine" counts more than "med" buried inside another word.
func scoreCategory(tokens []string, keywords []string) int {
	keywordSet := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		keywordSet[k] = struct{}{}
	}

	score := 0
	for _, token := range tokens {
		if _, ok := keywordSet[token]; ok {
			score += exactMatchWeight
		}
		for _, keyword := range keywords {
			if strings.Contains(token, keyword) ||
				(len(token) >= partialMatchMinLen && strings.Contains(keyword, token)) {
				score++
			}
		}
	}
	return score
}

func confidence(score, totalKeywords int) float64 {
	conf := float64(score) / (float64(totalKeywords) * 0.5)
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
