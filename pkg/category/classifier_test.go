package category

import (
	"testing"
)

func TestPredict_SingleCategoryKeywords(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		text string
		want string
	}{
		{"paracetamol tablets fever medicine", "Medicine"},
		{"fresh organic vegetable and fruit basket", "Food"},
		{"warm jacket sweater and scarf clothing", "Clothing"},
		{"antibacterial soap and sanitizer", "Hygiene"},
		{"pencil eraser and notebook set", "Stationery"},
		{"phone charger with cable", "Electronics"},
	}

	for _, tc := range cases {
		got, conf := c.Predict(tc.text)
		if got != tc.want {
			t.Errorf("Predict(%q) = %q, want %q", tc.text, got, tc.want)
		}
		if conf <= 0.5 {
			t.Errorf("Predict(%q) confidence = %v, want > 0.5", tc.text, conf)
		}
	}
}

func TestPredict_ShortTokensDoNotScorePartialMatches(t *testing.T) {
	c := NewClassifier()

	// "M" must not count as a hit just because the letter occurs inside
	// medicine-category keywords; the shirt keywords decide the outcome.
	got, _ := c.Predict("blue cotton t-shirt size M")
	if got != "Clothing" {
		t.Errorf("Predict(%q) = %q, want %q", "blue cotton t-shirt size M", got, "Clothing")
	}

	// A lone fragment below the partial-match length scores nothing at all.
	got, conf := c.Predict("m")
	if got != DefaultCategory || conf != MinConfidence {
		t.Errorf("Predict(%q) = (%q, %v), want (%q, %v)",
			"m", got, conf, DefaultCategory, MinConfidence)
	}
}

func TestPredict_NoMatchReturnsDefault(t *testing.T) {
	c := NewClassifier()

	got, conf := c.Predict("zzz qqq xyzzy")
	if got != DefaultCategory {
		t.Errorf("expected default category, got %q", got)
	}
	if conf != MinConfidence {
		t.Errorf("expected minimum confidence, got %v", conf)
	}
}

func TestPredict_BlankInput(t *testing.T) {
	c := NewClassifier()

	for _, text := range []string{"", "   ", "\t\n"} {
		got, conf := c.Predict(text)
		if got != DefaultCategory || conf != MinConfidence {
			t.Errorf("Predict(%q) = (%q, %v), want (%q, %v)",
				text, got, conf, DefaultCategory, MinConfidence)
		}
	}
}

func TestPredict_Deterministic(t *testing.T) {
	c := NewClassifier()

	first, firstConf := c.Predict("rice and wheat flour")
	for i := 0; i < 10; i++ {
		got, conf := c.Predict("rice and wheat flour")
		if got != first || conf != firstConf {
			t.Fatalf("prediction changed between runs: (%q, %v) vs (%q, %v)",
				first, firstConf, got, conf)
		}
	}
}

func TestPredict_ConfidenceClamped(t *testing.T) {
	c := NewClassifier()

	// Text stuffed with keywords from one category must still cap at 1.0.
	_, conf := c.Predict("rice wheat flour grain cereal bread pasta beans lentils milk cheese yogurt butter egg meat chicken fish vegetable fruit oil sugar salt")
	if conf > 1.0 {
		t.Errorf("confidence exceeded 1.0: %v", conf)
	}
}

func TestSuggest_OrderedByConfidence(t *testing.T) {
	c := NewClassifier()

	suggestions := c.Suggest("rice with vitamin supplement", 3)
	if len(suggestions) < 2 {
		t.Fatalf("expected at least 2 suggestions, got %d", len(suggestions))
	}
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Confidence > suggestions[i-1].Confidence {
			t.Errorf("suggestions not sorted: %v before %v",
				suggestions[i-1], suggestions[i])
		}
	}
}

func TestSuggest_BlankInput(t *testing.T) {
	c := NewClassifier()

	if got := c.Suggest("", 3); got != nil {
		t.Errorf("expected nil suggestions for blank input, got %v", got)
	}
}
