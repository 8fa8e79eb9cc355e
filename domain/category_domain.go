package domain

var (
	MessageSuccessPredictCategory = "category predicted successfully"
	MessageFailedPredictCategory  = "failed to predict category"
)

type (
	PredictCategoryRequest struct {
		Text string `json:"text" validate:"required"`
	}

	PredictCategoryResponse struct {
		Category    string                 `json:"category"`
		Confidence  float64                `json:"confidence"`
		Suggestions []CategorySuggestion   `json:"suggestions,omitempty"`
	}

	CategorySuggestion struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
)
