package quiz

// Band is a scoring tier used to pick the completion message.
type Band struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

var (
	BandExpert = Band{
		Name:    "expert",
		Icon:    "🏆",
		Message: "Perfect! You're an equine light therapy expert!",
	}
	BandExcellent = Band{
		Name:    "excellent",
		Icon:    "🏆",
		Message: "Excellent! You understand circadian rhythms well.",
	}
	BandGood = Band{
		Name:    "good",
		Icon:    "🥉",
		Message: "Good job! You're learning about equine light therapy.",
	}
	BandReview = Band{
		Name:    "review",
		Icon:    "📚",
		Message: "Keep studying! Review the article for better understanding.",
	}
)

// BandFor maps a final score out of QuestionCount to its band. Exact scores
// are matched from the top down; anything below 3 needs review.
func BandFor(score int) Band {
	switch {
	case score == 5:
		return BandExpert
	case score == 4:
		return BandExcellent
	case score == 3:
		return BandGood
	default:
		return BandReview
	}
}
