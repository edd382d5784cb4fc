package quiz

// Option markers shown once a question is revealed.
const (
	MarkerNone      = ""
	MarkerCorrect   = "correct"
	MarkerIncorrect = "incorrect"
	MarkerDimmed    = "dimmed"
)

// OptionView is one answer button.
type OptionView struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Marker   string `json:"marker,omitempty"`
	Chosen   bool   `json:"chosen"`
	Disabled bool   `json:"disabled"`
}

// Summary is the completion panel.
type Summary struct {
	Score int  `json:"score"`
	Total int  `json:"total"`
	Band  Band `json:"band"`
}

// View is everything a renderer needs for the current state. The correct
// option is only visible through markers after the reveal.
type View struct {
	Number      int          `json:"number"`
	Total       int          `json:"total"`
	Progress    float64      `json:"progress"`
	Prompt      string       `json:"prompt,omitempty"`
	Options     []OptionView `json:"options,omitempty"`
	Revealed    bool         `json:"revealed"`
	Explanation string       `json:"explanation,omitempty"`
	NextLabel   string       `json:"next_label,omitempty"`
	Completed   bool         `json:"completed"`
	Summary     *Summary     `json:"summary,omitempty"`
}

// View renders s for display.
func (b *Bank) View(s Session) View {
	v := View{
		Number:    s.Index + 1,
		Total:     len(b.questions),
		Progress:  b.Progress(s),
		Revealed:  s.Revealed,
		Completed: s.Completed,
	}
	if s.Completed {
		v.Summary = &Summary{Score: s.Score, Total: len(b.questions), Band: BandFor(s.Score)}
		return v
	}

	q, ok := b.Question(s.Index)
	if !ok {
		return v
	}
	v.Prompt = q.Prompt
	v.Options = make([]OptionView, len(q.Options))
	for i, text := range q.Options {
		opt := OptionView{Index: i, Text: text, Disabled: s.Revealed}
		if s.Revealed {
			opt.Chosen = i == s.Selection
			switch {
			case i == q.Correct:
				opt.Marker = MarkerCorrect
			case opt.Chosen:
				opt.Marker = MarkerIncorrect
			default:
				opt.Marker = MarkerDimmed
			}
		}
		v.Options[i] = opt
	}
	if s.Revealed {
		v.Explanation = q.Explanation
		if s.Index < len(b.questions)-1 {
			v.NextLabel = "Next Question"
		} else {
			v.NextLabel = "See Results"
		}
	}
	return v
}
