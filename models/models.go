package models

// QuizQuestion is one entry of the fixed question bank.
type QuizQuestion struct {
	ID          int      `yaml:"id" json:"id" validate:"required,gt=0"`
	Prompt      string   `yaml:"prompt" json:"prompt" validate:"required"`
	Options     []string `yaml:"options" json:"options" validate:"len=4,dive,required"`
	Correct     int      `yaml:"correct" json:"-" validate:"gte=0,lt=4"`
	Explanation string   `yaml:"explanation" json:"-" validate:"required"`
}

// SpectrumBand is one of the seven selectable bands of the visible light spectrum.
type SpectrumBand struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Wavelength  string `yaml:"wavelength" json:"wavelength" validate:"required"`
	Color       string `yaml:"color" json:"color" validate:"required,hexcolor"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Effect      string `yaml:"effect" json:"effect" validate:"required"`
}

// Hero is the full-screen page header.
type Hero struct {
	Badge    string `yaml:"badge" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle" validate:"required"`
	Lede     string `yaml:"lede" validate:"required"`
	Byline   string `yaml:"byline"`
}

// Pathway is a labelled item in the science section.
type Pathway struct {
	Icon    string `yaml:"icon"`
	Title   string `yaml:"title" validate:"required"`
	Summary string `yaml:"summary" validate:"required"`
}

// TipGroup is one column of management tips.
type TipGroup struct {
	Title string   `yaml:"title" validate:"required"`
	Tips  []string `yaml:"tips" validate:"min=1,dive,required"`
}

// Section is an article card. Only the fields a given section uses are set.
type Section struct {
	Anchor     string     `yaml:"anchor" validate:"required"`
	Icon       string     `yaml:"icon"`
	Title      string     `yaml:"title" validate:"required"`
	Paragraphs []string   `yaml:"paragraphs"`
	Pathways   []Pathway  `yaml:"pathways" validate:"dive"`
	Caption    string     `yaml:"caption"`
	Warnings   []string   `yaml:"warnings"`
	TipGroups  []TipGroup `yaml:"tip_groups" validate:"dive"`
}

// Expert is the static bio card.
type Expert struct {
	Name        string   `yaml:"name" validate:"required"`
	Credentials []string `yaml:"credentials" validate:"min=1,dive,required"`
	Bio         []string `yaml:"bio" validate:"min=1,dive,required"`
	Quote       string   `yaml:"quote" validate:"required"`
	Citation    string   `yaml:"citation" validate:"required"`
}

// SpectrumContent wraps the band table with its surrounding copy.
type SpectrumContent struct {
	Title    string         `yaml:"title" validate:"required"`
	Intro    string         `yaml:"intro"`
	Scale    []string       `yaml:"scale" validate:"dive,required"`
	Bands    []SpectrumBand `yaml:"bands" validate:"len=7,dive"`
	Insights []string       `yaml:"insights"`
}

// Page is the whole article document.
type Page struct {
	Title    string          `yaml:"title" validate:"required"`
	Hero     Hero            `yaml:"hero"`
	Intro    []Section       `yaml:"intro" validate:"dive"`
	Spectrum SpectrumContent `yaml:"spectrum"`
	Science  []Section       `yaml:"science" validate:"dive"`
	Expert   Expert          `yaml:"expert"`
	Sections []Section       `yaml:"sections" validate:"dive"`
	Quiz     []QuizQuestion  `yaml:"quiz" validate:"len=5,dive"`
	Footer   string          `yaml:"footer"`
}

// AnswerRequest is the JSON body for answering the current question.
type AnswerRequest struct {
	Option *int `json:"option" binding:"required"`
}

// AnswerForm is the HTML form body for answering the current question.
type AnswerForm struct {
	Option *int   `form:"option" binding:"required"`
	Band   string `form:"band"`
}

// CompletionStats summarises recorded quiz completions.
type CompletionStats struct {
	Total        int            `json:"total"`
	AverageScore float64        `json:"average_score"`
	ByBand       map[string]int `json:"by_band"`
}
