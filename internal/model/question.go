package model

type Question struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Marks   string   `json:"marks"` // decimal string, e.g. "1.50"
	Graphic *string  `json:"graphic,omitempty"`
	Choices []Choice `json:"choices,omitempty"`
}

// Choice correctness is carried solely by IsCorrect; the data model
// permits more than one correct choice per question.
type Choice struct {
	ID        uint    `json:"id"`
	Text      string  `json:"text"`
	IsCorrect bool    `json:"is_correct"`
	Graphic   *string `json:"graphic,omitempty"`
}
