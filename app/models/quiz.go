package models

// QuizQuestion is immutable reference data seeded at startup.
// CorrectAnswer is one of A, B, C, D and is never serialised with the row;
// the grading endpoint reveals it explicitly.
type QuizQuestion struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Question      string `gorm:"size:512;not null" json:"question"`
	OptionA       string `gorm:"size:255;not null" json:"option_a"`
	OptionB       string `gorm:"size:255;not null" json:"option_b"`
	OptionC       string `gorm:"size:255;not null" json:"option_c"`
	OptionD       string `gorm:"size:255;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"-"`
}
