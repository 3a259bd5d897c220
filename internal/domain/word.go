package domain

import "time"

// Word represents a vocabulary entry.
// Default words are visible to every user and owned by no one;
// personal words are visible only to their creator.
type Word struct {
	WordID      int
	EnglishWord string
	RussianWord string
	IsDefault   bool
	CreatedBy   *int64
	CreatedAt   time.Time
}

// Question is a multiple-choice quiz question: the correct word,
// the shuffled option set shown to the user and the russian prompt.
type Question struct {
	Correct Word
	Options []Word
	Prompt  string
}
