package models

// ConfusablePair is a correct/incorrect word pairing with an optional
// explanation and an optional back-reference to a dictionary word.
type ConfusablePair struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CorrectWord   string  `gorm:"column:correct_word;type:text;not null;index:correct_incorrect_idx" json:"correct_word"`
	IncorrectWord string  `gorm:"column:incorrect_word;type:text;not null" json:"incorrect_word"`
	Explanation   *string `gorm:"type:text" json:"explanation"`
	WordID        *uint64 `gorm:"column:word_id" json:"word_id"`
}

// TableName overrides the table name for ConfusablePair
func (ConfusablePair) TableName() string {
	return "correct_and_incorrect"
}
