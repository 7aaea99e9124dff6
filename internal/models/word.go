package models

import (
	"time"
)

// Word is a dictionary entry. Every word owns exactly one DefinitionGroup and
// one ExampleGroup; the unique index on the group word_id columns enforces the
// 1:1 cardinality that the child text rows hang off of.
type Word struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Word          string    `gorm:"size:255;not null;uniqueIndex:dictionary_word_idx" json:"word"`
	Pronunciation string    `gorm:"type:text;not null" json:"pronunciation"`
	PartOfSpeech  string    `gorm:"column:part_of_speech;type:text" json:"part_of_speech"`
	SearchCount   int       `gorm:"not null;default:0" json:"search_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// DefinitionGroup is the grouping anchor between a word and its definition
// texts. It carries no content of its own.
type DefinitionGroup struct {
	ID     uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	WordID uint64           `gorm:"column:word_id;not null;uniqueIndex" json:"word_id"`
	Texts  []DefinitionText `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
}

// DefinitionText is a language-tagged definition row under a DefinitionGroup.
// Kind distinguishes "meaning" entries from "note" entries.
type DefinitionText struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID  uint64 `gorm:"column:definition_id;not null" json:"definition_id"`
	Kind     string `gorm:"type:text;not null" json:"kind"`
	Language string `gorm:"type:text;not null" json:"language"`
	Text     string `gorm:"type:text;not null" json:"text"`
}

// ExampleGroup is the grouping anchor between a word and its example sentences.
type ExampleGroup struct {
	ID        uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	WordID    uint64            `gorm:"column:word_id;not null;uniqueIndex" json:"word_id"`
	Sentences []ExampleSentence `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
}

// ExampleSentence is a usage example row under an ExampleGroup.
type ExampleSentence struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID uint64 `gorm:"column:example_id;not null" json:"example_id"`
	Text    string `gorm:"type:text;not null" json:"text"`
}

// TableName overrides the table name for Word
func (Word) TableName() string {
	return "dictionary"
}

// TableName overrides the table name for DefinitionGroup
func (DefinitionGroup) TableName() string {
	return "definitions"
}

// TableName overrides the table name for DefinitionText
func (DefinitionText) TableName() string {
	return "definition_texts"
}

// TableName overrides the table name for ExampleGroup
func (ExampleGroup) TableName() string {
	return "examples"
}

// TableName overrides the table name for ExampleSentence
func (ExampleSentence) TableName() string {
	return "example_sentences"
}
