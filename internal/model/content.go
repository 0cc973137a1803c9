package model

import (
	"time"

	"github.com/cypu/rulebook-api/internal/i18n"
)

// RuleBook is the root of the RuleBook → Chapter → Page hierarchy.
type RuleBook struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	TypeID    *string   `json:"type"`
	Draft     bool      `json:"draft"`
	Archived  bool      `json:"archived"`
	I18n      i18n.Map  `json:"i18n"`
	CreatedAt time.Time `json:"createdAt"`
}

// Chapter belongs to a rule book.  Position is dense and zero-based among the
// chapters of one rule book.
type Chapter struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	RuleBookID string    `json:"ruleBook"`
	TypeID     *string   `json:"type"`
	Position   int       `json:"position"`
	I18n       i18n.Map  `json:"i18n"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Page belongs to a chapter.  Position is dense and zero-based among the pages
// of one chapter.
type Page struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ChapterID string    `json:"chapter"`
	TypeID    *string   `json:"type"`
	Position  int       `json:"position"`
	I18n      i18n.Map  `json:"i18n"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notion is a glossary entry of a rule book.  It is not position ordered.
type Notion struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	Short      string    `json:"short"`
	Text       string    `json:"text"`
	RuleBookID string    `json:"ruleBook"`
	I18n       i18n.Map  `json:"i18n"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ChapterWithPages is a chapter with its pages in position order.
type ChapterWithPages struct {
	Chapter
	Pages []Page `json:"pages"`
}

// RuleBookWithChapters is a rule book with its chapters and their pages, all
// in position order.
type RuleBookWithChapters struct {
	RuleBook
	Chapters []ChapterWithPages `json:"chapters"`
}

// ChapterDetail is a chapter with its pages and its parent rule book.
type ChapterDetail struct {
	Chapter
	Pages    []Page   `json:"pages"`
	RuleBook RuleBook `json:"ruleBookDetail"`
}
