package model

import (
	"time"

	"github.com/cypu/rulebook-api/internal/i18n"
)

// ItemModifier is a modifier applicable to items.  ModifierID is a short code
// unique across all modifiers.
type ItemModifier struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	ModifierID string    `json:"modifierId"`
	I18n       i18n.Map  `json:"i18n"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NamedType is the shape shared by rarities, page types, rule book types and
// chapter types.  Name is unique within its kind.
type NamedType struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	I18n      i18n.Map  `json:"i18n"`
	CreatedAt time.Time `json:"createdAt"`
}

// Node is a skill node characters can take.
type Node struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Rank      int       `json:"rank"`
	I18n      i18n.Map  `json:"i18n"`
	CreatedAt time.Time `json:"createdAt"`
}
