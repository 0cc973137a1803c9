package model

import "time"

// UserRef is the public part of a user embedded in other documents.
type UserRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Mail string `json:"mail,omitempty"`
}

// Campaign groups players around an owner.  Players join with Code.
type Campaign struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Owner     UserRef   `json:"owner"`
	Players   []UserRef `json:"players"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasMember reports whether userID owns or plays in the campaign.
func (c *Campaign) HasMember(userID string) bool {
	if c.Owner.ID == userID {
		return true
	}
	for _, p := range c.Players {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// Character is a player's sheet, optionally attached to a campaign.
type Character struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	PlayerID   string          `json:"player"`
	CampaignID *string         `json:"campaign"`
	CreatedBy  string          `json:"createdBy"`
	Nodes      []CharacterNode `json:"nodes"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CharacterNode attaches a node to a character.
type CharacterNode struct {
	ID     string `json:"_id"`
	NodeID string `json:"node"`
	Used   bool   `json:"used"`
}
