package repository

import (
	"context"
	"time"

	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/ordering"
)

//go:generate mockgen -source=public.go -destination=mock_public.go -package=repository

type UserStore interface {
	Create(ctx context.Context, u *model.User, roleIDs []string) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByMail(ctx context.Context, mail string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	UpdateProfile(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id, hash string) error
	SetVerified(ctx context.Context, id string, verified bool) error
	SetRoles(ctx context.Context, id string, roleIDs []string) error
	Delete(ctx context.Context, id string) error
}

type RoleStore interface {
	List(ctx context.Context) ([]model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	GetByNames(ctx context.Context, names []string) ([]model.Role, error)
}

type MailTokenStore interface {
	Create(ctx context.Context, t *model.MailToken) error
	Get(ctx context.Context, userID, token string) (*model.MailToken, error)
	Delete(ctx context.Context, id string) error
	DeleteForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type CampaignStore interface {
	Create(ctx context.Context, c *model.Campaign) error
	GetByID(ctx context.Context, id string) (*model.Campaign, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Campaign, error)
	Join(ctx context.Context, code, userID string) (*model.Campaign, error)
	Update(ctx context.Context, id, ownerID, name string) (*model.Campaign, error)
	Delete(ctx context.Context, id, ownerID string) error
	IsMember(ctx context.Context, id, userID string) (bool, error)
}

type CharacterStore interface {
	Create(ctx context.Context, ch *model.Character) (*model.Character, error)
	GetByID(ctx context.Context, id string) (*model.Character, error)
	ListForPlayer(ctx context.Context, playerID string) ([]*model.Character, error)
	Update(ctx context.Context, ch *model.Character) (*model.Character, error)
	Delete(ctx context.Context, id string) error
	AddNode(ctx context.Context, characterID, nodeID string) (*model.Character, error)
	RemoveNode(ctx context.Context, characterID, nodeID string) (*model.Character, error)
}

type RuleBookStore interface {
	List(ctx context.Context) ([]*model.RuleBook, error)
	GetByID(ctx context.Context, id string) (*model.RuleBook, error)
	GetWithChapters(ctx context.Context, id string) (*model.RuleBookWithChapters, error)
	Create(ctx context.Context, b *model.RuleBook) (*model.RuleBook, error)
	Update(ctx context.Context, b *model.RuleBook) (*model.RuleBook, error)
	Delete(ctx context.Context, id string) error
}

type ChapterStore interface {
	ListByRuleBook(ctx context.Context, ruleBookID string) ([]*model.Chapter, error)
	GetByID(ctx context.Context, id string) (*model.Chapter, error)
	GetWithPagesAndRuleBook(ctx context.Context, id string) (*model.ChapterDetail, error)
	Create(ctx context.Context, c *model.Chapter) (*model.Chapter, error)
	Update(ctx context.Context, c *model.Chapter) (*model.Chapter, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, moves []ordering.Move) ([]*model.Chapter, error)
}

type PageStore interface {
	ListByChapter(ctx context.Context, chapterID string) ([]*model.Page, error)
	GetByID(ctx context.Context, id string) (*model.Page, error)
	Create(ctx context.Context, p *model.Page) (*model.Page, error)
	Update(ctx context.Context, p *model.Page) (*model.Page, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, moves []ordering.Move) ([]*model.Page, error)
}

type NotionStore interface {
	List(ctx context.Context, ruleBookID string) ([]*model.Notion, error)
	GetByID(ctx context.Context, id string) (*model.Notion, error)
	Create(ctx context.Context, n *model.Notion) (*model.Notion, error)
	Update(ctx context.Context, n *model.Notion) (*model.Notion, error)
	Delete(ctx context.Context, id string) error
}

type NodeStore interface {
	List(ctx context.Context) ([]*model.Node, error)
	GetByID(ctx context.Context, id string) (*model.Node, error)
	Create(ctx context.Context, n *model.Node) (*model.Node, error)
	Update(ctx context.Context, n *model.Node) (*model.Node, error)
	Delete(ctx context.Context, id string) error
}

type ItemModifierStore interface {
	List(ctx context.Context) ([]*model.ItemModifier, error)
	GetByID(ctx context.Context, id string) (*model.ItemModifier, error)
	Create(ctx context.Context, mod *model.ItemModifier) (*model.ItemModifier, error)
	Update(ctx context.Context, mod *model.ItemModifier) (*model.ItemModifier, error)
	Delete(ctx context.Context, id string) error
}

type NamedTypeStore interface {
	List(ctx context.Context) ([]*model.NamedType, error)
	GetByID(ctx context.Context, id string) (*model.NamedType, error)
	Create(ctx context.Context, t *model.NamedType) (*model.NamedType, error)
	Update(ctx context.Context, t *model.NamedType) (*model.NamedType, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ UserStore         = (*UserRepo)(nil)
	_ RoleStore         = (*RoleRepo)(nil)
	_ MailTokenStore    = (*MailTokenRepo)(nil)
	_ CampaignStore     = (*CampaignRepo)(nil)
	_ CharacterStore    = (*CharacterRepo)(nil)
	_ RuleBookStore     = (*RuleBookRepo)(nil)
	_ ChapterStore      = (*ChapterRepo)(nil)
	_ PageStore         = (*PageRepo)(nil)
	_ NotionStore       = (*NotionRepo)(nil)
	_ NodeStore         = (*NodeRepo)(nil)
	_ ItemModifierStore = (*ItemModifierRepo)(nil)
	_ NamedTypeStore    = (*NamedTypeRepo)(nil)
)
