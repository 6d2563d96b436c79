// Package quest is the adventurer roster: who (Adventurer), what (Item) and the
// result (Summary), plus the parallel lookup of each item's backing repository.
//
// The package is layered types -> pure functions -> io -> output; nothing in a
// lower layer calls into a higher one.
package quest

import (
	"slices"
	"strings"
	"time"

	narrow "github.com/reoring/narrow"
	"github.com/reoring/narrow/i18n"
)

type Class string

const (
	ClassWarrior Class = "Warrior"
	ClassMage    Class = "Mage"
	ClassArcher  Class = "Archer"
)

// Classes returns the closed set of adventurer classes.
func Classes() []Class { return []Class{ClassWarrior, ClassMage, ClassArcher} }

type ItemType string

const (
	ItemWeapon    ItemType = "weapon"
	ItemArmor     ItemType = "armor"
	ItemAccessory ItemType = "accessory"
)

func ItemTypes() []ItemType { return []ItemType{ItemWeapon, ItemArmor, ItemAccessory} }

// Rarity orders from N (lowest) to SSSR.
type Rarity string

const (
	RarityN    Rarity = "N"
	RarityR    Rarity = "R"
	RaritySR   Rarity = "SR"
	RaritySSR  Rarity = "SSR"
	RaritySSSR Rarity = "SSSR"
)

func Rarities() []Rarity { return []Rarity{RarityN, RarityR, RaritySR, RaritySSR, RaritySSSR} }

// Tier is the position of r in Rarities, or -1 for an unknown rarity.
func (r Rarity) Tier() int { return slices.Index(Rarities(), r) }

func ParseClass(s string) (Class, error)       { return parseEnum("/class", s, Classes()) }
func ParseItemType(s string) (ItemType, error) { return parseEnum("/type", s, ItemTypes()) }
func ParseRarity(s string) (Rarity, error)     { return parseEnum("/rarity", s, Rarities()) }

func parseEnum[E ~string](path, s string, allowed []E) (E, error) {
	if slices.Contains(allowed, E(s)) {
		return E(s), nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", narrow.Issues{{Path: path, Code: narrow.CodeInvalidEnum, Message: i18n.T(narrow.CodeInvalidEnum, nil), Hint: "one of " + strings.Join(names, "|") + ", got '" + s + "'"}}
}

type Adventurer struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Class Class  `yaml:"class"`
}

// Kind lets adventurers be dispatched by class.
func (a Adventurer) Kind() Class { return a.Class }

// Item is a piece of gear. Repo names the GitHub repository ("owner/name")
// whose metadata stands in for the item's lore.
type Item struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Type   ItemType `yaml:"type"`
	Rarity Rarity   `yaml:"rarity"`
	Repo   string   `yaml:"repo"`
}

// Summary records that a user obtained quantity of an item.
type Summary struct {
	UserID     string    `yaml:"user_id"`
	ItemID     string    `yaml:"item_id"`
	ObtainedAt time.Time `yaml:"obtained_at"`
	Quantity   int       `yaml:"quantity"`
}
