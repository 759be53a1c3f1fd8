// Package cards holds the static card catalog: base stats for every troop,
// building and spell the engine knows about. The built-in table can be
// replaced wholesale by a YAML file at startup; during a match it is
// read-only reference data.
package cards

import "sort"

// Type classifies how a card acts when played.
type Type string

const (
	TypeTroop    Type = "troop"
	TypeBuilding Type = "building"
	TypeSpell    Type = "spell"
)

// Card is one catalog entry. Zero fields fall back to the engine defaults
// applied by Normalize.
type Card struct {
	Name    string `yaml:"-" json:"name"`
	Type    Type   `yaml:"type" json:"type"`
	Cost    int    `yaml:"cost" json:"cost"`
	Damage  int    `yaml:"damage" json:"damage"`
	HP      int    `yaml:"hp" json:"hp"`
	Range   int    `yaml:"range" json:"range"`
	Speed   int    `yaml:"speed" json:"speed"`
	Special string `yaml:"special" json:"special,omitempty"`
	Glyph   string `yaml:"glyph" json:"glyph"`
}

// Normalize fills the defaults a sparse catalog entry leaves out.
func (c *Card) Normalize(name string) {
	c.Name = name
	if c.HP == 0 {
		c.HP = 50
	}
	if c.Range == 0 {
		c.Range = 1
	}
	if c.Speed == 0 {
		c.Speed = 1
	}
	if c.Glyph == "" {
		c.Glyph = "🤺"
	}
}

// Default deck contents for fresh accounts and sanitation refills.
var (
	DefaultUnlocked = []string{"knight", "archer", "giant", "mini_pekka", "fireball", "zap"}
	DefaultDeck     = []string{"knight", "archer", "giant", "mini_pekka", "fireball"}
	StarterCards    = []string{"knight", "archer", "giant", "fireball", "valkyrie", "musketeer", "mini_pekka", "baby_dragon"}
)

var builtin = map[string]Card{
	// Troops
	"knight":           {Type: TypeTroop, Cost: 3, Damage: 10, HP: 120, Glyph: "🤺"},
	"archer":           {Type: TypeTroop, Cost: 3, Damage: 8, HP: 60, Range: 3, Glyph: "🏹"},
	"giant":            {Type: TypeTroop, Cost: 5, Damage: 20, HP: 200, Glyph: "🧱"},
	"valkyrie":         {Type: TypeTroop, Cost: 4, Damage: 15, HP: 150, Special: "splash", Glyph: "🪓"},
	"musketeer":        {Type: TypeTroop, Cost: 4, Damage: 18, HP: 80, Range: 4, Glyph: "🔫"},
	"mini_pekka":       {Type: TypeTroop, Cost: 4, Damage: 30, HP: 90, Glyph: "🤖"},
	"baby_dragon":      {Type: TypeTroop, Cost: 4, Damage: 20, HP: 100, Special: "flying splash", Glyph: "🐉"},
	"skeletons":        {Type: TypeTroop, Cost: 1, Damage: 5, HP: 20, Special: "swarm", Glyph: "💀"},
	"bomber":           {Type: TypeTroop, Cost: 3, Damage: 12, HP: 50, Special: "splash", Glyph: "💣"},
	"witch":            {Type: TypeTroop, Cost: 5, Damage: 15, HP: 100, Special: "spawns skeletons", Glyph: "🧙"},
	"prince":           {Type: TypeTroop, Cost: 5, Damage: 25, HP: 120, Special: "charge", Speed: 2, Glyph: "🐎"},
	"dark_prince":      {Type: TypeTroop, Cost: 4, Damage: 20, HP: 110, Special: "splash charge", Speed: 2, Glyph: "⚔️"},
	"hunter":           {Type: TypeTroop, Cost: 4, Damage: 22, HP: 90, Glyph: "🔫"},
	"ice_spirit":       {Type: TypeTroop, Cost: 1, Damage: 5, HP: 20, Special: "freeze", Glyph: "❄️"},
	"barbarians":       {Type: TypeTroop, Cost: 5, Damage: 20, HP: 100, Special: "swarm", Glyph: "🗡️"},
	"wizard":           {Type: TypeTroop, Cost: 5, Damage: 20, HP: 80, Special: "splash", Glyph: "🔥"},
	"minions":          {Type: TypeTroop, Cost: 3, Damage: 10, HP: 40, Special: "flying", Glyph: "🦇"},
	"mega_minion":      {Type: TypeTroop, Cost: 3, Damage: 15, HP: 60, Special: "flying", Glyph: "🛡️"},
	"golem":            {Type: TypeTroop, Cost: 8, Damage: 40, HP: 250, Special: "death damage", Glyph: "🪨"},
	"guards":           {Type: TypeTroop, Cost: 3, Damage: 12, HP: 50, Special: "shields", Glyph: "🛡️"},
	"hog_rider":        {Type: TypeTroop, Cost: 4, Damage: 30, HP: 90, Special: "fast", Speed: 2, Glyph: "🐗"},
	"lava_hound":       {Type: TypeTroop, Cost: 7, Damage: 20, HP: 200, Special: "flying spawns pups", Glyph: "🔥"},
	"miner":            {Type: TypeTroop, Cost: 3, Damage: 25, HP: 70, Special: "spawn anywhere", Glyph: "⛏️"},
	"sparky":           {Type: TypeTroop, Cost: 6, Damage: 50, HP: 120, Special: "charge blast", Glyph: "⚡"},
	"electro_wizard":   {Type: TypeTroop, Cost: 4, Damage: 20, HP: 80, Special: "stun", Glyph: "⚡"},
	"royal_giant":      {Type: TypeTroop, Cost: 6, Damage: 25, HP: 150, Range: 5, Glyph: "🏹"},
	"three_musketeers": {Type: TypeTroop, Cost: 9, Damage: 18, HP: 80, Special: "spawns 3", Glyph: "🔫"},

	// Buildings
	"cannon":        {Type: TypeBuilding, Cost: 3, Damage: 15, HP: 120, Range: 3, Glyph: "🏰"},
	"inferno_tower": {Type: TypeBuilding, Cost: 5, Damage: 35, HP: 150, Special: "scales damage", Range: 4, Glyph: "🔥"},
	"furnace":       {Type: TypeBuilding, Cost: 4, HP: 100, Special: "spawns fire spirits", Glyph: "🔥"},

	// Spells
	"fireball":      {Type: TypeSpell, Cost: 4, Damage: 25, Special: "3x3", Glyph: "💥"},
	"zap":           {Type: TypeSpell, Cost: 2, Damage: 15, Special: "stun", Glyph: "⚡"},
	"lightning":     {Type: TypeSpell, Cost: 6, Damage: 35, Special: "targets 3", Glyph: "⚡"},
	"rage":          {Type: TypeSpell, Cost: 2, Special: "buff", Glyph: "💢"},
	"tornado":       {Type: TypeSpell, Cost: 3, Special: "pull", Glyph: "🌪️"},
	"freeze":        {Type: TypeSpell, Cost: 4, Special: "freeze", Glyph: "❄️"},
	"poison":        {Type: TypeSpell, Cost: 4, Damage: 20, Special: "aoe", Glyph: "☠️"},
	"goblin_barrel": {Type: TypeSpell, Cost: 3, Special: "spawn goblins", Glyph: "🛢️"},
}

func init() {
	for name, c := range builtin {
		c.Normalize(name)
		builtin[name] = c
	}
}

// Get looks up a card by id in the built-in catalog.
func Get(name string) (Card, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Exists reports whether the catalog knows the card.
func Exists(name string) bool {
	_, ok := builtin[name]
	return ok
}

// Names returns every catalog card id, sorted.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
