package assets

import "soulbound-mud/internal/generate"

// EnemyTable is the spawn table for the Hollow Barrow.
var EnemyTable = []generate.EnemySpawnEntry{
	{
		Glyph: "🕷️", Name: "Barrow Spider",
		MaxHP: 6, Attack: 2, Defense: 0, SightRange: 6, ThreatCost: 2,
		Loot: []generate.LootDrop{{ItemName: "Grave Moss", Chance: 40}},
	},
	{
		Glyph: "🦇", Name: "Crypt Bat",
		MaxHP: 4, Attack: 3, Defense: 0, SightRange: 9, ThreatCost: 2,
	},
	{
		Glyph: "💀", Name: "Hollow Shade",
		MaxHP: 12, Attack: 4, Defense: 1, SightRange: 8, ThreatCost: 5,
		Loot: []generate.LootDrop{
			{ItemName: "Hyperflask", Chance: 30},
			{ItemName: "Shard Blade", Chance: 15},
		},
	},
	{
		Glyph: "🧟", Name: "Gravebound Wight",
		MaxHP: 18, Attack: 5, Defense: 2, SightRange: 7, ThreatCost: 8,
		Loot: []generate.LootDrop{
			{ItemName: "Wight Cleaver", Chance: 25},
			{ItemName: "Bone Ward", Chance: 20},
		},
	},
}

// EnemyLore is shown the first time a player kills each enemy kind.
var EnemyLore = map[string]string{
	"🕷️": "Barrow Spiders spin their webs from grave silk.",
	"🦇": "Crypt Bats roost in the hollows of forgotten names.",
	"💀": "Hollow Shades are what remains when a name is spoken no more.",
	"🧟": "Gravebound Wights still clutch the goods they were buried with.",
}
