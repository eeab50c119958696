// Package component defines the data attached to dungeon entities.
package component

import (
	"soulbound-mud/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Component type keys.
const (
	CPosition   ecs.ComponentType = 1
	CHealth     ecs.ComponentType = 2
	CRenderable ecs.ComponentType = 3
	CCombat     ecs.ComponentType = 4
	CAI         ecs.ComponentType = 5
	CInventory  ecs.ComponentType = 6
	CGroundItem ecs.ComponentType = 7
	CLoot       ecs.ComponentType = 8
	CTagPlayer  ecs.ComponentType = 9
	CTagBlock   ecs.ComponentType = 10
)

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int // lower draws first (behind)
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

type Combat struct {
	Attack  int
	Defense int
}

func (Combat) Type() ecs.ComponentType { return CCombat }

// AIBehavior describes how an enemy acts each tick.
type AIBehavior uint8

const (
	BehaviorChase      AIBehavior = iota // move toward nearest player, attack if adjacent
	BehaviorStationary                   // attacks adjacent players but never moves
)

type AI struct {
	Behavior   AIBehavior
	SightRange int
}

func (AI) Type() ecs.ComponentType { return CAI }

// TagPlayer marks a player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlock }
