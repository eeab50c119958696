package system

import (
	"math/rand"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage int
	Killed bool
}

// equipATKBonus returns the total ATK bonus from equipped items (players only).
func equipATKBonus(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return 0
	}
	return c.(component.Inventory).BonusATK()
}

// equipDEFBonus returns the total DEF bonus from equipped items (players only).
func equipDEFBonus(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return 0
	}
	return c.(component.Inventory).BonusDEF()
}

// Attack resolves one attack from attacker against defender.
// Damage formula: max(1, atk-def) + rand.Intn(3).
// A defender at ≤ 0 HP reports Killed. Non-player defenders are destroyed
// immediately; player entities are left in the world so the server can run
// its death handling (inventory enforcement, respawn) before removal.
func Attack(w *ecs.World, rng *rand.Rand, attackerID, defenderID ecs.EntityID) AttackResult {
	atkComp := w.Get(attackerID, component.CCombat)
	defComp := w.Get(defenderID, component.CCombat)
	hpComp := w.Get(defenderID, component.CHealth)
	if atkComp == nil || defComp == nil || hpComp == nil {
		return AttackResult{}
	}

	atk := atkComp.(component.Combat).Attack + equipATKBonus(w, attackerID)
	def := defComp.(component.Combat).Defense + equipDEFBonus(w, defenderID)
	hp := hpComp.(component.Health)

	base := atk - def
	if base < 1 {
		base = 1
	}
	dmg := base + rng.Intn(3)

	hp.Current -= dmg
	w.Add(defenderID, hp)

	result := AttackResult{Damage: dmg}
	if hp.Current <= 0 {
		result.Killed = true
		if !w.Has(defenderID, component.CTagPlayer) {
			w.Destroy(defenderID)
		}
	}
	return result
}
