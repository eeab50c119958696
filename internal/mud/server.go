// Package mud implements a tick-based multiplayer dungeon server. N players
// connect over SSH and share one world. A single ticker goroutine advances
// the world every TickInterval, consuming one queued action per player;
// rendering happens in each session's own goroutine. The server is also the
// host adapter for the soulbound rules: it feeds them drop and death events
// and applies the mutations they return.
package mud

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"soulbound-mud/assets"
	"soulbound-mud/internal/component"
	"soulbound-mud/internal/config"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/factory"
	"soulbound-mud/internal/gamemap"
	"soulbound-mud/internal/generate"
	"soulbound-mud/internal/item"
	"soulbound-mud/internal/render"
	"soulbound-mud/internal/soulbound"
	"soulbound-mud/internal/system"

	"github.com/gdamore/tcell/v2"
)

// DeathTicks is the number of ticks a dead player waits before respawning.
const DeathTicks = 4

// EnemyRespawnDelay is the number of ticks after the dungeon is cleared
// before a new enemy wave spawns (~30 seconds at 500 ms/tick).
const EnemyRespawnDelay = 60

// Server manages the shared dungeon and all player sessions.
type Server struct {
	mu       sync.Mutex
	cfg      config.Config
	logger   *slog.Logger
	audit    *AuditLog
	world    *ecs.World
	gmap     *gamemap.GameMap
	rng      *rand.Rand
	sessions []*Session
	nextID   int

	spawnX, spawnY int

	// respawnCooldown drives enemy wave respawning.
	// -1 = idle; N > 0 = ticks remaining; 0 = spawn a wave this tick.
	respawnCooldown int
}

// NewServer generates the Hollow Barrow and returns a Server ready to Run.
func NewServer(cfg config.Config, logger *slog.Logger, rng *rand.Rand) *Server {
	genCfg := &generate.Config{
		MapWidth:     70,
		MapHeight:    36,
		RoomAttempts: 40,
		MinRoomSize:  4,
		MaxRoomSize:  9,
		EnemyBudget:  30,
		ItemCount:    8,
		EnemyTable:   assets.EnemyTable,
		ItemTable:    assets.GroundItemTable(),
		Rand:         rng,
	}
	m, sx, sy := generate.Generate(genCfg)
	w := ecs.NewWorld()
	pop := generate.Populate(m, genCfg)
	for _, es := range pop.Enemies {
		factory.NewEnemy(w, es.Entry, es.X, es.Y)
	}
	for _, is := range pop.Items {
		factory.NewGroundItem(w, is.Item, is.X, is.Y)
	}

	return &Server{
		cfg:             cfg,
		logger:          logger,
		audit:           NewAuditLog(logger),
		world:           w,
		gmap:            m,
		rng:             rng,
		spawnX:          sx,
		spawnY:          sy,
		respawnCooldown: -1,
	}
}

// NextSessionID returns a unique session ID and an assigned player color.
// Safe to call concurrently.
func (s *Server) NextSessionID() (int, tcell.Color) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	color := playerColors[id%len(playerColors)]
	s.mu.Unlock()
	return id, color
}

// Run starts the ticker loop. Blocks until the process exits.
func (s *Server) Run() {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for range ticker.C {
		s.tick()
	}
}

// AddSession registers a new session and spawns its player entity.
// The caller must NOT hold s.mu.
func (s *Server) AddSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.CanBind = s.cfg.MayBind(sess.Name)
	s.sessions = append(s.sessions, sess)
	s.spawnPlayerLocked(sess)
	globalMessage(s.sessions, fmt.Sprintf("🕯️ %s descends into the Hollow Barrow.", sess.Name))
	sess.AddMessage(assets.WelcomeLore[s.rng.Intn(len(assets.WelcomeLore))])
	s.logger.Info("session joined", "player", sess.Name, "can_bind", sess.CanBind)
}

// RemoveSession deregisters a session and removes its player entity.
func (s *Server) RemoveSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.PlayerID != ecs.NilEntity {
		s.world.Destroy(sess.PlayerID)
	}
	for i, other := range s.sessions {
		if other == sess {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			break
		}
	}
	globalMessage(s.sessions, fmt.Sprintf("👋 %s has left the Barrow.", sess.Name))
	s.logger.Info("session left", "player", sess.Name)
}

// signalRender sends a non-blocking render signal to all sessions.
func (s *Server) signalRender() {
	for _, sess := range s.sessions {
		select {
		case sess.RenderCh <- struct{}{}:
		default:
		}
	}
}

// ─── Tick ────────────────────────────────────────────────────────────────────

func (s *Server) tick() {
	s.mu.Lock()

	// 1. Process one pending action per live player.
	for _, sess := range s.sessions {
		if sess.GetDeathCountdown() > 0 {
			if sess.DecrDeathCountdown() == 0 {
				s.respawnLocked(sess)
			}
			continue
		}
		if action := sess.TakeAction(); action != ActionNone {
			s.processActionLocked(sess, action)
		}
	}

	// 2. Run enemy AI against all live players.
	hits := system.ProcessAI(s.world, s.gmap, s.livePlayerIDsLocked(), s.rng)
	for _, h := range hits {
		if victim := s.sessionByPlayerID(h.VictimID); victim != nil {
			victim.AddMessage(fmt.Sprintf("The %s hits you for %d damage!", h.EnemyGlyph, h.Damage))
		}
	}

	// 3. Check for player deaths.
	for _, sess := range s.sessions {
		if sess.GetDeathCountdown() > 0 || sess.PlayerID == ecs.NilEntity {
			continue
		}
		hp := s.world.Get(sess.PlayerID, component.CHealth)
		if hp == nil || hp.(component.Health).Current <= 0 {
			s.handlePlayerDeathLocked(sess)
		}
	}

	// 4. Enemy respawn: start a countdown once the dungeon is cleared while
	// players are present; spawn a new wave when it expires.
	enemyCount := len(s.world.Query(component.CAI))
	if len(s.livePlayerIDsLocked()) > 0 && enemyCount == 0 {
		switch {
		case s.respawnCooldown < 0:
			s.respawnCooldown = EnemyRespawnDelay
		case s.respawnCooldown > 0:
			s.respawnCooldown--
		default:
			s.respawnEnemiesLocked()
			s.respawnCooldown = -1
		}
	} else if enemyCount > 0 {
		s.respawnCooldown = -1
	}

	s.mu.Unlock()

	// 5. Signal all sessions to render (outside the lock so slow SSH writes
	// don't block the next tick from starting).
	s.signalRender()
}

// ─── Action Processing ───────────────────────────────────────────────────────

// processActionLocked handles one player action. Caller must hold s.mu.
func (s *Server) processActionLocked(sess *Session, action Action) {
	switch action {
	case ActionWait:
		sess.AddMessage("You wait.")

	case ActionPickup:
		s.tryPickupLocked(sess)

	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			return
		}
		result, target := system.TryMove(s.world, s.gmap, sess.PlayerID, dx, dy)
		switch result {
		case system.MoveOK:
			if pos := s.world.Get(sess.PlayerID, component.CPosition); pos != nil {
				p := pos.(component.Position)
				sess.Renderer.CenterOn(p.X, p.Y)
			}

		case system.MoveAttack:
			if s.isPlayerEntity(target) {
				return // no player-versus-player combat
			}
			s.attackEnemyLocked(sess, target)
		}
	}
}

// attackEnemyLocked resolves a player bump attack, including loot drops and
// first-kill lore.
func (s *Server) attackEnemyLocked(sess *Session, target ecs.EntityID) {
	glyph := entityGlyph(s.world, target)
	var targetPos component.Position
	if pc := s.world.Get(target, component.CPosition); pc != nil {
		targetPos = pc.(component.Position)
	}
	var drops []component.LootEntry
	if lc := s.world.Get(target, component.CLoot); lc != nil {
		drops = lc.(component.Loot).Drops
	}

	res := system.Attack(s.world, s.rng, sess.PlayerID, target)
	if !res.Killed {
		sess.AddMessage(fmt.Sprintf("You hit the %s for %d damage.", glyph, res.Damage))
		return
	}

	globalMessage(s.sessions, fmt.Sprintf("%s slays the %s!", sess.Name, glyph))
	if !sess.DiscoveredEnemies[glyph] {
		sess.DiscoveredEnemies[glyph] = true
		if lore, ok := assets.EnemyLore[glyph]; ok {
			sess.AddMessage(lore)
		}
	}
	for _, d := range drops {
		if s.rng.Intn(100) < d.Chance {
			if it := assets.ItemByName(d.ItemName); !it.IsEmpty() {
				factory.NewGroundItem(s.world, it, targetPos.X, targetPos.Y)
				sess.AddMessage(fmt.Sprintf("The %s drops %s!", glyph, it.Name))
			}
		}
	}
}

// tryPickupLocked picks up a ground item at the player's position.
func (s *Server) tryPickupLocked(sess *Session) {
	posComp := s.world.Get(sess.PlayerID, component.CPosition)
	if posComp == nil {
		return
	}
	pos := posComp.(component.Position)

	for _, itemID := range s.world.Query(component.CGroundItem, component.CPosition) {
		ipos := s.world.Get(itemID, component.CPosition).(component.Position)
		if ipos.X != pos.X || ipos.Y != pos.Y {
			continue
		}
		it := s.world.Get(itemID, component.CGroundItem).(component.GroundItem).Item

		invComp := s.world.Get(sess.PlayerID, component.CInventory)
		if invComp == nil {
			return
		}
		inv := invComp.(component.Inventory)
		if len(inv.Backpack) >= inv.Capacity {
			sess.AddMessage("Backpack full! Drop something first.")
			return
		}
		inv.Backpack = append(inv.Backpack, it)
		s.world.Add(sess.PlayerID, inv)
		s.world.Destroy(itemID)
		sess.AddMessage(fmt.Sprintf("You pick up %s. [i] to open inventory.", it.Name))
		return
	}
	sess.AddMessage("Nothing to pick up here.")
}

// ─── Death and Respawn ───────────────────────────────────────────────────────

// handlePlayerDeathLocked runs soulbound enforcement for a dying player and
// starts the respawn countdown. Caller must hold s.mu.
func (s *Server) handlePlayerDeathLocked(sess *Session) {
	globalMessage(s.sessions, fmt.Sprintf("💀 %s has fallen!", sess.Name))

	var pos component.Position
	if pc := s.world.Get(sess.PlayerID, component.CPosition); pc != nil {
		pos = pc.(component.Position)
	}
	var inv component.Inventory
	if ic := s.world.Get(sess.PlayerID, component.CInventory); ic != nil {
		inv = ic.(component.Inventory)
	}

	if s.cfg.KeepInventory {
		s.enforceKeepInventoryDeath(sess, &inv)
	} else {
		s.enforceDropInventoryDeath(sess, inv, pos)
	}

	s.world.Destroy(sess.PlayerID)
	sess.PlayerID = ecs.NilEntity
	sess.SetDeathCountdown(DeathTicks)
}

// enforceKeepInventoryDeath clears soulbound slots from the retained
// inventory and parks the survivors on the session for respawn.
func (s *Server) enforceKeepInventoryDeath(sess *Session, inv *component.Inventory) {
	slots := inv.Slots()
	items := make([]item.Item, len(slots))
	for i, p := range slots {
		items[i] = *p
	}
	s.auditSoulboundItems(sess.Name, EventDeathDestroyed, items)

	out := soulbound.EnforceDeath(soulbound.KeepInventoryDeath{Slots: items})

	for i, p := range slots {
		*p = items[i]
	}
	inv.CompactBackpack()
	sess.keptInventory = inv
	sess.AddMessage(out.Message)
}

// enforceDropInventoryDeath converts the inventory into a pending drop list,
// lets the rules strip soulbound entries, and spawns only the survivors.
func (s *Server) enforceDropInventoryDeath(sess *Session, inv component.Inventory, pos component.Position) {
	drops := inv.Contents()
	s.auditSoulboundItems(sess.Name, EventDeathDestroyed, drops)

	out := soulbound.EnforceDeath(soulbound.DropInventoryDeath{Drops: drops})

	for _, it := range drops {
		if !it.IsEmpty() {
			factory.NewGroundItem(s.world, it, pos.X, pos.Y)
		}
	}
	sess.keptInventory = nil
	sess.AddMessage(out.Message)
}

// respawnLocked returns a dead session to the spawn room.
// Caller must hold s.mu.
func (s *Server) respawnLocked(sess *Session) {
	sess.AddMessage("You wake at the Barrow mouth...")
	s.spawnPlayerLocked(sess)
}

// spawnPlayerLocked creates a player entity for the session.
// Caller must hold s.mu.
func (s *Server) spawnPlayerLocked(sess *Session) {
	sx, sy := s.findFreeSpawn(s.spawnX, s.spawnY)
	sess.PlayerID = factory.NewPlayer(s.world, sx, sy)

	// Apply the session's assigned color.
	if rend := s.world.Get(sess.PlayerID, component.CRenderable); rend != nil {
		r := rend.(component.Renderable)
		r.FGColor = sess.Color
		s.world.Add(sess.PlayerID, r)
	}

	// Restore a keep-inventory corpse's items.
	if sess.keptInventory != nil {
		s.world.Add(sess.PlayerID, *sess.keptInventory)
		sess.keptInventory = nil
		s.recalcMaxHPLocked(sess)
	}

	sess.Renderer = render.NewRenderer(sess.Screen)
	sess.Renderer.CenterOn(sx, sy)
}

// recalcMaxHPLocked reapplies equipment max-HP bonuses after inventory changes.
func (s *Server) recalcMaxHPLocked(sess *Session) {
	invComp := s.world.Get(sess.PlayerID, component.CInventory)
	hpComp := s.world.Get(sess.PlayerID, component.CHealth)
	if invComp == nil || hpComp == nil {
		return
	}
	hp := hpComp.(component.Health)
	hp.Max = factory.PlayerMaxHP + invComp.(component.Inventory).BonusMaxHP()
	if hp.Max < 1 {
		hp.Max = 1
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
	s.world.Add(sess.PlayerID, hp)
}

// respawnEnemiesLocked spawns a partial enemy wave once the dungeon has been
// cleared. Caller must hold s.mu.
func (s *Server) respawnEnemiesLocked() {
	if len(s.gmap.Rooms) == 0 || len(assets.EnemyTable) == 0 {
		return
	}
	rooms := s.gmap.Rooms
	if len(rooms) > 1 {
		rooms = rooms[1:] // keep the spawn room clear
	}
	budget := 10
	for attempts := 0; budget > 0 && attempts < 30; attempts++ {
		entry := assets.EnemyTable[s.rng.Intn(len(assets.EnemyTable))]
		if entry.ThreatCost > budget {
			continue
		}
		cx, cy := rooms[s.rng.Intn(len(rooms))].Center()
		factory.NewEnemy(s.world, entry, cx, cy)
		budget -= entry.ThreatCost
	}
	globalMessage(s.sessions, "🌑 The Barrow stirs. New shapes move in the dark...")
}

// ─── Per-session rendering ───────────────────────────────────────────────────

// RenderSession renders the current world state to a session's screen.
// Must be called while holding s.mu.
func (s *Server) RenderSession(sess *Session) {
	if sess.Renderer == nil {
		return
	}
	if sess.GetDeathCountdown() > 0 {
		drawDeathScreen(sess, sess.GetDeathCountdown())
		return
	}

	if pos := s.world.Get(sess.PlayerID, component.CPosition); pos != nil {
		p := pos.(component.Position)
		sess.Renderer.CenterOn(p.X, p.Y)
	}
	sess.Renderer.DrawFrame(s.world, s.gmap)

	name := fmt.Sprintf("%s · %d online", sess.Name, len(s.sessions))
	sess.Renderer.DrawHUD(s.world, sess.PlayerID, name, sess.Messages)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// livePlayerIDsLocked collects the entity IDs of all live players.
func (s *Server) livePlayerIDsLocked() []ecs.EntityID {
	var ids []ecs.EntityID
	for _, sess := range s.sessions {
		if sess.GetDeathCountdown() == 0 && sess.PlayerID != ecs.NilEntity {
			ids = append(ids, sess.PlayerID)
		}
	}
	return ids
}

func (s *Server) sessionByPlayerID(pid ecs.EntityID) *Session {
	for _, sess := range s.sessions {
		if sess.PlayerID == pid {
			return sess
		}
	}
	return nil
}

func (s *Server) isPlayerEntity(id ecs.EntityID) bool {
	return s.world.Has(id, component.CTagPlayer)
}

func entityGlyph(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CRenderable)
	if c == nil {
		return "creature"
	}
	return c.(component.Renderable).Glyph
}

// findFreeSpawn returns the nearest walkable cell to (x, y) not occupied by
// another player.
func (s *Server) findFreeSpawn(x, y int) (int, int) {
	occupied := func(tx, ty int) bool {
		if !s.gmap.IsWalkable(tx, ty) {
			return true
		}
		for _, sess := range s.sessions {
			if sess.PlayerID == ecs.NilEntity {
				continue
			}
			if pos := s.world.Get(sess.PlayerID, component.CPosition); pos != nil {
				p := pos.(component.Position)
				if p.X == tx && p.Y == ty {
					return true
				}
			}
		}
		return false
	}
	if !occupied(x, y) {
		return x, y
	}
	for r := 1; r <= 10; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if !occupied(x+dx, y+dy) {
					return x + dx, y + dy
				}
			}
		}
	}
	return x, y // final fallback
}

// globalMessage broadcasts a message to all sessions.
func globalMessage(sessions []*Session, msg string) {
	for _, s := range sessions {
		s.AddMessage(msg)
	}
}
