package mud

import (
	"fmt"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/factory"
	"soulbound-mud/internal/item"
	"soulbound-mud/internal/soulbound"

	"github.com/gdamore/tcell/v2"
)

// RunInventory opens the blocking inventory UI for a session.
// eventCh supplies keyboard events from the session's input goroutine.
// Works on a local copy of the inventory; writes back to the ECS on exit.
func (s *Server) RunInventory(sess *Session, eventCh <-chan tcell.Event) {
	s.mu.Lock()
	invComp := s.world.Get(sess.PlayerID, component.CInventory)
	if invComp == nil {
		s.mu.Unlock()
		return
	}
	inv := invComp.(component.Inventory)
	// Snapshot identity at open: if the player dies while the modal is up,
	// the stale local copy is discarded instead of resurrecting items.
	snapshotPlayer := sess.PlayerID
	s.mu.Unlock()

	panel := 0 // 0 = backpack, 1 = equipment
	cursor := 0
	statusMsg := ""

	clamp := func() {
		max := len(inv.Backpack) - 1
		if panel == 1 {
			max = 4
		}
		if cursor > max {
			cursor = max
		}
		if cursor < 0 {
			cursor = 0
		}
	}

	save := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sess.PlayerID != snapshotPlayer {
			return
		}
		s.world.Add(sess.PlayerID, inv)
		s.recalcMaxHPLocked(sess)
	}

	for {
		clamp()
		drawInvScreen(sess, inv, panel, cursor, statusMsg)

		ev, ok := <-eventCh
		if !ok || ev == nil {
			save()
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			sess.Screen.Sync()
		case *tcell.EventKey:
			statusMsg = ""
			switch ev.Key() {
			case tcell.KeyEscape:
				save()
				return
			case tcell.KeyTab:
				panel = 1 - panel
				cursor = 0
			case tcell.KeyUp:
				cursor--
			case tcell.KeyDown:
				cursor++
			case tcell.KeyEnter:
				statusMsg = invEquipOrUnequip(&inv, panel, cursor)
			default:
				switch ev.Rune() {
				case 'k', 'K':
					cursor--
				case 'j', 'J':
					cursor++
				case 'e', 'E':
					statusMsg = invEquipOrUnequip(&inv, panel, cursor)
				case 'u', 'U':
					statusMsg = s.invUseConsumable(sess, &inv, panel, cursor)
				case 'd', 'D':
					statusMsg = s.invDrop(sess, &inv, panel, &cursor)
				case 'b', 'B':
					statusMsg = s.invBind(sess, &inv, panel, cursor)
				case 'i', 'I', 'q', 'Q':
					save()
					return
				default:
					if ev.Rune() >= '1' && ev.Rune() <= '9' {
						idx := int(ev.Rune()-'0') - 1
						if idx < len(inv.Backpack) {
							panel = 0
							cursor = idx
						}
					}
				}
			}
		}
	}
}

// invUseConsumable drinks/eats the selected backpack item and heals the player.
func (s *Server) invUseConsumable(sess *Session, inv *component.Inventory, panel, cursor int) string {
	if panel != 0 {
		return "Select a backpack item to use."
	}
	if cursor < 0 || cursor >= len(inv.Backpack) {
		return "Nothing selected."
	}
	it := inv.Backpack[cursor]
	if it.Slot != item.SlotConsumable {
		return "Equipment must be equipped, not used."
	}
	inv.Backpack = removeAt(inv.Backpack, cursor)

	s.mu.Lock()
	if hpComp := s.world.Get(sess.PlayerID, component.CHealth); hpComp != nil {
		hp := hpComp.(component.Health)
		hp.Current += it.HealHP
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		s.world.Add(sess.PlayerID, hp)
	}
	s.mu.Unlock()
	return fmt.Sprintf("Used %s (+%d HP).", it.Name, it.HealHP)
}

// invDrop removes the selected item from the local inventory copy, then asks
// the soulbound rules whether it hits the ground or is destroyed. Either way
// it is gone from the inventory.
func (s *Server) invDrop(sess *Session, inv *component.Inventory, panel int, cursor *int) string {
	var it item.Item
	if panel == 0 {
		if *cursor < 0 || *cursor >= len(inv.Backpack) {
			return "Nothing selected."
		}
		it = inv.Backpack[*cursor]
		inv.Backpack = removeAt(inv.Backpack, *cursor)
		if *cursor >= len(inv.Backpack) && *cursor > 0 {
			(*cursor)--
		}
	} else {
		slot := equipSlotRef(inv, *cursor)
		if slot == nil {
			return "Invalid slot."
		}
		if slot.IsEmpty() {
			return "Nothing equipped here."
		}
		it, *slot = *slot, item.Item{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := soulbound.EnforceDrop(soulbound.DropEvent{Item: it, Player: sess.Name})
	if out.Destroy {
		s.audit.Record(EventDropDestroyed, sess.Name, it.Name)
		return out.Message
	}

	posComp := s.world.Get(sess.PlayerID, component.CPosition)
	if posComp == nil {
		return "Cannot drop here."
	}
	pos := posComp.(component.Position)
	factory.NewGroundItem(s.world, it, pos.X, pos.Y)
	return fmt.Sprintf("Dropped %s.", it.Name)
}

// invBind marks the selected item as soulbound, subject to the bind rules.
func (s *Server) invBind(sess *Session, inv *component.Inventory, panel, cursor int) string {
	var slot *item.Item
	if panel == 0 {
		if cursor < 0 || cursor >= len(inv.Backpack) {
			return "Nothing selected."
		}
		slot = &inv.Backpack[cursor]
	} else {
		slot = equipSlotRef(inv, cursor)
		if slot == nil {
			return "Invalid slot."
		}
	}

	out := soulbound.EvaluateBind(soulbound.BindRequest{
		SenderIsPlayer: true,
		HasPermission:  sess.CanBind,
		Held:           *slot,
	})
	if out.Bound {
		*slot = out.Item
		s.audit.Record(EventBound, sess.Name, out.Item.Name)
	}
	return out.Message
}

// ─── inventory manipulation helpers ──────────────────────────────────────────

// equipSlotRef maps an equipment-panel cursor to the inventory field.
func equipSlotRef(inv *component.Inventory, cursor int) *item.Item {
	switch cursor {
	case 0:
		return &inv.Head
	case 1:
		return &inv.Body
	case 2:
		return &inv.Feet
	case 3:
		return &inv.MainHand
	case 4:
		return &inv.OffHand
	}
	return nil
}

func invEquipOrUnequip(inv *component.Inventory, panel, cursor int) string {
	if panel == 0 {
		if cursor < 0 || cursor >= len(inv.Backpack) {
			return "Nothing selected."
		}
		if inv.Backpack[cursor].Slot == item.SlotConsumable {
			return "Press [u] to use consumables."
		}
		return invEquip(inv, cursor)
	}
	return invUnequip(inv, cursor)
}

func invEquip(inv *component.Inventory, cursor int) string {
	it := inv.Backpack[cursor]
	swap := func(dst *item.Item) string {
		old := *dst
		inv.Backpack = removeAt(inv.Backpack, cursor)
		*dst = it
		if !old.IsEmpty() {
			inv.Backpack = append(inv.Backpack, old)
		}
		return fmt.Sprintf("Equipped %s.", it.Name)
	}

	switch it.Slot {
	case item.SlotHead:
		return swap(&inv.Head)
	case item.SlotBody:
		return swap(&inv.Body)
	case item.SlotFeet:
		return swap(&inv.Feet)
	case item.SlotOneHand:
		return swap(&inv.MainHand)
	case item.SlotOffHand:
		if inv.MainHand.Slot == item.SlotTwoHand && !inv.MainHand.IsEmpty() {
			return "Two-handed weapon occupies the off-hand slot."
		}
		return swap(&inv.OffHand)
	case item.SlotTwoHand:
		extra := 0
		if !inv.MainHand.IsEmpty() {
			extra++
		}
		if !inv.OffHand.IsEmpty() {
			extra++
		}
		if len(inv.Backpack)-1+extra > inv.Capacity {
			return "Not enough backpack space to swap."
		}
		inv.Backpack = removeAt(inv.Backpack, cursor)
		if !inv.OffHand.IsEmpty() {
			inv.Backpack = append(inv.Backpack, inv.OffHand)
			inv.OffHand = item.Item{}
		}
		if !inv.MainHand.IsEmpty() {
			inv.Backpack = append(inv.Backpack, inv.MainHand)
		}
		inv.MainHand = it
		return fmt.Sprintf("Equipped %s (two-handed).", it.Name)
	}
	return "Cannot equip that."
}

func invUnequip(inv *component.Inventory, cursor int) string {
	if len(inv.Backpack) >= inv.Capacity {
		return "Backpack full! Drop something first."
	}
	slot := equipSlotRef(inv, cursor)
	if slot == nil {
		return "Invalid slot."
	}
	if slot.IsEmpty() {
		return "Nothing equipped here."
	}
	it := *slot
	*slot = item.Item{}
	inv.Backpack = append(inv.Backpack, it)
	return fmt.Sprintf("Unequipped %s.", it.Name)
}

func removeAt(s []item.Item, i int) []item.Item {
	out := make([]item.Item, len(s)-1)
	copy(out, s[:i])
	copy(out[i:], s[i+1:])
	return out
}

func formatBonuses(it item.Item) string {
	if it.BonusATK == 0 && it.BonusDEF == 0 && it.BonusMaxHP == 0 {
		return ""
	}
	s := " ("
	if it.BonusATK != 0 {
		s += fmt.Sprintf("ATK%+d", it.BonusATK)
	}
	if it.BonusDEF != 0 {
		if len(s) > 2 {
			s += " "
		}
		s += fmt.Sprintf("DEF%+d", it.BonusDEF)
	}
	if it.BonusMaxHP != 0 {
		if len(s) > 2 {
			s += " "
		}
		s += fmt.Sprintf("HP%+d", it.BonusMaxHP)
	}
	return s + ")"
}

func slotLabel(slot item.Slot) string {
	switch slot {
	case item.SlotHead:
		return "Head"
	case item.SlotBody:
		return "Body"
	case item.SlotFeet:
		return "Feet"
	case item.SlotOneHand:
		return "Main Hand"
	case item.SlotTwoHand:
		return "Two-Handed"
	case item.SlotOffHand:
		return "Off-Hand"
	}
	return "Consumable"
}

// ─── draw ─────────────────────────────────────────────────────────────────────

func drawInvScreen(sess *Session, inv component.Inventory, panel, cursor int, statusMsg string) {
	screen := sess.Screen
	screen.Clear()
	sw, _ := screen.Size()
	mid := sw / 2
	if mid < 30 {
		mid = 30
	}

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	cyan := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	purple := tcell.StyleDefault.Foreground(tcell.ColorPurple)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	put := func(x, y int, s string, style tcell.Style) { putText(screen, x, y, s, style) }

	title := fmt.Sprintf("INVENTORY  [Backpack %d/%d]", len(inv.Backpack), inv.Capacity)
	put(0, 0, title, yellow)
	hints := "[j/k] Move  [Tab] Switch  [e] Equip  [u] Use  [d] Drop  [b] Soulbind  [Esc] Close"
	if len([]rune(hints)) < sw {
		put(sw-len([]rune(hints)), 0, hints, dim)
	}
	for x := 0; x < sw; x++ {
		screen.SetContent(x, 1, '─', nil, gray)
	}
	put(0, 2, "── EQUIPPED ──────────────────", white)
	put(mid, 2, "── BACKPACK ─────────────────", white)
	for y := 2; y <= 12; y++ {
		screen.SetContent(mid-1, y, '│', nil, gray)
	}

	equipSlots := []struct {
		label string
		item  item.Item
	}{
		{"HEAD ", inv.Head}, {"BODY ", inv.Body}, {"FEET ", inv.Feet},
		{"WEAP ", inv.MainHand}, {"OFHND", inv.OffHand},
	}
	for i, slot := range equipSlots {
		row := 3 + i
		sel := panel == 1 && cursor == i
		style := white
		pfx := "  "
		if sel {
			style = highlight
			pfx = "► "
		}
		itemStr := "--"
		if !slot.item.IsEmpty() {
			itemStr = slot.item.Glyph + " " + slot.item.Name + formatBonuses(slot.item) + boundTag(slot.item)
		}
		put(0, row, fmt.Sprintf("%s%s %s", pfx, slot.label, itemStr), style)
	}

	put(0, 8, fmt.Sprintf("  Equip bonus: ATK%+d DEF%+d HP%+d",
		inv.BonusATK(), inv.BonusDEF(), inv.BonusMaxHP()), cyan)

	for i, it := range inv.Backpack {
		row := 3 + i
		if row > 10 {
			break
		}
		sel := panel == 0 && cursor == i
		style := white
		pfx := "  "
		if sel {
			style = highlight
			pfx = "► "
		}
		tag := ""
		if it.Slot == item.SlotConsumable {
			tag = " [use]"
		}
		put(mid, row, fmt.Sprintf("%s[%d] %s %s%s%s%s", pfx, i+1, it.Glyph, it.Name, formatBonuses(it), tag, boundTag(it)), style)
	}
	if len(inv.Backpack) == 0 {
		put(mid, 3, "  (empty)", dim)
	}

	for x := 0; x < sw; x++ {
		screen.SetContent(x, 11, '─', nil, gray)
	}

	var selItem item.Item
	selEmpty := true
	if panel == 0 && cursor < len(inv.Backpack) {
		selItem = inv.Backpack[cursor]
		selEmpty = false
	} else if panel == 1 {
		if slot := equipSlotRef(&inv, cursor); slot != nil {
			selItem = *slot
		}
		selEmpty = selItem.IsEmpty()
	}
	if !selEmpty {
		put(0, 12, fmt.Sprintf("%s — %s  ATK%+d DEF%+d MaxHP%+d",
			selItem.Name, slotLabel(selItem.Slot), selItem.BonusATK, selItem.BonusDEF, selItem.BonusMaxHP), white)
		// Lore lines, soulbound marker included, shown dimmed under the stats.
		loreX := 0
		for _, line := range selItem.Lore {
			if line == "" {
				continue
			}
			style := dim
			if line == soulbound.Marker {
				style = purple
			}
			put(loreX, 13, line+"  ", style)
			loreX += len([]rune(line)) + 2
		}
	}
	if statusMsg != "" {
		put(0, 14, statusMsg, green)
	}
	screen.Show()
}

// boundTag renders the soulbound marker on item lines.
func boundTag(it item.Item) string {
	if soulbound.IsSoulbound(it) {
		return " 🔮"
	}
	return ""
}
