package soulbound

import "soulbound-mud/internal/item"

// User-facing command responses. Triggering conditions are the contract;
// the wording is presentation.
const (
	MsgBound        = "🔮 Soulbound that item!"
	MsgAlreadyBound = "That item is already soulbound."
	MsgCannotBind   = "Cannot soulbind that item."
	MsgNotPlayer    = "You must be a player to use this command."
	MsgNoPermission = "You don't have permission to soulbind items."
)

// BindRequest is one invocation of the bind command, reduced to the facts
// the rule needs. The host fills it in from whatever sender/permission model
// it has.
type BindRequest struct {
	SenderIsPlayer bool
	HasPermission  bool
	Held           item.Item // the item in the sender's hand; zero if none
}

// BindOutcome is the command's result. When Bound is true, Item carries the
// newly marked item for the host to write back; otherwise Item is the held
// item unchanged.
type BindOutcome struct {
	Bound   bool
	Item    item.Item
	Message string
}

// EvaluateBind runs the bind command checks in order: interactive player,
// permission, a non-empty hand, a non-stackable item (only unique gear may
// be bound — stackable commodities are excluded), and not already bound.
// Every rejection is a message, never an error. On success the returned
// item carries the marker.
func EvaluateBind(req BindRequest) BindOutcome {
	switch {
	case !req.SenderIsPlayer:
		return BindOutcome{Item: req.Held, Message: MsgNotPlayer}
	case !req.HasPermission:
		return BindOutcome{Item: req.Held, Message: MsgNoPermission}
	case req.Held.IsEmpty() || req.Held.Stackable():
		return BindOutcome{Item: req.Held, Message: MsgCannotBind}
	case IsSoulbound(req.Held):
		return BindOutcome{Item: req.Held, Message: MsgAlreadyBound}
	}
	return BindOutcome{Bound: true, Item: Bind(req.Held), Message: MsgBound}
}
