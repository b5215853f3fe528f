package chat

import "strings"

// RoomSeparator joins the two participant uids into a room identifier.
const RoomSeparator = "-"

// RoomID derives the canonical room identifier for an unordered pair of
// participants: the two uids sorted lexicographically and joined with the
// separator. RoomID(a, b) == RoomID(b, a) for all pairs.
func RoomID(uid1, uid2 string) string {
	if uid1 > uid2 {
		uid1, uid2 = uid2, uid1
	}
	return uid1 + RoomSeparator + uid2
}

// Counterpart extracts the other participant's uid from a room identifier.
// Returns "" when uid is not a component of the room.
func Counterpart(roomID, uid string) string {
	if other, ok := strings.CutPrefix(roomID, uid+RoomSeparator); ok {
		return other
	}
	if other, ok := strings.CutSuffix(roomID, RoomSeparator+uid); ok {
		return other
	}
	return ""
}
