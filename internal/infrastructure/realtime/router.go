package realtime

import (
	"errors"
	"sync"
)

// roomCapacity is the hard limit of handles in a private conversation room.
// One-to-one chat: the two participants, nobody else.
const roomCapacity = 2

// ErrRoomFull is returned by JoinRoom when a conversation room already holds
// both participants. The handle is not added to any room on rejection.
var ErrRoomFull = errors.New("realtime: room is full")

// Router is the process-wide participant tracker. It owns the mapping from
// room identifiers to the live connection handles joined to each room and
// supports fan-out to a room as well as addressed delivery to a single user.
//
// Conversation rooms joined via JoinRoom enforce the two-party capacity;
// session rooms joined via JoinSession (user-scoped notification channels)
// have no cap. The Router is constructed once in main and injected wherever
// realtime delivery is needed; Detach removes a handle from every room it
// joined so membership always reflects live connections.
type Router struct {
	mu           sync.RWMutex
	sessions     map[string]*Connection            // connection ID -> connection
	userSessions map[string]string                 // userID -> connection ID
	rooms        map[string]map[string]*Connection // roomID -> connection ID -> connection
	sessionRooms map[string]map[string]struct{}    // connection ID -> set of roomIDs
}

// NewRouter constructs an initialized Router.
func NewRouter() *Router {
	return &Router{
		sessions:     make(map[string]*Connection),
		userSessions: make(map[string]string),
		rooms:        make(map[string]map[string]*Connection),
		sessionRooms: make(map[string]map[string]struct{}),
	}
}

// Attach registers a connection for the given user. If a previous session exists,
// it is removed and closed after the swap to enforce one active socket per user.
func (r *Router) Attach(conn *Connection) {
	var previous *Connection

	r.mu.Lock()
	if existingID, ok := r.userSessions[conn.UserID]; ok {
		if existing := r.sessions[existingID]; existing != nil {
			previous = existing
			r.detachLocked(existingID)
		}
	}

	r.sessions[conn.ID] = conn
	r.userSessions[conn.UserID] = conn.ID
	r.sessionRooms[conn.ID] = make(map[string]struct{})
	r.mu.Unlock()

	conn.Start()

	if previous != nil {
		previous.Close(4001, "session replaced")
	}
}

// Detach removes a connection and its room memberships if it is still tracked.
func (r *Router) Detach(conn *Connection) {
	r.mu.Lock()
	r.detachLocked(conn.ID)
	r.mu.Unlock()
}

// JoinRoom adds the connection to a private conversation room, enforcing the
// two-party capacity. Joining a room the connection is already a member of is
// a no-op and always succeeds.
func (r *Router) JoinRoom(roomID string, conn *Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[conn.ID]; !ok {
		return errors.New("realtime: connection not attached")
	}

	room := r.rooms[roomID]
	if _, member := room[conn.ID]; member {
		return nil
	}
	if len(room) >= roomCapacity {
		return ErrRoomFull
	}

	r.joinLocked(roomID, conn)
	return nil
}

// JoinSession adds the connection to an arbitrary named room with no capacity
// limit. Used for user-scoped notification channels keyed by uid.
func (r *Router) JoinSession(roomID string, conn *Connection) {
	r.mu.Lock()
	if _, ok := r.sessions[conn.ID]; ok {
		r.joinLocked(roomID, conn)
	}
	r.mu.Unlock()
}

// RoomSize reports the number of handles currently joined to the room.
func (r *Router) RoomSize(roomID string) int {
	r.mu.RLock()
	n := len(r.rooms[roomID])
	r.mu.RUnlock()
	return n
}

// Broadcast writes payload to every handle joined to the room and returns the
// number of successful deliveries. The sender is not excluded; clients filter
// by the event tag carried in the payload.
func (r *Router) Broadcast(roomID string, payload []byte) int {
	r.mu.RLock()
	room := r.rooms[roomID]
	if len(room) == 0 {
		r.mu.RUnlock()
		return 0
	}

	delivered := 0
	for _, conn := range room {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	r.mu.RUnlock()
	return delivered
}

// SendToUser delivers payload to the given user's handle inside the room.
// Returns false when the user has no handle joined to that room.
func (r *Router) SendToUser(roomID string, userID string, payload []byte) bool {
	r.mu.RLock()
	var target *Connection
	for _, conn := range r.rooms[roomID] {
		if conn.UserID == userID {
			target = conn
			break
		}
	}
	r.mu.RUnlock()
	if target == nil {
		return false
	}
	return target.Send(payload) == nil
}

// NotifyUser delivers payload to the current connection of the given user,
// regardless of room membership.
func (r *Router) NotifyUser(userID string, payload []byte) bool {
	r.mu.RLock()
	sessionID, ok := r.userSessions[userID]
	if !ok {
		r.mu.RUnlock()
		return false
	}
	conn := r.sessions[sessionID]
	r.mu.RUnlock()
	if conn == nil {
		return false
	}
	return conn.Send(payload) == nil
}

// Close terminates all tracked connections and clears router state.
func (r *Router) Close() {
	r.mu.Lock()
	sessions := make([]*Connection, 0, len(r.sessions))
	for _, conn := range r.sessions {
		sessions = append(sessions, conn)
	}
	r.sessions = make(map[string]*Connection)
	r.userSessions = make(map[string]string)
	r.rooms = make(map[string]map[string]*Connection)
	r.sessionRooms = make(map[string]map[string]struct{})
	r.mu.Unlock()

	for _, conn := range sessions {
		conn.Close(1001, "router shutdown")
	}
}

func (r *Router) joinLocked(roomID string, conn *Connection) {
	room := r.rooms[roomID]
	if room == nil {
		room = make(map[string]*Connection)
		r.rooms[roomID] = room
	}
	room[conn.ID] = conn

	memberships := r.sessionRooms[conn.ID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		r.sessionRooms[conn.ID] = memberships
	}
	memberships[roomID] = struct{}{}
}

func (r *Router) detachLocked(sessionID string) {
	conn, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	delete(r.sessions, sessionID)

	if current, ok := r.userSessions[conn.UserID]; ok && current == sessionID {
		delete(r.userSessions, conn.UserID)
	}

	for roomID := range r.sessionRooms[sessionID] {
		r.leaveLocked(roomID, sessionID)
	}
	delete(r.sessionRooms, sessionID)
}

func (r *Router) leaveLocked(roomID string, sessionID string) {
	if sessionID == "" {
		return
	}
	room := r.rooms[roomID]
	if room == nil {
		return
	}
	delete(room, sessionID)
	if len(room) == 0 {
		delete(r.rooms, roomID)
	}
	if memberships, ok := r.sessionRooms[sessionID]; ok {
		delete(memberships, roomID)
		if len(memberships) == 0 {
			delete(r.sessionRooms, sessionID)
		}
	}
}
