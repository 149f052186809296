package main

import (
	"log"
)

// requestRandomMatch runs the capacity-1 matchmaking slot. An empty slot is
// taken by the caller; an occupied one pairs the two immediately, waiting
// player as white. A third arrival can never queue behind the second.
func (h *Hub) requestRandomMatch(connID string) {
	if h.waitingID == "" {
		h.waitingID = connID
		log.Printf("[MATCH] Player %s waiting for a random opponent.", connID)
		h.send(connID, encode("waitingForPlayer", nil))
		return
	}
	if h.waitingID == connID {
		// already in the slot, nothing to do until an opponent arrives
		return
	}

	waitingID := h.waitingID
	h.waitingID = ""

	room := &Room{
		ID: randomRoomID(waitingID, connID),
		Players: map[string]string{
			waitingID: ColorWhite,
			connID:    ColorBlack,
		},
		Turn: ColorWhite,
	}
	h.rooms[room.ID] = room
	log.Printf("[MATCH] Match found! Pairing %s (white) and %s (black) in room %s", waitingID, connID, room.ID)
	h.startGame(room)
}

// cancelWaiting vacates the slot if connID holds it. Idempotent.
func (h *Hub) cancelWaiting(connID string) bool {
	if h.waitingID != connID {
		return false
	}
	h.waitingID = ""
	return true
}
