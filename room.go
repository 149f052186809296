package main

import (
	"encoding/json"
	"fmt"
	"log"
)

const (
	ColorWhite = "white"
	ColorBlack = "black"
)

// Room pairs up to two connections for one game. The server carries turn
// metadata but never enforces it; move payloads are opaque.
type Room struct {
	ID      string
	Players map[string]string // connection id -> assigned color
	Turn    string
}

func opponentColor(color string) string {
	if color == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// randomRoomID derives a room id for a random pairing from the two
// connection ids, waiting player first. Deterministic for a given pair.
func randomRoomID(waitingID, joinerID string) string {
	return fmt.Sprintf("room-%s-%s", waitingID, joinerID)
}

// roomFor finds the room containing connID as a player, or nil.
func (h *Hub) roomFor(connID string) *Room {
	for _, room := range h.rooms {
		if _, ok := room.Players[connID]; ok {
			return room
		}
	}
	return nil
}

func (h *Hub) handleJoinGame(c *Client, payload json.RawMessage) {
	var join JoinGamePayload
	if err := json.Unmarshal(payload, &join); err != nil {
		log.Printf("error unmarshalling joinGame payload: %v", err)
		return
	}
	if join.IsPrivateRoom && join.Room != "" {
		h.joinPrivate(join.Room, c.ID)
	} else {
		h.requestRandomMatch(c.ID)
	}
}

// joinPrivate creates the room on first join and starts the game on the
// second. A third joiner is rejected; the original seat assignment stands.
func (h *Hub) joinPrivate(roomID, connID string) {
	room, ok := h.rooms[roomID]
	if !ok {
		h.rooms[roomID] = &Room{
			ID:      roomID,
			Players: map[string]string{connID: ColorWhite},
			Turn:    ColorWhite,
		}
		log.Printf("[ROOM] Room %s created. Player %s waiting as white.", roomID, connID)
		h.send(connID, encode("waitingForPlayer", nil))
		return
	}
	if len(room.Players) >= 2 {
		log.Printf("[ROOM] Room %s is full. Rejecting player %s.", roomID, connID)
		h.send(connID, encode("roomFull", RoomFullPayload{Room: roomID}))
		return
	}
	room.Players[connID] = ColorBlack
	h.startGame(room)
}

// startGame tells each player the room id and its assigned color, exactly
// once per player. Delivery order between the two is not significant.
func (h *Hub) startGame(room *Room) {
	log.Printf("[ROOM] Starting game in room %s", room.ID)
	for connID, color := range room.Players {
		h.send(connID, encode("startGame", StartGamePayload{Room: room.ID, Color: color}))
	}
}

// handleMove relays the payload verbatim to every participant except the
// sender. Moves for an unknown room are dropped, the game already ended.
func (h *Hub) handleMove(c *Client, payload json.RawMessage) {
	var move MovePayload
	if err := json.Unmarshal(payload, &move); err != nil {
		log.Printf("error unmarshalling move payload: %v", err)
		return
	}
	room, ok := h.rooms[move.Room]
	if !ok {
		return
	}
	room.Turn = opponentColor(room.Turn)
	relayed := encode("move", payload)
	for connID := range room.Players {
		if connID == c.ID {
			continue
		}
		h.send(connID, relayed)
	}
}

func (h *Hub) handleGameOver(c *Client, payload json.RawMessage) {
	var over GameOverPayload
	if err := json.Unmarshal(payload, &over); err != nil {
		log.Printf("error unmarshalling gameOver payload: %v", err)
		return
	}
	room, ok := h.rooms[over.Room]
	if !ok {
		return
	}
	h.endGame(room, over.Winner)
}

// handleLossReport ends the room for the timeout and forfeit events, both
// of which report the loser; the winner is the opposite color.
func (h *Hub) handleLossReport(event string, payload json.RawMessage) {
	var report LossReportPayload
	if err := json.Unmarshal(payload, &report); err != nil {
		log.Printf("error unmarshalling %s payload: %v", event, err)
		return
	}
	room, ok := h.rooms[report.Room]
	if !ok {
		return
	}
	log.Printf("[ROOM] %s in room %s. Loser: %s", event, room.ID, report.Loser)
	h.endGame(room, opponentColor(report.Loser))
}

// endGame notifies every participant of the winner and removes the room.
// Terminal events arriving after removal never reach here, so a duplicate
// end is a no-op.
func (h *Hub) endGame(room *Room, winner string) {
	outcome := encode("gameOver", WinnerPayload{Winner: winner})
	for connID := range room.Players {
		h.send(connID, outcome)
	}
	delete(h.rooms, room.ID)
	log.Printf("[ROOM] Room %s removed. Winner: %s", room.ID, winner)
}
