package main

import (
	"log"
)

type inboundEvent struct {
	client  *Client
	message Message
}

// Hub is the single event-processing stream. It exclusively owns the client
// registry, the room registry and the matchmaking slot; every connection
// event runs to completion on the run goroutine before the next one, so no
// other locking is needed.
type Hub struct {
	clients   map[string]*Client
	rooms     map[string]*Room
	waitingID string

	// connections dropped by send mid-event, awaiting disconnect cleanup
	evicted []string

	register   chan *Client
	unregister chan *Client
	inbound    chan *inboundEvent
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan *inboundEvent),
	}
}

func (h *Hub) run() {
	log.Println("[HUB] Hub is running...")
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client
			log.Printf("[HUB] Client %s registered. Total clients: %d", client.ID, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				log.Printf("[HUB] Unregistering client %s", client.ID)
				h.handleDisconnect(client.ID)
				// the disconnect fan-out may itself have evicted this
				// client; its channel is only closed once
				if _, ok := h.clients[client.ID]; ok {
					delete(h.clients, client.ID)
					close(client.send)
				}
				log.Printf("[HUB] Client %s connection closed. Total clients: %d", client.ID, len(h.clients))
			}

		case ev := <-h.inbound:
			h.dispatch(ev.client, ev.message)
		}

		h.reapEvicted()
	}
}

// reapEvicted runs disconnect cleanup for connections dropped by send. It
// runs only between events, never inside one, so teardown cannot reenter a
// room that is still being mutated. Cleanup during the drain may evict
// further clients; the loop keeps going until none remain.
func (h *Hub) reapEvicted() {
	for len(h.evicted) > 0 {
		connID := h.evicted[0]
		h.evicted = h.evicted[1:]
		h.handleDisconnect(connID)
	}
}

func (h *Hub) dispatch(c *Client, msg Message) {
	switch msg.Type {
	case "joinGame":
		h.handleJoinGame(c, msg.Payload)
	case "move":
		h.handleMove(c, msg.Payload)
	case "gameOver":
		h.handleGameOver(c, msg.Payload)
	case "timeout":
		h.handleLossReport("timeout", msg.Payload)
	case "forfeit":
		h.handleLossReport("forfeit", msg.Payload)
	default:
		log.Printf("[HUB] unknown message type received: %s", msg.Type)
	}
}

// handleDisconnect resolves what the departing connection was doing: a
// waiting matchmaker just vacates the slot, a room participant forfeits the
// game to its opponent. Connections doing neither need no cleanup.
func (h *Hub) handleDisconnect(connID string) {
	if h.cancelWaiting(connID) {
		log.Printf("[MATCH] Waiting player %s disconnected. Slot cleared.", connID)
		return
	}

	room := h.roomFor(connID)
	if room == nil {
		return
	}
	winner := opponentColor(room.Players[connID])
	log.Printf("[ROOM] Player %s disconnected from room %s. Winner: %s", connID, room.ID, winner)
	h.endGame(room, winner)
}

// send queues a message for one connection, fire-and-forget. A client whose
// buffer is full is evicted rather than blocking the event stream.
func (h *Hub) send(connID string, message []byte) {
	client, ok := h.clients[connID]
	if !ok {
		log.Printf("[HUB] Could not find an active client for connection %s", connID)
		return
	}
	select {
	case client.send <- message:
	default:
		log.Printf("[HUB] Send buffer full for connection %s. Closing connection.", connID)
		close(client.send)
		delete(h.clients, connID)
		h.evicted = append(h.evicted, connID)
	}
}
