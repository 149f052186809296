package main

import (
	"encoding/json"
	"log"
)

// Message is the wire envelope for every event in both directions. Payload
// stays raw so move payloads can be relayed verbatim without interpreting
// their contents.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type JoinGamePayload struct {
	Room          string `json:"room"`
	IsPrivateRoom bool   `json:"isPrivateRoom"`
}

type MovePayload struct {
	Room string `json:"room"`
}

type GameOverPayload struct {
	Room   string `json:"room"`
	Winner string `json:"winner"`
}

// LossReportPayload is shared by the timeout and forfeit events, which both
// name the losing side.
type LossReportPayload struct {
	Room  string `json:"room"`
	Loser string `json:"loser"`
}

type StartGamePayload struct {
	Room  string `json:"room"`
	Color string `json:"color"`
}

type WinnerPayload struct {
	Winner string `json:"winner"`
}

type RoomFullPayload struct {
	Room string `json:"room"`
}

func encode(msgType string, payload interface{}) []byte {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Printf("error marshalling %s payload: %v", msgType, err)
			return nil
		}
		raw = data
	}
	data, err := json.Marshal(Message{Type: msgType, Payload: raw})
	if err != nil {
		log.Printf("error marshalling %s message: %v", msgType, err)
		return nil
	}
	return data
}
