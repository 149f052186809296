package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Println("PORT not set, defaulting to 8080")
	}

	hub := newHub()
	go hub.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})

	// Allow the game client to connect from any origin
	handler := cors.Default().Handler(mux)

	serverAddr := ":" + port
	log.Println("Server starting on", serverAddr)
	err := http.ListenAndServe(serverAddr, handler)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
