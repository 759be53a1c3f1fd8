package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Anthonyf2008/clash-royal/internal/cards"
	"github.com/Anthonyf2008/clash-royal/internal/persistence"
	"github.com/Anthonyf2008/clash-royal/internal/server"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "listen address")
		dataDir  = flag.String("data", "data/players", "player account directory")
		cardFile = flag.String("cards", "", "optional YAML card catalog override")
		seed     = flag.Int64("seed", 0, "AI RNG seed (0 = time-based)")
	)
	flag.Parse()

	if *cardFile != "" {
		if err := cards.LoadCatalog(*cardFile); err != nil {
			log.Fatalf("card catalog: %v", err)
		}
		log.Printf("card catalog loaded from %s", *cardFile)
	}

	persist, err := persistence.NewStore(*dataDir)
	if err != nil {
		log.Fatalf("player store: %v", err)
	}

	store := server.NewStore(persist, *seed)
	log.Printf("clash server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, server.NewRouter(store)); err != nil {
		log.Fatalf("server: %v", err)
	}
}
