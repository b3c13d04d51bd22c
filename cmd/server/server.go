package main

import (
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zelenka/puzzlebox/alchemy"
	"github.com/zelenka/puzzlebox/flow"
	"github.com/zelenka/puzzlebox/model"
	"github.com/zelenka/puzzlebox/patterns"
	"github.com/zelenka/puzzlebox/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg := server.LoadConfig()
	registry := map[string]server.Factory{
		"alchemy":  func(seed int64) model.Game { return alchemy.New(seed) },
		"patterns": func(seed int64) model.Game { return patterns.New(seed) },
		"flow":     func(seed int64) model.Game { return flow.New(seed) },
	}
	Server := Server{
		GameServer: server.NewGameServer(registry, cfg.Seed),
	}
	Server.routes()
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, Server.router))
}
