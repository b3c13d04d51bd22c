package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play/:game"
const URI_GAMES = "/games"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleGame())
	s.router.HandleFunc("GET", URI_GAMES, s.GameServer.HandleGames())
}
