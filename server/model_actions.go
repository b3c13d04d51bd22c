package server

import (
	"encoding/gob"
	"fmt"
	"net"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zelenka/puzzlebox/model"
)

func NewGameServer(registry map[string]Factory, seed int64) *GameServer {
	return &GameServer{
		Registry: registry,
		Seed:     seed,
		Upgrader: &websocket.Upgrader{},
	}
}

// HandleGame upgrades the connection and runs one session of the game
// named in the route until the socket closes.
func (s *GameServer) HandleGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := way.Param(r.Context(), "game")
		factory, ok := s.Registry[name]
		if !ok {
			log.Warnf("HandleGame unknown game %q", name)
			w.WriteHeader(HTTP_NOT_FOUND)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleGame websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		seed := s.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		ses := &Session{
			State:          SES_NEW,
			GameName:       name,
			Factory:        factory,
			Game:           factory(seed),
			Seed:           seed,
			Conn:           con,
			Events:         make(chan model.ClientMessage, 10),
			MessagesToSend: make(chan model.ServerMessage, 10),
			Done:           make(chan struct{}),
		}
		con.SetPingHandler(
			func(message string) error {
				err := con.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
				ses.DebugLastPing = time.Now()
				ses.DebugPings++
				if err == websocket.ErrCloseSent {
					return nil
				} else if e, ok := err.(net.Error); ok && e.Temporary() {
					return nil
				}
				return err
			})

		go ses.LoopChannelRead()
		go ses.LoopChannelWrite()
		ses.Loop()
	}
}

// HandleGames lists the registered game names, one per line.
func (s *GameServer) HandleGames() http.HandlerFunc {
	names := make([]string, 0, len(s.Registry))
	for name := range s.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(HTTP_SUCCESS)
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
	}
}

// Loop is the single place the game instance is touched, so games need
// no locking of their own.
func (ses *Session) Loop() {
	log.Infof("Session.Loop start game:%s seed:%d", ses.GameName, ses.Seed)
	ses.State = SES_PLAY
	ses.push(true)
loop:
	for {
		select {
		case cm := <-ses.Events:
			if cm.Reset {
				ses.Seed = time.Now().UnixNano()
				ses.Game = ses.Factory(ses.Seed)
				ses.State = SES_PLAY
				ses.push(true)
				continue
			}
			if ses.State != SES_PLAY {
				continue
			}
			changed := ses.Game.Step(cm.Action)
			if ses.Game.Status() != model.Playing {
				ses.State = SES_OVER
			}
			ses.push(changed)
		case <-ses.Done:
			break loop
		}
	}
	log.Printf("Session.Loop ENDED game:%s", ses.GameName)
}

func (ses *Session) push(changed bool) {
	mes := model.MessageFrom(ses.GameName, ses.Game.Snapshot(), ses.Game.Status(), changed)
	select {
	case ses.MessagesToSend <- mes:
	default:
		log.Warnf("Session.push MessagesToSend FULL, dropping")
	}
}

func (ses *Session) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
loop:
	for {
		messageType, r, err := ses.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			ses.State = SES_ERR
			close(ses.Done)
			break loop
		}
		log.Printf("LoopChannelRead received message type: %d", messageType)
		dec := gob.NewDecoder(r)
		cm := &model.ClientMessage{}
		err = dec.Decode(cm)
		if err != nil {
			log.Warn("cant decode")
			ses.State = SES_ERR
			close(ses.Done)
			break loop
		}
		ses.DebugLastMessage = time.Now()
		ses.DebugInMessages++

		select {
		case ses.Events <- *cm:
		default:
			log.Warnf("Dropping data read from socket, Session.Events FULL")
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// this function only consumes. no worries about full buffer stuck
func (ses *Session) LoopChannelWrite() {
	log.Printf("Session.LoopChannelWrite STARTED")
loop:
	for {
		select {
		case mes := <-ses.MessagesToSend:
			w, err := ses.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("Session.LoopChannelWrite cant get writer %v", err)
				break loop
			}
			enc := gob.NewEncoder(w)
			err = enc.Encode(mes)
			if err != nil {
				log.Warnf("Session.LoopChannelWrite cant encode %v", err)
				break loop
			}
			err = w.Close()
			if err != nil {
				log.Warnf("Session.LoopChannelWrite cant flush %v", err)
				break loop
			}
			ses.DebugOutMessages++
		case <-ses.Done:
			break loop
		}
	}
	log.Printf("LoopChannelWrite ENDED")
}
