package server

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelenka/puzzlebox/alchemy"
	"github.com/zelenka/puzzlebox/model"
)

func TestHandleGamesListsRegistrySorted(t *testing.T) {
	s := NewGameServer(map[string]Factory{
		"flow":    func(seed int64) model.Game { return alchemy.New(seed) },
		"alchemy": func(seed int64) model.Game { return alchemy.New(seed) },
	}, 0)

	rec := httptest.NewRecorder()
	s.HandleGames()(rec, httptest.NewRequest("GET", "/games", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := ioutil.ReadAll(rec.Body)
	assert.Equal(t, "alchemy\nflow\n", string(body))
}

func TestHandleGameUnknownName(t *testing.T) {
	s := NewGameServer(map[string]Factory{}, 0)
	rec := httptest.NewRecorder()
	// No route parameter in the context, so the name resolves empty.
	s.HandleGame()(rec, httptest.NewRequest("GET", "/play/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionStateNames(t *testing.T) {
	assert.Equal(t, "PLAY", SES_PLAY.Name())
	assert.Equal(t, "ERR", SES_ERR.Name())
}
