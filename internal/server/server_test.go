package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jpereira7/Trivia-Night/internal/api/controller"
	"jpereira7/Trivia-Night/internal/api/repository"
	"jpereira7/Trivia-Night/internal/api/response"
	"jpereira7/Trivia-Night/internal/api/service"
	"jpereira7/Trivia-Night/internal/client"
	"jpereira7/Trivia-Night/internal/db"
	"jpereira7/Trivia-Night/internal/game"
	"jpereira7/Trivia-Night/internal/wizard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer stands up the whole stack over an in-memory database and
// returns a ready httptest server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pool, err := db.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.InitializeSchema(pool))
	t.Cleanup(func() { pool.Close() })

	tokens := service.NewTokenService("test-secret", 24*time.Hour)
	users := service.NewUserService(repository.NewUserRepository(pool), tokens)
	games := service.NewGameService(repository.NewGameRepository(pool))

	srv := NewServer(tokens,
		controller.NewUserController(users),
		controller.NewGameController(games),
	)

	ts := httptest.NewServer(srv.Engine())
	t.Cleanup(ts.Close)
	return ts
}

func newLoggedInClient(t *testing.T, ts *httptest.Server, username string) *client.Client {
	t.Helper()
	ctx := context.Background()

	c := client.New(ts.URL, 5*time.Second)
	require.NoError(t, c.Register(ctx, username, "pw1secret"))

	res, err := c.Login(ctx, username, "pw1secret")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	return c
}

// authorCategory drives the wizard the way the terminal does, two
// questions per difficulty.
func authorCategory(t *testing.T, name string) game.Category {
	t.Helper()
	w := wizard.New()
	require.NoError(t, w.SetName(name))
	require.NoError(t, w.SetCount(2))
	for {
		d, i := w.Cursor()
		require.NoError(t, w.SetText(fmt.Sprintf("%s %s question %d", name, d, i)))
		if w.Next() {
			break
		}
	}
	c, err := w.Category()
	require.NoError(t, err)
	return *c
}

func apiError(t *testing.T, err error) *response.Error {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*response.Error)
	require.True(t, ok, "expected an api error, got %v", err)
	return apiErr
}

func TestServer_RegisterAndLoginFlow(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	c := client.New(ts.URL, 5*time.Second)
	require.NoError(t, c.Register(ctx, "alice", "pw1secret"))

	// Duplicate username is rejected.
	err := c.Register(ctx, "alice", "other-password")
	assert.Equal(t, http.StatusBadRequest, apiError(t, err).Code)
	assert.Equal(t, "Username already exists", apiError(t, err).Message)

	// Wrong password and unknown user both come back 401.
	_, err = c.Login(ctx, "alice", "wrong")
	assert.Equal(t, http.StatusUnauthorized, apiError(t, err).Code)
	_, err = c.Login(ctx, "nobody", "pw1secret")
	assert.Equal(t, http.StatusUnauthorized, apiError(t, err).Code)

	res, err := c.Login(ctx, "alice", "pw1secret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.User.Username)
}

func TestServer_GameLifecycle(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	alice := newLoggedInClient(t, ts, "alice")

	created, err := alice.CreateGame(ctx, "Trivia Night",
		[]game.Category{authorCategory(t, "History")})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	games, err := alice.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Trivia Night", games[0].Name)
	require.Len(t, games[0].Categories, 1)
	assert.Len(t, games[0].Categories[0].Questions, 6)

	require.NoError(t, alice.DeleteGame(ctx, created.ID))

	games, err = alice.ListGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestServer_ListOrderedMostRecentFirst(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	alice := newLoggedInClient(t, ts, "alice")

	_, err := alice.CreateGame(ctx, "First", []game.Category{authorCategory(t, "History")})
	require.NoError(t, err)
	// CreatedAt carries sub-second precision, so back-to-back saves
	// still order deterministically.
	time.Sleep(5 * time.Millisecond)
	_, err = alice.CreateGame(ctx, "Second", []game.Category{authorCategory(t, "Science")})
	require.NoError(t, err)

	games, err := alice.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Second", games[0].Name)
	assert.Equal(t, "First", games[1].Name)
}

func TestServer_CreateGameValidation(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	alice := newLoggedInClient(t, ts, "alice")

	// Unbalanced difficulties are rejected before anything is stored.
	lopsided := authorCategory(t, "History")
	lopsided.Questions = lopsided.Questions[:5]
	_, err := alice.CreateGame(ctx, "Broken", []game.Category{lopsided})
	assert.Equal(t, http.StatusBadRequest, apiError(t, err).Code)

	games, err := alice.ListGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestServer_DeleteHidesForeignGames(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	alice := newLoggedInClient(t, ts, "alice")
	bob := newLoggedInClient(t, ts, "bob")

	created, err := alice.CreateGame(ctx, "Trivia Night",
		[]game.Category{authorCategory(t, "History")})
	require.NoError(t, err)

	// Bob sees none of Alice's games.
	games, err := bob.ListGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)

	// Deleting Alice's game and deleting a nonexistent one look identical
	// to Bob.
	errForeign := apiError(t, bob.DeleteGame(ctx, created.ID))
	errMissing := apiError(t, bob.DeleteGame(ctx, "no-such-game"))
	assert.Equal(t, http.StatusNotFound, errForeign.Code)
	assert.Equal(t, http.StatusNotFound, errMissing.Code)
	assert.Equal(t, errForeign.Message, errMissing.Message)

	// Alice's game is untouched.
	games, err = alice.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestServer_AuthMiddleware(t *testing.T) {
	ts := newTestServer(t)

	get := func(t *testing.T, authorization string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/games", nil)
		require.NoError(t, err)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("Missing token", func(t *testing.T) {
		resp := get(t, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Malformed header", func(t *testing.T) {
		resp := get(t, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Invalid token", func(t *testing.T) {
		resp := get(t, "Bearer not.a.jwt")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var env response.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid token", env.Message)
	})
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
