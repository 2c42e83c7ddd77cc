// Package client implements the GameSquad client controller: session and
// game-selection state, plus the operations the UI triggers against the
// backend.
package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gamesquad/desktop/pkg/api"
	"github.com/gamesquad/desktop/pkg/model"
)

// State represents the client's session state.
type State int

const (
	StateLoggedOut State = iota
	StateLoggedIn
)

// LoginRequiredError is returned by actions that need an authenticated
// session when there is none. Its message is the text shown to the user; the
// UI additionally opens the login dialog on this error.
type LoginRequiredError struct {
	msg string
}

func (e *LoginRequiredError) Error() string { return e.msg }

// Controller holds all client state behind one mutex instead of ambient
// globals, and notifies the UI about changes through the On* callbacks.
// Operations are synchronous; the UI runs them in goroutines so the event
// loop stays responsive.
type Controller struct {
	mu sync.RWMutex

	api   *api.Client
	store *SessionStore

	state       State
	session     model.Session
	currentGame string

	// roomsGen makes the latest room fetch win: a response whose generation
	// is no longer current is discarded, so rapid game switching cannot
	// leave a stale list on screen.
	roomsGen uint64

	// Callbacks for UI updates. All are optional.
	OnStateChange func(state State)
	OnRoomsUpdate func(game string, rooms []model.Room)
	OnNotice      func(message string)
}

// NewController creates a controller wired to the given backend client and
// token store.
func NewController(apiClient *api.Client, store *SessionStore) *Controller {
	return &Controller{
		api:   apiClient,
		store: store,
		state: StateLoggedOut,
	}
}

// RestoreSession rebuilds a session from the persisted token, if any. The
// token is not verified against the backend, so the UI may show a logged-in
// state for an expired token until the first authenticated action fails.
func (c *Controller) RestoreSession() {
	token, err := c.store.Load()
	if err != nil {
		slog.Error("load persisted token", "err", err)
		return
	}
	if token == "" {
		return
	}

	c.mu.Lock()
	c.session = model.Session{Token: token}
	c.state = StateLoggedIn
	c.mu.Unlock()

	slog.Info("session restored from persisted token")
	c.notifyState(StateLoggedIn)
}

// Login validates credentials locally, then exchanges them for a token. On
// success the session is stored in memory, the token is persisted, and the
// active game's room list (if any) is reloaded. On failure the session is
// left unset and the returned error carries the message to show.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := model.ValidateLogin(email, password); err != nil {
		return err
	}

	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return surface("login failed", err, "Error al iniciar sesión")
	}

	c.mu.Lock()
	c.session = model.Session{Username: resp.Username, Token: resp.Token}
	c.state = StateLoggedIn
	game := c.currentGame
	c.mu.Unlock()

	if err := c.store.Save(resp.Token); err != nil {
		slog.Error("persist token", "err", err)
	}
	slog.Info("logged in", "user", resp.Username)

	c.notifyState(StateLoggedIn)
	message := resp.Message
	if message == "" {
		message = "¡Bienvenido de vuelta!"
	}
	c.notify(message)

	if game != "" {
		if err := c.LoadRooms(ctx, game); err != nil {
			return err
		}
	}
	return nil
}

// Register creates an account. It does not log the user in; the UI prompts
// for a login after a successful registration.
func (c *Controller) Register(ctx context.Context, username, email, password string) error {
	if err := model.ValidateRegistration(username, email, password); err != nil {
		return err
	}
	if err := c.api.Register(ctx, username, email, password); err != nil {
		return surface("registration failed", err, "Error al registrar")
	}
	slog.Info("registered", "user", username)
	return nil
}

// Logout clears the in-memory session and the persisted token.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.session = model.Session{}
	c.state = StateLoggedOut
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		slog.Error("clear persisted token", "err", err)
	}
	slog.Info("logged out")

	c.notifyState(StateLoggedOut)
	c.notify("Sesión cerrada exitosamente")
}

// SelectGame marks a game as the one being browsed (deselecting any other)
// and fetches its room list.
func (c *Controller) SelectGame(ctx context.Context, game string) error {
	c.mu.Lock()
	c.currentGame = game
	c.mu.Unlock()
	return c.LoadRooms(ctx, game)
}

// LoadRooms fetches the room list for a game and delivers it through
// OnRoomsUpdate, replacing whatever was displayed. Responses that are no
// longer current (a newer fetch started, or the user moved to another game)
// are dropped silently.
func (c *Controller) LoadRooms(ctx context.Context, game string) error {
	c.mu.Lock()
	c.roomsGen++
	gen := c.roomsGen
	c.mu.Unlock()

	rooms, err := c.api.Rooms(ctx, game)

	c.mu.RLock()
	stale := gen != c.roomsGen || game != c.currentGame
	c.mu.RUnlock()
	if stale {
		slog.Debug("discarding stale room list", "game", game)
		return nil
	}

	if err != nil {
		slog.Error("load rooms failed", "game", game, "err", err)
		return errors.New("Error al cargar las salas")
	}

	slog.Debug("rooms loaded", "game", game, "count", len(rooms))
	if c.OnRoomsUpdate != nil {
		c.OnRoomsUpdate(game, rooms)
	}
	return nil
}

// CreateRoom opens a room for the currently selected game. It requires an
// authenticated session and a selected game; on success the user is notified
// and the room list is refreshed.
func (c *Controller) CreateRoom(ctx context.Context, title string, playersNeeded int, description string) error {
	c.mu.RLock()
	session := c.session
	game := c.currentGame
	c.mu.RUnlock()

	if !session.LoggedIn() {
		return &LoginRequiredError{msg: "Debes iniciar sesión para crear una sala"}
	}
	if game == "" {
		return errors.New("Selecciona un juego antes de crear una sala")
	}

	_, err := c.api.CreateRoom(ctx, session.Token, api.CreateRoomRequest{
		Title:         title,
		Game:          game,
		PlayersNeeded: playersNeeded,
		Description:   description,
	})
	if err != nil {
		return surface("create room failed", err, "Error al crear la sala")
	}

	slog.Info("room created", "game", game, "title", title)
	c.notify("Sala creada exitosamente")
	return c.LoadRooms(ctx, game)
}

// JoinRoom is an intentional stub: joining is not implemented yet, so the
// user is only told the feature is coming. It still requires a session, like
// the real operation will.
func (c *Controller) JoinRoom(roomID string) error {
	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()

	if !session.LoggedIn() {
		return &LoginRequiredError{msg: "Debes iniciar sesión para unirte a una sala"}
	}

	slog.Debug("join requested for unimplemented feature", "room", roomID)
	c.notify("Funcionalidad de unirse a sala en desarrollo")
	return nil
}

// GetState returns the current session state.
func (c *Controller) GetState() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Session returns a copy of the current session.
func (c *Controller) Session() model.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// CurrentGame returns the selected game identifier, or "" if none.
func (c *Controller) CurrentGame() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentGame
}

func (c *Controller) notifyState(state State) {
	if c.OnStateChange != nil {
		c.OnStateChange(state)
	}
}

func (c *Controller) notify(message string) {
	if c.OnNotice != nil {
		c.OnNotice(message)
	}
}

// surface maps an operation failure to the message shown to the user: the
// backend's error text when it sent one, the action-specific fallback for a
// bare non-2xx, and a generic connectivity message for transport failures.
// The underlying error is logged for diagnostics.
func surface(op string, err error, fallback string) error {
	slog.Error(op, "err", err)
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return errors.New(fallback)
	}
	return errors.New("Error al conectar con el servidor")
}
