// Package ui provides the Fyne-based GUI for the GameSquad client.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/gamesquad/desktop/pkg/api"
	"github.com/gamesquad/desktop/pkg/client"
	"github.com/gamesquad/desktop/pkg/model"
	"github.com/gamesquad/desktop/pkg/version"
)

// App is the main GUI application.
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	controller *client.Controller

	// Nav bar, rebuilt on session state changes
	navBox *fyne.Container

	// Game catalog
	gameButtons map[string]*widget.Button

	// Rooms section, hidden until a game is selected
	roomsSection      *fyne.Container
	selectedGameLabel *widget.Label
	roomsBox          *fyne.Container

	statusLabel *widget.Label
}

// NewApp creates the GameSquad GUI application, wiring the controller to the
// backend chosen by the persisted settings (or environment overrides).
func NewApp() *App {
	settings := client.LoadSettings()
	slog.Info("using backend", "url", settings.APIBaseURL())

	a := &App{
		fyneApp: app.NewWithID("gg.gamesquad.desktop"),
		controller: client.NewController(
			api.New(settings.APIBaseURL()),
			client.NewSessionStore(client.DefaultSessionPath()),
		),
		gameButtons: make(map[string]*widget.Button),
	}
	a.window = a.fyneApp.NewWindow("GameSquad")
	a.window.Resize(fyne.NewSize(900, 640))
	a.window.SetMaster()
	return a
}

// Run starts the GUI application (blocks).
func (a *App) Run() {
	a.buildUI()
	a.bindEvents()
	a.controller.RestoreSession()
	a.window.ShowAndRun()
}

func (a *App) buildUI() {
	// --- Nav bar ---
	title := widget.NewLabelWithStyle("GameSquad", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.navBox = container.NewHBox()
	a.updateNav(client.StateLoggedOut)
	navBar := container.NewHBox(title, layout.NewSpacer(), a.navBox)

	// --- Game catalog ---
	var cards []fyne.CanvasObject
	for _, g := range model.Games() {
		game := g
		btn := widget.NewButton("Buscar Equipo", func() {
			a.selectGame(game)
		})
		a.gameButtons[game.ID] = btn
		cards = append(cards, widget.NewCard(game.Name, "", btn))
	}
	gamesGrid := container.NewGridWithColumns(len(cards), cards...)

	// --- Rooms section ---
	a.selectedGameLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.roomsBox = container.NewVBox()
	a.roomsSection = container.NewBorder(
		a.selectedGameLabel,
		nil, nil, nil,
		container.NewVScroll(a.roomsBox),
	)
	a.roomsSection.Hide()

	// --- Status bar ---
	a.statusLabel = widget.NewLabel("Sin sesión")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}
	versionLabel := widget.NewLabel(version.String())
	versionLabel.Importance = widget.LowImportance
	statusBar := container.NewHBox(a.statusLabel, layout.NewSpacer(), versionLabel)

	content := container.NewBorder(
		container.NewVBox(navBar, widget.NewSeparator(), gamesGrid, widget.NewSeparator()),
		statusBar,
		nil, nil,
		a.roomsSection,
	)
	a.window.SetContent(content)
}

func (a *App) bindEvents() {
	a.controller.OnStateChange = func(state client.State) {
		fyne.Do(func() {
			a.updateNav(state)
			if state == client.StateLoggedIn {
				a.statusLabel.SetText("Sesión iniciada")
			} else {
				a.statusLabel.SetText("Sin sesión")
			}
		})
	}

	a.controller.OnRoomsUpdate = func(game string, rooms []model.Room) {
		fyne.Do(func() {
			a.renderRooms(rooms)
		})
	}

	a.controller.OnNotice = func(message string) {
		fyne.Do(func() {
			dialog.ShowInformation("GameSquad", message, a.window)
		})
	}
}

// updateNav rebuilds the nav bar for the session state: login/register when
// logged out, welcome/create/logout when logged in.
func (a *App) updateNav(state client.State) {
	a.navBox.Objects = nil

	if state == client.StateLoggedIn {
		welcome := "Bienvenido"
		if username := a.controller.Session().Username; username != "" {
			welcome = "Bienvenido, " + username
		}
		a.navBox.Add(widget.NewLabel(welcome))
		a.navBox.Add(widget.NewButton("Crear Sala", a.onCreateRoomTapped))
		a.navBox.Add(widget.NewButton("Cerrar Sesión", func() {
			a.controller.Logout()
		}))
	} else {
		a.navBox.Add(widget.NewButton("Iniciar Sesión", a.showLoginDialog))
		a.navBox.Add(widget.NewButton("Registrarse", a.showRegisterDialog))
	}
	a.navBox.Refresh()
}

// selectGame marks the card as active and asks the controller for its rooms.
func (a *App) selectGame(game model.Game) {
	for id, btn := range a.gameButtons {
		if id == game.ID {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	a.selectedGameLabel.SetText("Salas de " + game.Name)
	a.roomsSection.Show()

	go func() {
		if err := a.controller.SelectGame(context.Background(), game.ID); err != nil {
			fyne.Do(func() {
				dialog.ShowError(err, a.window)
			})
		}
	}()
}

// renderRooms replaces the displayed list entirely; there is no diffing.
func (a *App) renderRooms(rooms []model.Room) {
	a.roomsBox.Objects = nil

	if len(rooms) == 0 {
		a.roomsBox.Add(widget.NewLabel("No hay salas disponibles para este juego."))
		a.roomsBox.Refresh()
		return
	}

	for _, room := range rooms {
		a.roomsBox.Add(a.buildRoomCard(room))
	}
	a.roomsBox.Refresh()
}

func (a *App) buildRoomCard(room model.Room) fyne.CanvasObject {
	creator := widget.NewLabel("Creador: " + room.Creator.Username)
	players := widget.NewLabel(fmt.Sprintf("Jugadores: %d/%d", len(room.Members), room.PlayersNeeded))

	description := widget.NewLabel(room.Description)
	description.Wrapping = fyne.TextWrapWord

	created := room.CreatedAt
	if t, ok := room.CreatedTime(); ok {
		created = t.Local().Format("02/01/2006 15:04")
	}
	createdLabel := widget.NewLabel("Creado: " + created)
	createdLabel.Importance = widget.LowImportance

	roomID := room.ID
	joinBtn := widget.NewButton("Unirse", func() {
		a.handleJoin(roomID)
	})
	if room.IsFull() {
		joinBtn.SetText("Lleno")
		joinBtn.Disable()
	}

	footer := container.NewHBox(createdLabel, layout.NewSpacer(), joinBtn)
	body := container.NewVBox(
		container.NewHBox(creator, players),
		description,
		footer,
	)
	return widget.NewCard(room.Title, "", body)
}

func (a *App) handleJoin(roomID string) {
	if err := a.controller.JoinRoom(roomID); err != nil {
		dialog.ShowError(err, a.window)
		var loginErr *client.LoginRequiredError
		if errors.As(err, &loginErr) {
			a.showLoginDialog()
		}
	}
}

// ----- Dialogs -----

func (a *App) showLoginDialog() {
	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("tu@email.com")
	passwordEntry := widget.NewPasswordEntry()

	d := dialog.NewForm("Iniciar Sesión", "Entrar", "Cancelar",
		[]*widget.FormItem{
			widget.NewFormItem("Email", emailEntry),
			widget.NewFormItem("Contraseña", passwordEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			email := strings.TrimSpace(emailEntry.Text)
			password := passwordEntry.Text
			go func() {
				if err := a.controller.Login(context.Background(), email, password); err != nil {
					fyne.Do(func() {
						dialog.ShowError(err, a.window)
					})
				}
			}()
		}, a.window)
	d.Resize(fyne.NewSize(380, 220))
	d.Show()
}

func (a *App) showRegisterDialog() {
	usernameEntry := widget.NewEntry()
	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("tu@email.com")
	passwordEntry := widget.NewPasswordEntry()

	d := dialog.NewForm("Registrarse", "Crear Cuenta", "Cancelar",
		[]*widget.FormItem{
			widget.NewFormItem("Nombre de usuario", usernameEntry),
			widget.NewFormItem("Email", emailEntry),
			widget.NewFormItem("Contraseña", passwordEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			username := strings.TrimSpace(usernameEntry.Text)
			email := strings.TrimSpace(emailEntry.Text)
			password := passwordEntry.Text
			go func() {
				err := a.controller.Register(context.Background(), username, email, password)
				fyne.Do(func() {
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					dialog.ShowInformation("GameSquad", "Registro exitoso. Por favor, inicia sesión.", a.window)
					a.showLoginDialog()
				})
			}()
		}, a.window)
	d.Resize(fyne.NewSize(380, 260))
	d.Show()
}

func (a *App) onCreateRoomTapped() {
	if !a.controller.Session().LoggedIn() {
		dialog.ShowError(fmt.Errorf("Debes iniciar sesión para crear una sala"), a.window)
		a.showLoginDialog()
		return
	}
	if a.controller.CurrentGame() == "" {
		dialog.ShowError(fmt.Errorf("Selecciona un juego antes de crear una sala"), a.window)
		return
	}
	a.showCreateRoomDialog()
}

func (a *App) showCreateRoomDialog() {
	titleEntry := widget.NewEntry()
	playersEntry := widget.NewEntry()
	playersEntry.SetText("2")
	descriptionEntry := widget.NewMultiLineEntry()
	descriptionEntry.SetMinRowsVisible(3)

	d := dialog.NewForm("Crear Sala", "Crear", "Cancelar",
		[]*widget.FormItem{
			widget.NewFormItem("Título", titleEntry),
			widget.NewFormItem("Jugadores necesarios", playersEntry),
			widget.NewFormItem("Descripción", descriptionEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			title := strings.TrimSpace(titleEntry.Text)
			// The backend validates the player count; junk input becomes 0.
			players, _ := strconv.Atoi(strings.TrimSpace(playersEntry.Text))
			description := descriptionEntry.Text
			go func() {
				err := a.controller.CreateRoom(context.Background(), title, players, description)
				if err != nil {
					fyne.Do(func() {
						dialog.ShowError(err, a.window)
						var loginErr *client.LoginRequiredError
						if errors.As(err, &loginErr) {
							a.showLoginDialog()
						}
					})
				}
			}()
		}, a.window)
	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}
