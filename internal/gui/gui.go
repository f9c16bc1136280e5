//go:build !nogui

package gui

import (
	"context"
	"fmt"
	"sync"

	"flashd/internal/config"
	"flashd/internal/deck"
	"flashd/internal/log"
	"flashd/internal/render"
	"flashd/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Button labels
const (
	LabelFlip     = "Flip Card"
	LabelPrevious = "Previous"
	LabelNext     = "Next"
	LabelShuffle  = "Shuffle"
	LabelQuit     = "Quit"
)

// App is the flashcard window
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	nav        *deck.Navigator
	surface    *Surface
	status     *widget.Label

	// Serializes handlers with refreshes coming from the file watcher
	mu sync.Mutex
}

// NewApp creates the GUI application on a fresh fyne app
func NewApp(cfg *config.Config, d *deck.Deck, opts ...deck.Option) *App {
	return NewAppWith(app.NewWithID("io.github.flashd"), cfg, d, opts...)
}

// NewAppWith builds the window on an existing fyne app, which lets tests
// pass fyne's test app.
func NewAppWith(fyneApp fyne.App, cfg *config.Config, d *deck.Deck, opts ...deck.Option) *App {
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		surface: NewSurface(cfg.Display.Width, cfg.Display.Height, cfg.Display.FontSize),
		status:  widget.NewLabel(""),
	}
	a.status.Alignment = fyne.TextAlignCenter

	renderer := render.NewRenderer(a.surface, cfg.Display.Width, cfg.Display.Height)
	a.nav = deck.NewNavigator(d, renderer, opts...)

	a.mainWindow = fyneApp.NewWindow(cfg.Window.Title)
	a.setupMainWindow()
	a.do(a.nav.Show)

	return a
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	return NewApp(f.config, f.deck), nil
}

// Launch builds the window for d and blocks until it is closed
func Launch(cfg *config.Config, d *deck.Deck) error {
	g, err := NewFactory(cfg, d).Create()
	if err != nil {
		return err
	}
	return g.Run()
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// Run shows the window and blocks in the fyne event loop
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.cfg.Watch.Enabled {
		w, err := watch.ForDeck(a.nav.Cards())
		if err != nil {
			log.Warnf("File watching disabled: %v", err)
		} else {
			defer w.Stop()
			go w.Forward(ctx, a.Refresh)
		}
	}

	a.mainWindow.ShowAndRun()
	return nil
}

// GetMainWindow returns the main window for testing purposes
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Navigator returns the navigator driving the window
func (a *App) Navigator() *deck.Navigator {
	return a.nav
}

// Surface returns the content area
func (a *App) Surface() *Surface {
	return a.surface
}

// StatusText returns the position/side line under the title
func (a *App) StatusText() string {
	return a.status.Text
}

// Refresh re-renders the current side if it names path
func (a *App) Refresh(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if watch.SamePath(a.nav.CurrentText(), path) {
		log.LogWithFields(log.F("path", path)).Debug("Shown file changed, re-rendering")
		a.nav.Show()
	}
}

// do runs one navigator action and updates the status line
func (a *App) do(action func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	action()
	a.status.SetText(fmt.Sprintf("Card %d/%d · %s", a.nav.Index()+1, a.nav.Len(), a.nav.Side()))
}

func (a *App) setupMainWindow() {
	flip := widget.NewButton(LabelFlip, func() { a.do(a.nav.Flip) })
	flip.Importance = widget.HighImportance
	previous := widget.NewButton(LabelPrevious, func() { a.do(a.nav.Previous) })
	next := widget.NewButton(LabelNext, func() { a.do(a.nav.Next) })
	shuffle := widget.NewButton(LabelShuffle, func() { a.do(a.nav.Shuffle) })
	quit := widget.NewButton(LabelQuit, func() { a.fyneApp.Quit() })

	controls := container.NewVBox(
		flip,
		container.NewHBox(previous, layout.NewSpacer(), next),
		shuffle,
		quit,
	)

	a.mainWindow.SetContent(container.NewBorder(a.status, controls, nil, nil, a.surface.Content()))
	a.mainWindow.Resize(fyne.NewSize(float32(a.cfg.Window.Width), float32(a.cfg.Window.Height)))

	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
}

func (a *App) handleKey(ke *fyne.KeyEvent) {
	switch ke.Name {
	case fyne.KeySpace, fyne.KeyW:
		a.do(a.nav.Flip)
	case fyne.KeyRight, fyne.KeyD:
		a.do(a.nav.Next)
	case fyne.KeyLeft, fyne.KeyA:
		a.do(a.nav.Previous)
	}
}
