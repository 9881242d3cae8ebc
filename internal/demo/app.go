// Package demo is the showcase application for the panmodal library: a
// background screen that presents a sheet with scrollable list content.
package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dverbeek/panmodal"
	"github.com/dverbeek/panmodal/gesture"
	"github.com/dverbeek/panmodal/internal/config"
)

// Colors — dark theme.
var (
	colorBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	colorText       = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	colorTextMuted  = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
)

// App implements ebiten.Game and manages the demo.
type App struct {
	Config        *config.Config
	Width, Height int

	modal *panmodal.PresentationController
	sheet *listSheet
}

func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
	}
}

// present builds a fresh sheet and controller. Controllers are single-use:
// each presentation gets its own.
func (a *App) present() {
	a.sheet = newListSheet(&a.Config.Sheet)
	a.modal = panmodal.NewPresentationController(a.sheet, a.sheet, float64(a.Width), float64(a.Height))
	a.modal.OnDismissed = func() {
		a.modal = nil
		a.sheet = nil
	}
	a.modal.Present()
}

func (a *App) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	px, py, down := gesture.ReadPointer()
	_, wheelY := ebiten.Wheel()

	if a.modal == nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.present()
		}
		return nil
	}

	a.modal.UpdateWithPointer(px, py, down)
	if a.modal == nil {
		// Dismissal completed during this tick.
		return nil
	}

	// The list viewport follows the panel; both see the pointer, the sheet's
	// scroll observer arbitrates between them.
	x, y, w, h := a.modal.ContentFrame()
	a.sheet.list.SetFrame(x, y, w, h)
	a.sheet.list.Update(px, py, down, wheelY)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		a.modal.Transition(panmodal.LongForm)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.modal.Transition(panmodal.ShortForm)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.modal.Dismiss()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		// Batched content mutation: rows appended without moving the sheet.
		a.modal.PerformUpdates(func() {
			a.sheet.appendRows(5)
			a.modal.SetNeedsLayoutUpdate()
		})
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	drawText(screen, "panmodal demo", 24, 28, colorText)
	if a.modal == nil {
		drawText(screen, "click or press Enter to present the sheet", 24, 52, colorTextMuted)
	} else {
		drawText(screen, "drag the sheet  |  L/S snap  |  A add rows  |  Esc dismiss", 24, 52, colorTextMuted)
	}

	if a.modal != nil {
		a.modal.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.Width, a.Height
}
