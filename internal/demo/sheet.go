package demo

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dverbeek/panmodal"
	"github.com/dverbeek/panmodal/internal/config"
	"github.com/dverbeek/panmodal/scrollview"
)

const (
	rowHeight  = 56.0
	rowPadding = 16.0
)

var (
	colorRow     = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	colorRowText = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	colorPanel   = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
)

// listSheet is both the Presentable configuration and the Content of the demo
// sheet: a scrollable list of rows, tuned from the TOML config.
type listSheet struct {
	panmodal.SheetDefaults

	cfg  *config.SheetConfig
	list *scrollview.ScrollView
	rows []string
}

func newListSheet(cfg *config.SheetConfig) *listSheet {
	s := &listSheet{cfg: cfg}
	s.list = scrollview.New(float64(ebiten.TPS()))
	for i := 0; i < cfg.Rows; i++ {
		s.rows = append(s.rows, fmt.Sprintf("Row %d", i+1))
	}
	s.list.SetContentHeight(s.ContentHeight())
	s.list.DrawContent = s.drawRows
	return s
}

func (s *listSheet) appendRows(n int) {
	for i := 0; i < n; i++ {
		s.rows = append(s.rows, fmt.Sprintf("Row %d", len(s.rows)+1))
	}
	s.list.SetContentHeight(s.ContentHeight())
}

// Presentable configuration.

func (s *listSheet) PanScrollable() panmodal.ScrollSurface { return s.list }

func (s *listSheet) TopOffset() float64 { return s.cfg.TopOffset }

func (s *listSheet) ShortFormHeight() panmodal.HeightSpec {
	return panmodal.HeightFixed(s.cfg.ShortFormHeight)
}

func (s *listSheet) LongFormHeight() panmodal.HeightSpec {
	if s.cfg.LongFormHeight <= 0 {
		return panmodal.HeightMax()
	}
	return panmodal.HeightFixed(s.cfg.LongFormHeight)
}

func (s *listSheet) AnchorModalToLongForm() bool { return s.cfg.AnchorToLongForm }
func (s *listSheet) AllowsDragToDismiss() bool   { return s.cfg.AllowsDragToDismiss }
func (s *listSheet) AllowsTapToDismiss() bool    { return s.cfg.AllowsTapToDismiss }
func (s *listSheet) ShowDragIndicator() bool     { return s.cfg.ShowDragIndicator }
func (s *listSheet) CornerRadius() float64       { return s.cfg.CornerRadius }
func (s *listSheet) SpringDamping() float64      { return s.cfg.SpringDamping }

func (s *listSheet) TransitionDuration() time.Duration {
	return time.Duration(s.cfg.TransitionMS) * time.Millisecond
}

func (s *listSheet) PanelColor() color.Color { return colorPanel }

func (s *listSheet) WillTransition(to panmodal.PresentationState) {
	log.Printf("sheet: will transition to %s", to)
}

func (s *listSheet) PanModalWillDismiss() { log.Printf("sheet: will dismiss") }
func (s *listSheet) PanModalDidDismiss()  { log.Printf("sheet: did dismiss") }

// Content.

func (s *listSheet) ContentHeight() float64 {
	return float64(len(s.rows))*rowHeight + rowPadding
}

func (s *listSheet) Draw(dst *ebiten.Image, x, y, w, h float64) {
	s.list.Draw(dst)
}

func (s *listSheet) drawRows(dst *ebiten.Image, x, y, w, h, offset float64) {
	for i, title := range s.rows {
		rowY := y + float64(i)*rowHeight - offset
		if rowY+rowHeight < y || rowY > y+h {
			continue
		}
		vector.DrawFilledRect(dst, float32(x+rowPadding), float32(rowY+4),
			float32(w-3*rowPadding), float32(rowHeight-8), colorRow, false)
		drawText(dst, title, x+2*rowPadding, rowY+rowHeight/2-7, colorRowText)
	}
}
