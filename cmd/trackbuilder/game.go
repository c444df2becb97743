package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"track-builder/internal/common"
	"track-builder/internal/editor"
	"track-builder/internal/track"
	"track-builder/internal/view"
)

// ============================================================================
// CONFIGURATION - Adjust these values to customize the editor look
// ============================================================================

// HUD panel size in pixels. Presses inside it never reach the canvas.
const (
	HUDWidth  = 230
	HUDHeight = 290
)

// Object sizes in pixels
const (
	ConeRadius     = 6
	SelectionWidth = 2
)

var (
	ColorBackground = color.RGBA{20, 20, 20, 255}
	ColorGrid       = color.RGBA{45, 45, 45, 255}
	ColorAxis       = color.RGBA{120, 120, 120, 255}
	ColorLeftCone   = color.RGBA{0, 90, 255, 255}  // Blue
	ColorRightCone  = color.RGBA{255, 220, 0, 255} // Yellow
	ColorCar        = color.RGBA{255, 255, 255, 255}
	ColorSelected   = color.RGBA{0, 148, 255, 255}
	ColorHUD        = color.RGBA{0, 0, 0, 180}
)

// ============================================================================

type entryKind int

const (
	entryNone entryKind = iota
	entryZoom
	entryWidth
)

// Game adapts the editor to ebiten: it maps input to editor commands and
// draws the store through the editor's view transform.
type Game struct {
	Editor *editor.Editor

	width, height int

	pressed bool // a left press reached the canvas
	panning bool // middle button pan in progress
	lastPos common.Vec2

	entry  entryKind
	input  []rune
	status string
}

// NewGame wraps ed for ebiten.RunGame.
func NewGame(ed *editor.Editor) *Game {
	vp := ed.Viewport()
	return &Game{
		Editor: ed,
		width:  int(vp.Width),
		height: int(vp.Height),
	}
}

func (g *Game) Update() error {
	g.Editor.Resize(view.Viewport{Width: float64(g.width), Height: float64(g.height)})

	if g.entry != entryNone {
		g.updateEntry()
	} else {
		g.updateKeys()
	}
	g.updateMouse()
	return nil
}

func (g *Game) updateKeys() {
	ed := g.Editor

	tools := map[ebiten.Key]editor.Tool{
		ebiten.KeyDigit0: editor.ToolNone,
		ebiten.KeyDigit1: editor.ToolDrag,
		ebiten.KeyDigit2: editor.ToolLeftCone,
		ebiten.KeyDigit3: editor.ToolRightCone,
		ebiten.KeyDigit4: editor.ToolCar,
	}
	for key, tool := range tools {
		if inpututil.IsKeyJustPressed(key) {
			ed.SetTool(tool)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		ed.TogglePanel(editor.ToggleDrag)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		ed.TogglePanel(editor.ToggleGenerate)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		ed.ToggleAxes()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ed.ResetView()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ed.Fit()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.report(ed.Save())
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.report(ed.OpenAndLoad())
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		if ed.Panel() != editor.GeneratePanel {
			ed.TogglePanel(editor.ToggleGenerate)
		}
		if ed.SelectImage() {
			g.status = "image: " + filepath.Base(ed.SelectedImage())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ed.Panel() == editor.GeneratePanel:
		n, err := ed.GenerateSelected()
		if err != nil {
			g.status = "generation failed: " + err.Error()
		} else if n > 0 {
			g.status = fmt.Sprintf("generated %d cone pairs", n)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.entry, g.input = entryZoom, nil
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.entry, g.input = entryWidth, nil
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		ed.DeleteSelected()
	}
}

// updateEntry collects typed characters for the zoom or width field.
func (g *Game) updateEntry() {
	g.input = ebiten.AppendInputChars(g.input)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.input) > 0:
		g.input = g.input[:len(g.input)-1]
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.entry = entryNone
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		text := string(g.input)
		switch g.entry {
		case entryZoom:
			g.status = fmt.Sprintf("zoom %d%%", g.Editor.SetZoomEntry(text))
		case entryWidth:
			w, ok := g.Editor.SetTrackWidth(text)
			if !ok {
				g.status = fmt.Sprintf("invalid width %q, keeping %.2f m", text, w)
			} else {
				g.status = fmt.Sprintf("track width %.2f m", w)
			}
		}
		g.entry = entryNone
	}
}

func (g *Game) updateMouse() {
	ed := g.Editor
	x, y := ebiten.CursorPosition()
	cursor := common.Vec2{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !overHUD(x, y) {
		g.pressed = true
		ed.Press(cursor)
	} else if g.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && cursor != g.lastPos {
		ed.DragTo(cursor)
	}
	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		ed.Release(cursor)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.panning = true
	} else if g.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		ed.View().Pan(cursor.Sub(g.lastPos))
	} else {
		g.panning = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 && !overHUD(x, y) {
		ed.Wheel(cursor, dy)
	}
	g.lastPos = cursor
}

func overHUD(x, y int) bool {
	return x >= 0 && x < HUDWidth && y >= 0 && y < HUDHeight
}

func (g *Game) report(done bool, err error) {
	switch {
	case err != nil:
		g.status = err.Error()
	case done:
		g.status = "ok: " + filepath.Base(g.Editor.CurrentFile())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	for _, l := range g.Editor.GridLines() {
		col, width := ColorGrid, float32(1)
		if l.Kind == view.AxisLine {
			col, width = ColorAxis, 2
		}
		vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y), width, col, true)
	}

	t := g.Editor.View()
	selected, hasSelected := g.Editor.Selected()
	for _, c := range g.Editor.Store().Cones() {
		p := t.LogicalToScreen(c.Position)
		col := ColorLeftCone
		if c.Kind == track.KindRight {
			col = ColorRightCone
		}
		vector.FillCircle(screen, float32(p.X), float32(p.Y), ConeRadius, col, true)
		if hasSelected && selected == c.ID {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), ConeRadius+3, SelectionWidth, ColorSelected, true)
		}
	}

	if car, ok := g.Editor.Store().Car(); ok {
		g.drawCar(screen, car, hasSelected && selected == car.ID)
	}

	g.drawHUD(screen)
}

// carCorners returns the screen-space triangle of the car, nose first.
func (g *Game) carCorners(car track.CarPose) [3]common.Vec2 {
	t := g.Editor.View()
	length, width := g.Editor.CarSize()
	halfL, halfW := length*t.Zoom()/2, width*t.Zoom()/2
	center := t.LogicalToScreen(car.Position)

	// screen y points down, so a counter-clockwise yaw turns the other way here
	angle := -car.Yaw * math.Pi / 180
	cosA, sinA := math.Cos(angle), math.Sin(angle)

	local := [3]common.Vec2{{X: halfL, Y: 0}, {X: -halfL, Y: -halfW}, {X: -halfL, Y: halfW}}
	var out [3]common.Vec2
	for i, p := range local {
		out[i] = center.Add(common.Vec2{
			X: p.X*cosA - p.Y*sinA,
			Y: p.X*sinA + p.Y*cosA,
		})
	}
	return out
}

func (g *Game) drawCar(screen *ebiten.Image, car track.CarPose, selected bool) {
	corners := g.carCorners(car)

	var path vector.Path
	for i, p := range corners {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	var cs ebiten.ColorScale
	cs.ScaleWithColor(ColorCar)
	vector.FillPath(screen, &path, nil, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: cs,
	})

	if selected {
		for i := range corners {
			a, b := corners[i], corners[(i+1)%len(corners)]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), SelectionWidth+1, ColorSelected, true)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ed := g.Editor
	vector.FillRect(screen, 0, 0, HUDWidth, HUDHeight, ColorHUD, true)

	file := "(unsaved)"
	if ed.CurrentFile() != "" {
		file = filepath.Base(ed.CurrentFile())
	}

	msg := "TRACK BUILDER\n"
	msg += "----------------\n"
	msg += fmt.Sprintf("File:   %s\n", file)
	msg += fmt.Sprintf("Zoom:   %d%%\n", ed.View().ZoomPercent())
	msg += fmt.Sprintf("Tool:   %s\n", ed.Tool())
	msg += fmt.Sprintf("Panel:  %s\n", ed.Panel())

	store := ed.Store()
	msg += fmt.Sprintf("Cones:  L %d / R %d\n", len(store.ConesOf(track.KindLeft)), len(store.ConesOf(track.KindRight)))
	if car, ok := store.Car(); ok {
		msg += fmt.Sprintf("Car:    %.2f, %.2f @ %.0f\n", car.Position.X/ed.Scale(), car.Position.Y/ed.Scale(), car.Yaw)
	}
	if ed.Panel() == editor.GeneratePanel {
		msg += fmt.Sprintf("Width:  %.2f m\n", ed.TrackWidth())
		if img := ed.SelectedImage(); img != "" {
			msg += fmt.Sprintf("Image:  %s\n", filepath.Base(img))
		}
	}

	switch g.entry {
	case entryZoom:
		msg += fmt.Sprintf("\nZoom %%: %s_\n", string(g.input))
	case entryWidth:
		msg += fmt.Sprintf("\nWidth m: %s_\n", string(g.input))
	}
	if g.status != "" {
		msg += "\n" + g.status + "\n"
	}

	msg += "\nControls:\n"
	msg += "1-4 drag/left/right/car 0 none\n"
	msg += "D/G panels  A axes  R reset\n"
	msg += "F fit  S save  O open\n"
	msg += "I image  Enter generate\n"
	msg += "Z zoom  W width  Del delete\n"

	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
