package main

import (
	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/celskeggs/waveview/wave/chart"
	"github.com/celskeggs/waveview/wave/datastore"
	"github.com/celskeggs/waveview/wave/scene"
	"image"
	"log"
	"os"
	"path"
)

type ChartWidget struct {
	Chart     *chart.Chart
	Store     *datastore.Store
	DPI       float64
	ExportDir string

	scene *scene.Scene
	size  image.Point
	dirty bool
	hint  chart.MouseCursor
	Image image.Image
}

func (w *ChartWidget) viewport() chart.Viewport {
	return chart.Viewport{Width: float64(w.size.X), Height: float64(w.size.Y)}
}

func (w *ChartWidget) GetImage(size image.Point) image.Image {
	if w.Image == nil || size != w.size || w.dirty {
		w.size = size
		w.scene.Reset()
		w.Chart.Render(w.scene, w.Store, w.viewport())
		w.Image = scene.Rasterize(w.scene, size.X, size.Y, w.DPI)
		w.dirty = false
	}
	return w.Image
}

var layoutTag = new(struct{})

func (w *ChartWidget) handlePointer(ev pointer.Event) {
	pos := scene.Pt(float64(ev.Position.X), float64(ev.Position.Y))
	vp := w.viewport()
	var handled bool
	switch ev.Type {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonPrimary) {
			handled = w.Chart.MouseDown(pos, vp)
		}
	case pointer.Drag, pointer.Move:
		handled, w.hint = w.Chart.MouseMove(pos, vp)
	case pointer.Release, pointer.Cancel:
		handled = w.Chart.MouseUp(pos, vp)
	case pointer.Scroll:
		if ev.Scroll.Y != 0 {
			handled = w.Chart.MouseWheel(float64(-ev.Scroll.Y))
		}
	}
	if handled {
		w.dirty = true
	}
}

func (w *ChartWidget) Layout(gtx layout.Context) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()

	for _, ev := range gtx.Queue.Events(layoutTag) {
		if x, ok := ev.(pointer.Event); ok {
			w.handlePointer(x)
		}
	}

	area := image.Rectangle{Max: gtx.Constraints.Max}
	pointer.Rect(area).Add(gtx.Ops)
	pointer.InputOp{
		Tag:   layoutTag,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Scroll,
	}.Add(gtx.Ops)
	if w.hint == chart.CursorColumn {
		pointer.CursorNameOp{Name: pointer.CursorColResize}.Add(gtx.Ops)
	}

	clip.Rect(area).Add(gtx.Ops)
	paint.NewImageOp(w.GetImage(gtx.Constraints.Max)).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (w *ChartWidget) Export() {
	if w.ExportDir != "" && w.size.X > 0 && w.size.Y > 0 {
		filepath := path.Join(w.ExportDir, "waveform.png")
		if err := scene.Save(w.scene, w.size.X, w.size.Y, w.DPI, filepath); err != nil {
			log.Fatal(err)
		}
		log.Printf("Image exported to %s", filepath)
	}
}

func (w *ChartWidget) zoom(ratio float64) {
	if w.Chart.Zoom(ratio) {
		w.dirty = true
	}
}

func DisplayChart(c *chart.Chart, store *datastore.Store, exportDir string) {
	widget := &ChartWidget{
		Chart:     c,
		Store:     store,
		DPI:       128,
		ExportDir: exportDir,
		scene:     scene.NewScene(),
	}

	go func() {
		win := app.NewWindow(
			app.Title("Waveform Viewer"),
			app.Size(
				unit.Px(1024),
				unit.Px(768),
			),
		)
		defer win.Close()

		for e := range win.Events() {
			switch e := e.(type) {
			case system.FrameEvent:
				ops := new(op.Ops)
				gtx := layout.NewContext(ops, e)
				widget.Layout(gtx)
				e.Frame(ops)
			case key.Event:
				if e.State != key.Press {
					break
				}
				switch e.Name {
				case "Q", key.NameEscape:
					win.Close()
				case "E":
					widget.Export()
				case "+", "=":
					widget.zoom(0.5)
				case "-":
					widget.zoom(2)
				case "C":
					c.ClearCursor()
					widget.dirty = true
				}
				win.Invalidate()
			case system.DestroyEvent:
				if e.Err != nil {
					log.Fatal(e.Err)
				}
				os.Exit(0)
			}
		}
	}()

	app.Main()
}
