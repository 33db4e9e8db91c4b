package overlay

import (
	"fmt"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/dingutil/flashborder/internal/x11"
)

const opacityProp = "_NET_WM_WINDOW_OPACITY"

// Frame is a rectangular border made of 4 thin windows covering the edges
// of one monitor.
type Frame struct {
	Monitor x11.Monitor
	Top     xproto.Window
	Bottom  xproto.Window
	Left    xproto.Window
	Right   xproto.Window
}

func (f *Frame) windows() [4]xproto.Window {
	return [4]xproto.Window{f.Top, f.Bottom, f.Left, f.Right}
}

// Set owns one border frame per monitor. All frames share a single opacity
// value; SetOpacity is its only writer and applies it to every window in
// the same pass, so the monitors fade in lockstep.
type Set struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	frames []*Frame
}

// New creates, shows, and raises one border frame per monitor. Creation is
// all-or-nothing: any failure destroys what was already created and returns
// an error.
func New(conn *x11.Connection, monitors []x11.Monitor, pixel uint32, width int) (*Set, error) {
	s := &Set{xu: conn.XUtil, root: conn.Root}

	// The Shape extension carves out the input region so clicks and keys
	// pass through to whatever is underneath.
	if err := shape.Init(s.xu.Conn()); err != nil {
		return nil, fmt.Errorf("init shape extension: %w", err)
	}

	for _, mon := range monitors {
		frame, err := s.createFrame(mon, pixel, width)
		// Track the frame before checking the error so a partial frame is
		// still torn down on the failure path.
		s.frames = append(s.frames, frame)
		if err != nil {
			s.Destroy()
			return nil, fmt.Errorf("create border frame on %s: %w", mon.Name, err)
		}
	}

	for _, frame := range s.frames {
		for _, win := range frame.windows() {
			xproto.MapWindow(s.xu.Conn(), win)
		}
	}
	s.xu.Sync()

	return s, nil
}

// Len returns the number of frames, one per monitor.
func (s *Set) Len() int {
	return len(s.frames)
}

// SetOpacity applies one shared alpha value in [0,1] to every strip window.
// The compositor picks the property up and blends accordingly.
func (s *Set) SetOpacity(alpha float64) error {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	val := uint(alpha * 0xffffffff)

	for _, frame := range s.frames {
		for _, win := range frame.windows() {
			if err := xprop.ChangeProp32(s.xu, win, opacityProp, "CARDINAL", val); err != nil {
				return fmt.Errorf("set window opacity: %w", err)
			}
		}
	}
	s.xu.Sync()
	return nil
}

// Destroy unmaps and destroys every frame window.
func (s *Set) Destroy() {
	for _, frame := range s.frames {
		for _, win := range frame.windows() {
			if win != 0 {
				xproto.UnmapWindow(s.xu.Conn(), win)
				xproto.DestroyWindow(s.xu.Conn(), win)
			}
		}
	}
	s.frames = nil
	s.xu.Sync()
}

// createFrame builds the 4 strip windows for one monitor.
func (s *Set) createFrame(mon x11.Monitor, pixel uint32, width int) (*Frame, error) {
	frame := &Frame{Monitor: mon}
	rects := frameRects(mon.Width, mon.Height, width)

	targets := []*xproto.Window{&frame.Top, &frame.Bottom, &frame.Left, &frame.Right}
	for i, target := range targets {
		r := rects[i]
		r.X += mon.X
		r.Y += mon.Y

		win, err := s.createStrip(r, pixel)
		if err != nil {
			return frame, err
		}
		*target = win
	}

	return frame, nil
}

// createStrip creates a single override-redirect strip window: borderless,
// stacked above everything, input-transparent, fully opaque.
func (s *Set) createStrip(r Rect, pixel uint32) (xproto.Window, error) {
	conn := s.xu.Conn()
	screen := s.xu.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}

	w, h := r.Width, r.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	// override_redirect makes the window bypass the window manager, so it
	// lands exactly where it is placed and never gets decorations. Geometry
	// is set by the ConfigureWindow below; CreateWindow's coordinates are
	// int16 and would truncate on wide multi-monitor layouts.
	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		s.root,
		0, 0,
		1, 1,
		0, // border_width
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect,
		// Value list order follows the bit positions of the mask (low to
		// high). CwBackPixel comes before CwOverrideRedirect, so the pixel
		// must be first.
		[]uint32{pixel, 1},
	).Check()
	if err != nil {
		return 0, err
	}

	// Place the strip and keep it on top of everything else.
	xproto.ConfigureWindow(
		conn,
		wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowStackMode,
		[]uint32{
			uint32(r.X),
			uint32(r.Y),
			uint32(w),
			uint32(h),
			xproto.StackModeAbove,
		},
	)

	// Empty input region: all pointer and keyboard events fall through.
	shape.Rectangles(
		conn,
		shape.SoSet,
		shape.SkInput,
		xproto.ClipOrderingUnsorted,
		wid,
		0, 0,
		nil,
	)

	// Advisory hints for compositors; override-redirect windows are not
	// managed, so failures here are harmless.
	ewmh.WmWindowTypeSet(s.xu, wid, []string{"_NET_WM_WINDOW_TYPE_NOTIFICATION"})
	ewmh.WmStateSet(s.xu, wid, []string{"_NET_WM_STATE_ABOVE"})

	if err := xprop.ChangeProp32(s.xu, wid, opacityProp, "CARDINAL", 0xffffffff); err != nil {
		return 0, err
	}

	return wid, nil
}
