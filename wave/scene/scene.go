package scene

import (
	"fmt"
	"image/color"
)

type CommandKind uint8

const (
	CmdFillRect CommandKind = iota
	CmdStrokePath
	CmdPushClip
	CmdPopClip
	CmdText
)

func (k CommandKind) String() string {
	switch k {
	case CmdFillRect:
		return "FillRect"
	case CmdStrokePath:
		return "StrokePath"
	case CmdPushClip:
		return "PushClip"
	case CmdPopClip:
		return "PopClip"
	case CmdText:
		return "Text"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// Command is one recorded drawing call. Only the fields relevant to Kind are
// set.
type Command struct {
	Kind   CommandKind
	Rect   Rect
	Points []Point
	Width  float64
	Color  color.Color
	Text   string
	Height float64
	Pos    Point
}

// Scene records drawing calls so that one frame can be inspected or replayed
// onto another Surface.
type Scene struct {
	cmds  []Command
	depth int
}

var _ Surface = &Scene{}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) FillRect(r Rect, c color.Color) {
	s.cmds = append(s.cmds, Command{Kind: CmdFillRect, Rect: r, Color: c})
}

func (s *Scene) StrokePath(pts []Point, width float64, c color.Color) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	s.cmds = append(s.cmds, Command{Kind: CmdStrokePath, Points: cp, Width: width, Color: c})
}

func (s *Scene) PushClip(r Rect) {
	s.depth++
	s.cmds = append(s.cmds, Command{Kind: CmdPushClip, Rect: r})
}

func (s *Scene) PopClip() {
	if s.depth == 0 {
		panic("PopClip without matching PushClip")
	}
	s.depth--
	s.cmds = append(s.cmds, Command{Kind: CmdPopClip})
}

func (s *Scene) Text(text string, height float64, c color.Color, pos Point) {
	s.cmds = append(s.cmds, Command{Kind: CmdText, Text: text, Height: height, Color: c, Pos: pos})
}

func (s *Scene) Commands() []Command {
	return s.cmds
}

// Balanced reports whether every PushClip has been popped.
func (s *Scene) Balanced() bool {
	return s.depth == 0
}

func (s *Scene) Reset() {
	s.cmds = s.cmds[:0]
	s.depth = 0
}

func (s *Scene) Count(kind CommandKind) (n int) {
	for _, c := range s.cmds {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings of all text commands, in order.
func (s *Scene) Texts() (out []string) {
	for _, c := range s.cmds {
		if c.Kind == CmdText {
			out = append(out, c.Text)
		}
	}
	return out
}

func (s *Scene) Replay(dst Surface) {
	for _, c := range s.cmds {
		switch c.Kind {
		case CmdFillRect:
			dst.FillRect(c.Rect, c.Color)
		case CmdStrokePath:
			dst.StrokePath(c.Points, c.Width, c.Color)
		case CmdPushClip:
			dst.PushClip(c.Rect)
		case CmdPopClip:
			dst.PopClip()
		case CmdText:
			dst.Text(c.Text, c.Height, c.Color, c.Pos)
		default:
			panic("invalid command kind")
		}
	}
}
