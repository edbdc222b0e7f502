package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/ByLCY/vellum/scene"
)

// Relayout re-runs the layout pass with the given direction. force is set
// when the user asked for it with l; otherwise the callee may skip the pass.
type Relayout func(rtl, force bool)

// Preview draws the scene and handles keys until the user quits with q,
// Esc or Ctrl-C. r toggles right-to-left, l lays the scene out again and a
// resize asks for a relayout as well.
// The caller owns screen and must Init/Fini it.
func (r *Renderer) Preview(screen tcell.Screen, s *scene.Scene, rtl bool, relayout Relayout) {
	update := func(force bool) {
		r.log.WithFields(logrus.Fields{"rtl": rtl, "force": force}).Debug("重新布局")
		if relayout != nil {
			relayout(rtl, force)
		}
		r.Draw(screen, s)
	}

	r.Draw(screen, s)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return
			case 'r':
				rtl = !rtl
				update(false)
			case 'l':
				update(true)
			}
		case *tcell.EventResize:
			screen.Sync()
			update(false)
		}
	}
}
