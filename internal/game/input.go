package game

import "github.com/gdamore/tcell/v2"

// Command is a key press translated for the main map view.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveN
	CmdMoveS
	CmdMoveE
	CmdMoveW
	CmdMoveNE
	CmdMoveNW
	CmdMoveSE
	CmdMoveSW
	CmdWait
	CmdPickup
	CmdInventory
	CmdDrop
	CmdDescend
	CmdLook
	CmdQuit
)

// keyToCommand maps a key event in the main view to a command.
func keyToCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdMoveN
	case tcell.KeyDown:
		return CmdMoveS
	case tcell.KeyRight:
		return CmdMoveE
	case tcell.KeyLeft:
		return CmdMoveW
	case tcell.KeyHome:
		return CmdMoveNW
	case tcell.KeyPgUp:
		return CmdMoveNE
	case tcell.KeyEnd:
		return CmdMoveSW
	case tcell.KeyPgDn:
		return CmdMoveSE
	case tcell.KeyEscape:
		return CmdQuit
	case tcell.KeyRune:
	default:
		return CmdNone
	}

	switch ev.Rune() {
	case 'k', '8':
		return CmdMoveN
	case 'j', '2':
		return CmdMoveS
	case 'l', '6':
		return CmdMoveE
	case 'h', '4':
		return CmdMoveW
	case 'y', '7':
		return CmdMoveNW
	case 'u', '9':
		return CmdMoveNE
	case 'b', '1':
		return CmdMoveSW
	case 'n', '3':
		return CmdMoveSE
	case '.', '5':
		return CmdWait
	case 'g', ',':
		return CmdPickup
	case 'i':
		return CmdInventory
	case 'd':
		return CmdDrop
	case '>':
		return CmdDescend
	case '/':
		return CmdLook
	}
	return CmdNone
}

// commandDelta converts a movement command to (dx, dy).
func commandDelta(c Command) (int, int, bool) {
	switch c {
	case CmdMoveN:
		return 0, -1, true
	case CmdMoveS:
		return 0, 1, true
	case CmdMoveE:
		return 1, 0, true
	case CmdMoveW:
		return -1, 0, true
	case CmdMoveNE:
		return 1, -1, true
	case CmdMoveNW:
		return -1, -1, true
	case CmdMoveSE:
		return 1, 1, true
	case CmdMoveSW:
		return -1, 1, true
	}
	return 0, 0, false
}

// isConfirm reports whether ev accepts a selection.
func isConfirm(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == 'g')
}

// letterIndex maps 'a'..'z' to 0..25, or -1.
func letterIndex(ev *tcell.EventKey) int {
	if ev.Key() != tcell.KeyRune {
		return -1
	}
	r := ev.Rune()
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}
