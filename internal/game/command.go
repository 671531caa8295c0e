package game

import "github.com/kamstrup/intmap"

// Command is a player action.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
	CommandQuit
)

var commandNames = [...]string{"none", "left", "right", "soft-drop", "rotate", "hard-drop", "quit"}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// KeyMap resolves raw key runes to commands.
type KeyMap struct {
	bindings *intmap.Map[rune, Command]
}

// DefaultKeyMap returns the fixed bindings shown in the controls legend.
func DefaultKeyMap() *KeyMap {
	km := &KeyMap{bindings: intmap.New[rune, Command](8)}
	km.bindings.Put('a', CommandLeft)
	km.bindings.Put('d', CommandRight)
	km.bindings.Put('s', CommandSoftDrop)
	km.bindings.Put('w', CommandRotate)
	km.bindings.Put(' ', CommandHardDrop)
	km.bindings.Put('q', CommandQuit)
	return km
}

// Lookup returns the command bound to key, or CommandNone for unbound keys.
func (km *KeyMap) Lookup(key rune) Command {
	cmd, ok := km.bindings.Get(key)
	if !ok {
		return CommandNone
	}
	return cmd
}
