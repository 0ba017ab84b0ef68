package input

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Listener receives key-down and key-up notifications.
type Listener interface {
	RecordKeyDown(key string)
	RecordKeyUp(key string)
}

// Keyboard turns Ebitengine's per-tick key state into down/up notifications.
type Keyboard struct {
	listeners []Listener

	appendPressed  func([]ebiten.Key) []ebiten.Key
	appendReleased func([]ebiten.Key) []ebiten.Key
	buf            []ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		appendPressed:  inpututil.AppendJustPressedKeys,
		appendReleased: inpututil.AppendJustReleasedKeys,
	}
}

// Subscribe registers l for the lifetime of the keyboard. There is no
// unsubscribe.
func (k *Keyboard) Subscribe(l Listener) {
	k.listeners = append(k.listeners, l)
}

// Poll must be called once per tick from the game's Update. Presses are
// delivered before releases, matching event order for a key tapped within a
// single tick.
func (k *Keyboard) Poll() {
	k.buf = k.appendPressed(k.buf[:0])
	for _, key := range k.buf {
		name := KeyName(key)
		for _, l := range k.listeners {
			l.RecordKeyDown(name)
		}
	}

	k.buf = k.appendReleased(k.buf[:0])
	for _, key := range k.buf {
		name := KeyName(key)
		for _, l := range k.listeners {
			l.RecordKeyUp(name)
		}
	}
}

// KeyName returns the KeyboardEvent.code style identifier for key, e.g.
// "ArrowUp", "KeyA", "Digit1", "Space".
func KeyName(key ebiten.Key) string {
	name := key.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return "Key" + name
	}
	return name
}

// ParseKeyName is the inverse of KeyName.
func ParseKeyName(name string) (ebiten.Key, bool) {
	s := name
	if rest, ok := strings.CutPrefix(s, "Key"); ok && len(rest) == 1 {
		s = rest
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(s)); err != nil {
		return 0, false
	}
	return key, true
}
