package app

import (
	"github.com/dshills/tern/internal/input/key"
)

// PromptFunc observes a prompt after every key with the current input
// and the key just pressed.
type PromptFunc func(input string, k key.Event)

// Prompt shows format (with %s replaced by the input so far) in the
// message bar and collects a line of input. It returns the input and
// true on Enter with a non-empty input, or false on Escape. cb, when not
// nil, runs after every key, including the final Enter or Escape.
func (s *Session) Prompt(format string, cb PromptFunc) (string, bool, error) {
	var buf []byte
	for {
		s.setStatus(format, buf)
		if err := s.checkSignal(); err != nil {
			return "", false, err
		}
		if err := s.refresh(); err != nil {
			return "", false, err
		}
		k, err := s.readKey()
		if err != nil {
			return "", false, err
		}
		if k.IsNone() {
			continue
		}

		switch {
		case k.Is(key.KeyBackspace), k.Is(key.KeyDelete), k.IsControl(key.ByteCtrlH):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k.Is(key.KeyEscape):
			s.setStatus("")
			if cb != nil {
				cb(string(buf), k)
			}
			return "", false, nil
		case k.IsControl(key.ByteEnter):
			if len(buf) > 0 {
				s.setStatus("")
				if cb != nil {
					cb(string(buf), k)
				}
				return string(buf), true, nil
			}
		case k.Kind == key.KindPrintable && k.IsInsertable():
			buf = append(buf, k.Byte)
		}

		if cb != nil {
			cb(string(buf), k)
		}
	}
}
