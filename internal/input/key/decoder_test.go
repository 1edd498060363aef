package key

import (
	"errors"
	"testing"
	"time"
)

// scriptReader returns queued bytes and times out once they run out.
type scriptReader struct {
	data []byte
	err  error
}

func (r *scriptReader) ReadInput(time.Duration) (byte, bool, error) {
	if len(r.data) == 0 {
		if r.err != nil {
			return 0, false, r.err
		}
		return 0, false, nil
	}
	b := r.data[0]
	r.data = r.data[1:]
	return b, true, nil
}

func decodeAll(t *testing.T, input string) []Event {
	t.Helper()
	src := &scriptReader{data: []byte(input)}
	d := NewDecoder(src)
	var out []Event
	for {
		ev, err := d.ReadKey()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.IsNone() {
			return out
		}
		out = append(out, ev)
	}
}

func TestDecoderSequences(t *testing.T) {
	tests := []struct {
		input string
		want  Event
	}{
		{"\x1b[A", Special(KeyArrowUp)},
		{"\x1b[B", Special(KeyArrowDown)},
		{"\x1b[C", Special(KeyArrowRight)},
		{"\x1b[D", Special(KeyArrowLeft)},
		{"\x1b[H", Special(KeyHome)},
		{"\x1b[F", Special(KeyEnd)},
		{"\x1b[1~", Special(KeyHome)},
		{"\x1b[3~", Special(KeyDelete)},
		{"\x1b[4~", Special(KeyEnd)},
		{"\x1b[5~", Special(KeyPageUp)},
		{"\x1b[6~", Special(KeyPageDown)},
		{"\x1b[7~", Special(KeyHome)},
		{"\x1b[8~", Special(KeyEnd)},
		{"\x1bOH", Special(KeyHome)},
		{"\x1bOF", Special(KeyEnd)},
		{"\x1bOA", Special(KeyArrowUp)},
		{"\x7f", Special(KeyBackspace)},
		{"a", Printable('a')},
		{"~", Printable('~')},
		{"\x11", Control(0x11)},
		{"\r", Control(ByteEnter)},
	}

	for _, tt := range tests {
		got := decodeAll(t, tt.input)
		if len(got) != 1 {
			t.Errorf("input %q: expected 1 event, got %d (%v)", tt.input, len(got), got)
			continue
		}
		if got[0] != tt.want {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.want, got[0])
		}
	}
}

func TestDecoderUnknownSequencesDegrade(t *testing.T) {
	tests := []string{
		"\x1b[Z",
		"\x1b[2~",
		"\x1b[5x",
		"\x1bOZ",
		"\x1bxy",
	}
	for _, input := range tests {
		var degraded []byte
		d := NewDecoder(&scriptReader{data: []byte(input)}, WithDegradeHook(func(seq []byte) {
			degraded = seq
		}))
		ev, err := d.ReadKey()
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}
		if !ev.Is(KeyEscape) {
			t.Errorf("input %q: expected Esc, got %v", input, ev)
		}
		if string(degraded) != input {
			t.Errorf("input %q: expected degrade hook to see %q, got %q", input, input, degraded)
		}
	}
}

func TestDecoderStalledEscape(t *testing.T) {
	// A lone ESC followed by nothing must not block.
	got := decodeAll(t, "\x1b")
	if len(got) != 1 || !got[0].Is(KeyEscape) {
		t.Fatalf("expected single Esc, got %v", got)
	}

	// ESC [ with nothing after it is still a bare Esc.
	got = decodeAll(t, "\x1b[")
	if len(got) != 1 || !got[0].Is(KeyEscape) {
		t.Fatalf("expected single Esc for stalled CSI, got %v", got)
	}

	// ESC [ 5 stalled before the final ~.
	got = decodeAll(t, "\x1b[5")
	if len(got) != 1 || !got[0].Is(KeyEscape) {
		t.Fatalf("expected single Esc for stalled numbered CSI, got %v", got)
	}
}

func TestDecoderStream(t *testing.T) {
	got := decodeAll(t, "ab\x1b[Cc\r")
	want := []Event{Printable('a'), Printable('b'), Special(KeyArrowRight), Printable('c'), Control(ByteEnter)}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestDecoderNoInput(t *testing.T) {
	d := NewDecoder(&scriptReader{})
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.IsNone() {
		t.Errorf("expected no event, got %v", ev)
	}
}

func TestDecoderReadError(t *testing.T) {
	boom := errors.New("boom")
	d := NewDecoder(&scriptReader{err: boom})
	if _, err := d.ReadKey(); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
