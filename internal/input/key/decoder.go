package key

import "time"

// DefaultTimeout is the read timeout used when none is configured.
const DefaultTimeout = 100 * time.Millisecond

// InputReader is the input half of a terminal driver.
// ReadInput returns ok=false when no byte arrived within timeout.
type InputReader interface {
	ReadInput(timeout time.Duration) (b byte, ok bool, err error)
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithTimeout sets the poll timeout applied to every byte read,
// including the bytes that follow ESC.
func WithTimeout(d time.Duration) DecoderOption {
	return func(dec *Decoder) {
		if d > 0 {
			dec.timeout = d
		}
	}
}

// WithDegradeHook registers a callback invoked with the bytes consumed
// when an escape sequence could not be decoded and was reported as
// KeyEscape.
func WithDegradeHook(fn func(seq []byte)) DecoderOption {
	return func(dec *Decoder) {
		dec.onDegrade = fn
	}
}

// Decoder turns a byte stream into key events.
// It keeps no state between calls.
type Decoder struct {
	src       InputReader
	timeout   time.Duration
	onDegrade func(seq []byte)
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src InputReader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		src:     src,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReadKey reads one key event. It returns None when no byte arrived
// within the timeout. Only read errors from the source are returned.
func (d *Decoder) ReadKey() (Event, error) {
	b, ok, err := d.src.ReadInput(d.timeout)
	if err != nil {
		return None(), err
	}
	if !ok {
		return None(), nil
	}
	if b != ByteEscape {
		return FromByte(b), nil
	}
	return d.readEscape()
}

// readEscape decodes the remainder of a sequence that started with ESC.
func (d *Decoder) readEscape() (Event, error) {
	var seq [3]byte

	n, err := d.fill(seq[:2])
	if err != nil {
		return None(), err
	}
	if n < 2 {
		return d.degrade(seq[:n]), nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			n, err := d.fill(seq[2:3])
			if err != nil {
				return None(), err
			}
			if n == 1 && seq[2] == '~' {
				if k, ok := csiNumbered[seq[1]]; ok {
					return Special(k), nil
				}
			}
			return d.degrade(seq[:2+n]), nil
		}
		if k, ok := csiLetters[seq[1]]; ok {
			return Special(k), nil
		}
	case 'O':
		if k, ok := ss3Letters[seq[1]]; ok {
			return Special(k), nil
		}
	}
	return d.degrade(seq[:2]), nil
}

// fill reads into buf until it is full or a read times out.
func (d *Decoder) fill(buf []byte) (int, error) {
	for i := range buf {
		b, ok, err := d.src.ReadInput(d.timeout)
		if err != nil {
			return i, err
		}
		if !ok {
			return i, nil
		}
		buf[i] = b
	}
	return len(buf), nil
}

func (d *Decoder) degrade(seq []byte) Event {
	if d.onDegrade != nil {
		d.onDegrade(append([]byte{ByteEscape}, seq...))
	}
	return Special(KeyEscape)
}

var csiLetters = map[byte]Named{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var csiNumbered = map[byte]Named{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

var ss3Letters = map[byte]Named{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}
