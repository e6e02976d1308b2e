// Package logfmt provides the core's panic/log sink: a tiny, allocation-
// conscious writer that never pulls in the full fmt/reflect machinery on a
// freestanding build. It mirrors every message to the builtin print plus an
// optional secondary writer (a UART, a ring buffer, a test buffer).
package logfmt

import "io"

// Sink writes log parts to the console (via the builtin print, which works
// even before any peripheral is brought up) and, if set, mirrors the same
// bytes to w — typically a UART handle wired up once the board is running.
type Sink struct {
	w io.Writer
}

// NewSink builds a Sink with no mirror writer. Use SetWriter once a second
// output (e.g. a UART) becomes available.
func NewSink() *Sink { return &Sink{} }

// SetWriter installs or clears (nil) the mirror writer.
func (s *Sink) SetWriter(w io.Writer) { s.w = w }

func (s *Sink) writeString(str string) {
	if str == "" {
		return
	}
	print(str)
	if s.w != nil {
		_, _ = s.w.Write([]byte(str))
	}
}

func (s *Sink) writePart(v any) {
	switch x := v.(type) {
	case string:
		s.writeString(x)
	case []byte:
		s.writeString(string(x))
	case error:
		s.writeString(x.Error())
	case int:
		s.writeString(FormatInt(int64(x), 10))
	case int32:
		s.writeString(FormatInt(int64(x), 10))
	case int64:
		s.writeString(FormatInt(x, 10))
	case uint:
		s.writeString(FormatUint(uint64(x), 10))
	case uint32:
		s.writeString(FormatUint(uint64(x), 10))
	case uint64:
		s.writeString(FormatUint(x, 10))
	case bool:
		if x {
			s.writeString("true")
		} else {
			s.writeString("false")
		}
	default:
		s.writeString("?")
	}
}

// Print concatenates parts with no separator, mirroring Logger.Print's
// byte-exact console behaviour.
func (s *Sink) Print(parts ...any) {
	for _, p := range parts {
		s.writePart(p)
	}
}

// Println is Print followed by a newline.
func (s *Sink) Println(parts ...any) {
	s.Print(parts...)
	s.writeString("\n")
}
