package realtime

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// WriteSSEEvent writes one server-sent event frame. Multi-line data is split
// onto repeated data: lines as the protocol requires.
func WriteSSEEvent(w io.Writer, event string, data []byte) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if event != "" {
		_, _ = buf.WriteString("event: ")
		_, _ = buf.WriteString(event)
		_, _ = buf.WriteString("\n")
	}
	for _, line := range strings.Split(string(data), "\n") {
		_, _ = buf.WriteString("data: ")
		_, _ = buf.WriteString(line)
		_, _ = buf.WriteString("\n")
	}
	_, _ = buf.WriteString("\n")

	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write sse frame: %w", err)
	}

	return nil
}

// WriteSSEComment writes a comment frame, used as a keep-alive ping.
func WriteSSEComment(w io.Writer, comment string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(": ")
	_, _ = buf.WriteString(comment)
	_, _ = buf.WriteString("\n\n")

	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write sse comment: %w", err)
	}

	return nil
}
