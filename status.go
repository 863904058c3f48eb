package slideshow

import (
	"errors"
	"fmt"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers"
)

// StatusLogger prints log lines on a small secondary display, such as a 128x64 OLED next to the main panel. Debug
// lines are dropped so the boot log stays readable.
type StatusLogger struct {
	buf *textbuf.Buffer
}

func NewStatusLogger(d drivers.Displayer) (*StatusLogger, error) {
	buf, err := textbuf.New(d, textbuf.FontSize6x8)
	if err != nil {
		return nil, fmt.Errorf("status display: %w", err)
	}

	w, h := buf.Size()
	if w < 10 || h < 2 {
		return nil, errors.New("unusably small status display")
	}

	if err := buf.SetLineInverse(0, "SLIDESHOW"); err != nil {
		return nil, fmt.Errorf("status display: %w", err)
	}
	// we already validated it has at least 2 lines
	_ = buf.SetY(1)
	return &StatusLogger{buf: buf}, nil
}

func (*StatusLogger) Debug(string) {}

func (*StatusLogger) Debugf(string, ...any) {}

func (l *StatusLogger) Info(msg string) {
	// Println pushes to the display itself. We already know it was possible to print text so don't bother checking
	// every time.
	_ = l.buf.Println(msg)
}

func (l *StatusLogger) Infof(format string, v ...any) {
	l.Info(fmt.Sprintf(format, v...))
}
