package hal

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type hostClipboard struct {
	logger Logger
	warned bool
}

func newHostClipboard(logger Logger) *hostClipboard {
	return &hostClipboard{logger: logger}
}

func (c *hostClipboard) ReadText() (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return s, nil
}

func (c *hostClipboard) WriteText(s string) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// check reports ErrNotImplemented when no clipboard utility is available,
// logging it once.
func (c *hostClipboard) check() error {
	if !clipboard.Unsupported {
		return nil
	}
	if !c.warned && c.logger != nil {
		c.logger.WriteLineString("clipboard: unsupported on this system")
		c.warned = true
	}
	return ErrNotImplemented
}
