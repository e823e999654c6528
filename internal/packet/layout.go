// internal/packet/layout.go
package packet

import (
	"fmt"
	"io"

	"github.com/tamzrod/pacemaker-monitor/internal/params"
)

// Field is one payload field of a download packet.
type Field struct {
	Name string
	Size int
}

// Layout returns the download payload fields for mode, in wire order,
// followed by the payload checksum.
func Layout(reg *params.Registry, modes params.ModeTable, mode string) ([]Field, error) {
	names, ok := modes.Fields(mode)
	if !ok {
		return nil, fmt.Errorf("packet: no layout for mode %q", mode)
	}

	out := make([]Field, 0, len(names)+1)
	for _, name := range names {
		p, ok := reg.Get(name)
		if !ok {
			return nil, fmt.Errorf("packet: mode %s: unknown parameter %q", mode, name)
		}
		out = append(out, Field{Name: name, Size: p.Size()})
	}
	return append(out, Field{Name: "checksum", Size: 1}), nil
}

// PayloadLen is the total byte count of a layout.
func PayloadLen(fields []Field) int {
	n := 0
	for _, f := range fields {
		n += f.Size
	}
	return n
}

// WriteLayout prints the payload layout of every mode in the table.
func WriteLayout(w io.Writer, reg *params.Registry, modes params.ModeTable) error {
	for _, mode := range modes.ModeNames() {
		if err := WriteModeLayout(w, reg, modes, mode); err != nil {
			return err
		}
	}
	return nil
}

// WriteModeLayout prints the payload layout of one mode.
func WriteModeLayout(w io.Writer, reg *params.Registry, modes params.ModeTable, mode string) error {
	fields, err := Layout(reg, modes, mode)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "MODE: %s (%d payload bytes)\n", mode, PayloadLen(fields)); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "    %-30s %d\n", f.Name, f.Size); err != nil {
			return err
		}
	}
	return nil
}
