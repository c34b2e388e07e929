// Package render writes pokedex list items and detail cards to a terminal or pipe.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/pokedex-service/internal/app/pokedex"
)

// ErrUnsupportedFormat is returned by ParseFormat for unknown output names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format selects how items are written.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format. Empty selects Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Options configures a Renderer.
type Options struct {
	Writer     io.Writer // defaults to os.Stdout
	Format     Format
	ForcePlain bool // disables styling even on a TTY
}

// Renderer writes one line per list item as it is added (text) or buffers
// items until Flush (json, yaml).
type Renderer struct {
	w      io.Writer
	format Format
	styles styles

	mu      sync.Mutex
	pending []pokedex.ListItem
	err     error
}

// New builds a Renderer. Styling is applied only for text written to a terminal.
func New(opts Options) *Renderer {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	f := opts.Format
	if f == "" {
		f = Text
	}
	styled := f == Text && !opts.ForcePlain && isTTY(w)
	return &Renderer{w: w, format: f, styles: newStyles(styled)}
}

// AddListItem renders item. Call once per entity in store order.
func (r *Renderer) AddListItem(item pokedex.ListItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format != Text {
		r.pending = append(r.pending, item)
		return
	}
	r.write(r.styles.listLine(item) + "\n")
}

// Detail renders a single card immediately.
func (r *Renderer) Detail(card pokedex.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.format {
	case JSON:
		r.writeJSON(card)
	case YAML:
		r.writeYAML(card)
	default:
		r.write(r.styles.card(card) + "\n")
	}
	return r.takeErr()
}

// Flush writes buffered list items and returns the first write error seen.
func (r *Renderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format != Text {
		items := r.pending
		if items == nil {
			items = []pokedex.ListItem{}
		}
		if r.format == JSON {
			r.writeJSON(items)
		} else {
			r.writeYAML(items)
		}
		r.pending = nil
	}
	return r.takeErr()
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *Renderer) writeJSON(v any) {
	if r.err != nil {
		return
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	r.err = enc.Encode(v)
}

func (r *Renderer) writeYAML(v any) {
	if r.err != nil {
		return
	}
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		r.err = err
		return
	}
	r.err = enc.Close()
}

func (r *Renderer) takeErr() error {
	err := r.err
	r.err = nil
	return err
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
