// Package element holds the declarative component registry and the mounted
// view handle components render through.
package element

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrEmptyTag     = errors.New("element tag is empty")
	ErrDuplicateTag = errors.New("element tag already registered")
)

// Registration describes a component: its tag, the slots of its template and
// the style applied for each class.
type Registration struct {
	Tag      string
	Template []string
	Styles   map[string]lipgloss.Style
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Registration{}
)

// Register records reg under its tag.
func Register(reg Registration) error {
	if reg.Tag == "" {
		return ErrEmptyTag
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[reg.Tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, reg.Tag)
	}
	registry[reg.Tag] = reg
	return nil
}

// MustRegister is Register for package init blocks.
func MustRegister(reg Registration) {
	if err := Register(reg); err != nil {
		panic(err)
	}
}

func Lookup(tag string) (Registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := registry[tag]
	return reg, ok
}

// Tags lists registered tags in sorted order.
func Tags() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for tag := range registry {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
