package initializers

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var list = map[string]func() Initializer{
	"scaled-normal": func() Initializer { return Default() },
	"uniform":       func() Initializer { return Uniform(-1, 1) },
	"lecun":         func() Initializer { return LeCun() },
	"he":            func() Initializer { return He() },
}

// ByName returns the Initializer with the given name, with default parameters. The names are
// "scaled-normal", "uniform" (over [-1, 1)), "lecun" and "he".
func ByName(name string) (Initializer, error) {
	f, ok := list[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("Unknown initializer %q, expected one of %s", name, strings.Join(Names(), ", "))
	}

	return f(), nil
}

// Names returns the name of every Initializer accepted by ByName, in sorted order.
func Names() []string {
	names := make([]string, 0, len(list))
	for n := range list {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
