package builtin

import (
	"github.com/vitalvas/urlproto/builtin/file"
	"github.com/vitalvas/urlproto/builtin/mem"
	"github.com/vitalvas/urlproto/protocol"
)

func init() {
	if err := Install(protocol.DefaultCatalog); err != nil {
		panic(err)
	}
}

// Handlers returns new instances of the builtin handlers keyed by
// protocol.
func Handlers() map[string]protocol.Handler {
	return map[string]protocol.Handler{
		file.Scheme: file.New(),
		mem.Scheme:  mem.New(),
	}
}

// Install adds new instances of the builtin handlers to c.
func Install(c *protocol.Catalog) error {
	for name, h := range Handlers() {
		if err := c.AddBuiltin(name, h); err != nil {
			return err
		}
	}

	return nil
}
