package protocol

import (
	"fmt"
	"log/slog"
)

// Register validates h like Inspect and, only when it passes, binds the
// identity into an embedded Base, appends the parent package to the
// catalog's package list (once) and adds h to the catalog.
func Register(h Handler, opts ...Option) (Identity, error) {
	o := newOptions(opts)

	id, err := inspect(h, o)
	if err != nil {
		o.logger.Debug("handler rejected",
			slog.String("type", fmt.Sprintf("%T", h)),
			slog.Any("error", err),
		)

		return Identity{}, err
	}

	if b, ok := h.(binder); ok {
		b.bind(id)
	}

	added := o.catalog.Packages().AddOnce(id.Parent)
	o.catalog.add(id, h)

	o.logger.Debug("handler registered",
		slog.String("protocol", id.Protocol),
		slog.String("package", id.Package),
		slog.Bool("package_added", added),
	)

	return id, nil
}
