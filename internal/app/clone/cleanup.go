package clone

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/quick-node-clone/internal/platform/logging"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// AddressDeltaKey is the session scratch key used by address widgets to
// track their initial value delta. It must not leak into the next form.
const AddressDeltaKey = "address_initial_value_delta"

// ScratchCleanup returns a cleanup callback that resets the address delta
// counter of session once a clone form was built. An empty session yields a
// no-op callback. Failures are logged and never fail the clone.
func ScratchCleanup(store ports.ScratchStore, session string) func(ctx context.Context) {
	return func(ctx context.Context) {
		if store == nil || session == "" {
			return
		}

		_, ok, err := store.GetScratch(ctx, session, AddressDeltaKey)
		if err == nil && ok {
			err = store.ClearScratch(ctx, session, AddressDeltaKey)
		}
		if err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "failed to reset session scratch key",
				slog.String("operation", "ScratchCleanup"),
				slog.String("key", AddressDeltaKey),
				slog.Any("error", err),
			)
		}
	}
}
