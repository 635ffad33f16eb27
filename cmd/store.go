package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/store"
)

// openStore builds the configured selection store. The returned close
// function flushes anything still buffered.
func openStore(debounced bool) (store.Store, func(ctx context.Context) error, error) {
	var s store.Store
	switch backend := constants.GetStoreBackend(); backend {
	case "file":
		s = store.NewFile(constants.GetStatePath())
	case "dynamo":
		client, err := store.NewDynamoClient(constants.GetDynamoRegion(), constants.GetDynamoEndpoint())
		if err != nil {
			return nil, nil, err
		}
		s = store.NewDynamo(client, constants.GetDynamoTable())
	case "memory":
		s = store.NewMemory()
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", backend)
	}
	slog.Debug("opened selection store", "backend", constants.GetStoreBackend())

	noop := func(context.Context) error { return nil }
	if !debounced {
		return s, noop, nil
	}
	d := store.NewDebounced(s, constants.GetSaveDebounce(), func(view string, err error) {
		slog.Error("saving selection failed", "view", view, "err", err)
	})
	return d, d.Flush, nil
}
