package finance

import (
	"context"

	"go.uber.org/zap"
)

// runWithCompensation executes primary and, when it fails, runs the
// compensate callback to undo already-applied side effects. A failing
// compensation is logged and never overrides the primary error.
func runWithCompensation(ctx context.Context, logger *zap.Logger, primary func() error, compensate func(context.Context) error) error {
	err := primary()
	if err == nil {
		return nil
	}

	if cerr := compensate(ctx); cerr != nil {
		logger.Warn("compensation failed after primary error",
			zap.NamedError("primary_error", err),
			zap.Error(cerr))
	}
	return err
}
