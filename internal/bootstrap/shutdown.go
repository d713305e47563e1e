package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything with a graceful stop, such as *server.Server
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the server, which drains in-flight requests and then
// drops every session. Errors are logged, not returned, so shutdown always
// runs to completion.
func GracefulShutdown(ctx context.Context, srv Stopper) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
