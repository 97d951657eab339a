// Package shutdown останавливает сервис по сигналам SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Wait блокируется до первого SIGINT или SIGTERM, затем выполняет хуки
// строго в порядке передачи: прием запросов должен прекратиться раньше,
// чем закроются зависимости, которые их обслуживают. На все хуки вместе
// отводится timeout; оставшиеся после его истечения не выполняются.
func Wait(timeout time.Duration, hooks ...func(context.Context) error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	signal.Stop(sigCh)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, hook := range hooks {
		if ctx.Err() != nil {
			return
		}
		_ = hook(ctx)
	}
}
