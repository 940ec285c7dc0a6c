package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/facultyip/internal/client/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The first signal cancels in-flight requests; the default handler is
	// restored so a second one terminates a shell blocked on input.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := cli.NewRootCommand(os.Stdin).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
