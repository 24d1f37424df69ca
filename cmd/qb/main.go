// Command qb renders query definition files to SQL SELECT statements.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/biyonik/go-query-builder/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()

	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
