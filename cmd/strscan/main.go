// cmd/strscan/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"strscan/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
