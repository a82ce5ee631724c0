package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mintra-ruensuk/LAMP-server/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(cli.PostgresConnector).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lampctl: %s\n", err)
		stop()
		os.Exit(1)
	}
}
