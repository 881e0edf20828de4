package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"shootinggallery/internal/server"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Fatal(err.Error())
	}
}
