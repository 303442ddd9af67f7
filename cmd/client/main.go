package main

import (
	"context"
	"log"

	"github.com/mkochanov/listkeeper/internal/client/cli"
	"github.com/mkochanov/listkeeper/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
