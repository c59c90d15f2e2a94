package main

import (
	"log/slog"
	"os"

	"rootcmp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		slog.Error("rootcmp завершился с ошибкой", "err", err)
		os.Exit(1)
	}
}
