package main

import (
	"github.com/livp123/evplot/cmd/evplot/commands"
	"github.com/livp123/evplot/internal/utils/logger"
)

func main() {
	defer func() {
		_ = logger.Sync()
	}()
	commands.Execute()
}
