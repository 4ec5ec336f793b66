package main

import (
	"github.com/aref-vc/youtube-content-analyzer/cmd/handlers"
	"github.com/aref-vc/youtube-content-analyzer/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
