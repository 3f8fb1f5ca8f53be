// Локальный запуск облачных функций:
//
//	FUNCTION_TARGET=purchase go run ./cmd/functions
package main

import (
	"os"

	_ "merchfn"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"go.uber.org/zap"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	logger.Infow("starting functions", "type", "START", "port", port)
	if err := funcframework.Start(port); err != nil {
		logger.Fatalf("funcframework.Start: %v", err)
	}
}
