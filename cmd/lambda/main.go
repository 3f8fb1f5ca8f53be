package main

import (
	"context"

	"merchfn/internal/app"
	"merchfn/internal/handlers"
	"merchfn/internal/lambdahttp"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	c, err := app.NewConfig(app.ConfigPath())
	if err != nil {
		panic(err)
	}

	zapLogger, err := app.NewLogger(c.LogLevel)
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()
	defer zapLogger.Sync()

	deps, err := app.NewDeps(context.Background(), c, logger)
	if err != nil {
		logger.Fatalf("error to init dependencies: %v", err)
	}
	defer deps.Close()

	userHandler := &handlers.UserHandlers{
		Logger:   logger,
		UserRepo: deps.UserRepo,
	}
	router := handlers.NewRouters(userHandler, deps.Verifier, logger)

	logger.Infow("starting lambda", "type", "START", "backend", c.Backend)
	lambda.Start(lambdahttp.New(router).Handle)
}
