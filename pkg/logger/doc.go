// Package logger provides a configurable log/slog factory.
//
// # Usage
//
//	import "github.com/dmitrymomot/csrfkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "web")),
//	)
//	log.Info("started")
package logger
