// Package logger builds *slog.Logger instances for sessionkit services and
// binaries through a single factory, New, configured with Option functions.
//
// Options select the output format (json or text), the minimum level, static
// attributes attached to every record, and ContextExtractor callbacks that pull
// request-scoped values out of a context.Context each time a record is handled.
//
// Attribute helpers in attr.go keep key names consistent across packages. In
// particular SessionID never writes the raw identifier or token: it logs a short
// SHA-256 fingerprint, so log files cannot be used to replay sessions.
//
// # Usage
//
//	import "github.com/dmitrymomot/sessionkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithProduction("sessiond"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.WarnContext(ctx, "token rejected",
//	    logger.Component("session"),
//	    logger.SessionID(token),
//	    logger.Error(err),
//	)
package logger
