// Package logger builds slog loggers for the localize binaries.
//
// Output is JSON by default. Config.Format selects logfmt-style "text" or
// colored "pretty" output for terminals instead. Context extractors add
// request-scoped attributes to every record:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"},
//		logger.StringExtractor("request_id", requestIDFromContext),
//	)
//	log.InfoContext(ctx, "locale switched", slog.String("locale", "fr-FR"))
//
// When Config.SentryDSN is set, warnings and errors are forwarded to Sentry
// as well; errors create issues. A failed Sentry setup degrades to local
// output only.
//
// [NewNope] returns a logger that discards everything and is the default
// for library code.
package logger
