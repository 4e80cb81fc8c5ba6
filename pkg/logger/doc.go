// Package logger builds configured *slog.Logger instances and provides
// attribute helpers for the mail-delivery domain.
//
// The factory defaults to JSON output at info level, suitable for log
// aggregation in production:
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
// Attribute helpers keep log field names consistent across the engine:
//
//	log.ErrorContext(ctx, "failed to send email",
//	    logger.Subject(subject),
//	    logger.Template(templateName),
//	    logger.RecipientCount(len(recipients)),
//	    logger.Error(err),
//	)
package logger
