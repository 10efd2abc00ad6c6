// Package logger es un wrapper fino sobre zerolog con los defaults del
// servicio: nivel desde config, timestamp y campo "app".
package logger

import (
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embebe zerolog.Logger; toda la API estándar queda disponible.
type Logger struct {
	zerolog.Logger
}

type Options struct {
	Level  string // debug|info|warn|error (default info)
	Format string // json|console (default json)
	App    string
}

func New(opts Options) *Logger {
	lvl := parseLevel(opts.Level)

	var out = os.Stdout
	l := zerolog.New(out)
	if strings.EqualFold(opts.Format, "console") {
		l = zerolog.New(zerolog.ConsoleWriter{Out: out})
	}

	ctx := l.Level(lvl).With().Timestamp()
	if strings.TrimSpace(opts.App) != "" {
		ctx = ctx.Str("app", strings.TrimSpace(opts.App))
	}

	logger := ctx.Logger()
	return &Logger{logger}
}

// Nop descarta todo; para tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest devuelve el logger guardado en el contexto del request
// (zerolog global si no hay ninguno).
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
