package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const (
	substr = "numrand/"
	strlen = len(substr)
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		idx := strings.LastIndex(file, substr)
		if idx != -1 {
			file = file[idx+strlen:]
		}
		return file + ":" + strconv.Itoa(line)
	}
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

var Logger = New(os.Stderr, zerolog.InfoLevel)

// New returns a console logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.StampMilli,
	}).With().Timestamp().Caller().Logger().Level(level)
}

// SetLevel parses level ("debug", "info", ...) and applies it to Logger.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	Logger = Logger.Level(lvl)
	return nil
}
