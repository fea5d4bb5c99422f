package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at the append-only file and stdout.
// The returned closer releases the file.
func Setup(filename string, level string) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("zerolog.ParseLevel: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return fmt.Sprintf("%s:%d", path.Base(file), line)
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = New(file, os.Stdout)

	return file, nil
}

// New writes plain json records to file and human readable ones to console.
func New(file io.Writer, console io.Writer) zerolog.Logger {
	writer := zerolog.MultiLevelWriter(
		file,
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339},
	)

	return zerolog.New(writer).With().Timestamp().Caller().Logger()
}
