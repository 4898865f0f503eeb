package log

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controla o formato e o arquivo rotativo dos logs
type Options struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Setup configura o logger global para escrever no stdout e num arquivo rotativo.
// O io.Closer retornado fecha o arquivo de log.
func Setup(opts Options) io.Closer {
	logger := logrus.StandardLogger()
	closer := configure(logger, opts, os.Stdout)
	L = New(logger)
	return closer
}

func configure(logger *logrus.Logger, opts Options, stdout io.Writer) io.Closer {
	if opts.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if opts.File == "" {
		logger.SetOutput(stdout)
		return nopCloser{}
	}

	rotating := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	logger.SetOutput(io.MultiWriter(stdout, rotating))

	return rotating
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
