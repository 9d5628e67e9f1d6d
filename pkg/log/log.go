package log

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é uma interface que define os métodos de log
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// RunIDKey guarda no contexto o identificador da execução do painel
const RunIDKey contextKey = "run_id"
const runIDField = "run_id"

// DefaultLevel é o nível usado quando nenhum outro é configurado
const DefaultLevel = "warn"

type logger struct {
	entry *logrus.Entry
}

var base = newBase()

// L é uma instância global de Logger para uso direto
var L Logger = &logger{entry: logrus.NewEntry(base)}

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		PadLevelText:  true,
	})
	return l
}

// Setup ajusta nível e saída do logger global. Nível vazio usa DefaultLevel.
func Setup(level string, out io.Writer) error {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	if out != nil {
		base.SetOutput(out)
	}
	return nil
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extrai o run_id do contexto, se existir
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return l.WithField(runIDField, runID)
	}
	return l
}

func (l *logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// WithRunID adiciona um identificador de execução ao contexto
func WithRunID(ctx context.Context) (context.Context, string) {
	runID := uuid.New().String()
	return context.WithValue(ctx, RunIDKey, runID), runID
}

// GetRunID obtém o identificador de execução do contexto
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// ForContext cria um logger com o run_id do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
