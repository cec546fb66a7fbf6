package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/01moynul/eshop-catalog-golang/internal/config"
)

// New builds the application logger. Console output is always on; with file
// logging enabled every entry also goes to <dir>/all.log and errors to <dir>/error.log.
func New(cfg *config.AppConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if !cfg.Logger.FileEnable {
		return zapConfig.Build(zap.AddCaller())
	}

	if err := os.MkdirAll(cfg.Logger.Dir, 0o755); err != nil {
		return nil, err
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if cfg.IsProduction() {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapConfig.Level),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(rotating(cfg.Logger.Dir, "all.log")), zapConfig.Level),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(rotating(cfg.Logger.Dir, "error.log")), zap.ErrorLevel),
	)
	return zap.New(core, zap.AddCaller()), nil
}

func rotating(dir, name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   false,
	}
}
