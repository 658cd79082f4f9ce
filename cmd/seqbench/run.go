package main

import (
	"context"
	"io"

	"github.com/pavanmanishd/seqbench"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	logLevel string
}

func (o *options) run(ctx context.Context, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, props, err := initLogger(o.logLevel, errOut)
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(logger, props)

	registry := prometheus.NewRegistry()
	seqbench.InitMetrics(registry)

	r, err := seqbench.NewRunner(seqbench.DefaultConfig())
	if err != nil {
		return errors.Trace(err)
	}
	res, err := r.Run(ctx, out)
	if err != nil {
		return errors.Trace(err)
	}
	log.Info("benchmark finished",
		zap.Int("arrayFootprint", res.ArrayFootprint),
		zap.Int("linkedFootprint", res.LinkedFootprint))
	return errors.Trace(logMetrics(log.L(), registry))
}

// initLogger builds a logger writing to w so stdout carries only the report.
func initLogger(level string, w io.Writer) (*zap.Logger, *log.ZapProperties, error) {
	cfg := &log.Config{Level: level, Format: "text"}
	ws := zapcore.AddSync(w)
	logger, props, err := log.InitLoggerWithWriteSyncer(cfg, ws, ws)
	if err != nil {
		return nil, nil, errors.Annotate(err, "init logger")
	}
	return logger, props, nil
}

// logMetrics writes every gauge gathered from registry at debug level.
func logMetrics(logger *zap.Logger, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return errors.Annotate(err, "gather metrics")
	}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			fields := make([]zap.Field, 0, len(m.GetLabel())+2)
			fields = append(fields, zap.String("name", f.GetName()))
			for _, l := range m.GetLabel() {
				fields = append(fields, zap.String(l.GetName(), l.GetValue()))
			}
			fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			logger.Debug("metric", fields...)
		}
	}
	return nil
}
