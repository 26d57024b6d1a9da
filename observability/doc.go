// Package observability records OpenTelemetry metrics and spans for
// pipeline evaluation.
//
// Instruments are created once and shared by every pipeline that should be
// observed:
//
//	ins, err := observability.DefaultInstruments("")
//	p := pipeline.FromSlice(items, pipeline.WithInstruments(ins))
//
// Each pipeline source is wrapped with [Observe], which counts pulled values
// (seqkit.items.pulled). Every terminal operation runs inside a span opened
// by [Instruments.StartTerminal]; ending it records seqkit.terminal.duration
// and, for failures, seqkit.terminal.errors labelled with the error code.
//
// Providers:
//
//	mp, err := observability.InitMeter(observability.DefaultProviderConfig("svc"), reader)
//	defer mp.Shutdown(ctx)
//	tp, err := observability.InitTracer(observability.DefaultProviderConfig("svc"), exporter)
//	defer tp.Shutdown(ctx)
//
// The reader and exporter are supplied by the caller; this package opens no
// network connections.
package observability
