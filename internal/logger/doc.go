// Package logger wraps the Zap logging library behind a small process-wide facade.
// It exposes level parsing and a shared atomic level, along with context-aware helpers
// (plain, formatted and key-value variants) that pick up fields attached with WithKV,
// so that every line written while serving one HTTP round trip carries its request id.
package logger
