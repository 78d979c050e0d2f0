// Package facade adapts logging backends to the eclair.Facade contract.
//
// The engine assembles complete message strings and decides levels on its
// own; a facade only carries the finished record to a backend at the right
// severity. Implementations cover the common setups: log/slog for
// applications on the standard structured logger, zap for high-throughput
// services, a plain writer for CLIs and tests, and a cached factory
// decorator that bounds facade construction cost on the hot path.
//
// Facades never gate. Backends with their own level filtering should be
// configured permissively, leaving threshold decisions to the engine's
// level source.
package facade
