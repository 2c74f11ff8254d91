package ports

// Logger é a interface de logging estruturado usada pelos services.
// Os args seguem o formato chave/valor do slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}
