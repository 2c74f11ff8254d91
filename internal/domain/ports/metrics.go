package ports

// MetricsRecorder recebe eventos de negócio para instrumentação.
// Implementações devem aceitar chamadas concorrentes.
type MetricsRecorder interface {
	ObserveProbe(ok bool)
	ObserveCacheLookup(result string)
	ObserveRegistration()
}

// NoopMetrics descarta todos os eventos
type NoopMetrics struct{}

func (NoopMetrics) ObserveProbe(bool)         {}
func (NoopMetrics) ObserveCacheLookup(string) {}
func (NoopMetrics) ObserveRegistration()      {}
