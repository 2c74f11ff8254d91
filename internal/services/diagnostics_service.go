package services

import (
	"context"
	"fmt"

	"github.com/cynric/familymanagement-backend/internal/domain/ports"
	"github.com/cynric/familymanagement-backend/internal/domain/repositories"
)

// ConnectionStatus é o resultado do teste de conexão com o banco
type ConnectionStatus struct {
	Connected bool
	Result    int
	Error     string
}

// DiagnosticsService expõe consultas de diagnóstico do banco
type DiagnosticsService struct {
	probe   repositories.DatabaseProbe
	metrics ports.MetricsRecorder
	logger  ports.Logger
}

func NewDiagnosticsService(probe repositories.DatabaseProbe, metrics ports.MetricsRecorder, logger ports.Logger) *DiagnosticsService {
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}
	return &DiagnosticsService{
		probe:   probe,
		metrics: metrics,
		logger:  logger.With("component", "diagnostics_service"),
	}
}

// TestConnection executa SELECT 1. Nunca retorna erro: qualquer falha,
// inclusive panic do driver, vira parte do ConnectionStatus.
func (s *DiagnosticsService) TestConnection(ctx context.Context) (status ConnectionStatus) {
	defer func() {
		if r := recover(); r != nil {
			status = ConnectionStatus{Error: fmt.Sprint(r)}
			s.metrics.ObserveProbe(false)
			s.logger.Error("database probe panicked", "panic", r)
		}
	}()

	result, err := s.probe.Ping(ctx)
	if err != nil {
		s.metrics.ObserveProbe(false)
		s.logger.Warn("database probe failed", "error", err)
		return ConnectionStatus{Error: err.Error()}
	}

	s.metrics.ObserveProbe(true)
	return ConnectionStatus{Connected: true, Result: result}
}

// ListTables lista as tabelas do schema public; erros são propagados
func (s *DiagnosticsService) ListTables(ctx context.Context) ([]string, error) {
	tables, err := s.probe.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}
