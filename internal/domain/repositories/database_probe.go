package repositories

import "context"

// DatabaseProbe executa consultas literais de diagnóstico no banco
type DatabaseProbe interface {
	// Ping executa SELECT 1 e retorna o valor lido
	Ping(ctx context.Context) (int, error)
	// ListTables retorna as tabelas do schema public na ordem do servidor
	ListTables(ctx context.Context) ([]string, error)
}
