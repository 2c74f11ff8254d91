package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/cynric/familymanagement-backend/internal/domain/repositories"
)

const (
	pingQuery       = "SELECT 1"
	listTablesQuery = "SELECT tablename FROM pg_tables WHERE schemaname = 'public'"
)

// DatabaseProbe implementa repositories.DatabaseProbe com consultas literais
type DatabaseProbe struct {
	db *gorm.DB
}

func NewDatabaseProbe(db *gorm.DB) repositories.DatabaseProbe {
	return &DatabaseProbe{db: db}
}

func (p *DatabaseProbe) Ping(ctx context.Context) (int, error) {
	var result int
	if err := p.db.WithContext(ctx).Raw(pingQuery).Scan(&result).Error; err != nil {
		return 0, err
	}
	return result, nil
}

func (p *DatabaseProbe) ListTables(ctx context.Context) ([]string, error) {
	tables := make([]string, 0)
	if err := p.db.WithContext(ctx).Raw(listTablesQuery).Scan(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
