package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/pawsfam/pawhaven/internal/pkg/database"
)

// ShippingRepo implements the shipping repository interface on PostgreSQL
// (pricing configs) and Redis (config cache, quote sessions).
type ShippingRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewShippingRepository creates a new shipping repository
func NewShippingRepository(db *sqlx.DB, redisClient *database.RedisClient) *ShippingRepo {
	return &ShippingRepo{
		db:          db,
		redisClient: redisClient,
	}
}
