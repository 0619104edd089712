package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/china630/bolt-usta-app/internal/pkg/constants"
	"github.com/china630/bolt-usta-app/internal/pkg/database"
	"github.com/china630/bolt-usta-app/internal/pkg/geo"
	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

// geohashPrecision gives roughly street-block sized cells in the cache
const geohashPrecision = 8

// MasterRepo implements the master repository interface. Master records live
// in PostgreSQL and are owned by the availability collaborator; last known
// locations live in the Redis geo set fed by location reports.
type MasterRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMasterRepository creates a new master repository
func NewMasterRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *MasterRepo {
	return &MasterRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// FindAvailableByCategory returns every available master whose specializations
// contain the requested category. This is a filter, not a ranking: the store
// never truncates the candidate set. Locations are batch-resolved from the
// Redis geo set; masters without a cached position keep a nil LastLocation.
func (r *MasterRepo) FindAvailableByCategory(ctx context.Context, category string) ([]*models.Master, error) {
	query := `
		SELECT id, name, specializations, is_available, updated_at
		FROM masters
		WHERE $1 = ANY(specializations) AND is_available = true
	`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query masters: %w", err)
	}
	defer rows.Close()

	var masters []*models.Master
	for rows.Next() {
		var m models.Master
		if err := rows.Scan(&m.ID, &m.Name, pq.Array(&m.Specializations), &m.IsAvailable, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan master: %w", err)
		}
		masters = append(masters, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate masters: %w", err)
	}

	if len(masters) == 0 {
		return masters, nil
	}

	ids := make([]string, len(masters))
	for i, m := range masters {
		ids[i] = m.ID
	}

	positions, err := r.redisClient.GeoPos(ctx, constants.KeyMasterGeo, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve master locations: %w", err)
	}

	for i, pos := range positions {
		if pos == nil {
			continue
		}
		masters[i].LastLocation = &models.Location{
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		}
	}

	return masters, nil
}

// UpdateLocation refreshes a master's entry in the location cache
func (r *MasterRepo) UpdateLocation(ctx context.Context, masterID string, location *models.Location) error {
	if err := r.redisClient.GeoAdd(ctx, constants.KeyMasterGeo, location.Longitude, location.Latitude, masterID); err != nil {
		return fmt.Errorf("failed to update master geo entry: %w", err)
	}

	detailKey := fmt.Sprintf(constants.KeyMasterLocation, masterID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  location.Latitude,
		constants.FieldLongitude: location.Longitude,
		constants.FieldGeohash:   geo.Encode(*location, geohashPrecision),
		constants.FieldTimestamp: location.Timestamp.Unix(),
	}
	if err := r.redisClient.HSet(ctx, detailKey, fields); err != nil {
		return fmt.Errorf("failed to update master location detail: %w", err)
	}

	return nil
}

// RemoveLocation drops a master from the location cache
func (r *MasterRepo) RemoveLocation(ctx context.Context, masterID string) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyMasterGeo, masterID); err != nil {
		return fmt.Errorf("failed to remove master geo entry: %w", err)
	}

	detailKey := fmt.Sprintf(constants.KeyMasterLocation, masterID)
	if err := r.redisClient.Delete(ctx, detailKey); err != nil {
		return fmt.Errorf("failed to remove master location detail: %w", err)
	}

	return nil
}
