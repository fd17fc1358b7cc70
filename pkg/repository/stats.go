package repository

import (
	"context"
	"fmt"

	"luppolo.dev/Luppolo/pkg/model"
)

// GetPlatformStats feeds the admin dashboard counters in one round trip.
func (r *Repository) GetPlatformStats(ctx context.Context, actor model.User) (*model.PlatformStats, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: user %d", ErrNotAuthorized, actor.ID)
	}

	var stats model.PlatformStats

	result := r.DB.WithContext(ctx).Raw(
		"SELECT " +
			"(SELECT count(*) FROM users WHERE deleted_at IS NULL) as user_count, " +
			"(SELECT count(*) FROM pubs WHERE deleted_at IS NULL) as pub_count, " +
			"(SELECT count(*) FROM breweries WHERE deleted_at IS NULL) as brewery_count, " +
			"(SELECT count(*) FROM beers WHERE deleted_at IS NULL) as beer_count, " +
			"(SELECT count(*) FROM offerings WHERE deleted_at IS NULL) as offering_count, " +
			"(SELECT count(*) FROM offerings WHERE deleted_at IS NULL AND kind = 'tap') as tap_count, " +
			"(SELECT count(*) FROM offerings WHERE deleted_at IS NULL AND kind = 'bottle') as bottle_count, " +
			"(SELECT count(*) FROM offerings WHERE deleted_at IS NULL AND kind = 'menu-item') as menu_item_count").
		Scan(&stats)

	if result.Error != nil {
		return nil, result.Error
	}

	return &stats, nil
}
