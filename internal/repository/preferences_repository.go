package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresPreferencesRepository struct {
	db database.Querier
}

func NewPostgresPreferencesRepository(db database.Querier) *PostgresPreferencesRepository {
	return &PostgresPreferencesRepository{db: db}
}

func (r *PostgresPreferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (user.Preferences, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(job_titles, '{}'), city, country, remote_work, minimum_pay::float8, pay_period, updated_at
		 FROM user_preferences
		 WHERE user_id = $1`,
		userID,
	)

	var p user.Preferences
	err := row.Scan(&p.UserID, &p.JobTitles, &p.City, &p.Country, &p.RemoteWork, &p.MinimumPay, &p.PayPeriod, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.Preferences{}, user.ErrPreferencesNotFound
		}
		return user.Preferences{}, err
	}
	return p, nil
}

func (r *PostgresPreferencesRepository) Upsert(ctx context.Context, p user.Preferences) error {
	titles := p.JobTitles
	if titles == nil {
		titles = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_preferences (user_id, job_titles, city, country, remote_work, minimum_pay, pay_period, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   job_titles = EXCLUDED.job_titles,
		   city = EXCLUDED.city,
		   country = EXCLUDED.country,
		   remote_work = EXCLUDED.remote_work,
		   minimum_pay = EXCLUDED.minimum_pay,
		   pay_period = EXCLUDED.pay_period,
		   updated_at = now()`,
		p.UserID, titles, p.City, p.Country, p.RemoteWork, p.MinimumPay, p.PayPeriod,
	)
	return err
}
