package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
)

type demoJob struct {
	Company      string
	Title        string
	Location     string
	Remote       bool
	JobTypes     []string
	SalaryMin    *float64
	SalaryMax    *float64
	SalaryPeriod *string
	Currency     *string
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

var demoJobs = []demoJob{
	{Company: "Acme", Title: "Software Engineer", Location: "Singapore", Remote: true, JobTypes: []string{"Full-time"}, SalaryMin: f(5000), SalaryMax: f(8000), SalaryPeriod: s("month"), Currency: s("S$")},
	{Company: "Acme", Title: "Senior Software Engineer", Location: "Singapore CBD", JobTypes: []string{"Full-time"}, SalaryMin: f(90000), SalaryMax: f(140000), SalaryPeriod: s("year"), Currency: s("S$")},
	{Company: "Globex", Title: "Junior Developer", Location: "Jakarta", JobTypes: []string{"Contract"}, SalaryMin: f(8000000), SalaryMax: f(12000000), SalaryPeriod: s("month"), Currency: s("IDR")},
	{Company: "Globex", Title: "Data Analyst", Location: "Kuala Lumpur, Malaysia", Remote: true, JobTypes: []string{"Part-time"}},
	{Company: "Initech", Title: "Barista", Location: "Singapore", JobTypes: []string{"Part-time"}, SalaryMin: f(12), SalaryMax: f(15), SalaryPeriod: s("hour"), Currency: s("S$")},
}

// DemoJobsSeeder inserts a small fixed catalogue for local development. It
// is idempotent on (company, title, location).
type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range demoJobs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO companies (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			it.Company,
		); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (company_id, title, location, remote, job_types, salary_min, salary_max, salary_period, salary_currency, posted_at)
			 SELECT c.id, $2, $3, $4, $5, $6, $7, $8, $9, now()
			 FROM companies c
			 WHERE c.name = $1
			   AND NOT EXISTS (
			     SELECT 1 FROM jobs j WHERE j.company_id = c.id AND j.title = $2 AND j.location = $3
			   )`,
			it.Company, it.Title, it.Location, it.Remote, it.JobTypes,
			it.SalaryMin, it.SalaryMax, it.SalaryPeriod, it.Currency,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
