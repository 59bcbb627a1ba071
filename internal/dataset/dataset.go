// Package dataset loads the tabular credit records from CSV files at startup
// and serves per-company subsets. The dataset is immutable once loaded; every
// accessor is safe for concurrent use.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/models"
)

// ErrCompanyNotFound is returned when a company id has no row in companies.csv
var ErrCompanyNotFound = errors.New("company not found")

// Dataset is a read-only handle over the loaded CSV records. It is constructed
// once and injected into every service that needs company data; there is no
// ambient global state.
type Dataset struct {
	companies  []models.Company
	financials []models.FinancialPeriod
	exposure   []models.ExposureRecord
	covenants  []models.CovenantRecord
	events     []models.EarlyWarningEvent

	byID map[string]models.Company
}

// Load reads the five CSV files from dir and builds the dataset
func Load(dir string, logger arbor.ILogger) (*Dataset, error) {
	ds := &Dataset{
		byID: make(map[string]models.Company),
	}

	if err := readCSV(filepath.Join(dir, "companies.csv"), &ds.companies); err != nil {
		return nil, err
	}
	if err := readCSV(filepath.Join(dir, "financials.csv"), &ds.financials); err != nil {
		return nil, err
	}
	if err := readCSV(filepath.Join(dir, "exposure.csv"), &ds.exposure); err != nil {
		return nil, err
	}
	if err := readCSV(filepath.Join(dir, "covenants.csv"), &ds.covenants); err != nil {
		return nil, err
	}
	if err := readCSV(filepath.Join(dir, "ews.csv"), &ds.events); err != nil {
		return nil, err
	}

	for _, c := range ds.companies {
		ds.byID[c.CompanyID] = c
	}

	logger.Info().
		Int("companies", len(ds.companies)).
		Int("financials", len(ds.financials)).
		Int("exposure", len(ds.exposure)).
		Int("covenants", len(ds.covenants)).
		Int("ews_events", len(ds.events)).
		Str("dir", dir).
		Msg("Dataset loaded")

	return ds, nil
}

func readCSV(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Company looks up a company by id
func (d *Dataset) Company(id string) (models.Company, error) {
	company, ok := d.byID[id]
	if !ok {
		return models.Company{}, fmt.Errorf("%w: %s", ErrCompanyNotFound, id)
	}
	return company, nil
}

// Companies returns a page of companies. Limit is clamped to [1, 200].
func (d *Dataset) Companies(limit, offset int) []models.Company {
	if limit < 1 {
		limit = 1
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 || offset >= len(d.companies) {
		return []models.Company{}
	}
	end := offset + limit
	if end > len(d.companies) {
		end = len(d.companies)
	}
	return d.companies[offset:end]
}

// AllCompanies returns every company in input order
func (d *Dataset) AllCompanies() []models.Company {
	return d.companies
}

// FinancialsFor returns the financial periods for a company in input order.
// An unknown or data-free company yields an empty slice, not an error.
func (d *Dataset) FinancialsFor(companyID string) []models.FinancialPeriod {
	result := []models.FinancialPeriod{}
	for _, row := range d.financials {
		if row.CompanyID == companyID {
			result = append(result, row)
		}
	}
	return result
}

// ExposureFor returns the exposure records for a company in input order
func (d *Dataset) ExposureFor(companyID string) []models.ExposureRecord {
	result := []models.ExposureRecord{}
	for _, row := range d.exposure {
		if row.CompanyID == companyID {
			result = append(result, row)
		}
	}
	return result
}

// CovenantsFor returns the covenant records for a company in input order
func (d *Dataset) CovenantsFor(companyID string) []models.CovenantRecord {
	result := []models.CovenantRecord{}
	for _, row := range d.covenants {
		if row.CompanyID == companyID {
			result = append(result, row)
		}
	}
	return result
}

// EventsFor returns the early warning events for a company in input order
func (d *Dataset) EventsFor(companyID string) []models.EarlyWarningEvent {
	result := []models.EarlyWarningEvent{}
	for _, row := range d.events {
		if row.CompanyID == companyID {
			result = append(result, row)
		}
	}
	return result
}
