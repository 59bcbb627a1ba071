package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func loadTestDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Load("testdata", arbor.NewLogger())
	require.NoError(t, err)
	return ds
}

func TestLoad(t *testing.T) {
	ds := loadTestDataset(t)

	assert.Len(t, ds.AllCompanies(), 3)
	assert.Len(t, ds.FinancialsFor("C100"), 2)
	assert.Len(t, ds.ExposureFor("C100"), 1)
	assert.Len(t, ds.CovenantsFor("C100"), 1)
	assert.Len(t, ds.EventsFor("C100"), 2)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load("testdata/does-not-exist", arbor.NewLogger())
	assert.Error(t, err)
}

func TestCompany(t *testing.T) {
	ds := loadTestDataset(t)

	company, err := ds.Company("C100")
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries", company.CompanyName)
	assert.Equal(t, "Manufacturing", company.Sector)

	_, err = ds.Company("C999")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanies_Pagination(t *testing.T) {
	ds := loadTestDataset(t)

	tests := []struct {
		name    string
		limit   int
		offset  int
		wantIDs []string
	}{
		{"first page", 2, 0, []string{"C100", "C200"}},
		{"second page", 2, 2, []string{"C300"}},
		{"offset past end", 10, 5, []string{}},
		{"negative offset", 10, -1, []string{}},
		{"zero limit clamps to one", 0, 0, []string{"C100"}},
		{"oversized limit clamps to available", 500, 0, []string{"C100", "C200", "C300"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ds.Companies(tt.limit, tt.offset)
			ids := []string{}
			for _, c := range page {
				ids = append(ids, c.CompanyID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSubsets_InputOrder(t *testing.T) {
	ds := loadTestDataset(t)

	financials := ds.FinancialsFor("C100")
	require.Len(t, financials, 2)
	assert.Equal(t, 2022, financials[0].Year)
	assert.Equal(t, 2023, financials[1].Year)

	events := ds.EventsFor("C100")
	require.Len(t, events, 2)
	assert.Equal(t, "Missed payment", events[0].Event)
	assert.Equal(t, "Late filing", events[1].Event)
}

func TestSubsets_UnknownCompanyYieldsEmpty(t *testing.T) {
	ds := loadTestDataset(t)

	// Empty, not nil, and never an error
	assert.NotNil(t, ds.FinancialsFor("C999"))
	assert.Empty(t, ds.FinancialsFor("C999"))
	assert.Empty(t, ds.ExposureFor("C999"))
	assert.Empty(t, ds.CovenantsFor("C999"))
	assert.Empty(t, ds.EventsFor("C999"))

	// C300 exists but has no rows in the other tables
	assert.Empty(t, ds.FinancialsFor("C300"))
	assert.Empty(t, ds.CovenantsFor("C300"))
}

func TestColumnParsing(t *testing.T) {
	ds := loadTestDataset(t)

	exposure := ds.ExposureFor("C100")
	require.Len(t, exposure, 1)
	assert.Equal(t, 100.0, exposure[0].SanctionedLimit)
	assert.Equal(t, 90.0, exposure[0].UtilizedAmount)
	assert.Equal(t, 120.0, exposure[0].CollateralValue)
	assert.Equal(t, 12, exposure[0].DaysPastDue)

	covenants := ds.CovenantsFor("C100")
	require.Len(t, covenants, 1)
	assert.Equal(t, 1.2, covenants[0].DSCR)
	assert.Equal(t, 100.0, covenants[0].EBITDAMinRequirement)
}
