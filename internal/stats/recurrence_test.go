package stats

import (
	"testing"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAnnotate(t *testing.T) {
	tenant := model.Tenant{
		Name: "Juan",
		Occupations: []model.Occupation{
			{CheckInDate: "2024-01-05"},
			{CheckInDate: "2024-01-10"},
			{CheckInDate: "2023-12-01"},
		},
	}

	annotated := Annotate(tenant)

	assert.Equal(t, 3, annotated.OccupationCount)
	assert.Equal(t, "2024-01-10", annotated.LastOccupationDate)
	assert.Nil(t, annotated.Occupations)
}

func TestAnnotateNoOccupations(t *testing.T) {
	annotated := Annotate(model.Tenant{Name: "Pedro"})

	assert.Equal(t, 0, annotated.OccupationCount)
	assert.Empty(t, annotated.LastOccupationDate)
}

func TestSortByRecurrence(t *testing.T) {
	tenants := []model.TenantWithStats{
		{Tenant: model.Tenant{Name: "C"}, OccupationCount: 1, LastOccupationDate: "2024-02-01"},
		{Tenant: model.Tenant{Name: "B"}, OccupationCount: 3, LastOccupationDate: "2024-01-05"},
		{Tenant: model.Tenant{Name: "A"}, OccupationCount: 3, LastOccupationDate: "2024-01-10"},
	}

	SortByRecurrence(tenants)

	assert.Equal(t, "A", tenants[0].Name)
	assert.Equal(t, "B", tenants[1].Name)
	assert.Equal(t, "C", tenants[2].Name)
}
