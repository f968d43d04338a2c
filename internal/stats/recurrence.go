package stats

import (
	"sort"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
)

// Annotate derives the recurrence figures for one tenant from its occupation
// rows: the visit count and the most recent check-in date, empty when the
// tenant has never stayed.
func Annotate(tenant model.Tenant) model.TenantWithStats {
	annotated := model.TenantWithStats{
		Tenant:          tenant,
		OccupationCount: len(tenant.Occupations),
	}
	for _, o := range tenant.Occupations {
		if o.CheckInDate > annotated.LastOccupationDate {
			annotated.LastOccupationDate = o.CheckInDate
		}
	}
	// the raw rows were only needed for the derivation
	annotated.Occupations = nil
	return annotated
}

// SortByRecurrence ranks tenants most-recurrent first: descending visit
// count, ties broken by most recent stay, remaining ties kept in store order.
func SortByRecurrence(tenants []model.TenantWithStats) {
	sort.SliceStable(tenants, func(i, j int) bool {
		if tenants[i].OccupationCount != tenants[j].OccupationCount {
			return tenants[i].OccupationCount > tenants[j].OccupationCount
		}
		return tenants[i].LastOccupationDate > tenants[j].LastOccupationDate
	})
}
