package search

import (
	"testing"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func ids(listings []*domain.Listing) []string {
	res := make([]string, 0, len(listings))
	for _, l := range listings {
		res = append(res, l.ID)
	}
	return res
}

func fixture() []*domain.Listing {
	return []*domain.Listing{
		{ID: "1", Title: "Sunrise Hostel", Location: "North Gate", Type: "Hostel", Price: 3500},
		{ID: "2", Title: "Quiet PG", Location: "Hostel Road", Type: "PG", Price: 4800},
		{ID: "3", Title: "2BHK Flat", Location: "Market Street", Type: "Flat", Price: 12000},
		{ID: "4", Title: "Budget PG", Location: "South Gate", Type: "PG", Price: 6000},
		{ID: "5", Title: "HOSTEL deluxe", Location: "East Wing", Type: "Hostel", Price: 5000},
	}
}

func TestFilter_SearchTextTitleOrLocationCaseInsensitive(t *testing.T) {
	got := Filter(fixture(), domain.ListingCriteria{SearchText: "hostel"})
	assert.Equal(t, []string{"1", "2", "5"}, ids(got))

	got = Filter(fixture(), domain.ListingCriteria{SearchText: "HoStEl"})
	assert.Equal(t, []string{"1", "2", "5"}, ids(got))
}

func TestFilter_TypeAndMaxPrice(t *testing.T) {
	got := Filter(fixture(), domain.ListingCriteria{Type: "PG", MaxPrice: price(5000)})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_MaxPriceIsInclusive(t *testing.T) {
	got := Filter(fixture(), domain.ListingCriteria{MaxPrice: price(5000)})
	assert.Equal(t, []string{"1", "2", "5"}, ids(got))
}

func TestFilter_EmptyCriteriaReturnsEverythingInOrder(t *testing.T) {
	got := Filter(fixture(), domain.ListingCriteria{})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
}

func TestFilter_TypeIsExactMatch(t *testing.T) {
	got := Filter(fixture(), domain.ListingCriteria{Type: "pg"})
	assert.Empty(t, got)
}

func TestFilter_PriceCapExcludesAll(t *testing.T) {
	x := &domain.Listing{ID: "x", Title: "PG near campus", Type: "PG", Price: 4000}

	got := Filter([]*domain.Listing{x}, domain.ListingCriteria{Type: "PG", MaxPrice: price(3000)})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	_ = Filter(in, domain.ListingCriteria{SearchText: "gate"})

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(in))
}

func TestFilter_Deterministic(t *testing.T) {
	c := domain.ListingCriteria{SearchText: "gate", MaxPrice: price(7000)}
	first := Filter(fixture(), c)
	second := Filter(fixture(), c)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, []string{"1", "4"}, ids(first))
}
