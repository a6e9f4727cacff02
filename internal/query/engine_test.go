package query

import (
	"testing"

	"github.com/lotworks/lotview/internal/model"
)

func TestEnginePipelineOrder(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(95)
	e := NewEngine()

	res := e.Run(catalog, Criteria{
		Filters:    Filters{FilterMake: Text("Ford")},
		Sort:       &Sort{Field: SortBid, Direction: Desc},
		Pagination: Pagination{Page: 1, Limit: 10},
	})

	// 32 Fords in a 95-vehicle cycle of three makes
	if res.Total != 32 {
		t.Fatalf("total = %d, want 32", res.Total)
	}
	if len(res.Page) != 10 {
		t.Fatalf("page holds %d items, want 10", len(res.Page))
	}
	for i := 1; i < len(res.Page); i++ {
		if res.Page[i-1].StartingBid < res.Page[i].StartingBid {
			t.Fatalf("page not sorted descending at %d", i)
		}
	}
	for _, v := range res.Page {
		if v.Make != "Ford" {
			t.Fatalf("non-Ford %s on the page", v.ID)
		}
	}
}

func TestEngineTotalCountsMatchesNotPage(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(95)
	e := NewEngine()

	res := e.Run(catalog, Criteria{Pagination: Pagination{Page: 10, Limit: 10}})
	if res.Total != 95 {
		t.Fatalf("total = %d, want the pre-pagination count 95", res.Total)
	}
	if len(res.Page) != 5 {
		t.Fatalf("short last page holds %d, want 5", len(res.Page))
	}
}

func TestEngineFavoritesPipeline(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(95)
	e := NewEngine()

	favs := map[string]bool{"veh-1": true, "veh-4": true, "veh-2": true}
	c := Criteria{
		Filters:    Filters{FilterMake: Text("Ford")},
		Pagination: Pagination{Page: 1, Limit: 10},
	}

	full := e.Run(catalog, c)
	favsRes := e.RunFavorites(catalog, favs, 1, c)

	if full.Total != 32 {
		t.Fatalf("full total = %d, want 32", full.Total)
	}
	// veh-1 and veh-4 are Fords, veh-2 is not
	if favsRes.Total != 2 {
		t.Fatalf("favorites total = %d, want 2", favsRes.Total)
	}
	for _, v := range favsRes.Page {
		if !favs[v.ID] || v.Make != "Ford" {
			t.Fatalf("vehicle %s should not be on the favorites page", v.ID)
		}
	}
}

func TestEngineFavoritesKeepCatalogOrder(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(20)
	e := NewEngine()

	favs := map[string]bool{"veh-15": true, "veh-3": true, "veh-9": true}
	res := e.RunFavorites(catalog, favs, 1, Criteria{Pagination: Pagination{Page: 1, Limit: 10}})

	want := []string{"veh-3", "veh-9", "veh-15"}
	if len(res.Page) != len(want) {
		t.Fatalf("got %d favorites, want %d", len(res.Page), len(want))
	}
	for i, id := range want {
		if res.Page[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, res.Page[i].ID, id)
		}
	}
}

func TestEngineMemoization(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(50)
	e := NewEngine()

	c := Criteria{
		Filters:    Filters{FilterMake: Text("Toyota")},
		Sort:       &Sort{Field: SortYear, Direction: Asc},
		Pagination: Pagination{Page: 1, Limit: 10},
	}

	first := e.Run(catalog, c)
	second := e.Run(catalog, c)
	if &first.Page[0] != &second.Page[0] {
		t.Fatal("unchanged inputs should return the memoized page")
	}

	// Same meaning through a different map instance still hits
	third := e.Run(catalog, Criteria{
		Filters:    Filters{FilterMake: Text("Toyota")},
		Sort:       &Sort{Field: SortYear, Direction: Asc},
		Pagination: Pagination{Page: 1, Limit: 10},
	})
	if &first.Page[0] != &third.Page[0] {
		t.Fatal("structurally equal criteria should hit the memo")
	}

	// Changed criteria must miss
	c2 := c
	c2.Pagination.Page = 2
	fourth := e.Run(catalog, c2)
	if len(fourth.Page) > 0 && &first.Page[0] == &fourth.Page[0] {
		t.Fatal("changed page must recompute")
	}
}

func TestEngineMemoInvalidatedByFavsRev(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(20)
	e := NewEngine()

	favs := map[string]bool{"veh-2": true}
	c := Criteria{Pagination: Pagination{Page: 1, Limit: 10}}

	first := e.RunFavorites(catalog, favs, 1, c)
	if first.Total != 1 {
		t.Fatalf("total = %d, want 1", first.Total)
	}

	favs["veh-7"] = true
	second := e.RunFavorites(catalog, favs, 2, c)
	if second.Total != 2 {
		t.Fatalf("after revision bump total = %d, want 2", second.Total)
	}
}

func TestEngineMemoNotSharedAcrossPipelines(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(20)
	e := NewEngine()

	c := Criteria{Pagination: Pagination{Page: 1, Limit: 10}}
	full := e.Run(catalog, c)
	favsRes := e.RunFavorites(catalog, map[string]bool{"veh-1": true}, 1, c)

	if full.Total == favsRes.Total {
		t.Fatalf("favorites pipeline must not reuse the full-catalog memo (both %d)", full.Total)
	}
}

func TestEngineMemoSurvivesCallerFilterMutation(t *testing.T) {
	t.Parallel()
	catalog := testCatalog(30)
	e := NewEngine()

	filters := Filters{FilterMake: Text("Ford")}
	c := Criteria{Filters: filters, Pagination: Pagination{Page: 1, Limit: 10}}

	first := e.Run(catalog, c)

	// Mutating the caller's map must not corrupt the memo key
	filters[FilterMake] = Text("BMW")
	second := e.Run(catalog, Criteria{Filters: Filters{FilterMake: Text("BMW")}, Pagination: Pagination{Page: 1, Limit: 10}})

	if first.Total == 0 || second.Total == 0 {
		t.Fatal("both queries should match something")
	}
	if second.Page[0].Make != "BMW" {
		t.Fatalf("got %s, want BMW after criteria change", second.Page[0].Make)
	}
}

func TestEngineEmptyCatalog(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	res := e.Run(nil, Criteria{Pagination: Pagination{Page: 1, Limit: 10}})
	if res.Total != 0 || len(res.Page) != 0 {
		t.Fatalf("empty catalog produced total=%d page=%d", res.Total, len(res.Page))
	}

	res = e.Run([]model.Vehicle{}, Criteria{
		Filters:    Filters{FilterMake: Text("Ford")},
		Pagination: Pagination{Page: 1, Limit: 10},
	})
	if res.Total != 0 {
		t.Fatalf("filtered empty catalog total = %d", res.Total)
	}
}
