package cli

import (
	"testing"

	"github.com/lotworks/lotview/internal/query"
	"github.com/lotworks/lotview/internal/store"
)

func TestListFlagsReplaceStoredFilters(t *testing.T) {
	st := store.New()

	// A filter persisted from a prior run
	st.SetFilters(query.Filters{query.FilterColour: query.Text("red")})
	st.SetPage(4)

	if err := listCmd.Flags().Set("make", "Ford"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() { listMake = "" })

	applyListFlags(listCmd, st)

	c := st.Criteria()
	if _, ok := c.Filters[query.FilterColour]; ok {
		t.Fatal("stored filter survived flag criteria; flags must replace the set")
	}
	if c.Filters[query.FilterMake].Text != "Ford" {
		t.Fatalf("make filter = %+v", c.Filters[query.FilterMake])
	}
	if c.Pagination.Page != 1 {
		t.Fatalf("page = %d, want reset to 1 by the new filters", c.Pagination.Page)
	}
}

func TestParseSortFlag(t *testing.T) {
	t.Parallel()

	s, ok := parseSortFlag("startingBid_desc")
	if !ok || s.Field != query.SortBid || s.Direction != query.Desc {
		t.Fatalf("parse = %+v ok=%v", s, ok)
	}

	for _, in := range []string{"", "make", "_asc", "horsepower_asc", "make_sideways"} {
		if _, ok := parseSortFlag(in); ok {
			t.Fatalf("parseSortFlag(%q) unexpectedly succeeded", in)
		}
	}
}
