package query_test

import (
	"testing"

	"bizbook/internal/domain"
	"bizbook/internal/query"
)

func biz(id int, name, phone, createdAt string) domain.Business {
	return domain.Business{ID: id, Name: name, Phone: phone, CreatedAt: createdAt}
}

func ids(items []domain.Business) []int {
	out := make([]int, len(items))
	for i, b := range items {
		out[i] = b.ID
	}
	return out
}

func equalIDs(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply_EmptyFiltersReturnEverything(t *testing.T) {
	items := []domain.Business{
		biz(1, "Alpha Bakery", "100", ""),
		biz(2, "Beta Garage", "200", ""),
		biz(3, "Gamma Cafe", "300", ""),
	}

	res := query.Apply(items, query.Options{Sort: query.SortNone})
	if res.Total != 3 {
		t.Fatalf("expected total 3, got %d", res.Total)
	}
	if !equalIDs(ids(res.Items), []int{1, 2, 3}) {
		t.Errorf("expected collection order preserved, got %v", ids(res.Items))
	}
}

func TestFilter_NameIsCaseInsensitive(t *testing.T) {
	items := []domain.Business{
		biz(1, "Corner STORE", "100", ""),
		biz(2, "Laundromat", "200", ""),
	}

	got := query.Filter(items, "store", "")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only id=1, got %v", ids(got))
	}
}

func TestFilter_PhoneIsCaseSensitiveSubstring(t *testing.T) {
	items := []domain.Business{
		biz(1, "A", "555-0101", ""),
		biz(2, "B", "555-0202", ""),
	}

	got := query.Filter(items, "", "0101")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only id=1, got %v", ids(got))
	}
	// No punctuation normalization: "5550101" does not match "555-0101".
	if got := query.Filter(items, "", "5550101"); len(got) != 0 {
		t.Fatalf("expected no match without normalization, got %v", ids(got))
	}
}

func TestFilter_BothFiltersMustMatch(t *testing.T) {
	items := []domain.Business{
		biz(1, "Alpha", "100", ""),
		biz(2, "Alpha", "200", ""),
		biz(3, "Beta", "100", ""),
	}

	got := query.Filter(items, "alpha", "100")
	if !equalIDs(ids(got), []int{1}) {
		t.Fatalf("expected [1], got %v", ids(got))
	}
}

func TestSort_Name(t *testing.T) {
	items := []domain.Business{
		biz(1, "citrus", "", ""),
		biz(2, "Apple", "", ""),
		biz(3, "banana", "", ""),
	}

	query.Sort(items, query.SortName)
	if !equalIDs(ids(items), []int{2, 3, 1}) {
		t.Fatalf("expected case-insensitive name order [2 3 1], got %v", ids(items))
	}
}

func TestSort_DateModesReverseEachOther(t *testing.T) {
	items := []domain.Business{
		biz(1, "A", "", "2024-01-02T10:00:00Z"),
		biz(2, "B", "", ""), // no timestamp
		biz(3, "C", "", "2024-03-15T10:00:00Z"),
		biz(4, "D", "", "2023-11-01T10:00:00Z"),
		biz(5, "E", "", ""), // no timestamp
	}

	newest := append([]domain.Business(nil), items...)
	query.Sort(newest, query.SortDateNew)
	if !equalIDs(ids(newest), []int{3, 1, 4, 2, 5}) {
		t.Fatalf("date-new: got %v", ids(newest))
	}

	oldest := append([]domain.Business(nil), items...)
	query.Sort(oldest, query.SortDateOld)
	if !equalIDs(ids(oldest), []int{4, 1, 3, 2, 5}) {
		t.Fatalf("date-old: got %v", ids(oldest))
	}

	// Timestamped records are exactly reversed between the two modes;
	// timestamp-less records stay last in both (stable order preserved).
	for i := 0; i < 3; i++ {
		if newest[i].ID != oldest[2-i].ID {
			t.Errorf("timestamped order not reversed at %d: %d vs %d", i, newest[i].ID, oldest[2-i].ID)
		}
	}
}

func TestApply_Pagination(t *testing.T) {
	items := make([]domain.Business, 65)
	for i := range items {
		items[i] = biz(i+1, "Biz", "100", "")
	}

	res := query.Apply(items, query.Options{Page: 1})
	if res.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 65 records, got %d", res.TotalPages)
	}
	if len(res.Items) != 30 {
		t.Errorf("page 1: expected 30 items, got %d", len(res.Items))
	}

	res = query.Apply(items, query.Options{Page: 3})
	if len(res.Items) != 5 {
		t.Errorf("page 3: expected 5 items, got %d", len(res.Items))
	}
	if res.Items[0].ID != 61 {
		t.Errorf("page 3: expected first id 61, got %d", res.Items[0].ID)
	}
}

func TestApply_EmptySetStillHasOnePage(t *testing.T) {
	res := query.Apply(nil, query.Options{Page: 5})
	if res.TotalPages != 1 {
		t.Errorf("expected minimum 1 page, got %d", res.TotalPages)
	}
	if res.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", res.Page)
	}
	if len(res.Items) != 0 {
		t.Errorf("expected no items, got %d", len(res.Items))
	}
}

func TestApply_PageClampsToLastPage(t *testing.T) {
	items := make([]domain.Business, 31)
	for i := range items {
		items[i] = biz(i+1, "Biz", "100", "")
	}

	res := query.Apply(items, query.Options{Page: 99})
	if res.Page != 2 {
		t.Errorf("expected page clamped to 2, got %d", res.Page)
	}
	if len(res.Items) != 1 {
		t.Errorf("expected 1 item on last page, got %d", len(res.Items))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := []domain.Business{
		biz(2, "B", "", "2024-02-01T00:00:00Z"),
		biz(1, "A", "", "2024-01-01T00:00:00Z"),
	}

	query.Apply(items, query.Options{Sort: query.SortDateOld})
	if !equalIDs(ids(items), []int{2, 1}) {
		t.Fatalf("input slice was mutated: %v", ids(items))
	}
}

func TestApply_NameFilterScenario(t *testing.T) {
	items := []domain.Business{
		biz(1, "A", "100", ""),
		biz(2, "B", "200", ""),
	}

	res := query.Apply(items, query.Options{Name: "a"})
	if !equalIDs(ids(res.Items), []int{1}) {
		t.Fatalf("expected [1], got %v", ids(res.Items))
	}
}
