package service_test

import (
	"context"
	"testing"

	"bizbook/internal/domain"
	"bizbook/internal/service"
	"bizbook/internal/store"
)

func localService() (*service.LocalDirectoryService, *service.MockEmitter) {
	st := store.NewMemoryStore([]domain.Business{
		{ID: 1, Name: "Alpha Bakery", Phone: "100"},
		{ID: 2, Name: "Beta Garage", Phone: "200"},
	})
	emitter := &service.MockEmitter{}
	return service.NewLocalDirectoryService(st, emitter), emitter
}

func TestLocal_AddAppendsWithComputedID(t *testing.T) {
	svc, _ := localService()
	svc.OpenAdd()

	added, err := svc.SaveEditor(context.Background(), domain.Business{Name: "Gamma", Phone: "300"})
	if err != nil {
		t.Fatalf("SaveEditor: %v", err)
	}
	if added.ID != 3 {
		t.Errorf("expected id 3 (max+1), got %d", added.ID)
	}
	if added.CreatedAt != "" {
		t.Error("local records carry no creation timestamp")
	}
	if got := len(svc.Businesses()); got != 3 {
		t.Errorf("expected 3 records, got %d", got)
	}
	if svc.Editor().Open {
		t.Error("dialog should close after save")
	}
}

// The local variant enforces no phone validation — duplicates and
// empty phones are accepted as-is.
func TestLocal_NoPhoneValidation(t *testing.T) {
	svc, _ := localService()

	svc.OpenAdd()
	if _, err := svc.SaveEditor(context.Background(), domain.Business{Name: "Dup", Phone: "100"}); err != nil {
		t.Fatalf("duplicate phone must be accepted locally: %v", err)
	}
	svc.OpenAdd()
	if _, err := svc.SaveEditor(context.Background(), domain.Business{Name: "Empty", Phone: ""}); err != nil {
		t.Fatalf("empty phone must be accepted locally: %v", err)
	}
	if got := len(svc.Businesses()); got != 4 {
		t.Errorf("expected 4 records, got %d", got)
	}
}

func TestLocal_EditReplacesMatchingRecord(t *testing.T) {
	svc, _ := localService()
	if _, err := svc.OpenEdit(2); err != nil {
		t.Fatal(err)
	}

	_, err := svc.SaveEditor(context.Background(), domain.Business{ID: 2, Name: "Beta v2", Phone: "200", Comment: "note"})
	if err != nil {
		t.Fatalf("SaveEditor: %v", err)
	}
	for _, b := range svc.Businesses() {
		if b.ID == 2 && b.Name != "Beta v2" {
			t.Errorf("record not replaced: %+v", b)
		}
		if b.ID == 1 && b.Name != "Alpha Bakery" {
			t.Errorf("unrelated record changed: %+v", b)
		}
	}
}

func TestLocal_DeleteFlow(t *testing.T) {
	svc, _ := localService()

	st := svc.RequestDelete(1)
	if !st.Open || st.TargetID != 1 {
		t.Fatalf("expected confirm dialog for id=1, got %+v", st)
	}
	if err := svc.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	for _, b := range svc.Businesses() {
		if b.ID == 1 {
			t.Error("id=1 still present after delete")
		}
	}
	if svc.Confirm().Open {
		t.Error("dialog should close after delete")
	}
}

func TestLocal_StatusPatchesOneRecord(t *testing.T) {
	svc, _ := localService()
	if _, err := svc.OpenStatusDialog(2); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetStatus(context.Background(), domain.StatusGreen); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	for _, b := range svc.Businesses() {
		want := domain.StatusUnset
		if b.ID == 2 {
			want = domain.StatusGreen
		}
		if b.Status != want {
			t.Errorf("record %d: expected status %q, got %q", b.ID, want, b.Status)
		}
	}
	if svc.StatusDialog().Open {
		t.Error("dialog should close after status change")
	}
}

func TestLocal_FilterResetsPageAndPaginates(t *testing.T) {
	st := store.NewMemoryStore(nil)
	for i := 0; i < 35; i++ {
		st.Add(domain.Business{Name: "Biz", Phone: "1"})
	}
	emitter := &service.MockEmitter{}
	svc := service.NewLocalDirectoryService(st, emitter)

	res := svc.SetPage(context.Background(), 2)
	if res.Page != 2 || len(res.Items) != 5 {
		t.Fatalf("expected page 2 with 5 items, got page %d with %d", res.Page, len(res.Items))
	}
	if len(emitter.ByName("directory:scroll-top")) != 1 {
		t.Error("expected scroll-top event")
	}

	res = svc.SetFilters("biz", "", "none")
	if res.Page != 1 {
		t.Errorf("filter change must reset page, got %d", res.Page)
	}
}
