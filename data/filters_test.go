package data

import "testing"

func TestSortColumn(t *testing.T) {
	f := Filters{Sort: "-rating", SortSafeList: []string{"id", "rating", "-id", "-rating"}}
	if got := f.SortColumn(); got != "rating" {
		t.Errorf("expected column rating; got %s", got)
	}
	if got := f.SortDirection(); got != "DESC" {
		t.Errorf("expected direction DESC; got %s", got)
	}
}

func TestSortColumnUnsafe(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsafe sort value")
		}
	}()
	f := Filters{Sort: "id; DROP TABLE books", SortSafeList: []string{"id"}}
	f.SortColumn()
}

func TestCalculateMetadata(t *testing.T) {
	metadata := CalculateMetadata(45, 2, 10)
	if metadata.LastPage != 5 {
		t.Errorf("expected last page 5; got %d", metadata.LastPage)
	}
	if metadata.TotalRecords != 45 {
		t.Errorf("expected 45 total records; got %d", metadata.TotalRecords)
	}
	empty := CalculateMetadata(0, 1, 10)
	if empty != (Metadata{}) {
		t.Errorf("expected empty metadata for zero records; got %+v", empty)
	}
}
