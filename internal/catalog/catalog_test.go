package catalog

import "testing"

func TestProductsCatalog(t *testing.T) {
	all := Products()
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
	for _, p := range all {
		if p.ID == "" || p.Name == "" || p.Price <= 0 {
			t.Fatalf("incomplete catalog entry: %+v", p)
		}
	}
}

func TestFindByID(t *testing.T) {
	p, ok := FindByID("p1")
	if !ok {
		t.Fatal("expected p1 to exist")
	}
	if p.Name != "Magie Renewal Serum" {
		t.Fatalf("unexpected product %q", p.Name)
	}

	if _, ok := FindByID("nope"); ok {
		t.Fatal("did not expect a match for unknown id")
	}
}
