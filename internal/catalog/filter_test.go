package catalog

import (
	"reflect"
	"testing"

	"bloomfront/internal/domain"
)

func fptr(v float64) *float64 { return &v }

var snapshot = []domain.Product{
	{ID: 1, Name: "Нежность", Price: "1500.00"},
	{ID: 2, Name: "Весна", Price: "2500,50"},
	{ID: 3, Name: "Сюрприз", Price: "", HidePrice: false},
	{ID: 4, Name: "Индивидуальный", Price: "3000.00", HidePrice: true},
	{ID: 5, Name: "Без цены", Price: "договорная"},
	{ID: 6, Name: "Пион", Price: "4000.00"},
}

func ids(ps []domain.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestNoBoundsIncludesEverything(t *testing.T) {
	got := Apply(snapshot, domain.PriceFilter{})
	if !reflect.DeepEqual(ids(got), []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("want all products in order, got %v", ids(got))
	}
}

func TestActiveBoundExcludesUnusablePrices(t *testing.T) {
	got := Apply(snapshot, domain.PriceFilter{Min: fptr(0)})
	// empty, hidden and non-numeric prices drop out under any active bound
	if !reflect.DeepEqual(ids(got), []int{1, 2, 6}) {
		t.Fatalf("want [1 2 6], got %v", ids(got))
	}
}

func TestInclusiveBounds(t *testing.T) {
	got := Apply(snapshot, domain.PriceFilter{Min: fptr(1500), Max: fptr(4000)})
	if !reflect.DeepEqual(ids(got), []int{1, 2, 6}) {
		t.Fatalf("products at exactly min/max must be included, got %v", ids(got))
	}

	got = Apply(snapshot, domain.PriceFilter{Min: fptr(1500.01)})
	if !reflect.DeepEqual(ids(got), []int{2, 6}) {
		t.Fatalf("want [2 6], got %v", ids(got))
	}
}

func TestCommaDecimalSeparator(t *testing.T) {
	got := Apply(snapshot, domain.PriceFilter{Min: fptr(2500.50), Max: fptr(2500.50)})
	if !reflect.DeepEqual(ids(got), []int{2}) {
		t.Fatalf("comma price should parse to 2500.50, got %v", ids(got))
	}
}

func TestMaxOnly(t *testing.T) {
	got := Apply(snapshot, domain.PriceFilter{Max: fptr(2000)})
	if !reflect.DeepEqual(ids(got), []int{1}) {
		t.Fatalf("want [1], got %v", ids(got))
	}
}

func TestIdempotent(t *testing.T) {
	f := domain.PriceFilter{Min: fptr(1000), Max: fptr(3000)}
	first := Apply(snapshot, f)
	second := Apply(snapshot, f)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same filter over same snapshot must yield the same sequence")
	}
}

func TestDoesNotMutateSnapshot(t *testing.T) {
	before := ids(snapshot)
	out := Apply(snapshot, domain.PriceFilter{Min: fptr(2000)})
	if len(out) > 0 {
		out[0] = domain.Product{ID: 99}
	}
	if !reflect.DeepEqual(ids(snapshot), before) {
		t.Fatalf("filter must not alias the snapshot")
	}
}
