package market

import (
	"strings"
	"testing"

	"kisan/entities"
	"kisan/pkg/kv"
)

func TestPriceStaysNearBase(t *testing.T) {
	s := NewService(42, kv.NewMemory())
	for i := 0; i < 20; i++ {
		p, err := s.Price(entities.CropWheat, "Karnal, Haryana")
		if err != nil {
			t.Fatal(err)
		}
		base := basePrices[entities.CropWheat].AvgPrice
		if p.AvgPrice < base-20 || p.AvgPrice > base+20 {
			t.Errorf("price %d outside ±20 of base %d", p.AvgPrice, base)
		}
		if p.Trend != entities.TrendStable || p.Unit != "Quintal" {
			t.Errorf("got trend %q unit %q", p.Trend, p.Unit)
		}
	}
}

func TestPriceUnknownCrop(t *testing.T) {
	s := NewService(1, kv.NewMemory())
	if _, err := s.Price(entities.CropType("Jute"), "anywhere"); err == nil {
		t.Fatal("want error for a crop without a base price")
	}
}

func TestReportFor(t *testing.T) {
	cases := []struct {
		location string
		wantSub  string
	}{
		{"Ludhiana, Punjab", "Punjab Market"},
		{"Nashik, Maharashtra", "Maharashtra Market"},
		{"Nellore", "Andhra Pradesh Market"},
		{"Somewhere else", "General Market"},
	}
	for _, tc := range cases {
		if got := reportFor(tc.location); !strings.Contains(got, tc.wantSub) {
			t.Errorf("%s: report %q, want it to contain %q", tc.location, got, tc.wantSub)
		}
	}
}

func TestRecordTransaction(t *testing.T) {
	s := NewService(7, kv.NewMemory())

	first, err := s.RecordTransaction(entities.Transaction{
		Crop: entities.CropRice, Type: "SELL", Quantity: 10, Price: 2200,
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == "" || first.Timestamp == 0 {
		t.Errorf("got %+v, want generated id and timestamp", first)
	}
	if first.Total != 22000 {
		t.Errorf("total = %v, want quantity*price", first.Total)
	}

	second, err := s.RecordTransaction(entities.Transaction{
		Crop: entities.CropRice, Type: "BUY", Quantity: 2, Price: 500,
	})
	if err != nil {
		t.Fatal(err)
	}

	list, err := s.Transactions()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d transactions, want 2", len(list))
	}
	if list[0].ID != second.ID {
		t.Errorf("first entry = %q, want newest first", list[0].ID)
	}
}

func TestTransactionsEmpty(t *testing.T) {
	s := NewService(7, kv.NewMemory())
	list, err := s.Transactions()
	if err != nil {
		t.Fatalf("empty log must read clean, got %v", err)
	}
	if len(list) != 0 {
		t.Errorf("got %d transactions, want none", len(list))
	}
}
