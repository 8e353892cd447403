package analytics

import (
	"testing"
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
	"github.com/ashidesu/Foodie-business/app/models"
	"github.com/shopspring/decimal"
)

// 15 Mei 2024 itu hari Rabu, enak buat ngetes rentang thisWeek.
var wednesday = time.Date(2024, time.May, 15, 18, 0, 0, 0, time.UTC)

func completedOrder(createdAt time.Time, total float64) models.Order {
	return models.Order{
		Status:     consts.OrderStatusCompleted,
		TotalPrice: decimal.NewFromFloat(total),
		CreatedAt:  createdAt,
	}
}

func TestDateRange(t *testing.T) {
	midnight := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		period Period
		start  time.Time
		end    time.Time
	}{
		{PeriodToday, midnight, wednesday},
		{PeriodYesterday,
			midnight.AddDate(0, 0, -1),
			midnight.AddDate(0, 0, -1).Add(23*time.Hour + 59*time.Minute + 59*time.Second)},
		{PeriodThisWeek, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), wednesday},
		{PeriodThisMonth, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), wednesday},
		{PeriodThisYear, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), wednesday},
		{Period("bogus"), time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), wednesday},
	}

	for _, tt := range tests {
		start, end := DateRange(wednesday, tt.period)
		if !start.Equal(tt.start) || !end.Equal(tt.end) {
			t.Errorf("DateRange(%s): got [%v, %v], want [%v, %v]", tt.period, start, end, tt.start, tt.end)
		}
	}
}

func TestBucketLabel(t *testing.T) {
	at := time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		period Period
		want   string
	}{
		{PeriodToday, "14:30"},
		{PeriodYesterday, "14:30"},
		{PeriodThisWeek, "May 15"},
		{PeriodThisMonth, "May 15"},
		{PeriodThisYear, "May"},
	}

	for _, tt := range tests {
		if got := BucketLabel(at, tt.period); got != tt.want {
			t.Errorf("BucketLabel(%s) = %q, want %q", tt.period, got, tt.want)
		}
	}
}

func TestFilterCompleted(t *testing.T) {
	start, end := DateRange(wednesday, PeriodThisWeek)

	monday := completedOrder(time.Date(2024, time.May, 13, 12, 0, 0, 0, time.UTC), 10)
	inRangePending := models.Order{
		Status:     consts.OrderStatusPending,
		TotalPrice: decimal.NewFromInt(100),
		CreatedAt:  time.Date(2024, time.May, 14, 12, 0, 0, 0, time.UTC),
	}
	wedOrder := completedOrder(time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC), 5)
	lastWeek := completedOrder(time.Date(2024, time.May, 8, 12, 0, 0, 0, time.UTC), 50)

	got := FilterCompleted([]models.Order{monday, inRangePending, wedOrder, lastWeek}, start, end)

	if len(got) != 2 {
		t.Fatalf("expected 2 completed orders in range, got %d", len(got))
	}
	if !got[0].CreatedAt.Equal(monday.CreatedAt) || !got[1].CreatedAt.Equal(wedOrder.CreatedAt) {
		t.Errorf("input order not preserved: %v", got)
	}
}

func TestFilterCompletedInclusiveBounds(t *testing.T) {
	start := time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 15, 18, 0, 0, 0, time.UTC)

	atStart := completedOrder(start, 1)
	atEnd := completedOrder(end, 2)

	got := FilterCompleted([]models.Order{atStart, atEnd}, start, end)
	if len(got) != 2 {
		t.Errorf("range should be inclusive on both ends, got %d orders", len(got))
	}
}

// Skenario minggu berjalan: completed Senin $10 dan Rabu $5 masuk,
// pending Selasa $100 tidak dihitung. Bucket harian Minggu s.d. Rabu = 4.
func TestThisWeekScenario(t *testing.T) {
	orders := []models.Order{
		completedOrder(time.Date(2024, time.May, 13, 12, 0, 0, 0, time.UTC), 10),
		{
			Status:     consts.OrderStatusPending,
			TotalPrice: decimal.NewFromInt(100),
			CreatedAt:  time.Date(2024, time.May, 14, 12, 0, 0, 0, time.UTC),
		},
		completedOrder(time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC), 5),
	}

	start, end := DateRange(wednesday, PeriodThisWeek)
	completed := FilterCompleted(orders, start, end)

	summary := Summarize(completed)
	if summary.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", summary.TotalOrders)
	}
	if !summary.TotalRevenue.Equal(decimal.NewFromInt(15)) {
		t.Errorf("TotalRevenue = %s, want 15", summary.TotalRevenue)
	}

	series := RevenueSeries(completed, PeriodThisWeek, wednesday)
	if len(series) != 4 {
		t.Fatalf("expected 4 daily buckets Sun..Wed, got %d", len(series))
	}

	wantByLabel := map[string]int64{"May 12": 0, "May 13": 10, "May 14": 0, "May 15": 5}
	sum := decimal.Zero
	for _, p := range series {
		want, ok := wantByLabel[p.Label]
		if !ok {
			t.Errorf("unexpected bucket label %q", p.Label)
			continue
		}
		if !p.Revenue.Equal(decimal.NewFromInt(want)) {
			t.Errorf("bucket %q = %s, want %d", p.Label, p.Revenue, want)
		}
		sum = sum.Add(p.Revenue)
	}

	if !sum.Equal(summary.TotalRevenue) {
		t.Errorf("bucket sum %s != total revenue %s", sum, summary.TotalRevenue)
	}
}

func TestRevenueSeriesHourlyBucketCount(t *testing.T) {
	series := RevenueSeries(nil, PeriodToday, wednesday)

	// midnight s.d. 18:00 = 19 bucket per jam
	if len(series) != 19 {
		t.Errorf("expected 19 hourly buckets, got %d", len(series))
	}
	for _, p := range series {
		if p.Revenue.IsNegative() {
			t.Errorf("bucket %q has negative revenue %s", p.Label, p.Revenue)
		}
	}
}

func TestRevenueSeriesIgnoresOutOfRange(t *testing.T) {
	orders := []models.Order{
		completedOrder(time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC), 99),
		{
			Status:     consts.OrderStatusCancelled,
			TotalPrice: decimal.NewFromInt(42),
			CreatedAt:  wednesday,
		},
	}

	series := RevenueSeries(orders, PeriodThisWeek, wednesday)
	for _, p := range series {
		if !p.Revenue.IsZero() {
			t.Errorf("bucket %q should be zero, got %s", p.Label, p.Revenue)
		}
	}
}

func TestDishSales(t *testing.T) {
	catalog := []models.Dish{
		{ID: "d1", Name: "Adobo", Price: decimal.NewFromInt(12)},
		{ID: "d2", Name: "Sinigang", Price: decimal.NewFromInt(15)},
	}

	orders := []models.Order{
		{
			Status: consts.OrderStatusCompleted,
			OrderItems: []models.OrderItem{
				{DishID: "d1", Name: "Adobo", Price: decimal.NewFromInt(12), Qty: 2},
				// qty 0 dihitung 1, harga kosong fallback ke katalog
				{DishID: "d2", Name: "Sinigang", Qty: 0},
			},
		},
		{
			Status: consts.OrderStatusCompleted,
			OrderItems: []models.OrderItem{
				// nama kosong diambil dari katalog via DishID
				{DishID: "d2", Price: decimal.NewFromInt(15), Qty: 3},
			},
		},
	}

	stats := DishSales(orders, catalog)
	if len(stats) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(stats))
	}

	if stats[0].Name != "Sinigang" || stats[0].Quantity != 4 {
		t.Errorf("top dish = %s qty %d, want Sinigang qty 4", stats[0].Name, stats[0].Quantity)
	}
	if !stats[0].Revenue.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Sinigang revenue = %s, want 60 (15 fallback + 45)", stats[0].Revenue)
	}

	if stats[1].Name != "Adobo" || stats[1].Quantity != 2 {
		t.Errorf("second dish = %s qty %d, want Adobo qty 2", stats[1].Name, stats[1].Quantity)
	}
	if !stats[1].Revenue.Equal(decimal.NewFromInt(24)) {
		t.Errorf("Adobo revenue = %s, want 24", stats[1].Revenue)
	}

	for i, s := range stats {
		if s.Color != DishColors[i%len(DishColors)] {
			t.Errorf("stats[%d].Color = %s, want %s", i, s.Color, DishColors[i%len(DishColors)])
		}
	}
}

func TestDishSalesStableTieBreak(t *testing.T) {
	orders := []models.Order{
		{
			Status: consts.OrderStatusCompleted,
			OrderItems: []models.OrderItem{
				{Name: "Lumpia", Price: decimal.NewFromInt(5), Qty: 2},
				{Name: "Halo-halo", Price: decimal.NewFromInt(6), Qty: 2},
			},
		},
	}

	stats := DishSales(orders, nil)
	if len(stats) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(stats))
	}

	// quantity sama, yang muncul duluan menang
	if stats[0].Name != "Lumpia" || stats[1].Name != "Halo-halo" {
		t.Errorf("tie-break should keep encounter order, got [%s, %s]", stats[0].Name, stats[1].Name)
	}
}

func TestTopDishesByRevenue(t *testing.T) {
	stats := []DishStat{
		{Name: "A", Quantity: 10, Revenue: decimal.NewFromInt(10)},
		{Name: "B", Quantity: 1, Revenue: decimal.NewFromInt(99)},
		{Name: "C", Quantity: 5, Revenue: decimal.NewFromInt(50)},
	}

	top := TopDishesByRevenue(stats, 2)
	if len(top) != 2 || top[0].Name != "B" || top[1].Name != "C" {
		t.Errorf("unexpected ranking: %v", top)
	}

	// input tidak boleh ikut terurut ulang
	if stats[0].Name != "A" {
		t.Errorf("input slice was mutated: %v", stats)
	}
}

func TestPairKeyCommutative(t *testing.T) {
	if PairKey("Adobo", "Sinigang") != PairKey("Sinigang", "Adobo") {
		t.Error("PairKey should not depend on argument order")
	}
	if got := PairKey("B", "A"); got != "A & B" {
		t.Errorf("PairKey(B, A) = %q, want %q", got, "A & B")
	}
}

func TestTopPairs(t *testing.T) {
	order := func(names ...string) models.Order {
		o := models.Order{Status: consts.OrderStatusCompleted}
		for _, n := range names {
			o.OrderItems = append(o.OrderItems, models.OrderItem{Name: n, Qty: 1})
		}
		return o
	}

	orders := []models.Order{
		order("Adobo", "Sinigang"),
		order("Sinigang", "Adobo"),
		order("Adobo", "Lumpia"),
		order("Adobo"),
	}

	pairs := TopPairs(orders, 10)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Pair != "Adobo & Sinigang" || pairs[0].Count != 2 {
		t.Errorf("top pair = %+v, want Adobo & Sinigang x2", pairs[0])
	}
	if pairs[1].Pair != "Adobo & Lumpia" || pairs[1].Count != 1 {
		t.Errorf("second pair = %+v, want Adobo & Lumpia x1", pairs[1])
	}
}

func TestSummarize(t *testing.T) {
	empty := Summarize(nil)
	if empty.TotalOrders != 0 || !empty.AvgOrderValue.IsZero() || !empty.TotalRevenue.IsZero() {
		t.Errorf("empty summary should be all zero, got %+v", empty)
	}

	orders := []models.Order{
		{UserID: "u1", TotalPrice: decimal.NewFromInt(10)},
		{CustomerID: "c1", TotalPrice: decimal.NewFromInt(20)},
		{UserID: "u1", TotalPrice: decimal.NewFromInt(30)},
		{TotalPrice: decimal.NewFromInt(40)}, // tanpa identitas, tidak dihitung customer
	}

	s := Summarize(orders)
	if s.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %d, want 2", s.TotalCustomers)
	}
	if s.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d, want 4", s.TotalOrders)
	}
	if !s.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("TotalRevenue = %s, want 100", s.TotalRevenue)
	}
	if !s.AvgOrderValue.Equal(decimal.NewFromInt(25)) {
		t.Errorf("AvgOrderValue = %s, want 25", s.AvgOrderValue)
	}
}

func TestDishSeries(t *testing.T) {
	orders := []models.Order{
		{
			Status:    consts.OrderStatusCompleted,
			CreatedAt: time.Date(2024, time.May, 13, 12, 0, 0, 0, time.UTC),
			OrderItems: []models.OrderItem{
				{Name: "Adobo", Qty: 3},
				{Name: "Sinigang", Qty: 0}, // dihitung 1
			},
		},
	}

	series := DishSeries(orders, []string{"Adobo", "Sinigang"}, PeriodThisWeek, wednesday)
	if len(series) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(series))
	}

	for _, p := range series {
		switch p.Label {
		case "May 13":
			if p.Counts["Adobo"] != 3 || p.Counts["Sinigang"] != 1 {
				t.Errorf("May 13 counts = %v", p.Counts)
			}
		default:
			if p.Counts["Adobo"] != 0 || p.Counts["Sinigang"] != 0 {
				t.Errorf("bucket %q should be zero-filled, got %v", p.Label, p.Counts)
			}
		}
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		raw  string
		want Period
	}{
		{"today", PeriodToday},
		{"yesterday", PeriodYesterday},
		{"thisWeek", PeriodThisWeek},
		{"thisMonth", PeriodThisMonth},
		{"thisYear", PeriodThisYear},
		{"", PeriodThisMonth},
		{"lastCentury", PeriodThisMonth},
	}

	for _, tt := range tests {
		if got := ParsePeriod(tt.raw); got != tt.want {
			t.Errorf("ParsePeriod(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
