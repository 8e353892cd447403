// Package analytics berisi agregasi penjualan untuk halaman home dan
// performance. Semua fungsi murni terhadap (orders, period, now) supaya
// gampang dites tanpa DB.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
	"github.com/ashidesu/Foodie-business/app/models"
	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodThisWeek  Period = "thisWeek"
	PeriodThisMonth Period = "thisMonth"
	PeriodThisYear  Period = "thisYear"
)

// Periods: pilihan dropdown di dashboard.
var Periods = []struct {
	Label string
	Value Period
}{
	{"This week", PeriodThisWeek},
	{"This month", PeriodThisMonth},
	{"This year", PeriodThisYear},
}

// DishColors: palet warna untuk chart sales-by-dish, dipakai berulang
// modulo panjang palet.
var DishColors = []string{
	"#7c3aed", "#6366f1", "#f97316", "#ec4899", "#10b981",
	"#9333ea", "#f43f5e", "#a78bfa", "#34d399", "#60a5fa",
}

// DateRange: rentang [start, end] untuk sebuah period.
// Period yang tidak dikenal diperlakukan sebagai thisMonth.
func DateRange(now time.Time, period Period) (time.Time, time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodToday:
		return midnight, now
	case PeriodYesterday:
		start := midnight.AddDate(0, 0, -1)
		// yesterday berakhir 23:59:59, bukan "now"
		end := start.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		return start, end
	case PeriodThisWeek:
		start := midnight.AddDate(0, 0, -int(now.Weekday()))
		return start, now
	case PeriodThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now
	case PeriodThisMonth:
		fallthrough
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	}
}

// BucketLabel: format label bucket per granularitas period.
// Catatan: untuk thisYear label hanya nama bulan pendek, jadi rentang yang
// melewati pergantian tahun bisa menggabungkan dua bulan dengan nama sama.
// Ini limitation yang dipertahankan dari perilaku lama.
func BucketLabel(t time.Time, period Period) string {
	switch period {
	case PeriodToday, PeriodYesterday:
		return t.Format("15:04")
	case PeriodThisWeek, PeriodThisMonth:
		return t.Format("Jan 2")
	case PeriodThisYear:
		return t.Format("Jan")
	default:
		return t.Format("Jan 2")
	}
}

func bucketStep(t time.Time, period Period) time.Time {
	switch period {
	case PeriodToday, PeriodYesterday:
		return t.Add(time.Hour)
	case PeriodThisYear:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// FilterCompleted: pesanan completed yang createdAt-nya masuk [start, end]
// inklusif. Urutan input dipertahankan.
func FilterCompleted(orders []models.Order, start time.Time, end time.Time) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if o.Status != consts.OrderStatusCompleted {
			continue
		}
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		out = append(out, o)
	}
	return out
}

type RevenuePoint struct {
	Label   string
	Revenue decimal.Decimal
}

// RevenueSeries: deret revenue per bucket, zero-filled untuk bucket kosong.
// orders diasumsikan sudah hasil FilterCompleted; rentang dicek lagi di sini
// supaya fungsi tetap aman dipanggil dengan input mentah.
func RevenueSeries(orders []models.Order, period Period, now time.Time) []RevenuePoint {
	start, end := DateRange(now, period)

	byLabel := map[string]decimal.Decimal{}
	for _, o := range orders {
		if o.Status != consts.OrderStatusCompleted {
			continue
		}
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		label := BucketLabel(o.CreatedAt, period)
		byLabel[label] = byLabel[label].Add(o.TotalPrice)
	}

	var series []RevenuePoint
	for current := start; !current.After(end); current = bucketStep(current, period) {
		label := BucketLabel(current, period)
		series = append(series, RevenuePoint{Label: label, Revenue: byLabel[label]})
	}
	return series
}

type DishStat struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
	Color    string
}

// DishSales: akumulasi quantity dan revenue per dish dari item pesanan.
// Quantity kosong/invalid dihitung 1; harga item kosong fallback ke harga
// katalog. Hasil diurutkan quantity desc, stabil pada nilai sama (urutan
// kemunculan pertama menang), lalu diberi warna dari palet.
func DishSales(orders []models.Order, catalog []models.Dish) []DishStat {
	catalogPrice := map[string]decimal.Decimal{}
	catalogName := map[string]string{}
	for _, d := range catalog {
		catalogPrice[d.ID] = d.Price
		catalogName[d.ID] = d.Name
	}

	index := map[string]int{}
	var stats []DishStat

	for _, o := range orders {
		for _, item := range o.OrderItems {
			name := item.Name
			if name == "" {
				name = catalogName[item.DishID]
			}
			if name == "" {
				continue
			}

			qty := item.Qty
			if qty <= 0 {
				qty = 1
			}

			price := item.Price
			if price.IsZero() {
				price = catalogPrice[item.DishID]
			}

			i, ok := index[name]
			if !ok {
				i = len(stats)
				index[name] = i
				stats = append(stats, DishStat{Name: name})
			}

			stats[i].Quantity += qty
			stats[i].Revenue = stats[i].Revenue.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		}
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Quantity > stats[b].Quantity
	})

	for i := range stats {
		stats[i].Color = DishColors[i%len(DishColors)]
	}
	return stats
}

// TopDishesByRevenue: ranking revenue desc, dipotong n teratas.
func TopDishesByRevenue(stats []DishStat, n int) []DishStat {
	ranked := make([]DishStat, len(stats))
	copy(ranked, stats)

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Revenue.GreaterThan(ranked[b].Revenue)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

type PairStat struct {
	Pair  string
	Count int
}

// PairKey: kunci pasangan dish, dua nama diurutkan leksikografis supaya
// [A,B] dan [B,A] jadi satu kunci.
func PairKey(a string, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + " & " + b
}

// TopPairs: pasangan dish yang paling sering dipesan bersama dalam satu
// order, count desc, dipotong n teratas.
func TopPairs(orders []models.Order, n int) []PairStat {
	index := map[string]int{}
	var pairs []PairStat

	for _, o := range orders {
		items := o.OrderItems
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				key := PairKey(items[i].Name, items[j].Name)

				k, ok := index[key]
				if !ok {
					k = len(pairs)
					index[key] = k
					pairs = append(pairs, PairStat{Pair: key})
				}
				pairs[k].Count++
			}
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Count > pairs[b].Count
	})

	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

type Summary struct {
	TotalCustomers int
	TotalRevenue   decimal.Decimal
	TotalOrders    int
	AvgOrderValue  decimal.Decimal
}

// Summarize: kartu ringkasan dari pesanan completed in-range.
func Summarize(orders []models.Order) Summary {
	customers := map[string]struct{}{}
	total := decimal.Zero

	for _, o := range orders {
		if ref := o.CustomerRef(); ref != "" {
			customers[ref] = struct{}{}
		}
		total = total.Add(o.TotalPrice)
	}

	summary := Summary{
		TotalCustomers: len(customers),
		TotalRevenue:   total,
		TotalOrders:    len(orders),
		AvgOrderValue:  decimal.Zero,
	}
	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = total.Div(decimal.NewFromInt(int64(summary.TotalOrders)))
	}
	return summary
}

type DishSeriesPoint struct {
	Label  string
	Counts map[string]int
}

// DishSeries: jumlah terjual per bucket untuk dish yang dipilih user di
// halaman performance. Bucket kosong tetap muncul dengan count 0.
func DishSeries(orders []models.Order, names []string, period Period, now time.Time) []DishSeriesPoint {
	start, end := DateRange(now, period)

	byLabel := map[string]map[string]int{}
	for _, o := range orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		label := BucketLabel(o.CreatedAt, period)
		if byLabel[label] == nil {
			byLabel[label] = map[string]int{}
		}
		for _, item := range o.OrderItems {
			qty := item.Qty
			if qty <= 0 {
				qty = 1
			}
			byLabel[label][item.Name] += qty
		}
	}

	var series []DishSeriesPoint
	for current := start; !current.After(end); current = bucketStep(current, period) {
		label := BucketLabel(current, period)
		counts := map[string]int{}
		for _, name := range names {
			counts[name] = byLabel[label][name]
		}
		series = append(series, DishSeriesPoint{Label: label, Counts: counts})
	}
	return series
}

// ParsePeriod: token period dari query string; yang tidak dikenal jadi
// thisMonth (default dashboard).
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodToday, PeriodYesterday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear:
		return Period(raw)
	default:
		return PeriodThisMonth
	}
}
