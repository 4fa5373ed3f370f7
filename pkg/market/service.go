package market

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid"

	"kisan/entities"
	"kisan/pkg/kv"
)

const transactionsKey = "samarth_kisan_transactions"

var basePrices = map[entities.CropType]entities.MarketPrice{
	entities.CropRice:    {Crop: entities.CropRice, AvgPrice: 2183, Trend: entities.TrendUp, Unit: "Quintal"},
	entities.CropWheat:   {Crop: entities.CropWheat, AvgPrice: 2125, Trend: entities.TrendStable, Unit: "Quintal"},
	entities.CropCotton:  {Crop: entities.CropCotton, AvgPrice: 6670, Trend: entities.TrendDown, Unit: "Quintal"},
	entities.CropMaize:   {Crop: entities.CropMaize, AvgPrice: 1962, Trend: entities.TrendUp, Unit: "Quintal"},
	entities.CropMustard: {Crop: entities.CropMustard, AvgPrice: 5450, Trend: entities.TrendStable, Unit: "Quintal"},
}

var stateReports = map[string]string{
	"punjab":      "Punjab Market: Mandi arrivals peaked in Ludhiana and Bhatinda. Government procurement centers are active. Grain moisture content is strictly being monitored (Max 14%). High demand for basmati in private markets.",
	"haryana":     "Haryana Market: Strong demand from rice millers in Karnal and Kurukshetra. Wheat procurement prices remain stable. Cotton arrivals starting to slow in Sirsa; wait for better price windows.",
	"maharashtra": "Maharashtra Market: Onion and Tomato prices high in Nashik. Cotton trading active in Jalgaon. Vidarbha cotton quality is slightly affected by unseasonal heat. Check Mandi prices before selling.",
	"andhra":      "Andhra Pradesh Market: Nellore rice millers requesting higher volume. Heavy rainfall in coastal belt might delay harvest transport. Market arrivals expected to spike by 15% next week.",
	"kerala":      "Kerala Market: Plantation commodities like cardamom and rubber seeing export demand. Local vegetable markets in Ernakulam show price stability. Logistics in Idukki affected by terrain.",
	"karnataka":   "Karnataka Market: Maize demand up by 10% due to poultry feed requirements in Mysore region. Ragi and Silk cocoon markets stable. Prices in Davangere showing an upward trend.",
}

const defaultReport = "General Market: Commodity prices showing standard seasonal fluctuations. Mandi arrivals are steady. Ensure proper drying of grain to avoid price deductions at procurement centers."

var errUnknownCrop = errors.New("market: unknown crop")

// Service produces mock mandi prices with a small seeded fluctuation and
// keeps the farmer's transaction log in the key-value layer.
type Service struct {
	rng *rand.Rand
	kv  kv.Store
}

func NewService(seed int64, store kv.Store) *Service {
	return &Service{rng: rand.New(rand.NewSource(seed)), kv: store}
}

func (s *Service) Price(crop entities.CropType, location string) (entities.MarketPrice, error) {
	base, ok := basePrices[crop]
	if !ok {
		return entities.MarketPrice{}, fmt.Errorf("%w: %q", errUnknownCrop, crop)
	}
	p := base
	p.AvgPrice += s.rng.Intn(41) - 20
	p.StateReport = reportFor(location)
	return p, nil
}

func reportFor(location string) string {
	loc := strings.ToLower(location)
	for state, report := range stateReports {
		if strings.Contains(loc, state) {
			return report
		}
	}
	if strings.Contains(loc, "nellore") {
		return stateReports["andhra"]
	}
	return defaultReport
}

// RecordTransaction assigns an id and timestamp and prepends to the log.
func (s *Service) RecordTransaction(t entities.Transaction) (entities.Transaction, error) {
	id, err := gonanoid.Nanoid()
	if err != nil {
		return entities.Transaction{}, fmt.Errorf("transaction id: %w", err)
	}
	t.ID = id
	t.Timestamp = time.Now().UnixMilli()
	t.Total = t.Quantity * t.Price

	list, err := s.Transactions()
	if err != nil {
		return entities.Transaction{}, err
	}
	list = append([]entities.Transaction{t}, list...)
	if err := kv.SetJSON(s.kv, transactionsKey, list); err != nil {
		return entities.Transaction{}, fmt.Errorf("persist transactions: %w", err)
	}
	return t, nil
}

func (s *Service) Transactions() ([]entities.Transaction, error) {
	var list []entities.Transaction
	if err := kv.GetJSON(s.kv, transactionsKey, &list); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return list, nil
}
