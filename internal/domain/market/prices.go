// Package market serves the commodity price reference dataset. The data is
// read-only from the service's perspective and reloaded on every request so
// an updated file on disk takes effect without a restart.
package market

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

// PriceRecord is a single mandi price row. JSON keys mirror the dataset's
// original column names, which the front end depends on.
type PriceRecord struct {
	State       string  `json:"State"`
	District    string  `json:"District"`
	Market      string  `json:"Market"`
	Commodity   string  `json:"Commodity"`
	ArrivalDate string  `json:"Arrival_Date"`
	MinPrice    float64 `json:"Min_x0020_Price"`
	MaxPrice    float64 `json:"Max_x0020_Price"`
	ModalPrice  float64 `json:"Modal_x0020_Price"`
}

// Provider supplies the price table. Implementations may cache; the CSV
// implementation re-reads the file per call.
type Provider interface {
	Load(ctx context.Context) ([]PriceRecord, error)
}

// CSVProvider reads the price table from a local CSV file.
type CSVProvider struct {
	path string
}

func NewCSVProvider(path string) *CSVProvider {
	return &CSVProvider{path: path}
}

// csv column order: State, District, Market, Commodity, Arrival_Date,
// Min_x0020_Price, Max_x0020_Price, Modal_x0020_Price.
const expectedColumns = 8

func (p *CSVProvider) Load(ctx context.Context) ([]PriceRecord, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "market.load", "open price table", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Header row.
	if _, err := reader.Read(); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "market.load", "read price table header", err)
	}

	var records []PriceRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.KindStorage, "market.load", "load cancelled", err)
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.KindStorage, "market.load", "read price table row", err)
		}
		if len(row) < expectedColumns {
			continue
		}

		records = append(records, PriceRecord{
			State:       row[0],
			District:    row[1],
			Market:      row[2],
			Commodity:   row[3],
			ArrivalDate: row[4],
			MinPrice:    parsePrice(row[5]),
			MaxPrice:    parsePrice(row[6]),
			ModalPrice:  parsePrice(row[7]),
		})
	}

	return records, nil
}

func parsePrice(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// Service filters the price table for a crop/state pair.
type Service struct {
	provider Provider
	logger   *logging.Logger
}

func NewService(provider Provider, logger *logging.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Search returns all rows whose commodity contains cropName and whose state
// contains stateName, both as case-insensitive substrings. Zero matches is
// a not-found failure, never an empty success.
func (s *Service) Search(ctx context.Context, cropName, stateName string) ([]PriceRecord, error) {
	cropName = strings.ToLower(strings.TrimSpace(cropName))
	stateName = strings.ToLower(strings.TrimSpace(stateName))
	if cropName == "" || stateName == "" {
		return nil, errors.New(errors.KindInvalidInput, "market.search",
			"Crop name and state name are required")
	}

	records, err := s.provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	var matches []PriceRecord
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Commodity), cropName) &&
			strings.Contains(strings.ToLower(record.State), stateName) {
			matches = append(matches, record)
		}
	}

	if len(matches) == 0 {
		s.logger.DebugTag("MARKET", "no rows for crop=%q state=%q", cropName, stateName)
		return nil, errors.New(errors.KindNotFound, "market.search",
			"No data found for this crop and state")
	}

	return matches, nil
}
