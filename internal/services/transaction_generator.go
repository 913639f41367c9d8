package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"bankpulse/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// bankSimCategories are the transaction categories of the BankSim dataset.
var bankSimCategories = []string{
	"es_transportation", "es_food", "es_health", "es_wellnessandbeauty",
	"es_fashion", "es_barsandrestaurants", "es_hyper", "es_sportsandtoys",
	"es_tech", "es_home", "es_hotelservices", "es_otherservices",
	"es_contents", "es_travel", "es_leisure",
}

var bankSimAges = []string{"0", "1", "2", "3", "4", "5", "6", "U"}

// ImportanceColumns is the header of the customer importance reference file.
var ImportanceColumns = []string{"Source", "Target", "Weight", "typeTrans", "fraud"}

type GeneratorConfig struct {
	Seed      uint64
	Customers int
	Merchants int
	// FraudRate is the probability that a generated transaction is flagged.
	FraudRate float64
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Customers: 500,
		Merchants: 20,
		FraudRate: 0.012,
	}
}

type transactionGenerator struct {
	faker     *gofakeit.Faker
	config    GeneratorConfig
	customers []customerProfile
	merchants []string
}

type customerProfile struct {
	name   string
	age    string
	gender string
	zip    string
}

// NewTransactionGenerator builds a generator with a fixed pool of customers
// and merchants. A zero seed picks a random one.
func NewTransactionGenerator(config GeneratorConfig) TransactionGeneratorInterface {
	if config.Customers <= 0 {
		config.Customers = DefaultGeneratorConfig().Customers
	}
	if config.Merchants <= 0 {
		config.Merchants = DefaultGeneratorConfig().Merchants
	}

	faker := gofakeit.New(config.Seed)
	g := &transactionGenerator{
		faker:  faker,
		config: config,
	}

	for i := 0; i < config.Customers; i++ {
		g.customers = append(g.customers, customerProfile{
			name:   "C" + faker.Numerify("##########"),
			age:    faker.RandomString(bankSimAges),
			gender: g.gender(),
			zip:    faker.Zip(),
		})
	}
	for i := 0; i < config.Merchants; i++ {
		g.merchants = append(g.merchants, "M"+faker.Numerify("#########"))
	}

	return g
}

// gender follows the BankSim mix: mostly F and M, with a few enterprise (E)
// and unknown (U) rows.
func (g *transactionGenerator) gender() string {
	roll := g.faker.Float64()
	switch {
	case roll < 0.54:
		return models.GenderFemale
	case roll < 0.98:
		return models.GenderMale
	case roll < 0.99:
		return "E"
	default:
		return models.GenderUnknown
	}
}

// Generate returns count records spread over steps of roughly 100 records.
func (g *transactionGenerator) Generate(count int) []models.TransactionRecord {
	records := make([]models.TransactionRecord, 0, count)

	for i := 0; i < count; i++ {
		customer := g.customers[g.faker.IntRange(0, len(g.customers)-1)]
		category := g.faker.RandomString(bankSimCategories)

		records = append(records, models.TransactionRecord{
			Step:            i / 100,
			CustomerName:    customer.name,
			Age:             customer.age,
			Gender:          customer.gender,
			ZipcodeOrigin:   customer.zip,
			MerchantID:      g.merchants[g.faker.IntRange(0, len(g.merchants)-1)],
			ZipMerchant:     customer.zip,
			TransactionType: category,
			Amount:          g.amount(category),
			Fraud:           g.faker.Float64() < g.config.FraudRate,
		})
	}

	return records
}

func (g *transactionGenerator) amount(category string) decimal.Decimal {
	var low, high float64
	switch category {
	case "es_transportation", "es_food":
		low, high = 1, 60
	case "es_travel", "es_leisure", "es_hotelservices":
		low, high = 100, 2500
	case "es_tech", "es_home", "es_fashion":
		low, high = 20, 400
	default:
		low, high = 5, 150
	}
	return decimal.NewFromFloat(g.faker.Float64Range(low, high)).Round(2)
}

// WriteCSV writes records in batch column order, quoting text columns with
// single quotes the way the BankSim export does.
func (g *transactionGenerator) WriteCSV(w io.Writer, records []models.TransactionRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(BatchColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range records {
		r := &records[i]
		row := []string{
			strconv.Itoa(r.Step),
			quote(r.CustomerName),
			quote(r.Age),
			quote(r.Gender),
			quote(r.ZipcodeOrigin),
			quote(r.MerchantID),
			quote(r.ZipMerchant),
			quote(r.TransactionType),
			r.Amount.StringFixed(2),
			flag(r.Fraud),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// GenerateImportance derives one reference row per distinct
// (customer, merchant, category) triple seen in records.
func (g *transactionGenerator) GenerateImportance(records []models.TransactionRecord) []models.ImportanceRow {
	type triple struct {
		customer, merchant, category string
	}

	seen := make(map[triple]bool)
	var rows []models.ImportanceRow
	for i := range records {
		r := &records[i]
		key := triple{r.CustomerName, r.MerchantID, r.TransactionType}
		if seen[key] {
			continue
		}
		seen[key] = true

		rows = append(rows, models.ImportanceRow{
			CustomerName:    r.CustomerName,
			MerchantID:      r.MerchantID,
			Importance:      g.faker.Float64Range(0.01, 10),
			TransactionType: r.TransactionType,
			Fraud:           r.Fraud,
		})
	}

	return rows
}

func (g *transactionGenerator) WriteImportanceCSV(w io.Writer, rows []models.ImportanceRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ImportanceColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range rows {
		row := &rows[i]
		err := writer.Write([]string{
			quote(row.CustomerName),
			quote(row.MerchantID),
			strconv.FormatFloat(row.Importance, 'f', 2, 64),
			quote(row.TransactionType),
			flag(row.Fraud),
		})
		if err != nil {
			return fmt.Errorf("failed to write importance row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func quote(value string) string {
	return "'" + value + "'"
}

func flag(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
