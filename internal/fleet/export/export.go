// Package export serializes the transport collection to a JSON file.
// Each transport is flattened into a record carrying the display names
// of its driver, vehicle and client.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fleetops/internal/fleet/models"
	"go.uber.org/zap"
)

// TransportReader provides the transports to export with their driver,
// vehicle and client rows loaded.
type TransportReader interface {
	GetTransportsExpanded(ctx context.Context) ([]models.Transport, error)
}

// Exporter writes transport exports to disk.
type Exporter struct {
	reader TransportReader
	logger *zap.Logger
}

// NewExporter constructs an Exporter with a transport reader and a
// logger.
func NewExporter(reader TransportReader, logger *zap.Logger) *Exporter {
	return &Exporter{
		reader: reader,
		logger: logger.Named("transport_export"),
	}
}

type entityRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type vehicleRef struct {
	ID                 uint   `json:"id"`
	RegistrationNumber string `json:"registrationNumber"`
}

type transportRecord struct {
	ID            uint            `json:"id"`
	Type          string          `json:"type"`
	Date          string          `json:"date"`
	Destination   string          `json:"destination"`
	Price         json.RawMessage `json:"price"`
	PaymentStatus string          `json:"paymentStatus"`
	Driver        entityRef       `json:"driver"`
	Vehicle       vehicleRef      `json:"vehicle"`
	Client        entityRef       `json:"client"`
}

// ExportTransports reads the full transport collection and writes it
// as a JSON array to path, overwriting any existing file. Prices carry
// exactly two decimal digits. Double quotes inside string fields are
// replaced with single quotes rather than escaped.
func (x *Exporter) ExportTransports(ctx context.Context, path string) error {
	transports, err := x.reader.GetTransportsExpanded(ctx)
	if err != nil {
		return fmt.Errorf("failed to read transports for export: %w", err)
	}

	records := make([]transportRecord, 0, len(transports))
	for i := range transports {
		records = append(records, toRecord(&transports[i]))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	x.logger.Info("Exported transports",
		zap.Int("count", len(records)),
		zap.String("path", path),
	)
	return nil
}

// ReadExport returns the raw contents of a previously written export.
func (x *Exporter) ReadExport(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}
	return data, nil
}

func toRecord(t *models.Transport) transportRecord {
	rec := transportRecord{
		ID:            t.ID,
		Type:          t.Kind.TypeName(),
		Date:          t.TransportDate.Format("2006-01-02"),
		Destination:   safe(t.Destination),
		Price:         json.RawMessage(t.Price.StringFixed(2)),
		PaymentStatus: string(t.PaymentStatus),
	}
	if t.Driver != nil {
		rec.Driver = entityRef{ID: t.Driver.ID, Name: safe(t.Driver.FullName())}
	}
	if t.Vehicle != nil {
		rec.Vehicle = vehicleRef{ID: t.Vehicle.ID, RegistrationNumber: safe(t.Vehicle.RegistrationNumber)}
	}
	if t.Client != nil {
		rec.Client = entityRef{ID: t.Client.ID, Name: safe(t.Client.FullName())}
	}
	return rec
}

// safe swaps double quotes for single quotes instead of escaping them.
func safe(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
