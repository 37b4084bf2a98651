package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/common"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
)

// Service assembles the final export document and writes it to disk.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Assemble wraps the collected records into the export document, injecting
// the synthetic default user and stamping the export time. Every category is
// present in the output even when empty.
func (s *Service) Assemble(ds entity.DataSet, batchID string, now time.Time) *entity.Document {
	ds.Users = []entity.User{{ID: constants.ImportUserID, Name: constants.ImportUserName}}
	ds.Animals = ensure(ds.Animals)
	ds.RawAnimals = ensure(ds.RawAnimals)
	ds.Medications = ensure(ds.Medications)
	ds.Milk = ensure(ds.Milk)
	ds.HealthEvents = ensure(ds.HealthEvents)
	ds.Boosters = ensure(ds.Boosters)
	ds.Repro = ensure(ds.Repro)
	ds.CheeseSales = ensure(ds.CheeseSales)
	ds.MilkPurchases = ensure(ds.MilkPurchases)
	ds.MilkTransport = ensure(ds.MilkTransport)
	ds.FixedCosts = ensure(ds.FixedCosts)

	return &entity.Document{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Meta:       entity.Meta{BatchID: batchID},
		Data:       ds,
	}
}

// Write serializes the document, validates it against the embedded schema
// and writes it to path in one shot.
func (s *Service) Write(doc *entity.Document, path string) error {
	b, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := validateDocument(b); err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.logger.Info("document written", "path", path, "bytes", len(b))
	return nil
}

// Encode marshals the document with readable indentation and unescaped
// non-ASCII text (the source labels are Spanish).
func Encode(doc *entity.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// validateDocument checks the serialized document against documentSchema.
func validateDocument(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("ganaderia_import.schema.json", strings.NewReader(documentSchema)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("ganaderia_import.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return common.NewAppError("SCHEMA_VALIDATION", err.Error(), common.ErrSchema)
	}
	return nil
}

func ensure[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
