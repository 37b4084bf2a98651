package export

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/common"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
)

func testService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAssembleEmptyDataSet(t *testing.T) {
	doc := testService().Assemble(entity.DataSet{}, "batch-1", time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))

	if doc.ExportedAt != "2024-03-05T12:00:00Z" {
		t.Errorf("exportedAt = %q", doc.ExportedAt)
	}
	if doc.Meta.BatchID != "batch-1" {
		t.Errorf("batchId = %q", doc.Meta.BatchID)
	}
	if len(doc.Data.Users) != 1 || doc.Data.Users[0].ID != "user_import" || doc.Data.Users[0].Name != "Importado" {
		t.Errorf("default user wrong: %+v", doc.Data.Users)
	}

	b, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// every category must serialize as an array, never null
	if strings.Contains(string(b), "null") {
		t.Errorf("document contains null categories:\n%s", b)
	}
	var round map[string]any
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	data := round["data"].(map[string]any)
	for _, key := range []string{
		"users", "animals", "brutos", "meds",
		"milk", "healthEvents", "boosters", "repro",
		"salesCheese", "buyMilk", "transMilk", "fixedCosts",
	} {
		if _, ok := data[key].([]any); !ok {
			t.Errorf("category %q missing or not an array", key)
		}
	}
}

func TestWriteValidatesAndWrites(t *testing.T) {
	svc := testService()
	doc := svc.Assemble(entity.DataSet{
		Animals: []entity.Animal{{
			ID: "ani_import_1", Tag: "1001", Name: "Bella", Sex: "Hembra",
			Extras: entity.Extras{"arete": entity.NumberExtra(1001)},
			Audit:  entity.Audit{CreatedBy: "user_import", CreatedAt: 0},
		}},
	}, "batch-1", time.Now())

	path := filepath.Join(t.TempDir(), "out.json")
	if err := svc.Write(doc, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var round entity.Document
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(round.Data.Animals) != 1 || round.Data.Animals[0].Tag != "1001" {
		t.Errorf("animal did not round-trip: %+v", round.Data.Animals)
	}
	if round.Data.Animals[0].Extras["arete"] != entity.NumberExtra(1001) {
		t.Errorf("extras did not round-trip: %+v", round.Data.Animals[0].Extras)
	}
}

func TestWriteRejectsMalformedDocument(t *testing.T) {
	svc := testService()
	// an id outside the <prefix>_import_<n> shape is a converter bug the
	// schema gate must catch
	doc := svc.Assemble(entity.DataSet{
		Animals: []entity.Animal{{
			ID: "oops", Tag: "1", Sex: "Hembra", Extras: entity.Extras{},
			Audit: entity.Audit{CreatedBy: "user_import", CreatedAt: 0},
		}},
	}, "batch-1", time.Now())

	err := svc.Write(doc, filepath.Join(t.TempDir(), "out.json"))
	if err == nil {
		t.Fatal("expected schema validation failure")
	}
	if !errors.Is(err, common.ErrSchema) {
		t.Errorf("error = %v, want ErrSchema", err)
	}
}
