package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/gigledger/internal/model"
)

func TestGenerate(t *testing.T) {
	report := model.EarningsReport{
		PeriodStart: time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2020, 8, 31, 0, 0, 0, 0, time.UTC),
		Clients: []model.ClientSpend{
			{ClientID: uuid.New(), FullName: "Top Spender", TotalPaid: decimal.NewFromInt(500)},
			{ClientID: uuid.New(), FullName: "Mid Spender", TotalPaid: decimal.NewFromInt(300)},
		},
	}

	content, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer file.Close()

	sheet := "Best clients"
	name, err := file.GetCellValue(sheet, "B5")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "Top Spender" {
		t.Errorf("B5 = %q, want Top Spender", name)
	}

	second, err := file.GetCellValue(sheet, "B6")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if second != "Mid Spender" {
		t.Errorf("B6 = %q, want Mid Spender", second)
	}
}
