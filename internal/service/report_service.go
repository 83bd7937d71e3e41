package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nurpe/gigledger/internal/config"
	"github.com/nurpe/gigledger/internal/model"
)

type ReportStore interface {
	ProfessionEarnings(ctx context.Context, start, end time.Time) ([]model.ProfessionEarnings, error)
	TopClients(ctx context.Context, start, end time.Time, limit int) ([]model.ClientSpend, error)
}

type ExcelGenerator interface {
	Generate(report model.EarningsReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.EarningsReport) ([]byte, error)
}

type ReportService struct {
	store        ReportStore
	excel        ExcelGenerator
	pdf          PDFGenerator
	defaultLimit int
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewReportService(store ReportStore, excel ExcelGenerator, pdf PDFGenerator, cfg *config.Config) *ReportService {
	return &ReportService{
		store:        store,
		excel:        excel,
		pdf:          pdf,
		defaultLimit: cfg.Ledger.BestClientsLimit,
	}
}

// BestProfession returns the profession that earned the most from paid
// jobs inside the inclusive window, or nil when nothing was paid in it.
func (s *ReportService) BestProfession(ctx context.Context, principal model.Principal, start, end time.Time) (*model.ProfessionEarnings, error) {
	if err := checkReportAccess(principal); err != nil {
		return nil, err
	}
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	rows, err := s.store.ProfessionEarnings(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	top := rows[0]
	return &top, nil
}

func (s *ReportService) BestClients(ctx context.Context, principal model.Principal, start, end time.Time, limit int) ([]model.ClientSpend, error) {
	if err := checkReportAccess(principal); err != nil {
		return nil, err
	}
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	return s.store.TopClients(ctx, start, end, limit)
}

// ExportBestClients renders the best-clients ranking as an xlsx
// attachment.
func (s *ReportService) ExportBestClients(ctx context.Context, principal model.Principal, start, end time.Time, limit int) (*ExportResult, error) {
	clients, err := s.BestClients(ctx, principal, start, end, limit)
	if err != nil {
		return nil, err
	}

	report := model.EarningsReport{
		PeriodStart: start,
		PeriodEnd:   end,
		Clients:     clients,
	}
	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: buildFileName("best-clients", start, end, "xlsx"),
		Content:  content,
	}, nil
}

// ExportEarnings renders the full profession-earnings ranking as a pdf
// attachment.
func (s *ReportService) ExportEarnings(ctx context.Context, principal model.Principal, start, end time.Time) (*ExportResult, error) {
	if err := checkReportAccess(principal); err != nil {
		return nil, err
	}
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	professions, err := s.store.ProfessionEarnings(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := model.EarningsReport{
		PeriodStart: start,
		PeriodEnd:   end,
		Professions: professions,
	}
	content, err := s.pdf.Generate(report)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: buildFileName("earnings", start, end, "pdf"),
		Content:  content,
	}, nil
}

func checkReportAccess(principal model.Principal) error {
	if !principal.IsAdmin() {
		return fmt.Errorf("%w: reports require the admin capability", ErrPermissionDenied)
	}
	return nil
}

func checkWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start must be before or equal to end", ErrInvalidInput)
	}
	return nil
}

func buildFileName(kind string, start, end time.Time, ext string) string {
	return fmt.Sprintf("%s-%s-%s.%s", kind, start.Format("20060102"), end.Format("20060102"), ext)
}
