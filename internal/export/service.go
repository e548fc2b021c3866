package export

import (
	"bytes"
	"context"
	"time"

	"github.com/ledongthuc/pdf"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/internal/site"
)

// Result is a finished export.
type Result struct {
	FileName string
	PDF      []byte
	Pages    int
}

// Service renders a resume's site to PDF for download.
type Service struct {
	Resumes  resumes.Repo
	Renderer Renderer
}

// NewService constructs a Service.
func NewService(resumeRepo resumes.Repo, renderer Renderer) *Service {
	return &Service{Resumes: resumeRepo, Renderer: renderer}
}

// Export generates the PDF for a resume owned by the user. The printed
// document is the same standalone page a publication would serve.
func (s *Service) Export(ctx context.Context, userID, resumeID string) (Result, error) {
	doc, err := s.Resumes.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Result{}, err
	}

	html := site.Generate(doc)

	start := time.Now()
	pdfBytes, err := s.Renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return Result{}, err
	}
	metrics.ObservePDFExportMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncPDFExports()

	pages, err := pageCount(pdfBytes)
	if err != nil {
		// The download is still valid without the count.
		telemetry.Error("export.page_count_failed", map[string]any{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		pages = 0
	}

	return Result{
		FileName: FileName(doc.PersonalInfo.FullName),
		PDF:      pdfBytes,
		Pages:    pages,
	}, nil
}

func pageCount(data []byte) (int, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return 0, err
	}
	return pdfReader.NumPage(), nil
}
