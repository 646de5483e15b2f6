package report

import (
	"fmt"
	"io"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/go-pdf/fpdf"
)

const dateLayout = "2006-01-02"

var tableColumns = []struct {
	title string
	width float64
}{
	{"Date", 26},
	{"Type", 34},
	{"Sleep (h)", 22},
	{"Water (gls)", 24},
	{"Calories", 24},
	{"Score", 18},
}

// PDFRenderer lays out a HealthReport as an A4 document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(w io.Writer, data *domain.HealthReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Health Report", true)
	pdf.SetAuthor("HealthLog", true)
	pdf.SetCreationDate(data.GeneratedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Health Report"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Generated "+data.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeProfile(pdf, tr, data)
	pdf.Ln(6)

	if len(data.Logs) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 8, tr("No health logs recorded yet."), "", 1, "L", false, 0, "")
	} else {
		writeLogTable(pdf, tr, data.Logs)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("layout report: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeProfile(pdf *fpdf.Fpdf, tr func(string) string, data *domain.HealthReport) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr("Profile"), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	name := ""
	if data.User != nil {
		name = data.User.DisplayName()
	}
	lines := []string{"Name: " + name}
	if data.Profile != nil {
		lines = append(lines,
			fmt.Sprintf("Age: %d", data.Profile.Age),
			fmt.Sprintf("Height: %.1f cm", data.Profile.HeightCm),
			fmt.Sprintf("Weight: %.1f kg", data.Profile.WeightKg),
			fmt.Sprintf("BMI: %.1f (%s)", data.Profile.BMI(), data.Profile.BMIStatus()),
		)
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
}

func writeLogTable(pdf *fpdf.Fpdf, tr func(string) string, logs []*domain.HealthLog) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Health Logs (%d)", len(logs))), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(224, 242, 241)
	for _, col := range tableColumns {
		pdf.CellFormat(col.width, 7, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range logs {
		cells := []string{
			entry.Date.Format(dateLayout),
			entry.LogType.Label(),
			fmt.Sprintf("%.1f", entry.SleepHours),
			fmt.Sprintf("%.1f", entry.WaterIntake),
			fmt.Sprintf("%d", entry.CaloriesFor()),
			fmt.Sprintf("%d", entry.HealthScore),
		}
		for i, col := range tableColumns {
			pdf.CellFormat(col.width, 7, tr(cells[i]), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr(entry.Suggestion), "LRB", "L", false)
		pdf.SetFont("Helvetica", "", 10)
	}
}
