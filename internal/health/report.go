package health

import (
	"fmt"

	"fitlink/internal/models"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Health Metrics"

// ReportFilename is the attachment filename for the Excel health report.
const ReportFilename = "health_metrics.xlsx"

// ReportContentType is the MIME type of the generated workbook.
const ReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BuildReport renders a user's health profile into an Excel workbook: a
// two-column metric/value sheet with identity fields, inputs, derived
// metrics, BMI-bracket advice and calorie targets. The transform is
// deterministic and stateless.
func BuildReport(user *models.User) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(reportSheet, "A", "A", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(reportSheet, "B", "B", 40); err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: border,
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, err
	}

	advice := AdviceFor(user.BMI)
	maintenance, cut, bulk := CalorieTargets(user.TDEE)

	type row struct {
		metric string
		value  interface{}
	}
	rows := []row{
		{"Metric", "Value"},
		{"First Name", user.FirstName},
		{"Last Name", user.LastName},
		{"Height (cm)", user.Height},
		{"Weight (kg)", user.Weight},
		{"Age", user.Age},
		{"Activity Level", string(user.ActivityLevel)},
		{"Gender", string(user.Gender)},
		{"BMI", user.BMI},
		{"Metabolic Rate", user.MetabolicRate},
		{"TDEE", user.TDEE},
		{"Ideal Weight (kg)", user.IdealWeight},
		{}, // spacer
		{"Physical Health", advice.PhysicalHealth},
		{"Mental Wellness", advice.MentalWellness},
		{"Nutrition Tips", advice.NutritionTips},
		{"Maintenance Calories", maintenance},
		{"Cut Calories", cut},
		{"Bulk Calories", bulk},
	}

	for i, r := range rows {
		n := i + 1
		if r.metric == "" {
			continue
		}
		if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", n), &[]interface{}{r.metric, r.value}); err != nil {
			return nil, err
		}
		style := cellStyle
		if n == 1 {
			style = headerStyle
		}
		if err := f.SetCellStyle(reportSheet, fmt.Sprintf("A%d", n), fmt.Sprintf("B%d", n), style); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
