package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/fdg312/thali/internal/mealplans"
	"github.com/fdg312/thali/internal/meallog"
	"github.com/jung-kurt/gofpdf"
)

// MealPlanCSV writes one row per planned meal.
func MealPlanCSV(plan mealplans.SavedPlan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"day_number", "day", "theme", "type", "name", "calories", "time", "region", "cooking_method", "ingredients"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, d := range plan.Days {
		for _, m := range d.Meals {
			row := []string{
				strconv.Itoa(i + 1),
				d.Day,
				d.RegionalTheme,
				m.Type,
				m.Name,
				strconv.Itoa(m.Calories),
				m.Time,
				m.Region,
				m.CookingMethod,
				strings.Join(m.Ingredients, "; "),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MealLogCSV writes logged meals in log order.
func MealLogCSV(meals []meallog.LoggedMeal) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "time", "type", "name", "portion", "rice_grams", "roti_count", "calories"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, m := range meals {
		rice, roti := "", ""
		if m.RiceOption != nil {
			rice = strconv.Itoa(m.RiceOption.Grams)
		}
		if m.RotiOption != nil {
			roti = strconv.Itoa(m.RotiOption.Count)
		}
		row := []string{
			m.Date,
			m.Time,
			m.Type,
			m.Name,
			strconv.FormatFloat(m.Portion, 'f', -1, 64),
			rice,
			roti,
			strconv.Itoa(m.Calories),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newPDF() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	// core fonts are cp1252; translate so names like "Sautéed" render
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func outputPDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// MealPlanPDF renders the saved plan, one table per day.
func MealPlanPDF(plan mealplans.SavedPlan) ([]byte, error) {
	pdf, tr := newPDF()
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("%d-Day Indian Meal Plan", len(plan.Days))))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	prefs := plan.Preferences
	if prefs.Goal != "" || prefs.DietType != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Goal: %s    Diet: %s    Servings: %s", prefs.Goal, prefs.DietType, prefs.Servings)))
		pdf.Ln(5)
	}
	if len(prefs.Restrictions) > 0 {
		pdf.Cell(0, 6, tr("Restrictions: "+strings.Join(prefs.Restrictions, ", ")))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Daily calories: %d    Protein %dg  Carbs %dg  Fat %dg  Fiber %dg",
		plan.TotalCalories, plan.Macros.Protein, plan.Macros.Carbs, plan.Macros.Fat, plan.Macros.Fiber)))
	pdf.Ln(5)
	if plan.AyurvedicBalance != "" {
		pdf.Cell(0, 6, tr("Ayurvedic balance: "+plan.AyurvedicBalance))
		pdf.Ln(5)
	}
	if plan.SavedAt != "" {
		pdf.Cell(0, 6, tr("Saved: "+plan.SavedAt))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	for i, d := range plan.Days {
		title := fmt.Sprintf("Day %d - %s", i+1, d.Day)
		if d.RegionalTheme != "" {
			title += " (" + d.RegionalTheme + ")"
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(22, 6, "Meal", "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, "Dish", "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, "Time", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, "Region", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, "Method", "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, "kcal", "1", 1, "C", false, 0, "")

		pdf.SetFont("Arial", "", 8)
		for _, m := range d.Meals {
			pdf.CellFormat(22, 6, tr(m.Type), "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(m.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(18, 6, tr(m.Time), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, tr(m.Region), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, tr(m.CookingMethod), "1", 0, "L", false, 0, "")
			pdf.CellFormat(18, 6, strconv.Itoa(m.Calories), "1", 1, "R", false, 0, "")
		}
		pdf.CellFormat(170, 6, "Day total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, strconv.Itoa(d.DayCalories()), "1", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	return outputPDF(pdf)
}

// MealLogPDF renders logged meals grouped by date with per-day totals.
func MealLogPDF(meals []meallog.LoggedMeal, from, to string) ([]byte, error) {
	pdf, tr := newPDF()
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Meal Log")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", from, to))
	pdf.Ln(10)

	if len(meals) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "No meals logged in this period.")
		return outputPDF(pdf)
	}

	var dates []string
	byDate := make(map[string][]meallog.LoggedMeal)
	for _, m := range meals {
		if _, ok := byDate[m.Date]; !ok {
			dates = append(dates, m.Date)
		}
		byDate[m.Date] = append(byDate[m.Date], m)
	}

	total := 0
	for _, date := range dates {
		dayMeals := byDate[date]
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, date)
		pdf.Ln(7)

		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(20, 6, "Time", "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, "Meal", "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, "Dish", "1", 0, "C", false, 0, "")
		pdf.CellFormat(16, 6, "Portion", "1", 0, "C", false, 0, "")
		pdf.CellFormat(34, 6, "Sides", "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, "kcal", "1", 1, "C", false, 0, "")

		pdf.SetFont("Arial", "", 8)
		for _, m := range dayMeals {
			pdf.CellFormat(20, 6, m.Time, "1", 0, "C", false, 0, "")
			pdf.CellFormat(22, 6, tr(m.Type), "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(m.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(16, 6, strconv.FormatFloat(m.Portion, 'f', -1, 64)+"x", "1", 0, "C", false, 0, "")
			pdf.CellFormat(34, 6, sides(m), "1", 0, "L", false, 0, "")
			pdf.CellFormat(18, 6, strconv.Itoa(m.Calories), "1", 1, "R", false, 0, "")
		}

		dayTotal := 0
		for _, m := range dayMeals {
			dayTotal += m.Calories
		}
		total += dayTotal
		pdf.CellFormat(162, 6, "Day total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, strconv.Itoa(dayTotal), "1", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d kcal over %d day(s), average %d kcal/day", total, len(dates), total/len(dates)))

	return outputPDF(pdf)
}

func sides(m meallog.LoggedMeal) string {
	var parts []string
	if m.RiceOption != nil {
		parts = append(parts, fmt.Sprintf("rice %dg", m.RiceOption.Grams))
	}
	if m.RotiOption != nil {
		parts = append(parts, fmt.Sprintf("%d roti", m.RotiOption.Count))
	}
	return strings.Join(parts, ", ")
}
