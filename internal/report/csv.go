package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"rootcmp/internal/compare"
)

// значащих цифр для x и f(x) в CSV
const traceDigits = 16

// WriteTraceCSV — экспорт истории итераций всех запусков в CSV
func WriteTraceCSV(w io.Writer, rows []compare.Row) error {
	cw := csv.NewWriter(w)

	_ = cw.Write([]string{"label", "method", "iteration", "x", "fx"})

	for _, row := range rows {
		for _, it := range row.Result.History {
			_ = cw.Write([]string{
				row.Label,
				row.Result.Method,
				strconv.Itoa(it.Iteration),
				strconv.FormatFloat(it.X, 'g', traceDigits, 64),
				strconv.FormatFloat(it.FX, 'g', traceDigits, 64),
			})
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveTraceCSV пишет историю итераций в файл path
func SaveTraceCSV(path string, rows []compare.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := WriteTraceCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("report: %w", err)
	}
	return f.Close()
}
