package models

// ReportTable - табличный отчёт вспомогательной вкладки.
// Строки приходят извне и движком не изменяются.
type ReportTable struct {
	Name    string     `json:"name"`
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
