package locale

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX overlays templates from a workbook. One sheet per locale tag, two
// columns (key, template); a header row of "key"/"template" is skipped. New
// locales get a fresh table, existing keys are overwritten.
func (d *Dictionary) LoadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open locale workbook: %w", err)
	}
	defer x.Close()

	for _, sheet := range x.GetSheetList() {
		lang := strings.ToLower(strings.TrimSpace(sheet))
		if lang == "" {
			continue
		}
		rows, err := x.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		t, ok := d.tables[lang]
		if !ok {
			t = Table{}
			d.tables[lang] = t
		}
		for i, rec := range rows {
			if len(rec) < 2 {
				continue
			}
			key := strings.TrimSpace(rec[0])
			val := strings.TrimSpace(rec[1])
			if key == "" || val == "" {
				continue
			}
			if i == 0 && strings.EqualFold(key, "key") {
				continue
			}
			t[key] = val
		}
	}
	return nil
}
