package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/model"
)

// WriteXLSX writes the same rows as the CSV export to a workbook at path.
func WriteXLSX(cat *catalogue.Catalogue, a *model.Audit, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("CoreIQ")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}
	for _, row := range Rows(cat, a) {
		r := sheet.AddRow()
		for _, v := range row {
			r.AddCell().Value = v
		}
	}
	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save xlsx %s", path)
	}
	return nil
}
