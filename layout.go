package hrquery

import nt "hrquery/entity"

const (
	footerHeight = 2
	actionHeight = 1
	gutter       = 2
)

// DefaultColumns are shown when none are configured.
// The list loads with the minimal view, so only its properties have values.
var DefaultColumns = []nt.Column{
	{Field: nt.NameProp, Width: 40},
	{Field: nt.VersionProp, Width: 7},
}

func (cfg *Config) columns() []nt.Column {
	if len(cfg.Columns) == 0 {
		return DefaultColumns
	}
	return cfg.Columns
}

// panelSizes splits the width between table and detail, the table taking what its
// columns need up to half.
func panelSizes(width, tableWant int) (tableWidth, detailWidth int) {

	tableWidth = min(tableWant, width/2)
	detailWidth = max(0, width-tableWidth-gutter)
	return
}
