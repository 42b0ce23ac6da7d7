package table

import nt "hrquery/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()    {}
func (ColumnsMsg) isTableMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

type ColumnsMsg struct {
	Columns []nt.Column
}
