package models

// BiltyPDFData feeds the printable bilty template.
type BiltyPDFData struct {
	Bilty      *Bilty
	Consignor  *Party
	Consignee  *Party
	Date       string // formatted bilty date
	TotalWords string
	CopyTitle  string
}
