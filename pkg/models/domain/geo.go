package domain

// Constituency describes one small geographic area from the metadata table.
// X and Y are fixed display coordinates, not projections of real geography.
type Constituency struct {
	Code string
	Name string
	X    int
	Y    int
}
