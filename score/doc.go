// Package score describes the structural geometry of a scanned score sheet,
// as consulted read-only by text reconciliation.
//
// A [Sheet] holds vertically ordered [System]s; each system is divided into
// [Part]s owning one or more [Staff]s. The sheet also carries the global
// [Scale] (interline and resolution), the global [Skew] and the named
// processing [Switches].
//
//	sheet := &score.Sheet{
//	    Scale:    score.Scale{Interline: 20},
//	    Skew:     score.NewSkew(0.01),
//	    Switches: score.DefaultSwitches(),
//	    Systems:  systems,
//	}
//	pos := sheet.Systems[0].StaffPosition(line.Bounds().Center())
package score
