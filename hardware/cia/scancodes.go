package cia

// Scancode identifies a key on the E64 keyboard. The values are the offsets
// of the key state registers from RegKeys
type Scancode uint8

// list of scancodes
const (
	ScanEscape Scancode = iota
	ScanF1
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanGrave
	Scan1
	Scan2
	Scan3
	Scan4
	Scan5
	Scan6
	Scan7
	Scan8
	Scan9
	Scan0
	ScanMinus
	ScanEquals
	ScanBackspace
	ScanTab
	ScanQ
	ScanW
	ScanE
	ScanR
	ScanT
	ScanY
	ScanU
	ScanI
	ScanO
	ScanP
	ScanLeftBracket
	ScanRightBracket
	ScanReturn
	ScanA
	ScanS
	ScanD
	ScanF
	ScanG
	ScanH
	ScanJ
	ScanK
	ScanL
	ScanSemicolon
	ScanApostrophe
	ScanBackslash
	ScanLShift
	ScanZ
	ScanX
	ScanC
	ScanV
	ScanB
	ScanN
	ScanM
	ScanComma
	ScanPeriod
	ScanSlash
	ScanRShift
	ScanLCtrl
	ScanSpace
	ScanRCtrl
	ScanLeft
	ScanUp
	ScanDown
	ScanRight

	NumScancodes
)
