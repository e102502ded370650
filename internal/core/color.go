package core

// Color is a terminal colour as understood by lipgloss: an ANSI 256 index
// ("208") or a hex value ("#eee4da"). The empty string is the terminal default.
type Color string

// Predefined colors for HUD and chrome.
const (
	ColorDefault      Color = ""
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightYellow Color = "11"
	ColorBrightCyan   Color = "14"
	ColorBrightWhite  Color = "15"
	ColorOrange       Color = "208"
	ColorGray         Color = "245"
	ColorDarkText     Color = "#3c3a32"
	ColorLightText    Color = "#f9f6f2"
)
