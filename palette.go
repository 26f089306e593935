package tcolour

// Named colours matching the standard terminal palette. Pure red, green
// and blue are covered by the constructors of the same name; the light
// variants follow the half-bright convention rather than any specific
// terminal's theme.
var (
	Black   = FromU8(0, 0, 0)
	White   = FromU8(255, 255, 255)
	Yellow  = FromU8(255, 255, 0)
	Magenta = FromU8(255, 0, 255)
	Cyan    = FromU8(0, 255, 255)

	Gray     = FromU8(169, 169, 169)
	DarkGray = FromU8(128, 128, 128)

	LightRed     = FromU8(255, 128, 128)
	LightGreen   = FromU8(128, 255, 128)
	LightYellow  = FromU8(255, 255, 128)
	LightBlue    = FromU8(128, 128, 255)
	LightMagenta = FromU8(255, 128, 255)
	LightCyan    = FromU8(128, 255, 255)
)
