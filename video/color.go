package video

// Color is an 8-bit RGBA color in the backend's native layout.
type Color struct {
	R, G, B, A uint8
}

// Named palette shared by all drivers.
var (
	Gray       = Color{130, 130, 130, 255}
	DarkGray   = Color{80, 80, 80, 255}
	Yellow     = Color{253, 249, 0, 255}
	Gold       = Color{255, 203, 0, 255}
	Orange     = Color{255, 161, 0, 255}
	Pink       = Color{255, 109, 194, 255}
	Red        = Color{230, 41, 55, 255}
	Maroon     = Color{190, 33, 55, 255}
	Green      = Color{0, 228, 48, 255}
	Lime       = Color{0, 158, 47, 255}
	DarkGreen  = Color{0, 117, 44, 255}
	SkyBlue    = Color{102, 191, 255, 255}
	Blue       = Color{0, 121, 241, 255}
	DarkBlue   = Color{0, 82, 172, 255}
	Purple     = Color{200, 122, 255, 255}
	Violet     = Color{135, 60, 190, 255}
	DarkPurple = Color{112, 31, 126, 255}
	Beige      = Color{211, 176, 131, 255}
	Brown      = Color{127, 106, 79, 255}
	DarkBrown  = Color{76, 63, 47, 255}
	White      = Color{255, 255, 255, 255}
	Black      = Color{0, 0, 0, 255}
	Blank      = Color{0, 0, 0, 0}
	Magenta    = Color{255, 0, 255, 255}
	RayWhite   = Color{245, 245, 245, 255}
)
