package geo

import (
	"fmt"
)

// LatLng is a geographic coordinate pair in degrees
type LatLng struct {
	Lng, Lat float64
}

// Polygon is a closed landmass ring with its bounding box, all in degrees.
// The ring repeats its first vertex as the last one.
type Polygon struct {
	Name           string
	MinLng, MaxLng float64
	MinLat, MaxLat float64
	Ring           []LatLng
}

// Validate rejects rings that cannot classify anything: a closed ring
// needs at least 3 distinct vertices plus the closing repeat, and the
// bounding box must not be inverted.
func (p *Polygon) Validate() error {
	if len(p.Ring) < 4 {
		return fmt.Errorf("polygon %q: ring has %d vertices, need at least 4", p.Name, len(p.Ring))
	}
	if p.MinLng > p.MaxLng || p.MinLat > p.MaxLat {
		return fmt.Errorf("polygon %q: inverted bounding box", p.Name)
	}
	return nil
}

// Continents is the hand-authored landmass table. The rings are stylized
// silhouettes, not survey data; cells are classified against these at 1°
// resolution so vertex precision beyond whole degrees is wasted effort.
var Continents = []Polygon{
	{Name: "north-america", MinLng: -168, MaxLng: -52, MinLat: 7, MaxLat: 83, Ring: []LatLng{
		{-168, 70}, {-140, 60}, {-125, 49}, {-95, 28}, {-85, 10}, {-77, 7},
		{-52, 10}, {-52, 23}, {-70, 43}, {-60, 47}, {-52, 56}, {-60, 63},
		{-80, 73}, {-100, 83}, {-140, 72}, {-168, 70},
	}},
	{Name: "greenland", MinLng: -55, MaxLng: -17, MinLat: 60, MaxLat: 84, Ring: []LatLng{
		{-55, 60}, {-40, 60}, {-20, 65}, {-17, 75}, {-20, 84}, {-35, 84},
		{-50, 78}, {-55, 68}, {-55, 60},
	}},
	{Name: "south-america", MinLng: -82, MaxLng: -34, MinLat: -56, MaxLat: 13, Ring: []LatLng{
		{-82, 13}, {-60, 13}, {-50, 5}, {-35, -10}, {-34, -8}, {-40, -20},
		{-48, -28}, {-52, -34}, {-63, -56}, {-70, -50}, {-75, -40},
		{-80, -30}, {-82, -5}, {-82, 13},
	}},
	{Name: "western-europe", MinLng: -10, MaxLng: 25, MinLat: 36, MaxLat: 60, Ring: []LatLng{
		{-10, 36}, {10, 36}, {15, 38}, {25, 37}, {25, 42}, {20, 44},
		{18, 48}, {10, 52}, {5, 54}, {0, 54}, {-2, 56}, {-5, 48},
		{-10, 44}, {-10, 36},
	}},
	{Name: "scandinavia", MinLng: 5, MaxLng: 30, MinLat: 57, MaxLat: 71, Ring: []LatLng{
		{5, 57}, {15, 57}, {20, 60}, {25, 65}, {22, 68}, {26, 70},
		{20, 71}, {15, 70}, {10, 65}, {5, 62}, {5, 57},
	}},
	{Name: "eastern-europe", MinLng: 25, MaxLng: 45, MinLat: 36, MaxLat: 60, Ring: []LatLng{
		{25, 37}, {40, 37}, {45, 42}, {45, 48}, {40, 52}, {35, 55},
		{30, 55}, {25, 52}, {25, 45}, {25, 37},
	}},
	{Name: "africa", MinLng: -18, MaxLng: 52, MinLat: -35, MaxLat: 38, Ring: []LatLng{
		{-18, 15}, {-5, 5}, {0, -5}, {10, -5}, {15, -20}, {18, -30},
		{20, -35}, {28, -35}, {33, -30}, {40, -20}, {45, -10}, {52, 10},
		{44, 12}, {42, 15}, {38, 22}, {32, 31}, {25, 37}, {15, 38},
		{5, 37}, {-5, 35}, {-5, 28}, {-18, 20}, {-18, 15},
	}},
	{Name: "madagascar", MinLng: 44, MaxLng: 51, MinLat: -26, MaxLat: -12, Ring: []LatLng{
		{44, -13}, {46, -12}, {50, -15}, {51, -18}, {50, -22}, {47, -25},
		{44, -26}, {44, -13},
	}},
	{Name: "west-asia", MinLng: 25, MaxLng: 90, MinLat: 1, MaxLat: 75, Ring: []LatLng{
		{25, 37}, {40, 37}, {50, 30}, {58, 22}, {58, 12}, {50, 8},
		{45, 1}, {50, 2}, {60, 10}, {70, 23}, {80, 28}, {88, 28},
		{90, 23}, {90, 72}, {70, 72}, {55, 68}, {40, 55}, {30, 50},
		{25, 45}, {25, 37},
	}},
	{Name: "east-asia", MinLng: 90, MaxLng: 145, MinLat: 1, MaxLat: 75, Ring: []LatLng{
		{90, 23}, {95, 22}, {100, 5}, {104, 1}, {110, 1}, {115, 3},
		{118, 22}, {122, 30}, {122, 37}, {130, 45}, {135, 50}, {145, 50},
		{145, 75}, {130, 73}, {100, 73}, {90, 72}, {90, 23},
	}},
	{Name: "japan", MinLng: 130, MaxLng: 145, MinLat: 31, MaxLat: 45, Ring: []LatLng{
		{130, 31}, {131, 33}, {132, 34}, {133, 35}, {135, 36}, {137, 37},
		{140, 40}, {141, 41}, {142, 43}, {143, 44}, {145, 44}, {143, 42},
		{141, 40}, {139, 36}, {137, 34}, {134, 33}, {131, 32}, {130, 31},
	}},
	{Name: "india", MinLng: 65, MaxLng: 92, MinLat: 8, MaxLat: 37, Ring: []LatLng{
		{65, 23}, {68, 23}, {70, 20}, {72, 22}, {74, 8}, {78, 8},
		{80, 10}, {82, 8}, {80, 13}, {82, 20}, {85, 22}, {88, 22},
		{90, 24}, {92, 26}, {92, 27}, {88, 28}, {84, 24}, {80, 28},
		{72, 28}, {65, 23},
	}},
	{Name: "indochina", MinLng: 97, MaxLng: 110, MinLat: 1, MaxLat: 28, Ring: []LatLng{
		{97, 18}, {100, 20}, {100, 25}, {104, 22}, {104, 18}, {102, 12},
		{100, 5}, {104, 1}, {108, 1}, {110, 5}, {108, 12}, {105, 18},
		{100, 26}, {97, 24}, {97, 18},
	}},
	{Name: "indonesia", MinLng: 95, MaxLng: 119, MinLat: -9, MaxLat: 6, Ring: []LatLng{
		{95, 5}, {100, 5}, {104, 1}, {108, -5}, {112, -8}, {116, -9},
		{119, -8}, {119, -5}, {115, -3}, {110, 1}, {106, -8}, {102, -5},
		{98, 2}, {95, 5},
	}},
	{Name: "philippines", MinLng: 118, MaxLng: 127, MinLat: 5, MaxLat: 19, Ring: []LatLng{
		{118, 10}, {120, 10}, {122, 5}, {124, 7}, {126, 8}, {127, 10},
		{126, 12}, {125, 17}, {122, 19}, {120, 16}, {118, 10},
	}},
	{Name: "australia", MinLng: 114, MaxLng: 154, MinLat: -44, MaxLat: -10, Ring: []LatLng{
		{114, -22}, {122, -18}, {130, -12}, {136, -12}, {140, -18},
		{148, -20}, {154, -28}, {152, -38}, {146, -44}, {138, -44},
		{130, -33}, {120, -34}, {114, -30}, {114, -22},
	}},
	{Name: "new-zealand", MinLng: 166, MaxLng: 178, MinLat: -47, MaxLat: -34, Ring: []LatLng{
		{166, -46}, {168, -46}, {170, -44}, {172, -43}, {172, -40},
		{174, -37}, {174, -34}, {176, -36}, {178, -38}, {178, -42},
		{174, -44}, {170, -46}, {166, -46},
	}},
	{Name: "british-isles", MinLng: -8, MaxLng: 2, MinLat: 50, MaxLat: 59, Ring: []LatLng{
		{-8, 52}, {-5, 52}, {-3, 50}, {0, 50}, {2, 52}, {1, 55},
		{-2, 58}, {-5, 58}, {-6, 56}, {-5, 54}, {-8, 53}, {-8, 52},
	}},
	{Name: "iceland", MinLng: -25, MaxLng: -12, MinLat: 63, MaxLat: 67, Ring: []LatLng{
		{-25, 63}, {-20, 63}, {-14, 65}, {-12, 65}, {-15, 66}, {-20, 67},
		{-25, 66}, {-25, 63},
	}},
	{Name: "antarctica", MinLng: -180, MaxLng: 180, MinLat: -90, MaxLat: -65, Ring: []LatLng{
		{-180, -90}, {180, -90}, {180, -65}, {-180, -65}, {-180, -90},
	}},
	{Name: "siberia", MinLng: 45, MaxLng: 90, MinLat: 55, MaxLat: 75, Ring: []LatLng{
		{45, 55}, {60, 55}, {70, 55}, {80, 57}, {90, 60}, {90, 72},
		{70, 72}, {55, 68}, {45, 65}, {45, 55},
	}},
	{Name: "kamchatka", MinLng: 130, MaxLng: 145, MinLat: 42, MaxLat: 60, Ring: []LatLng{
		{130, 42}, {135, 45}, {140, 50}, {142, 55}, {145, 58}, {142, 60},
		{138, 58}, {135, 54}, {132, 48}, {130, 44}, {130, 42},
	}},
}
