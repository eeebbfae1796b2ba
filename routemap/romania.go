package routemap

// Romanian city names used by the Romania fixture.
const (
	Arad          = "Arad"
	Bucharest     = "Bucharest"
	Craiova       = "Craiova"
	Drobeta       = "Drobeta"
	Eforie        = "Eforie"
	Fagaras       = "Fagaras"
	Giurgiu       = "Giurgiu"
	Hirsova       = "Hirsova"
	Iasi          = "Iasi"
	Lugoj         = "Lugoj"
	Mehadia       = "Mehadia"
	Neamt         = "Neamt"
	Oradea        = "Oradea"
	Pitesti       = "Pitesti"
	RimnicuVilcea = "Rimnicu Vilcea"
	Sibiu         = "Sibiu"
	Timisoara     = "Timisoara"
	Urziceni      = "Urziceni"
	Vaslui        = "Vaslui"
	Zerind        = "Zerind"
)

// romaniaLinks lists the road network of the classic Romania route-finding example.
var romaniaLinks = []struct {
	a, b string
	d    float64
}{
	{Oradea, Zerind, 71},
	{Oradea, Sibiu, 151},
	{Zerind, Arad, 75},
	{Arad, Timisoara, 118},
	{Arad, Sibiu, 140},
	{Timisoara, Lugoj, 111},
	{Lugoj, Mehadia, 70},
	{Mehadia, Drobeta, 75},
	{Drobeta, Craiova, 120},
	{Sibiu, Fagaras, 99},
	{Sibiu, RimnicuVilcea, 80},
	{RimnicuVilcea, Pitesti, 97},
	{RimnicuVilcea, Craiova, 146},
	{Craiova, Pitesti, 138},
	{Fagaras, Bucharest, 211},
	{Pitesti, Bucharest, 101},
	{Giurgiu, Bucharest, 90},
	{Bucharest, Urziceni, 85},
	{Neamt, Iasi, 87},
	{Urziceni, Vaslui, 142},
	{Urziceni, Hirsova, 98},
	{Iasi, Vaslui, 92},
	{Hirsova, Eforie, 86},
}

// straightLineToBucharest holds straight-line distances from each city to Bucharest.
var straightLineToBucharest = map[string]float64{
	Arad:          366,
	Bucharest:     0,
	Craiova:       160,
	Drobeta:       242,
	Eforie:        161,
	Fagaras:       176,
	Giurgiu:       77,
	Hirsova:       151,
	Iasi:          226,
	Lugoj:         244,
	Mehadia:       241,
	Neamt:         234,
	Oradea:        380,
	Pitesti:       100,
	RimnicuVilcea: 193,
	Sibiu:         253,
	Timisoara:     329,
	Urziceni:      80,
	Vaslui:        199,
	Zerind:        374,
}

// Romania returns a fresh copy of the simplified road map of part of Romania.
func Romania() *Map {
	m := New()
	for _, l := range romaniaLinks {
		_ = m.AddLink(l.a, l.b, l.d) // fixture data is valid
	}

	return m
}

// StraightLineToBucharest is the admissible straight-line-distance heuristic
// for routes ending in Bucharest. Unknown cities score 0.
func StraightLineToBucharest(city string) float64 {
	return straightLineToBucharest[city]
}
