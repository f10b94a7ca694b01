package game

// The nine logical drum lanes, left to right.
const (
	LaneLeftCymbal = iota
	LaneHiHat
	LaneLeftPedal
	LaneSnare
	LaneHighTom
	LaneBass
	LaneLowTom
	LaneFloorTom
	LaneRightCymbal
	LaneCount
)

var laneNames = [LaneCount]string{
	"LC", "HH", "LP", "SN", "HT", "BD", "LT", "FT", "CY",
}

func LaneName(lane int) string {
	if lane < 0 || lane >= LaneCount {
		return "??"
	}
	return laneNames[lane]
}
