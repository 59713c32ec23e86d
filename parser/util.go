package parser

import (
	"strconv"
)

//*******************************************
// utility methods
//*******************************************

func _IsOneway(oneway string, str_type RoadType) bool {
	if str_type == MOTORWAY || str_type == TRUNK || str_type == MOTORWAY_LINK || str_type == TRUNK_LINK {
		return oneway != "no"
	}
	return oneway == "yes" || oneway == "1" || oneway == "true"
}

func _GetORSTravelSpeed(streettype RoadType, maxspeed string, tracktype string, surface string) int32 {
	var speed int32

	// check if maxspeed is set
	if maxspeed != "" {
		if maxspeed == "walk" {
			speed = 10
		} else if maxspeed == "none" {
			speed = 110
		} else {
			t, err := strconv.Atoi(maxspeed)
			if err != nil {
				speed = 20
			} else {
				speed = int32(t)
			}
		}
		speed = int32(0.9 * float32(speed))
	}

	// set defaults
	if maxspeed == "" {
		switch streettype {
		case MOTORWAY:
			speed = 100
		case TRUNK:
			speed = 85
		case MOTORWAY_LINK, TRUNK_LINK:
			speed = 60
		case PRIMARY:
			speed = 65
		case SECONDARY:
			speed = 60
		case TERTIARY, PRIMARY_LINK, SECONDARY_LINK:
			speed = 50
		case TERTIARY_LINK:
			speed = 40
		case UNCLASSIFIED, RESIDENTIAL:
			speed = 30
		case LIVING_STREET:
			speed = 10
		case TRACK:
			switch tracktype {
			case "grade1":
				speed = 40
			case "grade2":
				speed = 30
			case "grade3":
				speed = 20
			case "grade5":
				speed = 10
			default:
				speed = 15
			}
		default:
			speed = 20
		}
	}

	// check if surface is set
	switch surface {
	case "cement", "compacted":
		speed = min(speed, 80)
	case "fine_gravel":
		speed = min(speed, 60)
	case "paving_stones", "metal", "bricks":
		speed = min(speed, 40)
	case "grass", "wood", "sett", "grass_paver", "gravel", "unpaved", "ground", "dirt", "pebblestone", "tartan":
		speed = min(speed, 30)
	case "cobblestone", "clay":
		speed = min(speed, 20)
	case "earth", "stone", "rocky", "sand":
		speed = min(speed, 15)
	case "mud":
		speed = min(speed, 10)
	}

	if speed <= 0 {
		speed = 10
	}
	return speed
}
