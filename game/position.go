package game

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Position is a grid cell, addressed by row then column.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (p Position) String() string {
	return strconv.Itoa(p.Row) + " " + strconv.Itoa(p.Col)
}

// Direction is one of the four compass moves a unit can make.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every Direction, in protocol order.
var Directions = [...]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return North, fmt.Errorf("%q is not a direction", s)
}

func (d Direction) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDirection(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Order asks the engine to move the unit at Pos one step in Dir.
type Order struct {
	Pos Position  `yaml:"pos"`
	Dir Direction `yaml:"dir"`
}
