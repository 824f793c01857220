package routemap

import (
	"errors"

	"github.com/katalvlaran/lvguide/core"
	"github.com/katalvlaran/lvguide/tags"
)

var (
	ErrBadMap      = errors.New("routemap: bad map")
	ErrShortPath   = errors.New("routemap: path needs at least two nodes")
	ErrUnknownNode = errors.New("routemap: unknown node")
	ErrNoWay       = errors.New("routemap: no way between nodes")
	ErrOneway      = errors.New("routemap: way is one-way against the path")
	ErrBadFixture  = errors.New("routemap: bad fixture")
)

// Way is an ordered node chain with its raw tags.
type Way struct {
	Nodes string    `yaml:"nodes"`
	Tags  tags.Tags `yaml:"tags"`
}

// point is a grid position: x grows east, y grows south.
type point struct {
	x, y int
}

// speeds are the default travel speeds in km/h per road class.
var speeds = map[core.RoadClass]float64{
	core.ClassMotorway:     105,
	core.ClassTrunk:        90,
	core.ClassPrimary:      70,
	core.ClassSecondary:    60,
	core.ClassTertiary:     50,
	core.ClassUnclassified: 40,
	core.ClassResidential:  30,
	core.ClassService:      20,
	core.ClassOther:        40,
}

// rampSpeed applies to every *_link way.
const rampSpeed = 60
