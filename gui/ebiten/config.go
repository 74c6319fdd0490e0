package ebiten

import (
	"fmt"

	"github.com/elmerucr/E64-SQ/resources"
	"github.com/hajimehoshi/ebiten/v2"
)

const geometryResource = "window"

func onWindowOpen() (windowGeometry, error) {
	var geom windowGeometry

	s, err := resources.Read(geometryResource)
	if err != nil {
		return geom, err
	}

	// no geometry has been saved yet
	if s == "" {
		return geom, nil
	}

	_, err = fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return geom, fmt.Errorf("window geometry: %w", err)
	}

	if geom.valid() {
		ebiten.SetWindowPosition(geom.x, geom.y)
		ebiten.SetWindowSize(geom.w, geom.h)
	}

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write(geometryResource, s)
}
