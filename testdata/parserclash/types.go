package parserclash

import (
	mrand "math/rand"

	vrand "github.com/seitarof/gen-builder/testdata/parserclash/rand"
)

type Both struct {
	A *mrand.Rand
	B vrand.Seed
}

type OnlyMath struct {
	A *mrand.Rand
}

type OnlyLocal struct {
	B vrand.Seed
}
