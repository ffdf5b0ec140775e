package parserbasic

import (
	"net/url"
	"time"
)

type Profile struct {
	BirthAt time.Time
}

type User struct {
	ID      int
	Name    string
	Profile Profile `builder:"nested"`
	Ptr     *Profile
	Tags    []string            `builder:"default"`
	Scores  map[string]int      `builder:"default,nonested"`
	Links   map[string]*url.URL `builder:"default"`
	Err     error               `builder:"default"`
	hidden  string
	_       int
}

type Pair struct {
	First  string
	Second uint32
}

type Empty struct{}

type Color int

type Shape interface {
	Area() float64
}

type Box[T any, K comparable] struct {
	Item T
	Keys []K
}

type ProfileAlias = Profile
