package invalid

import "time"

type Plain struct {
	Name string
}

type Nested struct {
	When time.Time `filter:"name=when"`
}

type BadKey struct {
	Name string `filter:"nam=x"`
}

type TwoMarkers struct {
	_ struct{} `filter:"name=a"`
	_ struct{} `filter:"name=b"`

	Name string `filter:"name=name"`
}

type Hidden struct {
	name string `filter:"name=name"`
}

type Skipped struct {
	Name string    `filter:"name=n"`
	When time.Time `filter:"-"`
}

type Untagged struct {
	Name  string `filter:"name=n"`
	Flags []bool
}

func (h Hidden) Name() string { return h.name }
