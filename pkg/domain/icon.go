package domain

// Icon is an opaque icon symbol. Its value is a Lucide icon name, rendering is
// left to the UI.
type Icon string

func (i Icon) String() string { return string(i) }
