package qlog

// category is the qlog event category.
type category uint8

const (
	categoryTicket category = iota
	categoryKey
)

func (c category) String() string {
	switch c {
	case categoryTicket:
		return "ticket"
	case categoryKey:
		return "key"
	default:
		panic("unknown category")
	}
}
