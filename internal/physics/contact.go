package physics

// Tag classifies the other party of a contact.
type Tag int

const (
	TagNone Tag = iota
	TagPlayer
	TagEnemy
	TagBullet
	TagPickup
)

func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "Player"
	case TagEnemy:
		return "Enemy"
	case TagBullet:
		return "Bullet"
	case TagPickup:
		return "Pickup"
	default:
		return "None"
	}
}

// Body is anything that takes part in overlap detection.
type Body interface {
	Position() Vec2
	Radius() float64
	Tag() Tag
}

// Contact is an overlap notification delivered to Self about Other.
type Contact struct {
	Self     Body
	Other    Body
	OtherTag Tag
}

// NewContact builds a contact, tagging it with the other body's tag.
func NewContact(self, other Body) Contact {
	return Contact{Self: self, Other: other, OtherTag: other.Tag()}
}

// Overlaps reports whether two bodies intersect.
func Overlaps(a, b Body) bool {
	pa, pb := a.Position(), b.Position()
	return CirclesOverlap(pa, a.Radius(), pb, b.Radius())
}
