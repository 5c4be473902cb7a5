package rating

const (
	MinValue = 1
	MaxValue = 5
)

// State is the rating of one (user, recipe) pair. Rated is false for Unrated.
type State struct {
	Rated bool
	Value int64
}

func Unrated() State          { return State{} }
func RatedWith(v int64) State { return State{Rated: true, Value: v} }

func (s State) Ptr() *int64 {
	if !s.Rated {
		return nil
	}
	v := s.Value
	return &v
}

const (
	KindCreate = "create"
	KindUpdate = "update"
	KindDelete = "delete"
	KindNoop   = "noop"
)

// Transition is what a mutation does to the accumulators on the Recipe node.
type Transition struct {
	Kind       string
	Next       State
	SumDelta   int64
	CountDelta int64
}

func Set(prev State, v int64) Transition {
	if !prev.Rated {
		return Transition{Kind: KindCreate, Next: RatedWith(v), SumDelta: v, CountDelta: 1}
	}
	return Transition{Kind: KindUpdate, Next: RatedWith(v), SumDelta: v - prev.Value}
}

func Remove(prev State) Transition {
	if !prev.Rated {
		return Transition{Kind: KindNoop, Next: prev}
	}
	return Transition{Kind: KindDelete, Next: Unrated(), SumDelta: -prev.Value, CountDelta: -1}
}
