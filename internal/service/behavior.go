package service

// Behavior describes an activity a person can be doing.
type Behavior interface {
	Do() string
}

// BehaviorFunc adapts a plain function to Behavior.
type BehaviorFunc func() string

// Do calls f.
func (f BehaviorFunc) Do() string { return f() }

var (
	RecitePoems  Behavior = BehaviorFunc(func() string { return "reciting poems" })
	Study        Behavior = BehaviorFunc(func() string { return "studying" })
	PlayFootball Behavior = BehaviorFunc(func() string { return "playing football" })
	PracticeLaw  Behavior = BehaviorFunc(func() string { return "practicing law" })
)
