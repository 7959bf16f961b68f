package tui

import "github.com/jask/viagens/internal/destinations"

// ViewState is everything the Home screen renders from. Values are replaced,
// never mutated in place.
type ViewState struct {
	Popular     []destinations.Destination
	Recommended []destinations.Destination
	Loading     bool
}

// InitialState is the state of a freshly mounted Home screen.
func InitialState() ViewState {
	return ViewState{Loading: true}
}

// Event is a settled fetch outcome fed to Reduce.
type Event interface{ isEvent() }

// PopularLoaded carries a successfully fetched popular list.
type PopularLoaded struct{ Items []destinations.Destination }

// PopularFailed reports a failed popular fetch.
type PopularFailed struct{ Err error }

// RecommendedLoaded carries a successfully fetched recommended list.
type RecommendedLoaded struct{ Items []destinations.Destination }

// RecommendedFailed reports a failed recommended fetch.
type RecommendedFailed struct{ Err error }

func (PopularLoaded) isEvent()     {}
func (PopularFailed) isEvent()     {}
func (RecommendedLoaded) isEvent() {}
func (RecommendedFailed) isEvent() {}

// Reduce applies one event. Only the recommended list settling clears Loading;
// the popular list never touches it. Failures keep whatever list was there.
func Reduce(s ViewState, ev Event) ViewState {
	switch e := ev.(type) {
	case PopularLoaded:
		s.Popular = e.Items
	case PopularFailed:
	case RecommendedLoaded:
		s.Recommended = e.Items
		s.Loading = false
	case RecommendedFailed:
		s.Loading = false
	}
	return s
}
