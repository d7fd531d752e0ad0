package entity

// EditingState tells whether the address bar shows the page or accepts input.
type EditingState int

const (
	EditingStateView EditingState = iota
	EditingStateEditing
)

func (s EditingState) String() string {
	switch s {
	case EditingStateView:
		return "view"
	case EditingStateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// LoadingState tells whether the current page is still loading.
// It decides what the address bar's action button does.
type LoadingState int

const (
	LoadingStateNotLoading LoadingState = iota
	LoadingStateLoading
)

func (s LoadingState) String() string {
	switch s {
	case LoadingStateNotLoading:
		return "not_loading"
	case LoadingStateLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// NavigationButton identifies one of the back/forward buttons.
type NavigationButton int

const (
	NavigationButtonPrev NavigationButton = iota
	NavigationButtonNext
)

func (b NavigationButton) String() string {
	switch b {
	case NavigationButtonPrev:
		return "prev"
	case NavigationButtonNext:
		return "next"
	default:
		return "unknown"
	}
}

// AddressBarState is a snapshot of the address bar.
// Exactly one editing state and one loading state are active at a time.
type AddressBarState struct {
	Editing     EditingState
	Loading     LoadingState
	Title       string
	URLString   string
	Progress    LoadingProgress
	PrevEnabled bool
	NextEnabled bool
}

// ButtonEnabled returns the enabled flag of a navigation button.
func (s AddressBarState) ButtonEnabled(b NavigationButton) bool {
	switch b {
	case NavigationButtonPrev:
		return s.PrevEnabled
	case NavigationButtonNext:
		return s.NextEnabled
	default:
		return false
	}
}
