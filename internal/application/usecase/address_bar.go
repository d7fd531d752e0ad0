package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/tinybrowser/internal/application/port"
	"github.com/bnema/tinybrowser/internal/domain/entity"
	"github.com/bnema/tinybrowser/internal/domain/url"
	"github.com/bnema/tinybrowser/internal/logging"
)

// AddressBarUseCase is the headless address bar: the text field, the
// reload/cancel action button, the back/forward buttons and the loading
// progress. User actions are forwarded to the delegate.
//
// All methods are safe for concurrent use. Delegate callbacks run after the
// internal lock is released, so a delegate may call back into the bar.
type AddressBarUseCase struct {
	mu         sync.Mutex
	state      entity.AddressBarState
	delegate   port.AddressBarDelegate
	classifier *url.Classifier
}

// NewAddressBarUseCase creates an idle, non-editing address bar.
// delegate may be nil; a nil classifier uses url.Default().
func NewAddressBarUseCase(delegate port.AddressBarDelegate, classifier *url.Classifier) *AddressBarUseCase {
	if classifier == nil {
		classifier = url.Default()
	}
	return &AddressBarUseCase{
		delegate:   delegate,
		classifier: classifier,
		state: entity.AddressBarState{
			Editing: entity.EditingStateView,
			Loading: entity.LoadingStateNotLoading,
		},
	}
}

// SetDelegate replaces the delegate. nil disables callbacks.
func (uc *AddressBarUseCase) SetDelegate(delegate port.AddressBarDelegate) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.delegate = delegate
}

// SetClassifier replaces the classifier used to find the host shown in view
// mode, after the recognised schemes changed. nil uses url.Default().
func (uc *AddressBarUseCase) SetClassifier(classifier *url.Classifier) {
	if classifier == nil {
		classifier = url.Default()
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.classifier = classifier
}

// State returns a snapshot of the bar.
func (uc *AddressBarUseCase) State() entity.AddressBarState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// BeginEditing switches the text field to input mode.
func (uc *AddressBarUseCase) BeginEditing() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Editing = entity.EditingStateEditing
}

// CancelEditing leaves input mode without submitting anything.
func (uc *AddressBarUseCase) CancelEditing() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Editing = entity.EditingStateView
}

// Submit ends editing and asks the delegate to open text.
// Blank text only ends editing. It reports whether a request was sent.
func (uc *AddressBarUseCase) Submit(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)

	uc.mu.Lock()
	uc.state.Editing = entity.EditingStateView
	delegate := uc.delegate
	uc.mu.Unlock()

	if text == "" {
		logging.FromContext(ctx).Debug().Msg("ignoring empty address submission")
		return false
	}

	logging.FromContext(ctx).Debug().Str("address", text).Msg("address submitted")
	if delegate != nil {
		delegate.DidRequestString(text)
	}
	return true
}

// SetURLString sets the address of the current page.
func (uc *AddressBarUseCase) SetURLString(urlString string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.URLString = urlString
}

// SetTitle sets the title of the current page.
func (uc *AddressBarUseCase) SetTitle(title string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Title = title
}

// DisplayText returns what the text field shows. While editing that is the
// full URL. Otherwise it is the page title, falling back to the URL's host
// and then to the URL itself.
func (uc *AddressBarUseCase) DisplayText() string {
	uc.mu.Lock()
	state := uc.state
	classifier := uc.classifier
	uc.mu.Unlock()

	if state.Editing == entity.EditingStateEditing {
		return state.URLString
	}
	if title := strings.TrimSpace(state.Title); title != "" {
		return title
	}
	if r, ok := classifier.HostRange(state.URLString); ok {
		return r.Slice(state.URLString)
	}
	return state.URLString
}

// SetLoadingState switches the action button between reload and cancel.
func (uc *AddressBarUseCase) SetLoadingState(loading entity.LoadingState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Loading = loading
}

// TapActionButton requests a reload when idle and a cancel while loading.
func (uc *AddressBarUseCase) TapActionButton(ctx context.Context) {
	uc.mu.Lock()
	loading := uc.state.Loading
	delegate := uc.delegate
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("loading_state", loading.String()).Msg("action button tapped")
	if delegate == nil {
		return
	}
	if loading == entity.LoadingStateLoading {
		delegate.DidRequestCanceling()
		return
	}
	delegate.DidRequestReloading()
}

// SetButtonEnabled enables or disables a navigation button.
func (uc *AddressBarUseCase) SetButtonEnabled(button entity.NavigationButton, enabled bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	switch button {
	case entity.NavigationButtonPrev:
		uc.state.PrevEnabled = enabled
	case entity.NavigationButtonNext:
		uc.state.NextEnabled = enabled
	}
}

// TapNavigationButton requests the previous or next page.
// Taps on a disabled button are ignored.
func (uc *AddressBarUseCase) TapNavigationButton(ctx context.Context, button entity.NavigationButton) {
	uc.mu.Lock()
	enabled := uc.state.ButtonEnabled(button)
	delegate := uc.delegate
	uc.mu.Unlock()

	log := logging.FromContext(ctx)
	if !enabled {
		log.Debug().Str("button", button.String()).Msg("ignoring tap on disabled button")
		return
	}
	if delegate == nil {
		return
	}

	switch button {
	case entity.NavigationButtonPrev:
		delegate.DidRequestPrevPage()
	case entity.NavigationButtonNext:
		delegate.DidRequestNextPage()
	}
}

// SetLoadingProgress records load progress, clamped to [0, 1].
func (uc *AddressBarUseCase) SetLoadingProgress(progress float64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Progress = entity.NewLoadingProgress(progress)
}

// StartLoadingProgress marks the page as loading with a small visible progress.
func (uc *AddressBarUseCase) StartLoadingProgress() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Loading = entity.LoadingStateLoading
	uc.state.Progress = entity.NewLoadingProgress(entity.ProgressStart)
}

// FinishLoadingProgress completes the progress and marks the page idle.
func (uc *AddressBarUseCase) FinishLoadingProgress() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Progress = entity.NewLoadingProgress(entity.ProgressMax)
	uc.state.Loading = entity.LoadingStateNotLoading
}
