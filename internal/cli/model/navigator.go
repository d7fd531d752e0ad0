package model

import (
	"context"

	"github.com/bnema/tinybrowser/internal/application/port"
	"github.com/bnema/tinybrowser/internal/application/usecase"
	"github.com/bnema/tinybrowser/internal/cli"
	"github.com/bnema/tinybrowser/internal/domain/entity"
	"github.com/bnema/tinybrowser/internal/logging"
)

// navigator is the address bar's delegate in the terminal shell. It resolves
// submitted text, keeps a back/forward history and simulates page loads.
type navigator struct {
	ctx      context.Context
	services *cli.Services
	bar      *usecase.AddressBarUseCase

	history []entity.Resolution
	index   int
	loadID  int
	lastErr error
}

var _ port.AddressBarDelegate = (*navigator)(nil)

func newNavigator(ctx context.Context, services *cli.Services, bar *usecase.AddressBarUseCase) *navigator {
	return &navigator{
		ctx:      ctx,
		services: services,
		bar:      bar,
		index:    -1,
	}
}

// DidRequestString resolves address and opens it as a new history entry.
func (n *navigator) DidRequestString(address string) {
	out, err := n.services.ResolveUC.Execute(n.ctx, usecase.ResolveInput{Text: address})
	if err != nil {
		n.lastErr = err
		logging.FromContext(n.ctx).Warn().Err(err).Str("address", address).Msg("resolve failed")
		return
	}
	n.lastErr = nil

	n.history = append(n.history[:n.index+1], out.Resolution)
	n.index = len(n.history) - 1
	n.open()
}

func (n *navigator) DidRequestPrevPage() {
	if n.index <= 0 {
		return
	}
	n.index--
	n.open()
}

func (n *navigator) DidRequestNextPage() {
	if n.index >= len(n.history)-1 {
		return
	}
	n.index++
	n.open()
}

func (n *navigator) DidRequestReloading() {
	if n.index < 0 {
		return
	}
	n.open()
}

func (n *navigator) DidRequestCanceling() {
	n.loadID++
	n.bar.SetLoadingState(entity.LoadingStateNotLoading)
}

// current returns the open history entry.
func (n *navigator) current() (entity.Resolution, bool) {
	if n.index < 0 || n.index >= len(n.history) {
		return entity.Resolution{}, false
	}
	return n.history[n.index], true
}

// open starts loading the current history entry.
func (n *navigator) open() {
	res, ok := n.current()
	if !ok {
		return
	}

	n.loadID++
	n.bar.SetURLString(res.URL)
	n.bar.SetTitle("")
	n.bar.StartLoadingProgress()
	n.bar.SetButtonEnabled(entity.NavigationButtonPrev, n.index > 0)
	n.bar.SetButtonEnabled(entity.NavigationButtonNext, n.index < len(n.history)-1)

	logging.FromContext(n.ctx).Debug().
		Str("kind", string(res.Kind)).
		Str("url", res.URL).
		Int("history_index", n.index).
		Msg("opening page")
}

// finish completes the load started by open.
func (n *navigator) finish() {
	n.bar.FinishLoadingProgress()
	if res, ok := n.current(); ok && res.IsSearch() {
		n.bar.SetTitle(res.Engine + ": " + res.Input)
	}
}
